// Package model contain the typed records of the job board and the gorm model used by the postgres record store
package model

// MigrateAble is array of model instance, use for migrating database
var MigrateAble []interface{}

func init() {
	MigrateAble = append(
		MigrateAble,
		&Record{},
	)
}
