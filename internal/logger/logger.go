// Package logger build the zap logger shared by the application
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New return production JSON logger, or a console logger for development and test
func New(env string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if env == "development" || env == "test" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}
