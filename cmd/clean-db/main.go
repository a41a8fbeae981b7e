// Command-line tool to clean the postgres record store.
//
// Without flags every table in the public schema is dropped. With -table only the
// records of that logical table are deleted.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"jobboard-backend/internal/config"
	"jobboard-backend/internal/database"
)

func confirm(prompt string) bool {
	fmt.Println(prompt)
	fmt.Println("This action is irreversible. Do you want to continue? (yes/no): ")
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}
	return strings.TrimSpace(strings.ToLower(input)) == "yes"
}

func main() {
	table := flag.String("table", "", "delete only the records of this logical table, e.g. \"Feedback\"")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	db, err := database.GetMainDB(&database.DBConfig{
		Host:      cfg.DB.Host,
		Port:      cfg.DB.Port,
		User:      cfg.DB.User,
		Password:  cfg.DB.Password,
		DBName:    cfg.DB.Name,
		Constr:    cfg.DB.ConnString,
		UseConstr: cfg.DB.UseConnString,
	}, zap.NewNop())
	if err != nil {
		log.Fatalf("Database failed to initialize: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	if *table != "" {
		if !confirm(fmt.Sprintf("⚠️ WARNING: This command will DELETE ALL RECORDS of table %q.", *table)) {
			fmt.Println("Operation cancelled.")
			return
		}
		n, err := db.Records().Truncate(ctx, *table)
		if err != nil {
			log.Fatalf("failed to delete records: %v", err)
		}
		fmt.Printf("✅ Deleted %d records of %q.\n", n, *table)
		return
	}

	if !confirm("⚠️ WARNING: This command will DROP ALL TABLES in the 'public' schema of your database.") {
		fmt.Println("Operation cancelled.")
		return
	}

	var tables []string
	if err := db.WithContext(ctx).Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public'").Scan(&tables).Error; err != nil {
		log.Fatalf("failed to list tables: %v", err)
	}
	for _, name := range tables {
		if err := db.WithContext(ctx).Exec("DROP TABLE IF EXISTS " + pq.QuoteIdentifier(name) + " CASCADE").Error; err != nil {
			log.Fatalf("failed to drop %s: %v", name, err)
		}
	}

	fmt.Printf("✅ %d tables dropped successfully.\n", len(tables))
}
