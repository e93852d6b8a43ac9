package main

import (
	"context"
	"fmt"
	"os"

	"storefront/internal/config"

	"github.com/caarlos0/env/v11"
	"github.com/jackc/pgx/v5"
)

// Checks database connectivity and reports the schema version and catalogue size.
func main() {
	var cfg config.DatabaseConfig
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.ConnectionString())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	var dbName string
	if err := conn.QueryRow(ctx, "SELECT current_database()").Scan(&dbName); err != nil {
		fmt.Fprintf(os.Stderr, "QueryRow failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully connected to database: %s\n", dbName)

	var version int64
	err = conn.QueryRow(ctx, "SELECT COALESCE(MAX(version_id), 0) FROM goose_db_version WHERE is_applied").Scan(&version)
	if err != nil {
		fmt.Printf("Schema version: unknown (%v)\n", err)
		return
	}
	fmt.Printf("Schema version: %d\n", version)

	var products int
	if err := conn.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&products); err != nil {
		fmt.Fprintf(os.Stderr, "Query failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Products in catalogue: %d\n", products)
}
