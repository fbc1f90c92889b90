// Command dbinfo prints the schema and a few sample rows of every table in
// the database.  It is a read-only diagnostic and never mutates anything.
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/svce/hostel-management/internal/config"
	"github.com/svce/hostel-management/internal/database"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	info, err := os.Stat(cfg.DBPath)
	if err != nil {
		fmt.Printf("Database file %s not found.\n", cfg.DBPath)
		os.Exit(1)
	}
	fmt.Printf("Database file: %s (Size: %.2f KB)\n", cfg.DBPath, float64(info.Size())/1024)
	fmt.Println("--------------------------------------------------")

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	tables, err := listTables(db)
	if err != nil {
		log.Fatalf("list tables: %v", err)
	}
	fmt.Printf("Found %d tables:\n", len(tables))
	fmt.Println("--------------------------------------------------")

	for _, table := range tables {
		if err := describeTable(db, table); err != nil {
			log.Fatalf("describe %s: %v", table, err)
		}
	}
}

func listTables(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

func describeTable(db *sql.DB, table string) error {
	fmt.Printf("\nTABLE: %s\n", table)

	// Column definitions via PRAGMA table_info: cid, name, type, notnull,
	// dflt_value, pk.
	cols, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return err
	}
	fmt.Println("  Columns:")
	for cols.Next() {
		var (
			cid, notNull, pk int
			name, colType    string
			dflt             sql.NullString
		)
		if err := cols.Scan(&cid, &name, &colType, &notNull, &dflt, &pk); err != nil {
			cols.Close()
			return err
		}
		line := fmt.Sprintf("    - %s (%s)", name, colType)
		if pk != 0 {
			line += " PRIMARY KEY"
		}
		if notNull != 0 {
			line += " NOT NULL"
		}
		fmt.Println(line)
	}
	if err := cols.Err(); err != nil {
		cols.Close()
		return err
	}
	cols.Close()

	var count int
	if err := db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count); err != nil {
		return err
	}
	fmt.Printf("  Records: %d\n", count)

	if count == 0 {
		return nil
	}
	return printSampleRows(db, table)
}

// printSampleRows dumps up to five rows of a table without knowing its
// schema, scanning every column into a generic value.
func printSampleRows(db *sql.DB, table string) error {
	rows, err := db.Query(fmt.Sprintf("SELECT * FROM %s LIMIT 5", table))
	if err != nil {
		return err
	}
	defer rows.Close()

	colNames, err := rows.Columns()
	if err != nil {
		return err
	}

	fmt.Println("  Sample data:")
	for rows.Next() {
		values := make([]any, len(colNames))
		ptrs := make([]any, len(colNames))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return err
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		fmt.Printf("    %v\n", values)
	}
	return rows.Err()
}
