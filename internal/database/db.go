package database

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// Open connects to the SQLite database file at path and verifies the
// connection.  The file is created on first use if it does not exist.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// SQLite allows a single writer; a small pool is enough and avoids
	// SQLITE_BUSY churn under concurrent requests.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// InitSchema creates every table the application uses.  It runs once at
// startup so that handlers can assume the schema exists instead of checking
// sqlite_master before each statement.  All statements are idempotent.
func InitSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS room (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			room_number TEXT NOT NULL UNIQUE,
			capacity INTEGER NOT NULL,
			current_occupancy INTEGER NOT NULL DEFAULT 0,
			room_type TEXT,
			price_per_month REAL,
			status TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS member (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT,
			email TEXT,
			phone TEXT,
			room_id INTEGER,
			emergency_contact TEXT,
			FOREIGN KEY (room_id) REFERENCES room (id)
		)`,
		`CREATE TABLE IF NOT EXISTS payment (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			member_id INTEGER,
			amount REAL,
			payment_type TEXT,
			payment_date TEXT,
			due_date TEXT,
			status TEXT,
			description TEXT,
			FOREIGN KEY (member_id) REFERENCES member (id)
		)`,
		`CREATE TABLE IF NOT EXISTS admin (
			id INTEGER PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			email TEXT NOT NULL
		)`,
	}
	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}
