// Package database provides database initialization and connection management.
package database

import (
	"database/sql"
	"log"

	_ "github.com/mattn/go-sqlite3"
)

var db *sql.DB

// Initialize opens the process-wide SQLite database and runs migrations.
// The database path is provided as a parameter from the configuration.
func Initialize(dbPath string) error {
	log.Printf("Initializing database at: %s", dbPath)

	conn, err := Open(dbPath)
	if err != nil {
		return err
	}
	db = conn

	log.Println("Database initialized successfully")
	return nil
}

// Open opens a SQLite database at dbPath and brings its schema up to date.
// Callers own the returned handle.
func Open(dbPath string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		log.Printf("Failed to open database: %v", err)
		return nil, err
	}

	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(5)

	if err := conn.Ping(); err != nil {
		log.Printf("Failed to ping database: %v", err)
		conn.Close()
		return nil, err
	}

	if err := migrate(conn); err != nil {
		log.Printf("Failed to run migrations: %v", err)
		conn.Close()
		return nil, err
	}

	return conn, nil
}

// GetDB returns the active database connection.
// Initialize() must be called before using this function.
func GetDB() *sql.DB {
	return db
}

// Close closes the database connection.
// This should be called during application shutdown.
func Close() error {
	if db != nil {
		log.Println("Closing database connection")
		return db.Close()
	}
	return nil
}
