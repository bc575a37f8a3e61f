package database

import (
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// OpenDB initializes the shared connection pool from the environment.
//
// DB_DRIVER selects the backend: "mysql" for a managed deployment, or
// "sqlite" (the default) for a self-contained install. DB_DSN is passed
// straight to the driver; for MySQL it must include parseTime=true so
// DATETIME columns scan into time.Time.
func OpenDB() (*sql.DB, error) {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "sqlite"
	}

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "review_seller.db"
	}

	return OpenDBWithDSN(driver, dsn)
}

// OpenDBWithDSN creates and configures a connection pool for any
// driver/DSN pair. Used by OpenDB and by the test database.
func OpenDBWithDSN(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if driver == "sqlite" {
		// A single writer keeps SQLite out of "database is locked"
		// territory; serialized access is fine at this scale.
		db.SetMaxOpenConns(1)
		if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
			db.Close()
			return nil, err
		}
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.Ping(); err != nil {
		log.Printf("Error connecting to database: %v", err)
		db.Close()
		return nil, err
	}

	return db, nil
}
