package database

import (
	"database/sql"
	"time"

	_ "github.com/lib/pq"
)

var DB *sql.DB

// Init ouvre la connexion PostgreSQL et configure le pool
func Init(connStr string) error {
	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return err
	}

	// Pool de connexions optimisé
	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(5)
	DB.SetConnMaxLifetime(5 * time.Minute)

	return DB.Ping()
}

// Close ferme la connexion
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
