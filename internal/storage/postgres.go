package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
)

// ErrNotFound is returned by read methods when no row matches.
var ErrNotFound = errors.New("not found")

// PostgresInfo holds the connection parameters for the relational store.
type PostgresInfo struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// Postgres is the persistence layer for channels, videos and their
// statistics.
type Postgres struct {
	db *sql.DB
}

// NewPostgres opens the connection and brings the schema up to date.
func NewPostgres(info PostgresInfo) (*Postgres, error) {
	db, err := sql.Open("postgres", fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		info.Host, info.Port, info.User, info.Password, info.Database))
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	p := &Postgres{db: db}
	if err := p.migrate(pgMigration); err != nil {
		return nil, err
	}

	return p, nil
}

// Close closes the database connection.
func (p *Postgres) Close() error {
	return p.db.Close()
}
