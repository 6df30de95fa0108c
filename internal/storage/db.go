package storage

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq" // PostgreSQL driver
)

type DB struct {
	connection *sql.DB
}

func NewDB(dataSourceName string) (*DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, err
	}

	// Connection pool tuning
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &DB{connection: db}, nil
}

func (db *DB) Close() {
	if err := db.connection.Close(); err != nil {
		log.Println("Error closing the database connection:", err)
	}
}

// EnsureSchema creates the extractions table when it does not exist yet.
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.connection.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS extractions (
            id          UUID PRIMARY KEY,
            filename    TEXT,
            source      TEXT NOT NULL,
            text_length INTEGER NOT NULL,
            result      JSONB NOT NULL,
            created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`)
	return err
}

// SaveExtraction persists one pipeline run. A missing ID is filled in and
// written back to the record.
func (db *DB) SaveExtraction(ctx context.Context, rec *ExtractionRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	query := `INSERT INTO extractions (id, filename, source, text_length, result)
              VALUES ($1, $2, $3, $4, $5)`
	_, err := db.connection.ExecContext(ctx, query,
		rec.ID,
		rec.Filename,
		rec.Source,
		rec.TextLength,
		[]byte(rec.Result),
	)
	return err
}

// GetExtraction fetches one stored run by ID.
func (db *DB) GetExtraction(ctx context.Context, id string) (*ExtractionRecord, error) {
	rec := &ExtractionRecord{}
	query := `SELECT id, COALESCE(filename, ''), source, text_length, result, created_at
              FROM extractions WHERE id = $1`
	row := db.connection.QueryRowContext(ctx, query, id)

	var result []byte
	if err := row.Scan(&rec.ID, &rec.Filename, &rec.Source, &rec.TextLength, &result, &rec.CreatedAt); err != nil {
		return nil, err
	}
	rec.Result = result
	return rec, nil
}

// ListRecent returns the newest stored runs, most recent first.
func (db *DB) ListRecent(ctx context.Context, limit int) ([]*ExtractionRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT id, COALESCE(filename, ''), source, text_length, result, created_at
              FROM extractions ORDER BY created_at DESC LIMIT $1`
	rows, err := db.connection.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*ExtractionRecord
	for rows.Next() {
		rec := &ExtractionRecord{}
		var result []byte
		if err := rows.Scan(&rec.ID, &rec.Filename, &rec.Source, &rec.TextLength, &result, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Result = result
		res = append(res, rec)
	}
	return res, rows.Err()
}

// GetConnection returns the underlying database connection for advanced queries
func (db *DB) GetConnection() *sql.DB {
	return db.connection
}
