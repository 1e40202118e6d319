package store

import (
	"context"
	"database/sql"
)

// Storage names for the persisted collections.
const (
	AuthStorage       = "auth-storage"
	RoomStorage       = "room-storage"
	ObjectStorage     = "object-storage"
	CredentialStorage = "credential-storage"
)

// Engine persists named collections as serialized JSON documents. Each
// collection occupies one row; Save replaces the whole document in a
// single statement so a crash mid-write leaves the prior value intact.
type Engine struct {
	db *sql.DB
}

// NewEngine wraps an open database in a persistence engine.
func NewEngine(db *sql.DB) *Engine {
	return &Engine{db: db}
}

// Load returns the last-saved document for name, or nil if none exists.
// Absence is a normal initial condition, not an error.
func (e *Engine) Load(ctx context.Context, name string) ([]byte, error) {
	var data []byte
	err := e.db.QueryRowContext(ctx,
		`SELECT data FROM collections WHERE name = ?`, name,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, &PersistenceError{Collection: name, Op: "loading", Err: err}
	}
	return data, nil
}

// Save durably replaces the document stored under name.
func (e *Engine) Save(ctx context.Context, name string, data []byte) error {
	_, err := e.db.ExecContext(ctx,
		`INSERT INTO collections (name, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		name, data,
	)
	if err != nil {
		return &PersistenceError{Collection: name, Op: "saving", Err: err}
	}
	return nil
}
