package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
)

// GetTokenSecret retrieves the session token signing secret from the
// database. If no secret exists, it generates one, stores it, and returns
// it, so tokens survive restarts without any configuration.
// Uses INSERT OR IGNORE + re-SELECT to avoid TOCTOU race on concurrent startup.
func GetTokenSecret(ctx context.Context, db *sql.DB) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating token secret: %w", err)
	}
	candidate := hex.EncodeToString(buf)

	_, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO collections (name, data) VALUES ('token-secret', ?)`,
		candidate,
	)
	if err != nil {
		return "", fmt.Errorf("storing token secret: %w", err)
	}

	var secret string
	err = db.QueryRowContext(ctx,
		`SELECT data FROM collections WHERE name = 'token-secret'`,
	).Scan(&secret)
	if err != nil {
		return "", fmt.Errorf("querying token secret: %w", err)
	}

	return secret, nil
}
