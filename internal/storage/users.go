package storage

import (
	"context"
	"fmt"

	"github.com/CatoAkay/cf-benchmark/internal/models"
)

// GetOrCreateUser finds or creates a user by Tailscale login name.
// Returns the user ID. Updates last_seen and display_name on each call.
func (db *DB) GetOrCreateUser(ctx context.Context, login, displayName string) (int, error) {
	var id int
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO users (login, display_name)
		VALUES ($1, $2)
		ON CONFLICT (login) DO UPDATE
			SET last_seen = NOW(), display_name = COALESCE(NULLIF($2, ''), users.display_name)
		RETURNING id
	`, login, displayName).Scan(&id)
	return id, err
}

// GetUser retrieves a single user by ID.
func (db *DB) GetUser(ctx context.Context, id int) (*models.UserRow, error) {
	var u models.UserRow
	err := db.Pool.QueryRow(ctx,
		`SELECT id, login, display_name, created_at, last_seen FROM users WHERE id = $1`,
		id).Scan(&u.ID, &u.Login, &u.DisplayName, &u.CreatedAt, &u.LastSeen)
	if err != nil {
		return nil, fmt.Errorf("querying user: %w", err)
	}
	return &u, nil
}
