package user

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Repository for users
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates user repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Upsert records a login identifier. Repeat logins are a no-op.
func (r *Repository) Upsert(ctx context.Context, identifier, channel string) error {
	query := `
		INSERT INTO users (identifier, channel)
		VALUES ($1, $2)
		ON CONFLICT (identifier) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, identifier, channel)
	return err
}

// GetByIdentifier returns the user for a login identifier
func (r *Repository) GetByIdentifier(ctx context.Context, identifier string) (*User, error) {
	var u User
	query := `SELECT * FROM users WHERE identifier = $1`
	if err := r.db.GetContext(ctx, &u, query, identifier); err != nil {
		return nil, err
	}
	return &u, nil
}
