package share

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Repository for shares
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates share repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a share record
func (r *Repository) Create(ctx context.Context, s *Share) error {
	query := `
		INSERT INTO shares (submission_id, share_channel, recipient, image_url, share_link)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	return r.db.QueryRowxContext(ctx, query,
		s.SubmissionID, s.ShareChannel, s.Recipient, s.ImageURL, s.ShareLink,
	).Scan(&s.ID, &s.CreatedAt)
}

// ListRecent returns the newest shares, capped at limit
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]Share, error) {
	var shares []Share
	query := `SELECT * FROM shares ORDER BY created_at DESC LIMIT $1`
	if err := r.db.SelectContext(ctx, &shares, query, limit); err != nil {
		return nil, err
	}
	return shares, nil
}
