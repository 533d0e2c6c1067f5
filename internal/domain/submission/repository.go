package submission

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Repository for submissions
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates submission repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a submission record
func (r *Repository) Create(ctx context.Context, s *Submission) error {
	query := `
		INSERT INTO submissions
			(user_identifier, source_image_path, theme_id, theme_name, mom_story, result_image_path, result_blob_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	return r.db.QueryRowxContext(ctx, query,
		s.UserIdentifier, s.SourceImagePath, s.ThemeID, s.ThemeName,
		s.MomStory, s.ResultImagePath, s.ResultBlobURL,
	).Scan(&s.ID, &s.CreatedAt)
}

// ListRecent returns the newest submissions, capped at limit
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]Submission, error) {
	var subs []Submission
	query := `SELECT * FROM submissions ORDER BY created_at DESC LIMIT $1`
	if err := r.db.SelectContext(ctx, &subs, query, limit); err != nil {
		return nil, err
	}
	return subs, nil
}
