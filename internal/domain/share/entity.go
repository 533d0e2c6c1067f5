package share

import (
	"database/sql"
	"time"
)

// Share records one outbound share of a portrait
type Share struct {
	ID           int64          `json:"id" db:"id"`
	SubmissionID sql.NullInt64  `json:"submission_id" db:"submission_id"`
	ShareChannel string         `json:"share_channel" db:"share_channel"`
	Recipient    sql.NullString `json:"recipient" db:"recipient"`
	ImageURL     sql.NullString `json:"image_url" db:"image_url"`
	ShareLink    sql.NullString `json:"share_link" db:"share_link"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
}
