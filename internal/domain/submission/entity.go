package submission

import (
	"database/sql"
	"time"
)

// Submission records one completed transformation
type Submission struct {
	ID              int64          `json:"id" db:"id"`
	UserIdentifier  string         `json:"user_identifier" db:"user_identifier"`
	SourceImagePath sql.NullString `json:"source_image_path" db:"source_image_path"`
	ThemeID         sql.NullString `json:"theme_id" db:"theme_id"`
	ThemeName       sql.NullString `json:"theme_name" db:"theme_name"`
	MomStory        sql.NullString `json:"mom_story" db:"mom_story"`
	ResultImagePath sql.NullString `json:"result_image_path" db:"result_image_path"`
	ResultBlobURL   sql.NullString `json:"result_blob_url" db:"result_blob_url"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
}
