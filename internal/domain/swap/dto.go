package swap

import "github.com/supermom/supermom-api/internal/domain/theme"

// TransformRequest starts a face swap on an uploaded photo. ThemeAlt mirrors
// the older "theme" field name some frontends still send.
type TransformRequest struct {
	Filename   string `json:"sourceImage" validate:"required,max=255"`
	ThemeID    string `json:"themeId"`
	ThemeAlt   string `json:"theme"`
	Story      string `json:"story" validate:"max=2000"`
	MomName    string `json:"momName" validate:"max=100"`
	Nickname   string `json:"nickname" validate:"max=100"`
	Identifier string `json:"identifier" validate:"max=255"`
}

// Theme returns whichever theme field was provided
func (r TransformRequest) Theme() string {
	if r.ThemeID != "" {
		return r.ThemeID
	}
	return r.ThemeAlt
}

// TransformResult is the outcome of a swap. Demo and Note flag degraded
// runs; the request itself still succeeds.
type TransformResult struct {
	ImageURL string      `json:"imageUrl"`
	BlobURL  string      `json:"blobUrl,omitempty"`
	Theme    theme.Theme `json:"theme"`
	Demo     bool        `json:"demo"`
	Note     string      `json:"note,omitempty"`
}

// TransformResponse is the wire shape of a completed swap
type TransformResponse struct {
	Result ResultPayload `json:"result"`
	Demo   bool          `json:"demo"`
	Note   string        `json:"note,omitempty"`
}

// ResultPayload carries the produced artifact
type ResultPayload struct {
	ImageURL string      `json:"imageUrl"`
	BlobURL  string      `json:"blobUrl,omitempty"`
	Theme    theme.Theme `json:"theme"`
}

// Response converts a service result to the wire shape
func (r *TransformResult) Response() TransformResponse {
	return TransformResponse{
		Result: ResultPayload{
			ImageURL: r.ImageURL,
			BlobURL:  r.BlobURL,
			Theme:    r.Theme,
		},
		Demo: r.Demo,
		Note: r.Note,
	}
}
