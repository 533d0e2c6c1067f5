package storage

import "context"

// BlobUploader is the remote object-storage contract used for result
// artifacts. Uploads are best-effort; a nil client disables them.
type BlobUploader interface {
	// UploadFile stores a local file under key and returns its public URL
	UploadFile(ctx context.Context, key, localPath string) (string, error)
}

// FileInfo describes a stored file for listing endpoints
type FileInfo struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
