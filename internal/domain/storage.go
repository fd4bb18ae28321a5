package domain

import "context"

// UploadResult identifies a stored object. Key is what later deletes or
// overwrites reference.
type UploadResult struct {
	URL string `json:"url"`
	Key string `json:"public_id"`
}

// FileStore abstracts the object storage backend.
type FileStore interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (*UploadResult, error)
	Delete(ctx context.Context, key string) error
}
