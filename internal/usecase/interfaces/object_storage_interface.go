package interfaces

import (
	"context"

	"invite_studio/internal/domain/entities"
)

// IObjectStorage abstracts the S3 bucket holding user uploads and generated
// assets.
type IObjectStorage interface {
	ValidateFolder(folder string) (string, error)
	NewKey(folder, filename string) (string, error)
	IssueUploadCredential(ctx context.Context, folder, filename, contentType string) (entities.UploadCredential, error)
	UploadBuffer(ctx context.Context, data []byte, key, contentType string) (string, error)
	DeleteObject(ctx context.Context, key string) error
	PublicURL(key string) string
	KeyFromURL(url string) (string, bool)
}
