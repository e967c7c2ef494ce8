package entities

import "time"

// UploadCredential is a short-lived presigned write permission for exactly one
// object key.
type UploadCredential struct {
	Key         string    `json:"key"`
	UploadURL   string    `json:"upload_url"`
	PublicURL   string    `json:"public_url"`
	ContentType string    `json:"content_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// StoredObject is an object the server wrote itself.
type StoredObject struct {
	Key       string `json:"key"`
	PublicURL string `json:"public_url"`
}

// RenderResult is the pair of assets a render produces for a project.
type RenderResult struct {
	PreviewURL string `json:"preview_url"`
	FinalURL   string `json:"final_url"`
}
