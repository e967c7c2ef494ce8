package response

import (
	"time"

	"invite_studio/internal/domain/entities"
)

type UploadURLResponse struct {
	UploadURL string    `json:"uploadUrl"`
	FileURL   string    `json:"fileUrl"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func FromUploadCredential(c entities.UploadCredential) UploadURLResponse {
	return UploadURLResponse{
		UploadURL: c.UploadURL,
		FileURL:   c.PublicURL,
		Key:       c.Key,
		ExpiresAt: c.ExpiresAt,
	}
}

type UploadResponse struct {
	FileURL string `json:"fileUrl"`
	Key     string `json:"key"`
}

func FromStoredObject(o entities.StoredObject) UploadResponse {
	return UploadResponse{FileURL: o.PublicURL, Key: o.Key}
}
