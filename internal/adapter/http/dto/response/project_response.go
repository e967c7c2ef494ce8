package response

import (
	"time"

	"invite_studio/internal/domain/entities"
)

type ProjectResponse struct {
	ID         string                     `json:"id"`
	TemplateID string                     `json:"templateId"`
	Structure  entities.TemplateStructure `json:"structure"`
	Amount     float64                    `json:"amount"`
	Currency   string                     `json:"currency"`
	Status     string                     `json:"status"`
	PreviewURL string                     `json:"previewUrl,omitempty"`
	FinalURL   string                     `json:"finalUrl,omitempty"`
	Version    int64                      `json:"version"`
	CreatedAt  time.Time                  `json:"createdAt"`
	UpdatedAt  time.Time                  `json:"updatedAt"`
}

func FromCustomization(c entities.Customization) ProjectResponse {
	return ProjectResponse{
		ID:         c.ID,
		TemplateID: c.TemplateID,
		Structure:  c.Structure,
		Amount:     c.Amount,
		Currency:   c.Currency,
		Status:     string(c.Status),
		PreviewURL: c.PreviewURL,
		FinalURL:   c.FinalURL,
		Version:    c.Version,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func FromCustomizations(cs []entities.Customization) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCustomization(c))
	}
	return out
}
