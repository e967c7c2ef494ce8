package response

import (
	"time"

	"invite_studio/internal/domain/entities"
)

type TemplateResponse struct {
	ID        string                     `json:"id"`
	Name      string                     `json:"name"`
	Culture   string                     `json:"culture"`
	Country   string                     `json:"country"`
	Type      string                     `json:"type"`
	Price     float64                    `json:"price"`
	Currency  string                     `json:"currency"`
	Structure entities.TemplateStructure `json:"structure"`
	CreatedAt time.Time                  `json:"createdAt"`
}

func FromTemplate(t entities.Template) TemplateResponse {
	return TemplateResponse{
		ID:        t.ID,
		Name:      t.Name,
		Culture:   t.Culture,
		Country:   t.Country,
		Type:      string(t.Type),
		Price:     t.Price,
		Currency:  t.Currency,
		Structure: t.Structure,
		CreatedAt: t.CreatedAt,
	}
}

func FromTemplates(ts []entities.Template) []TemplateResponse {
	out := make([]TemplateResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTemplate(t))
	}
	return out
}
