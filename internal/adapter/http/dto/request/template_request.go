package request

import (
	"invite_studio/internal/domain/entities"
)

type TemplateCreateRequest struct {
	Name      string                     `json:"name" binding:"required"`
	Culture   string                     `json:"culture"`
	Country   string                     `json:"country"`
	Type      string                     `json:"type" binding:"required"`
	Price     float64                    `json:"price"`
	Currency  string                     `json:"currency"`
	Structure entities.TemplateStructure `json:"structure"`
}

func (r TemplateCreateRequest) ToEntity() entities.Template {
	return entities.Template{
		Name:      r.Name,
		Culture:   r.Culture,
		Country:   r.Country,
		Type:      entities.TemplateType(r.Type),
		Price:     r.Price,
		Currency:  r.Currency,
		Structure: r.Structure,
	}
}

// TemplateListQuery holds the optional listing filters.
type TemplateListQuery struct {
	Culture string `form:"culture"`
	Type    string `form:"type"`
}

func (q TemplateListQuery) ToFilter() entities.TemplateFilter {
	return entities.TemplateFilter{Culture: q.Culture, Type: entities.TemplateType(q.Type)}
}
