package entities

import "time"

// TemplateType selects the kind of invitation a template renders to.
type TemplateType string

const (
	TemplateTypeCard  TemplateType = "card"
	TemplateTypeVideo TemplateType = "video"
)

const DefaultCurrency = "INR"

// Template is a browsable invitation design (culture/country themed) that
// users customize.
//
// Storage model (gorm):
//   - table: templates
//   - structure: JSON column holding the page/field/media tree
type Template struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Culture   string            `json:"culture"`
	Country   string            `json:"country"`
	Type      TemplateType      `json:"type"`
	Price     float64           `json:"price"`
	Currency  string            `json:"currency"`
	Structure TemplateStructure `json:"structure"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// TemplateFilter narrows template listings. Empty fields match everything.
type TemplateFilter struct {
	Culture string
	Type    TemplateType
}
