package repository

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"invite_studio/internal/domain/entities"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type templateRow struct {
	ID       string  `gorm:"primaryKey;size:36"`
	Name     string  `gorm:"not null"`
	Culture  string  `gorm:"size:64;index"`
	Country  string  `gorm:"size:64"`
	Type     string  `gorm:"size:16;not null;index"`
	Price    float64 `gorm:"not null"`
	Currency string  `gorm:"size:3;not null"`

	Structure datatypes.JSONType[entities.TemplateStructure] `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (templateRow) TableName() string { return "templates" }

type customizationRow struct {
	ID         string  `gorm:"primaryKey;size:36"`
	UserID     string  `gorm:"size:128;not null;index"`
	TemplateID string  `gorm:"size:36;not null;index"`
	Amount     float64 `gorm:"not null"`
	Currency   string  `gorm:"size:3;not null"`
	Status     string  `gorm:"size:32;not null;index"`
	PreviewURL string
	FinalURL   string
	Version    int64 `gorm:"not null;default:1"`

	Structure datatypes.JSONType[entities.TemplateStructure] `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (customizationRow) TableName() string { return "customizations" }

// AutoMigrate creates or updates the relational tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&templateRow{}, &customizationRow{})
}

func toTemplateRow(t entities.Template) templateRow {
	return templateRow{
		ID:        t.ID,
		Name:      t.Name,
		Culture:   t.Culture,
		Country:   t.Country,
		Type:      string(t.Type),
		Price:     t.Price,
		Currency:  t.Currency,
		Structure: datatypes.NewJSONType(t.Structure),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func fromTemplateRow(r templateRow) entities.Template {
	return entities.Template{
		ID:        r.ID,
		Name:      r.Name,
		Culture:   r.Culture,
		Country:   r.Country,
		Type:      entities.TemplateType(r.Type),
		Price:     r.Price,
		Currency:  r.Currency,
		Structure: r.Structure.Data(),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toCustomizationRow(c entities.Customization) customizationRow {
	return customizationRow{
		ID:         c.ID,
		UserID:     c.UserID,
		TemplateID: c.TemplateID,
		Structure:  datatypes.NewJSONType(c.Structure),
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

func fromCustomizationRow(r customizationRow) entities.Customization {
	return entities.Customization{
		ID:         r.ID,
		UserID:     r.UserID,
		TemplateID: r.TemplateID,
		Structure:  r.Structure.Data(),
		Amount:     r.Amount,
		Currency:   r.Currency,
		Status:     entities.CustomizationStatus(r.Status),
		PreviewURL: r.PreviewURL,
		FinalURL:   r.FinalURL,
		Version:    r.Version,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// structureMentions counts rows of model whose structure JSON contains url,
// raw or JSON-escaped. Matching the stored text errs towards true.
func structureMentions(ctx context.Context, db *gorm.DB, model any, url string) (bool, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return false, nil
	}
	encoded, err := json.Marshal(url)
	if err != nil {
		return false, err
	}
	escaped := strings.Trim(string(encoded), `"`)

	var n int64
	err = db.WithContext(ctx).
		Model(model).
		Where("CAST(structure AS TEXT) LIKE ? OR CAST(structure AS TEXT) LIKE ?", "%"+url+"%", "%"+escaped+"%").
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
