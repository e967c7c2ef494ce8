package repository

import (
	"context"
	"errors"
	"strings"

	"invite_studio/internal/domain/entities"
	"invite_studio/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// TemplateGormRepository persists the template catalogue.
type TemplateGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ITemplateRepository = (*TemplateGormRepository)(nil)

func NewTemplateGormRepository(db *gorm.DB) *TemplateGormRepository {
	return &TemplateGormRepository{db: db}
}

func (r *TemplateGormRepository) Create(ctx context.Context, t entities.Template) (entities.Template, error) {
	row := toTemplateRow(t)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Template{}, err
	}
	return fromTemplateRow(row), nil
}

func (r *TemplateGormRepository) GetByID(ctx context.Context, id string) (entities.Template, error) {
	var row templateRow
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Template{}, nil
	}
	if err != nil {
		return entities.Template{}, err
	}
	return fromTemplateRow(row), nil
}

func (r *TemplateGormRepository) List(ctx context.Context, filter entities.TemplateFilter) ([]entities.Template, error) {
	q := r.db.WithContext(ctx).Model(&templateRow{})
	if culture := strings.TrimSpace(filter.Culture); culture != "" {
		q = q.Where("LOWER(culture) = ?", strings.ToLower(culture))
	}
	if filter.Type != "" {
		q = q.Where("type = ?", string(filter.Type))
	}

	var rows []templateRow
	if err := q.Order("created_at DESC").Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Template, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromTemplateRow(row))
	}
	return out, nil
}

// IsMediaReferenced reports whether any template tree mentions url.
func (r *TemplateGormRepository) IsMediaReferenced(ctx context.Context, url string) (bool, error) {
	return structureMentions(ctx, r.db, &templateRow{}, url)
}
