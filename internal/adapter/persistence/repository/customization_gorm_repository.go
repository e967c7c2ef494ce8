package repository

import (
	"context"
	"errors"
	"time"

	"invite_studio/internal/domain/entities"
	"invite_studio/internal/usecase/interfaces"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CustomizationGormRepository persists customizations with an optimistic
// version counter guarding every write.
type CustomizationGormRepository struct {
	db  *gorm.DB
	now func() time.Time
}

var _ interfaces.ICustomizationRepository = (*CustomizationGormRepository)(nil)

func NewCustomizationGormRepository(db *gorm.DB) *CustomizationGormRepository {
	return &CustomizationGormRepository{db: db, now: time.Now}
}

func (r *CustomizationGormRepository) Create(ctx context.Context, c entities.Customization) (entities.Customization, error) {
	if c.Version == 0 {
		c.Version = 1
	}
	row := toCustomizationRow(c)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Customization{}, err
	}
	return fromCustomizationRow(row), nil
}

func (r *CustomizationGormRepository) GetByID(ctx context.Context, id string) (entities.Customization, error) {
	var row customizationRow
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Customization{}, nil
	}
	if err != nil {
		return entities.Customization{}, err
	}
	return fromCustomizationRow(row), nil
}

func (r *CustomizationGormRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Customization, error) {
	var rows []customizationRow
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.Customization, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromCustomizationRow(row))
	}
	return out, nil
}

func (r *CustomizationGormRepository) UpdateStructure(ctx context.Context, c entities.Customization, expectedVersion int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&customizationRow{}).
		Where("id = ? AND version = ?", c.ID, expectedVersion).
		Updates(map[string]any{
			"structure":  datatypes.NewJSONType(c.Structure),
			"version":    expectedVersion + 1,
			"updated_at": r.now().UTC(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *CustomizationGormRepository) TransitionStatus(ctx context.Context, id string, from, to entities.CustomizationStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&customizationRow{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{
			"status":     string(to),
			"version":    gorm.Expr("version + 1"),
			"updated_at": r.now().UTC(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *CustomizationGormRepository) SetRenderOutputs(ctx context.Context, id, previewURL, finalURL string) error {
	return r.db.WithContext(ctx).
		Model(&customizationRow{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"preview_url": previewURL,
			"final_url":   finalURL,
			"version":     gorm.Expr("version + 1"),
			"updated_at":  r.now().UTC(),
		}).Error
}

// IsMediaReferenced reports whether any customization tree mentions url.
func (r *CustomizationGormRepository) IsMediaReferenced(ctx context.Context, url string) (bool, error) {
	return structureMentions(ctx, r.db, &customizationRow{}, url)
}
