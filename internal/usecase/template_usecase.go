package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"invite_studio/internal/domain"
	"invite_studio/internal/domain/entities"
	"invite_studio/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ITemplateUseCase interface {
	Create(ctx context.Context, t entities.Template) (entities.Template, error)
	GetByID(ctx context.Context, id string) (entities.Template, error)
	List(ctx context.Context, filter entities.TemplateFilter) ([]entities.Template, error)
}

type TemplateUseCase struct {
	repo    interfaces.ITemplateRepository
	storage interfaces.IObjectStorage
	tracker interfaces.IUploadTracker
	log     *zap.Logger
	now     func() time.Time
}

var _ ITemplateUseCase = (*TemplateUseCase)(nil)

func NewTemplateUseCase(
	repo interfaces.ITemplateRepository,
	storage interfaces.IObjectStorage,
	tracker interfaces.IUploadTracker,
	log *zap.Logger,
) *TemplateUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &TemplateUseCase{repo: repo, storage: storage, tracker: tracker, log: log, now: time.Now}
}

// Create validates and stores a template. Uploaded media already placed in the
// tree is confirmed so the orphan sweep leaves it alone.

func (u *TemplateUseCase) Create(ctx context.Context, t entities.Template) (entities.Template, error) {
	t.Name = strings.TrimSpace(t.Name)
	t.Culture = strings.TrimSpace(t.Culture)
	t.Country = strings.TrimSpace(t.Country)
	t.Type = entities.TemplateType(strings.ToLower(strings.TrimSpace(string(t.Type))))
	t.Currency = strings.ToUpper(strings.TrimSpace(t.Currency))
	if t.Currency == "" {
		t.Currency = entities.DefaultCurrency
	}

	if t.Name == "" {
		return entities.Template{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if t.Type != entities.TemplateTypeCard && t.Type != entities.TemplateTypeVideo {
		return entities.Template{}, fmt.Errorf("%w: type must be card or video", domain.ErrValidation)
	}
	if t.Price < 0 || math.IsNaN(t.Price) || math.IsInf(t.Price, 0) {
		return entities.Template{}, fmt.Errorf("%w: price must be a non-negative number", domain.ErrValidation)
	}
	if len(t.Currency) != 3 {
		return entities.Template{}, fmt.Errorf("%w: currency must be an ISO 4217 code", domain.ErrValidation)
	}
	if err := validateStructure(t.Structure); err != nil {
		return entities.Template{}, err
	}

	now := u.now().UTC()
	t.ID = uuid.NewString()
	t.CreatedAt = now
	t.UpdatedAt = now

	created, err := u.repo.Create(ctx, t)
	if err != nil {
		u.log.Error("[template][usecase] create failed", zap.String("name", t.Name), zap.Error(err))
		return entities.Template{}, err
	}
	confirmUploads(ctx, u.storage, u.tracker, u.log, created.Structure.MediaURLs()...)
	u.log.Info("[template][usecase] create success", zap.String("template_id", created.ID), zap.String("type", string(created.Type)))
	return created, nil
}

func (u *TemplateUseCase) GetByID(ctx context.Context, id string) (entities.Template, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Template{}, fmt.Errorf("%w: template id is required", domain.ErrValidation)
	}
	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Template{}, err
	}
	if t.ID == "" {
		return entities.Template{}, domain.ErrTemplateNotFound
	}
	return t, nil
}

func (u *TemplateUseCase) List(ctx context.Context, filter entities.TemplateFilter) ([]entities.Template, error) {
	filter.Type = entities.TemplateType(strings.ToLower(strings.TrimSpace(string(filter.Type))))
	return u.repo.List(ctx, filter)
}

// validateStructure rejects trees whose slots could not be addressed
// unambiguously.
func validateStructure(s entities.TemplateStructure) error {
	pages := make(map[string]struct{}, len(s.Pages))
	for _, p := range s.Pages {
		if strings.TrimSpace(p.ID) == "" {
			return fmt.Errorf("%w: page id is required", domain.ErrValidation)
		}
		if _, dup := pages[p.ID]; dup {
			return fmt.Errorf("%w: duplicate page id %q", domain.ErrValidation, p.ID)
		}
		pages[p.ID] = struct{}{}

		fields := make(map[string]struct{}, len(p.Fields))
		for _, f := range p.Fields {
			if strings.TrimSpace(f.ID) == "" {
				return fmt.Errorf("%w: field id is required on page %q", domain.ErrValidation, p.ID)
			}
			if _, dup := fields[f.ID]; dup {
				return fmt.Errorf("%w: duplicate field id %q on page %q", domain.ErrValidation, f.ID, p.ID)
			}
			fields[f.ID] = struct{}{}
			switch f.Kind {
			case entities.FieldKindText, entities.FieldKindImage, entities.FieldKindAudio:
			default:
				return fmt.Errorf("%w: field %q has unknown kind %q", domain.ErrValidation, f.ID, f.Kind)
			}
		}
	}
	return nil
}
