package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"invite_studio/internal/domain"
	"invite_studio/internal/domain/entities"
	"invite_studio/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxSaveMediaAttempts bounds optimistic retries when concurrent media saves
// race on the same customization.
const maxSaveMediaAttempts = 5

// ICustomizationUseCase manages a user's projects: creation from a template,
// media attachment and the status lifecycle.
type ICustomizationUseCase interface {
	Create(ctx context.Context, userID, templateID string) (entities.Customization, error)
	Get(ctx context.Context, userID, id string) (entities.Customization, error)
	List(ctx context.Context, userID string) ([]entities.Customization, error)
	SaveMedia(ctx context.Context, userID, id string, ref entities.MediaRef) (entities.Customization, error)
	AdvanceStatus(ctx context.Context, id string, target entities.CustomizationStatus) (entities.Customization, error)
	RequestPreview(ctx context.Context, userID, id string) (entities.Customization, error)
}

type CustomizationUseCase struct {
	repo      interfaces.ICustomizationRepository
	templates interfaces.ITemplateRepository
	renderer  interfaces.IRenderer
	storage   interfaces.IObjectStorage
	tracker   interfaces.IUploadTracker
	log       *zap.Logger
	now       func() time.Time
}

var _ ICustomizationUseCase = (*CustomizationUseCase)(nil)

func NewCustomizationUseCase(
	repo interfaces.ICustomizationRepository,
	templates interfaces.ITemplateRepository,
	renderer interfaces.IRenderer,
	storage interfaces.IObjectStorage,
	tracker interfaces.IUploadTracker,
	log *zap.Logger,
) *CustomizationUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &CustomizationUseCase{
		repo:      repo,
		templates: templates,
		renderer:  renderer,
		storage:   storage,
		tracker:   tracker,
		log:       log,
		now:       time.Now,
	}
}

func (u *CustomizationUseCase) Create(ctx context.Context, userID, templateID string) (entities.Customization, error) {
	if strings.TrimSpace(userID) == "" {
		return entities.Customization{}, domain.ErrUnauthenticated
	}
	templateID = strings.TrimSpace(templateID)
	if templateID == "" {
		return entities.Customization{}, fmt.Errorf("%w: templateId is required", domain.ErrValidation)
	}

	tpl, err := u.templates.GetByID(ctx, templateID)
	if err != nil {
		u.log.Error("[customization][usecase] load template failed", zap.String("template_id", templateID), zap.Error(err))
		return entities.Customization{}, err
	}
	if tpl.ID == "" {
		return entities.Customization{}, domain.ErrTemplateNotFound
	}

	now := u.now().UTC()
	c := entities.Customization{
		ID:         uuid.NewString(),
		UserID:     userID,
		TemplateID: tpl.ID,
		Structure:  tpl.Structure.Clone(),
		Amount:     tpl.Price,
		Currency:   tpl.Currency,
		Status:     entities.CustomizationStatusDraft,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if c.Currency == "" {
		c.Currency = entities.DefaultCurrency
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		u.log.Error("[customization][usecase] create failed", zap.String("user_id", userID), zap.String("template_id", templateID), zap.Error(err))
		return entities.Customization{}, err
	}
	u.log.Info("[customization][usecase] create success", zap.String("customization_id", created.ID), zap.String("template_id", templateID))
	return created, nil
}

func (u *CustomizationUseCase) Get(ctx context.Context, userID, id string) (entities.Customization, error) {
	if strings.TrimSpace(userID) == "" {
		return entities.Customization{}, domain.ErrUnauthenticated
	}
	return u.loadOwned(ctx, userID, id)
}

func (u *CustomizationUseCase) List(ctx context.Context, userID string) ([]entities.Customization, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.ErrUnauthenticated
	}
	return u.repo.ListByUserID(ctx, userID)
}

// SaveMedia attaches ref to its slot. Writes are guarded by the version
// counter; on conflict the customization is reloaded and the change replayed
// on the fresh tree.
func (u *CustomizationUseCase) SaveMedia(ctx context.Context, userID, id string, ref entities.MediaRef) (entities.Customization, error) {
	if strings.TrimSpace(userID) == "" {
		return entities.Customization{}, domain.ErrUnauthenticated
	}
	if !ref.Type.Valid() {
		return entities.Customization{}, fmt.Errorf("%w: type must be audio or image", domain.ErrValidation)
	}
	ref.URL = strings.TrimSpace(ref.URL)
	if err := validateMediaURL(ref.URL); err != nil {
		return entities.Customization{}, err
	}
	u.log.Info("[customization][usecase] save media start", zap.String("customization_id", id), zap.String("type", string(ref.Type)), zap.String("field_id", ref.FieldID), zap.String("page_id", ref.PageID))

	for attempt := 1; attempt <= maxSaveMediaAttempts; attempt++ {
		current, err := u.loadOwned(ctx, userID, id)
		if err != nil {
			return entities.Customization{}, err
		}

		next := current
		next.Structure = current.Structure.Clone()
		if err := next.Structure.SetMedia(ref); err != nil {
			return entities.Customization{}, err
		}

		ok, err := u.repo.UpdateStructure(ctx, next, current.Version)
		if err != nil {
			u.log.Error("[customization][usecase] save media failed", zap.String("customization_id", id), zap.Error(err))
			return entities.Customization{}, err
		}
		if ok {
			next.Version = current.Version + 1
			next.UpdatedAt = u.now().UTC()
			u.confirmUpload(ctx, ref.URL)
			u.log.Info("[customization][usecase] save media success", zap.String("customization_id", id), zap.Int64("version", next.Version), zap.Int("attempt", attempt))
			return next, nil
		}
		u.log.Warn("[customization][usecase] save media version conflict", zap.String("customization_id", id), zap.Int64("version", current.Version), zap.Int("attempt", attempt))
	}
	return entities.Customization{}, fmt.Errorf("%w: customization %s", domain.ErrConcurrentUpdate, id)
}

// AdvanceStatus moves a customization to the immediate successor of its
// current status. It is not scoped to a user; callers check ownership.
func (u *CustomizationUseCase) AdvanceStatus(ctx context.Context, id string, target entities.CustomizationStatus) (entities.Customization, error) {
	if !target.Valid() {
		return entities.Customization{}, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, target)
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customization{}, err
	}
	if c.ID == "" {
		return entities.Customization{}, domain.ErrCustomizationNotFound
	}
	return advance(ctx, u.repo, u.log, c, target, u.now)
}

// RequestPreview renders placeholder outputs and moves a draft to
// preview_requested. Asking again returns the stored outputs.
func (u *CustomizationUseCase) RequestPreview(ctx context.Context, userID, id string) (entities.Customization, error) {
	if strings.TrimSpace(userID) == "" {
		return entities.Customization{}, domain.ErrUnauthenticated
	}
	c, err := u.loadOwned(ctx, userID, id)
	if err != nil {
		return entities.Customization{}, err
	}
	if c.Status != entities.CustomizationStatusDraft {
		if c.PreviewURL != "" {
			return c, nil
		}
		return entities.Customization{}, fmt.Errorf("%w: preview cannot be requested in status %s", domain.ErrInvalidTransition, c.Status)
	}

	tpl, err := u.templates.GetByID(ctx, c.TemplateID)
	if err != nil {
		return entities.Customization{}, err
	}
	if tpl.ID == "" {
		return entities.Customization{}, domain.ErrTemplateNotFound
	}

	out, err := u.renderer.Render(ctx, c.ID, tpl.Type)
	if err != nil {
		u.log.Error("[customization][usecase] render failed", zap.String("customization_id", c.ID), zap.Error(err))
		return entities.Customization{}, err
	}
	if err := u.repo.SetRenderOutputs(ctx, c.ID, out.PreviewURL, out.FinalURL); err != nil {
		u.log.Error("[customization][usecase] store render outputs failed", zap.String("customization_id", c.ID), zap.Error(err))
		return entities.Customization{}, err
	}
	c.PreviewURL = out.PreviewURL
	c.FinalURL = out.FinalURL
	c.Version++

	advanced, err := advance(ctx, u.repo, u.log, c, entities.CustomizationStatusPreviewRequested, u.now)
	if err != nil {
		return entities.Customization{}, err
	}
	u.log.Info("[customization][usecase] preview requested", zap.String("customization_id", c.ID))
	return advanced, nil
}

func (u *CustomizationUseCase) loadOwned(ctx context.Context, userID, id string) (entities.Customization, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customization{}, fmt.Errorf("%w: customization id is required", domain.ErrValidation)
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		u.log.Error("[customization][usecase] load failed", zap.String("customization_id", id), zap.Error(err))
		return entities.Customization{}, err
	}
	if !c.OwnedBy(userID) {
		return entities.Customization{}, domain.ErrCustomizationNotFound
	}
	return c, nil
}

// confirmUpload clears the storage key from the pending set once the tree
// references it.
func (u *CustomizationUseCase) confirmUpload(ctx context.Context, mediaURL string) {
	confirmUploads(ctx, u.storage, u.tracker, u.log, mediaURL)
}

// confirmUploads removes the storage keys behind urls from the pending set.
// URLs outside the bucket are ignored; tracker failures are only logged.
func confirmUploads(
	ctx context.Context,
	storage interfaces.IObjectStorage,
	tracker interfaces.IUploadTracker,
	log *zap.Logger,
	urls ...string,
) {
	if storage == nil || tracker == nil {
		return
	}
	for _, mediaURL := range urls {
		key, ok := storage.KeyFromURL(mediaURL)
		if !ok {
			continue
		}
		if err := tracker.Confirm(ctx, key); err != nil {
			log.Warn("[upload][usecase] confirm upload failed", zap.String("key", key), zap.Error(err))
		}
	}
}

// advance performs a compare-and-set transition from c.Status to target.
func advance(
	ctx context.Context,
	repo interfaces.ICustomizationRepository,
	log *zap.Logger,
	c entities.Customization,
	target entities.CustomizationStatus,
	now func() time.Time,
) (entities.Customization, error) {
	if !c.Status.CanAdvanceTo(target) {
		return entities.Customization{}, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, c.Status, target)
	}
	ok, err := repo.TransitionStatus(ctx, c.ID, c.Status, target)
	if err != nil {
		log.Error("[customization][usecase] transition failed", zap.String("customization_id", c.ID), zap.Error(err))
		return entities.Customization{}, err
	}
	if !ok {
		log.Warn("[customization][usecase] transition lost race", zap.String("customization_id", c.ID), zap.String("from", string(c.Status)), zap.String("to", string(target)))
		return entities.Customization{}, fmt.Errorf("%w: status changed concurrently", domain.ErrInvalidTransition)
	}
	log.Info("[customization][usecase] status advanced", zap.String("customization_id", c.ID), zap.String("from", string(c.Status)), zap.String("to", string(target)))
	c.Status = target
	c.Version++
	c.UpdatedAt = now().UTC()
	return c, nil
}

func validateMediaURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: url is required", domain.ErrValidation)
	}
	parsed, err := url.Parse(raw)
	if err != nil || (parsed.Scheme != "https" && parsed.Scheme != "http") || parsed.Host == "" {
		return fmt.Errorf("%w: url must be an absolute http(s) URL", domain.ErrValidation)
	}
	return nil
}
