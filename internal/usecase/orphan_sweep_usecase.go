package usecase

import (
	"context"
	"time"

	"invite_studio/internal/infrastructure/metrics"
	"invite_studio/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	DefaultOrphanMaxAge = 24 * time.Hour
	orphanSweepBatch    = 100
)

// SweepResult counts how the pending keys of one sweep were resolved.
// Failed keys stay pending and are retried on the next run.
type SweepResult struct {
	Deleted int `json:"deleted"`
	Kept    int `json:"kept"`
	Failed  int `json:"failed"`
}

type IOrphanSweepUseCase interface {
	Sweep(ctx context.Context, now time.Time) (SweepResult, error)
	Run(ctx context.Context, interval time.Duration)
}

// OrphanSweepUseCase deletes uploaded objects that were never attached to a
// customization or a template within maxAge of being issued.
type OrphanSweepUseCase struct {
	tracker        interfaces.IUploadTracker
	storage        interfaces.IObjectStorage
	customizations interfaces.ICustomizationRepository
	templates      interfaces.ITemplateRepository
	maxAge         time.Duration
	batch          int
	metrics        *metrics.Metrics
	log            *zap.Logger
}

var _ IOrphanSweepUseCase = (*OrphanSweepUseCase)(nil)

func NewOrphanSweepUseCase(
	tracker interfaces.IUploadTracker,
	storage interfaces.IObjectStorage,
	customizations interfaces.ICustomizationRepository,
	templates interfaces.ITemplateRepository,
	maxAge time.Duration,
	m *metrics.Metrics,
	log *zap.Logger,
) *OrphanSweepUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	if maxAge <= 0 {
		maxAge = DefaultOrphanMaxAge
	}
	return &OrphanSweepUseCase{
		tracker:        tracker,
		storage:        storage,
		customizations: customizations,
		templates:      templates,
		maxAge:         maxAge,
		batch:          orphanSweepBatch,
		metrics:        m,
		log:            log,
	}
}

// Sweep resolves every key pending since before now-maxAge. A key still
// referenced by some customization or template is kept in storage and
// forgotten; an unreferenced one is deleted first.
//
// Keys that fail stay pending and, being the oldest, head every later Stale
// listing. Each round therefore asks for batch keys beyond the ones that
// already failed in this sweep so newer orphans are still reached.
func (u *OrphanSweepUseCase) Sweep(ctx context.Context, now time.Time) (SweepResult, error) {
	var res SweepResult
	cutoff := now.Add(-u.maxAge)
	failed := map[string]bool{}
	u.log.Info("[upload][sweep] start", zap.Time("cutoff", cutoff))

	for {
		limit := u.batch + len(failed)
		keys, err := u.tracker.Stale(ctx, cutoff, limit)
		if err != nil {
			u.log.Error("[upload][sweep] list stale failed", zap.Error(err))
			return res, err
		}

		fresh := 0
		resolved := make([]string, 0, len(keys))
		for _, key := range keys {
			if failed[key] {
				continue
			}
			fresh++
			if err := ctx.Err(); err != nil {
				return res, err
			}
			referenced, err := u.referenced(ctx, u.storage.PublicURL(key))
			if err != nil {
				res.Failed++
				failed[key] = true
				u.log.Warn("[upload][sweep] reference check failed", zap.String("key", key), zap.Error(err))
				continue
			}
			if referenced {
				res.Kept++
				resolved = append(resolved, key)
				continue
			}
			if err := u.storage.DeleteObject(ctx, key); err != nil {
				res.Failed++
				failed[key] = true
				u.log.Warn("[upload][sweep] delete failed", zap.String("key", key), zap.Error(err))
				continue
			}
			res.Deleted++
			resolved = append(resolved, key)
		}

		if len(resolved) > 0 {
			if err := u.tracker.Forget(ctx, resolved...); err != nil {
				u.log.Error("[upload][sweep] forget failed", zap.Int("keys", len(resolved)), zap.Error(err))
				return res, err
			}
		}
		// Every round either resolves or fails each fresh key, so this ends.
		if len(keys) < limit || fresh == 0 {
			break
		}
	}

	u.metrics.OrphanSwept("deleted", res.Deleted)
	u.metrics.OrphanSwept("kept", res.Kept)
	u.metrics.OrphanSwept("failed", res.Failed)
	u.log.Info("[upload][sweep] done", zap.Int("deleted", res.Deleted), zap.Int("kept", res.Kept), zap.Int("failed", res.Failed))
	return res, nil
}

// referenced checks customizations first, then the template catalogue.
func (u *OrphanSweepUseCase) referenced(ctx context.Context, url string) (bool, error) {
	ok, err := u.customizations.IsMediaReferenced(ctx, url)
	if err != nil || ok {
		return ok, err
	}
	if u.templates == nil {
		return false, nil
	}
	return u.templates.IsMediaReferenced(ctx, url)
}

// Run sweeps every interval until ctx is cancelled.
func (u *OrphanSweepUseCase) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			u.log.Info("[upload][sweep] stopped")
			return
		case t := <-ticker.C:
			if _, err := u.Sweep(ctx, t); err != nil && ctx.Err() == nil {
				u.log.Error("[upload][sweep] run failed", zap.Error(err))
			}
		}
	}
}
