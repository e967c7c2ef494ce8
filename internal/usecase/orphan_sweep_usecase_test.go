package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"invite_studio/internal/adapter/persistence/repository"
	"invite_studio/internal/domain/entities"
	"invite_studio/internal/infrastructure/cache"
	mock_interfaces "invite_studio/internal/usecase/interfaces/mocks"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testCDN = "https://cdn.example/"

type sweepMocks struct {
	tracker        *mock_interfaces.MockIUploadTracker
	storage        *mock_interfaces.MockIObjectStorage
	customizations *mock_interfaces.MockICustomizationRepository
	templates      *mock_interfaces.MockITemplateRepository
}

func newOrphanSweep(t *testing.T, maxAge time.Duration) (*OrphanSweepUseCase, sweepMocks) {
	ctrl := gomock.NewController(t)
	m := sweepMocks{
		tracker:        mock_interfaces.NewMockIUploadTracker(ctrl),
		storage:        mock_interfaces.NewMockIObjectStorage(ctrl),
		customizations: mock_interfaces.NewMockICustomizationRepository(ctrl),
		templates:      mock_interfaces.NewMockITemplateRepository(ctrl),
	}
	m.storage.EXPECT().PublicURL(gomock.Any()).DoAndReturn(func(key string) string {
		return testCDN + key
	}).AnyTimes()
	return NewOrphanSweepUseCase(m.tracker, m.storage, m.customizations, m.templates, maxAge, nil, nil), m
}

func TestOrphanSweepUseCase_Sweep(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	t.Run("deletes unreferenced keys and spares referenced ones", func(t *testing.T) {
		uc, m := newOrphanSweep(t, time.Hour)
		m.tracker.EXPECT().Stale(gomock.Any(), now.Add(-time.Hour), orphanSweepBatch).
			Return([]string{"upload/a.png", "upload/b.png", "upload/c.png"}, nil)
		m.customizations.EXPECT().IsMediaReferenced(gomock.Any(), testCDN+"upload/a.png").Return(false, nil)
		m.customizations.EXPECT().IsMediaReferenced(gomock.Any(), testCDN+"upload/b.png").Return(true, nil)
		m.customizations.EXPECT().IsMediaReferenced(gomock.Any(), testCDN+"upload/c.png").Return(false, nil)
		m.templates.EXPECT().IsMediaReferenced(gomock.Any(), testCDN+"upload/a.png").Return(false, nil)
		m.templates.EXPECT().IsMediaReferenced(gomock.Any(), testCDN+"upload/c.png").Return(false, nil)
		m.storage.EXPECT().DeleteObject(gomock.Any(), "upload/a.png").Return(nil)
		m.storage.EXPECT().DeleteObject(gomock.Any(), "upload/c.png").Return(errors.New("s3 down"))
		m.tracker.EXPECT().Forget(gomock.Any(), "upload/a.png", "upload/b.png").Return(nil)

		res, err := uc.Sweep(context.Background(), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res != (SweepResult{Deleted: 1, Kept: 1, Failed: 1}) {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("template reference keeps the object", func(t *testing.T) {
		uc, m := newOrphanSweep(t, time.Hour)
		m.tracker.EXPECT().Stale(gomock.Any(), gomock.Any(), orphanSweepBatch).Return([]string{"upload/images/bg.png"}, nil)
		m.customizations.EXPECT().IsMediaReferenced(gomock.Any(), testCDN+"upload/images/bg.png").Return(false, nil)
		m.templates.EXPECT().IsMediaReferenced(gomock.Any(), testCDN+"upload/images/bg.png").Return(true, nil)
		m.tracker.EXPECT().Forget(gomock.Any(), "upload/images/bg.png").Return(nil)

		res, err := uc.Sweep(context.Background(), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res != (SweepResult{Kept: 1}) {
			t.Fatalf("expected the object to be kept, got %+v", res)
		}
	})

	t.Run("template lookup failure counts as failed", func(t *testing.T) {
		uc, m := newOrphanSweep(t, time.Hour)
		m.tracker.EXPECT().Stale(gomock.Any(), gomock.Any(), orphanSweepBatch).Return([]string{"k1"}, nil)
		m.customizations.EXPECT().IsMediaReferenced(gomock.Any(), gomock.Any()).Return(false, nil)
		m.templates.EXPECT().IsMediaReferenced(gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))

		res, err := uc.Sweep(context.Background(), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res != (SweepResult{Failed: 1}) {
			t.Fatalf("expected 1 failed, got %+v", res)
		}
	})

	t.Run("nothing pending", func(t *testing.T) {
		uc, m := newOrphanSweep(t, 0)
		m.tracker.EXPECT().Stale(gomock.Any(), now.Add(-DefaultOrphanMaxAge), orphanSweepBatch).Return(nil, nil)

		res, err := uc.Sweep(context.Background(), now)
		if err != nil || res != (SweepResult{}) {
			t.Fatalf("expected empty result, got %+v, %v", res, err)
		}
	})

	t.Run("tracker failure", func(t *testing.T) {
		uc, m := newOrphanSweep(t, time.Hour)
		m.tracker.EXPECT().Stale(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))

		if _, err := uc.Sweep(context.Background(), now); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("drains full batches", func(t *testing.T) {
		uc, m := newOrphanSweep(t, time.Hour)
		uc.batch = 2
		gomock.InOrder(
			m.tracker.EXPECT().Stale(gomock.Any(), gomock.Any(), 2).Return([]string{"k1", "k2"}, nil),
			m.tracker.EXPECT().Forget(gomock.Any(), "k1", "k2").Return(nil),
			m.tracker.EXPECT().Stale(gomock.Any(), gomock.Any(), 2).Return([]string{"k3"}, nil),
			m.tracker.EXPECT().Forget(gomock.Any(), "k3").Return(nil),
		)
		m.customizations.EXPECT().IsMediaReferenced(gomock.Any(), gomock.Any()).Return(false, nil).Times(3)
		m.templates.EXPECT().IsMediaReferenced(gomock.Any(), gomock.Any()).Return(false, nil).Times(3)
		m.storage.EXPECT().DeleteObject(gomock.Any(), gomock.Any()).Return(nil).Times(3)

		res, err := uc.Sweep(context.Background(), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Deleted != 3 {
			t.Fatalf("expected 3 deleted, got %+v", res)
		}
	})

	t.Run("failed keys are skipped without stopping", func(t *testing.T) {
		uc, m := newOrphanSweep(t, time.Hour)
		uc.batch = 1
		gomock.InOrder(
			m.tracker.EXPECT().Stale(gomock.Any(), gomock.Any(), 1).Return([]string{"k1"}, nil),
			m.tracker.EXPECT().Stale(gomock.Any(), gomock.Any(), 2).Return([]string{"k1"}, nil),
		)
		m.customizations.EXPECT().IsMediaReferenced(gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))

		res, err := uc.Sweep(context.Background(), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Failed != 1 {
			t.Fatalf("expected 1 failed, got %+v", res)
		}
	})
}

func TestOrphanSweepUseCase_FailingKeysDoNotBlockNewerOrphans(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock_interfaces.NewMockIObjectStorage(ctrl)
	customizations := mock_interfaces.NewMockICustomizationRepository(ctrl)
	tracker := cache.NewMemoryTracker()
	ctx := context.Background()
	issued := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	uc := NewOrphanSweepUseCase(tracker, storage, customizations, nil, time.Hour, nil, nil)
	uc.batch = 3

	for i := 0; i < 3; i++ {
		if err := tracker.Track(ctx, fmt.Sprintf("stuck/%d.png", i), issued.Add(time.Duration(i)*time.Second)); err != nil {
			t.Fatalf("track: %v", err)
		}
	}
	if err := tracker.Track(ctx, "upload/images/new.png", issued.Add(time.Minute)); err != nil {
		t.Fatalf("track: %v", err)
	}

	storage.EXPECT().PublicURL(gomock.Any()).DoAndReturn(func(key string) string { return testCDN + key }).AnyTimes()
	customizations.EXPECT().IsMediaReferenced(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
	storage.EXPECT().DeleteObject(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, key string) error {
		if strings.HasPrefix(key, "stuck/") {
			return errors.New("access denied")
		}
		return nil
	}).AnyTimes()

	for run := 0; run < 2; run++ {
		res, err := uc.Sweep(ctx, issued.Add(3*time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Failed != 3 {
			t.Fatalf("run %d: expected 3 failed, got %+v", run, res)
		}
	}
	if tracker.Len() != 3 {
		t.Fatalf("expected only the stuck keys pending, got %d", tracker.Len())
	}
	left, _ := tracker.Stale(ctx, issued.Add(3*time.Hour), 10)
	for _, key := range left {
		if key == "upload/images/new.png" {
			t.Fatalf("expected the newer orphan to be swept, still pending: %v", left)
		}
	}
}

func openSweepDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := repository.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestOrphanSweepUseCase_TemplateMediaSurvives(t *testing.T) {
	db := openSweepDB(t)
	templates := repository.NewTemplateGormRepository(db)
	customizations := repository.NewCustomizationGormRepository(db)
	tracker := cache.NewMemoryTracker()
	ctx := context.Background()
	issued := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	storage := mock_interfaces.NewMockIObjectStorage(ctrl)
	storage.EXPECT().IssueUploadCredential(gomock.Any(), "upload/images", "bg.png", "image/png").Return(entities.UploadCredential{
		Key:       "upload/images/4a01.png",
		UploadURL: "https://bucket.example/upload/images/4a01.png?sig",
		PublicURL: testCDN + "upload/images/4a01.png",
	}, nil)
	storage.EXPECT().PublicURL(gomock.Any()).DoAndReturn(func(key string) string { return testCDN + key }).AnyTimes()
	storage.EXPECT().KeyFromURL(gomock.Any()).DoAndReturn(func(url string) (string, bool) {
		if !strings.HasPrefix(url, testCDN) {
			return "", false
		}
		return strings.TrimPrefix(url, testCDN), true
	}).AnyTimes()
	storage.EXPECT().DeleteObject(gomock.Any(), gomock.Any()).Times(0)

	uploads := NewUploadUseCase(storage, tracker, nil, nil)
	uploads.now = func() time.Time { return issued }
	cred, err := uploads.CreateUploadURL(ctx, "admin-1", "upload/images", "bg.png", "image/png")
	if err != nil {
		t.Fatalf("issue credential: %v", err)
	}

	tpl := validTemplate()
	tpl.Structure.Pages[0].Fields[1].Media = &entities.MediaRef{Type: entities.MediaTypeImage, URL: cred.PublicURL}
	if _, err := NewTemplateUseCase(templates, storage, tracker, nil).Create(ctx, tpl); err != nil {
		t.Fatalf("create template: %v", err)
	}
	if tracker.Len() != 0 {
		t.Fatalf("expected template media to be confirmed, %d keys pending", tracker.Len())
	}

	// Still pending, e.g. confirmation was lost: the template reference must protect it.
	if err := tracker.Track(ctx, cred.Key, issued); err != nil {
		t.Fatalf("track: %v", err)
	}
	sweep := NewOrphanSweepUseCase(tracker, storage, customizations, templates, time.Hour, nil, nil)
	res, err := sweep.Sweep(ctx, issued.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if res != (SweepResult{Kept: 1}) {
		t.Fatalf("expected the template media to be kept, got %+v", res)
	}
}

func TestOrphanSweepUseCase_Run(t *testing.T) {
	t.Run("zero interval returns immediately", func(t *testing.T) {
		uc, _ := newOrphanSweep(t, time.Hour)
		uc.Run(context.Background(), 0)
	})

	t.Run("stops on cancel", func(t *testing.T) {
		uc, m := newOrphanSweep(t, time.Hour)
		m.tracker.EXPECT().Stale(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			uc.Run(ctx, 5*time.Millisecond)
			close(done)
		}()
		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatalf("expected Run to stop after cancel")
		}
	})
}
