package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"invite_studio/internal/domain"
	"invite_studio/internal/domain/entities"
	"invite_studio/internal/infrastructure/metrics"
	"invite_studio/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// MaxServerUploadBytes caps the multipart fallback; large media goes through
// presigned uploads.
const MaxServerUploadBytes = 25 << 20

// IUploadUseCase hands out direct-to-storage write credentials and performs
// the server-side upload fallback.
type IUploadUseCase interface {
	CreateUploadURL(ctx context.Context, userID, folder, filename, contentType string) (entities.UploadCredential, error)
	UploadFile(ctx context.Context, userID, folder, filename, contentType string, data []byte) (entities.StoredObject, error)
}

type UploadUseCase struct {
	storage interfaces.IObjectStorage
	tracker interfaces.IUploadTracker
	metrics *metrics.Metrics
	log     *zap.Logger
	now     func() time.Time
}

var _ IUploadUseCase = (*UploadUseCase)(nil)

func NewUploadUseCase(storage interfaces.IObjectStorage, tracker interfaces.IUploadTracker, m *metrics.Metrics, log *zap.Logger) *UploadUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &UploadUseCase{storage: storage, tracker: tracker, metrics: m, log: log, now: time.Now}
}

func (u *UploadUseCase) CreateUploadURL(ctx context.Context, userID, folder, filename, contentType string) (entities.UploadCredential, error) {
	if strings.TrimSpace(userID) == "" {
		return entities.UploadCredential{}, domain.ErrUnauthenticated
	}
	u.log.Info("[upload][usecase] create upload url start", zap.String("user_id", userID), zap.String("folder", folder), zap.String("content_type", contentType))

	cred, err := u.storage.IssueUploadCredential(ctx, folder, filename, contentType)
	if err != nil {
		u.log.Warn("[upload][usecase] create upload url failed", zap.String("user_id", userID), zap.String("folder", folder), zap.Error(err))
		return entities.UploadCredential{}, err
	}
	u.track(ctx, cred.Key)
	u.metrics.UploadCredentialIssued(folderOf(cred.Key))
	u.log.Info("[upload][usecase] create upload url success", zap.String("user_id", userID), zap.String("key", cred.Key))
	return cred, nil
}

func (u *UploadUseCase) UploadFile(ctx context.Context, userID, folder, filename, contentType string, data []byte) (entities.StoredObject, error) {
	if strings.TrimSpace(userID) == "" {
		return entities.StoredObject{}, domain.ErrUnauthenticated
	}
	if len(data) == 0 {
		return entities.StoredObject{}, fmt.Errorf("%w: file is empty", domain.ErrValidation)
	}
	if len(data) > MaxServerUploadBytes {
		return entities.StoredObject{}, fmt.Errorf("%w: file exceeds %d bytes", domain.ErrValidation, MaxServerUploadBytes)
	}

	f, err := u.storage.ValidateFolder(folder)
	if err != nil {
		return entities.StoredObject{}, err
	}
	key, err := u.storage.NewKey(f, filename)
	if err != nil {
		return entities.StoredObject{}, fmt.Errorf("%w: %v", domain.ErrStorageWrite, err)
	}

	url, err := u.storage.UploadBuffer(ctx, data, key, contentType)
	u.metrics.ServerUpload(err == nil)
	if err != nil {
		u.log.Error("[upload][usecase] server upload failed", zap.String("user_id", userID), zap.String("key", key), zap.Error(err))
		return entities.StoredObject{}, err
	}
	u.track(ctx, key)
	u.log.Info("[upload][usecase] server upload success", zap.String("user_id", userID), zap.String("key", key), zap.Int("bytes", len(data)))
	return entities.StoredObject{Key: key, PublicURL: url}, nil
}

// track records the key for the orphan sweep. Failing to track only means the
// object will never be swept, so it does not fail the upload.
func (u *UploadUseCase) track(ctx context.Context, key string) {
	if u.tracker == nil {
		return
	}
	if err := u.tracker.Track(ctx, key, u.now().UTC()); err != nil {
		u.log.Warn("[upload][usecase] pending upload not tracked", zap.String("key", key), zap.Error(err))
	}
}

func folderOf(key string) string {
	if i := strings.LastIndex(key, "/"); i > 0 {
		return key[:i]
	}
	return ""
}
