package interfaces

import (
	"context"
	"time"
)

// IUploadTracker remembers storage keys that were handed out but not yet
// attached to a customization.
type IUploadTracker interface {
	Track(ctx context.Context, key string, issuedAt time.Time) error
	Confirm(ctx context.Context, key string) error
	Stale(ctx context.Context, before time.Time, limit int) ([]string, error)
	Forget(ctx context.Context, keys ...string) error
}
