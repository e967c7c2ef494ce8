package cache

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tracker interface {
	Track(ctx context.Context, key string, issuedAt time.Time) error
	Confirm(ctx context.Context, key string) error
	Stale(ctx context.Context, before time.Time, limit int) ([]string, error)
	Forget(ctx context.Context, keys ...string) error
}

func exerciseTracker(t *testing.T, tr tracker) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, tr.Track(ctx, "upload/music/a.mp3", base))
	require.NoError(t, tr.Track(ctx, "upload/music/b.mp3", base.Add(time.Hour)))
	require.NoError(t, tr.Track(ctx, "upload/images/c.png", base.Add(3*time.Hour)))
	require.NoError(t, tr.Confirm(ctx, "upload/music/b.mp3"))

	stale, err := tr.Stale(ctx, base.Add(2*time.Hour), 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"upload/music/a.mp3"}, stale)

	stale, err = tr.Stale(ctx, base.Add(4*time.Hour), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"upload/music/a.mp3"}, stale)

	require.NoError(t, tr.Forget(ctx, "upload/music/a.mp3"))
	stale, err = tr.Stale(ctx, base.Add(4*time.Hour), 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"upload/images/c.png"}, stale)

	require.NoError(t, tr.Forget(ctx, "upload/images/c.png"))
}

func TestMemoryTracker(t *testing.T) {
	exerciseTracker(t, NewMemoryTracker())
}

func TestMemoryTrackerConcurrentUse(t *testing.T) {
	tr := NewMemoryTracker()
	ctx := context.Background()
	now := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("upload/images/%d.png", i)
			_ = tr.Track(ctx, key, now)
			if i%2 == 0 {
				_ = tr.Confirm(ctx, key)
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 25, tr.Len())
}

func TestRedisTracker(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	client, err := NewRedisClient(url)
	require.NoError(t, err)
	defer client.Close()

	tr := NewRedisTracker(client)
	tr.key = fmt.Sprintf("test:%s:%d", t.Name(), time.Now().UnixNano())
	defer client.Del(context.Background(), tr.key)

	exerciseTracker(t, tr)
}

func TestNewRedisClientRejectsEmptyURL(t *testing.T) {
	_, err := NewRedisClient(" ")
	assert.Error(t, err)
	_, err = NewRedisClient("not a url")
	assert.Error(t, err)
}
