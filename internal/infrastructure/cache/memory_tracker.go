package cache

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryTracker is the single-process tracker used when no Redis is configured.
// Pending keys are lost on restart.
type MemoryTracker struct {
	mu      sync.Mutex
	pending map[string]time.Time
}

func NewMemoryTracker() *MemoryTracker {
	return &MemoryTracker{pending: make(map[string]time.Time)}
}

func (t *MemoryTracker) Track(_ context.Context, key string, issuedAt time.Time) error {
	if key == "" {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending[key] = issuedAt
	return nil
}

func (t *MemoryTracker) Confirm(_ context.Context, key string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.pending, key)
	return nil
}

// Stale returns up to limit keys issued strictly before the cutoff, oldest first.
func (t *MemoryTracker) Stale(_ context.Context, before time.Time, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}
	t.mu.Lock()
	type entry struct {
		key string
		at  time.Time
	}
	var stale []entry
	for k, at := range t.pending {
		if at.Before(before) {
			stale = append(stale, entry{key: k, at: at})
		}
	}
	t.mu.Unlock()

	sort.Slice(stale, func(i, j int) bool {
		if stale[i].at.Equal(stale[j].at) {
			return stale[i].key < stale[j].key
		}
		return stale[i].at.Before(stale[j].at)
	})
	if len(stale) > limit {
		stale = stale[:limit]
	}
	keys := make([]string, 0, len(stale))
	for _, e := range stale {
		keys = append(keys, e.key)
	}
	return keys, nil
}

func (t *MemoryTracker) Forget(_ context.Context, keys ...string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, k := range keys {
		delete(t.pending, k)
	}
	return nil
}

func (t *MemoryTracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}
