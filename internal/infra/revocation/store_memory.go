package revocation

import (
	"context"
	"sync"
	"time"

	"sportera/internal/infra/metrics"
)

// MemoryTRL keeps revoked token ids in process. Entries expire on their own deadline.
type MemoryTRL struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
	metrics *metrics.Metrics
}

// NewMemoryTRL creates an empty in-memory revocation list.
func NewMemoryTRL(m *metrics.Metrics) *MemoryTRL {
	return &MemoryTRL{
		revoked: make(map[string]time.Time),
		now:     time.Now,
		metrics: m,
	}
}

func (t *MemoryTRL) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if tokenID == "" || ttl <= 0 {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.sweep(now)
	t.revoked[tokenID] = now.Add(ttl)
	t.metrics.ObserveTokenRevoked()

	return nil
}

func (t *MemoryTRL) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	expiresAt, ok := t.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if !t.now().Before(expiresAt) {
		delete(t.revoked, tokenID)

		return false, nil
	}

	return true, nil
}

// sweep drops expired entries. Callers hold mu.
func (t *MemoryTRL) sweep(now time.Time) {
	for id, expiresAt := range t.revoked {
		if !now.Before(expiresAt) {
			delete(t.revoked, id)
		}
	}
}
