package storage

import (
	"context"
	"sync"
	"time"
)

// MemoryPresence tracks heartbeats in process memory.
type MemoryPresence struct {
	mu   sync.RWMutex
	seen map[int64]time.Time
}

func NewMemoryPresence() *MemoryPresence {
	return &MemoryPresence{seen: make(map[int64]time.Time)}
}

// Touch records at as the last activity of userID. Older timestamps never overwrite newer ones.
func (p *MemoryPresence) Touch(_ context.Context, userID int64, at time.Time) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if prev, ok := p.seen[userID]; ok && prev.After(at) {
		return nil
	}
	p.seen[userID] = at
	return nil
}

// LastSeen returns a snapshot of all heartbeats
func (p *MemoryPresence) LastSeen(_ context.Context) (map[int64]time.Time, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make(map[int64]time.Time, len(p.seen))
	for id, at := range p.seen {
		out[id] = at
	}
	return out, nil
}

func (p *MemoryPresence) Close() error { return nil }
