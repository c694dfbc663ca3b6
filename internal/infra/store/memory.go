package store

import (
	"context"
	"sort"
	"sync"

	"github.com/atharva-sardesai/proposal/internal/domain/proposal"
)

// Memory keeps proposals in a mutex-guarded map. It is the default store and
// loses everything on restart.
type Memory struct {
	mu      sync.RWMutex
	records map[string]proposal.Record
}

func NewMemory() *Memory {
	return &Memory{records: make(map[string]proposal.Record)}
}

func (m *Memory) Get(_ context.Context, id string) (proposal.Record, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[id]
	return rec, ok, nil
}

func (m *Memory) Put(_ context.Context, rec proposal.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.ID] = rec
	return nil
}

func (m *Memory) List(_ context.Context) ([]proposal.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]proposal.Record, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, rec)
	}
	// Newest first; id as tiebreaker for a stable listing.
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt > out[j].CreatedAt
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
