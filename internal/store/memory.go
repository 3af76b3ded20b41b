package store

import (
	"context"
	"sort"
	"sync"

	"github.com/serroba/popcat-go/internal/scoreboard"
)

// MemoryStore is an in-memory implementation of scoreboard.Repository.
type MemoryStore struct {
	mu     sync.RWMutex
	totals map[string]int64 // country -> total clicks
}

// NewMemoryStore creates a new in-memory click store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		totals: make(map[string]int64),
	}
}

func (m *MemoryStore) IncrementAndGet(_ context.Context, country string) (int64, error) {
	if country == "" {
		return 0, scoreboard.ErrEmptyCountry
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.totals[country]++

	return m.totals[country], nil
}

func (m *MemoryStore) TopN(_ context.Context, n int) ([]scoreboard.CountryScore, error) {
	m.mu.RLock()

	scores := make([]scoreboard.CountryScore, 0, len(m.totals))
	for country, total := range m.totals {
		scores = append(scores, scoreboard.CountryScore{Country: country, TotalClicks: total})
	}

	m.mu.RUnlock()

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].TotalClicks != scores[j].TotalClicks {
			return scores[i].TotalClicks > scores[j].TotalClicks
		}

		return scores[i].Country < scores[j].Country
	})

	if len(scores) > n {
		scores = scores[:n]
	}

	return scores, nil
}

// Compile-time check.
var _ scoreboard.Repository = (*MemoryStore)(nil)
