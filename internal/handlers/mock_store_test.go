package handlers_test

import (
	"context"
	"errors"

	"github.com/serroba/popcat-go/internal/scoreboard"
)

var errMock = errors.New("mock error")

// mockStore is a test double for scoreboard.Repository that can be
// configured to fail on either operation.
type mockStore struct {
	incrementErr error
	topNErr      error
	total        int64
	scores       []scoreboard.CountryScore
	increments   int
	topNCalls    int
}

func (m *mockStore) IncrementAndGet(_ context.Context, country string) (int64, error) {
	if country == "" {
		return 0, scoreboard.ErrEmptyCountry
	}

	if m.incrementErr != nil {
		return 0, m.incrementErr
	}

	m.increments++
	m.total++

	return m.total, nil
}

func (m *mockStore) TopN(_ context.Context, _ int) ([]scoreboard.CountryScore, error) {
	if m.topNErr != nil {
		return nil, m.topNErr
	}

	m.topNCalls++

	return m.scores, nil
}
