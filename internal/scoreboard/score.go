package scoreboard

import (
	"context"
	"errors"
)

// LeaderboardSize is the number of entries returned by the public leaderboard.
const LeaderboardSize = 20

// ErrEmptyCountry is returned when an increment is attempted without a country name.
var ErrEmptyCountry = errors.New("country is required")

// CountryScore represents the click total for a single country.
type CountryScore struct {
	Country     string
	TotalClicks int64
}

// Repository defines the interface for country click storage.
type Repository interface {
	// IncrementAndGet atomically adds one click to the country's total,
	// creating the record with a total of 1 when the country has never
	// been seen. It returns the post-increment total. Implementations
	// must not lose updates under concurrent callers for the same key.
	IncrementAndGet(ctx context.Context, country string) (int64, error)

	// TopN returns up to n countries ordered by total clicks descending.
	// Ties are broken by country name ascending so repeated calls over
	// the same data return the same order. An empty store yields an
	// empty slice, not an error.
	TopN(ctx context.Context, n int) ([]CountryScore, error)
}
