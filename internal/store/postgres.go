package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serroba/popcat-go/internal/scoreboard"
)

// queryTimeout bounds every storage call so a stuck query cannot pin a
// request goroutine indefinitely.
const queryTimeout = 5 * time.Second

// PostgresStore is a PostgreSQL implementation of scoreboard.Repository.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed click store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the clicks table when it does not exist yet.
func (p *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS clicks (
			country TEXT PRIMARY KEY,
			total_clicks BIGINT NOT NULL DEFAULT 0
		)
	`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := p.pool.Exec(ctx, query)

	return err
}

// IncrementAndGet performs the insert-or-increment as a single atomic
// upsert. Concurrent increments for the same country serialize on the
// row, so no update is ever lost.
func (p *PostgresStore) IncrementAndGet(ctx context.Context, country string) (int64, error) {
	if country == "" {
		return 0, scoreboard.ErrEmptyCountry
	}

	query := `
		INSERT INTO clicks (country, total_clicks)
		VALUES ($1, 1)
		ON CONFLICT (country)
		DO UPDATE SET total_clicks = clicks.total_clicks + 1
		RETURNING total_clicks
	`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var total int64
	if err := p.pool.QueryRow(ctx, query, country).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

func (p *PostgresStore) TopN(ctx context.Context, n int) ([]scoreboard.CountryScore, error) {
	query := `
		SELECT country, total_clicks
		FROM clicks
		ORDER BY total_clicks DESC, country ASC
		LIMIT $1
	`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := p.pool.Query(ctx, query, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scores := make([]scoreboard.CountryScore, 0, n)

	for rows.Next() {
		var score scoreboard.CountryScore
		if err := rows.Scan(&score.Country, &score.TotalClicks); err != nil {
			return nil, err
		}

		scores = append(scores, score)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return scores, nil
}

// Compile-time check.
var _ scoreboard.Repository = (*PostgresStore)(nil)
