package handlers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/serroba/popcat-go/internal/analytics"
	"github.com/serroba/popcat-go/internal/handlers"
	"github.com/serroba/popcat-go/internal/messaging"
	"github.com/serroba/popcat-go/internal/scoreboard"
	"github.com/serroba/popcat-go/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// noopPublish returns a publish function that always succeeds.
func noopPublish[T any]() messaging.Publish[T] {
	return func(_ *T) error { return nil }
}

// errorPublish returns a publish function that always fails.
func errorPublish[T any](err error) messaging.Publish[T] {
	return func(_ *T) error { return err }
}

func newTestHandler(s scoreboard.Repository) *handlers.ClickHandler {
	return handlers.NewClickHandler(
		s,
		noopPublish[analytics.ClickEvent](),
		zap.NewNop(),
	)
}

func clickRequest(country string) *handlers.RegisterClickRequest {
	req := &handlers.RegisterClickRequest{}
	req.Body.Country = country

	return req
}

func TestRegisterClick(t *testing.T) {
	t.Run("first click creates country with total 1", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		handler := newTestHandler(memStore)

		resp, err := handler.RegisterClick(context.Background(), clickRequest("Argentina"))

		require.NoError(t, err)
		assert.True(t, resp.Body.Success)
		assert.Equal(t, int64(1), resp.Body.TotalClicks)
		require.Len(t, resp.Body.Leaderboard, 1)
		assert.Equal(t, "Argentina", resp.Body.Leaderboard[0].Country)
		assert.Equal(t, int64(1), resp.Body.Leaderboard[0].TotalClicks)
	})

	t.Run("sequential clicks return totals 1, 2, 3", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		handler := newTestHandler(memStore)

		for want := int64(1); want <= 3; want++ {
			resp, err := handler.RegisterClick(context.Background(), clickRequest("Argentina"))

			require.NoError(t, err)
			assert.Equal(t, want, resp.Body.TotalClicks)
			require.Len(t, resp.Body.Leaderboard, 1)
			assert.Equal(t, want, resp.Body.Leaderboard[0].TotalClicks)
		}
	})

	t.Run("returns 400 for missing country without touching storage", func(t *testing.T) {
		mock := &mockStore{}
		handler := newTestHandler(mock)

		resp, err := handler.RegisterClick(context.Background(), clickRequest(""))

		assert.Nil(t, resp)
		assert.Error(t, err)
		assert.Zero(t, mock.increments)
		assert.Zero(t, mock.topNCalls)
	})

	t.Run("returns 400 for whitespace-only country", func(t *testing.T) {
		mock := &mockStore{}
		handler := newTestHandler(mock)

		resp, err := handler.RegisterClick(context.Background(), clickRequest("   "))

		assert.Nil(t, resp)
		assert.Error(t, err)
		assert.Zero(t, mock.increments)
	})

	t.Run("trims surrounding whitespace before incrementing", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		handler := newTestHandler(memStore)

		resp, err := handler.RegisterClick(context.Background(), clickRequest("  Argentina  "))

		require.NoError(t, err)
		require.Len(t, resp.Body.Leaderboard, 1)
		assert.Equal(t, "Argentina", resp.Body.Leaderboard[0].Country)
	})

	t.Run("returns 500 when increment fails", func(t *testing.T) {
		mock := &mockStore{incrementErr: errMock}
		handler := newTestHandler(mock)

		resp, err := handler.RegisterClick(context.Background(), clickRequest("Argentina"))

		assert.Nil(t, resp)
		assert.Error(t, err)
	})

	t.Run("returns 500 when leaderboard reload fails", func(t *testing.T) {
		mock := &mockStore{topNErr: errMock}
		handler := newTestHandler(mock)

		resp, err := handler.RegisterClick(context.Background(), clickRequest("Argentina"))

		assert.Nil(t, resp)
		assert.Error(t, err)
	})

	t.Run("succeeds even when publish fails", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		handler := handlers.NewClickHandler(
			memStore,
			errorPublish[analytics.ClickEvent](errors.New("publish error")),
			zap.NewNop(),
		)

		resp, err := handler.RegisterClick(context.Background(), clickRequest("Argentina"))

		// Publish errors are logged, not returned
		require.NoError(t, err)
		assert.True(t, resp.Body.Success)
	})

	t.Run("includes request metadata in the published event", func(t *testing.T) {
		memStore := store.NewMemoryStore()

		var published *analytics.ClickEvent

		capture := func(event *analytics.ClickEvent) error {
			published = event

			return nil
		}

		handler := handlers.NewClickHandler(memStore, capture, zap.NewNop())

		meta := handlers.RequestMeta{
			ClientIP:  "192.168.1.1",
			UserAgent: "TestAgent/1.0",
			RequestID: "req-123",
		}
		ctx := handlers.ContextWithRequestMeta(context.Background(), meta)

		_, err := handler.RegisterClick(ctx, clickRequest("Argentina"))

		require.NoError(t, err)
		require.NotNil(t, published)
		assert.Equal(t, "Argentina", published.Country)
		assert.Equal(t, int64(1), published.TotalClicks)
		assert.Equal(t, meta.ClientIP, published.ClientIP)
		assert.Equal(t, meta.UserAgent, published.UserAgent)
		assert.Equal(t, meta.RequestID, published.RequestID)
		assert.False(t, published.ClickedAt.IsZero())
	})
}

func TestGetLeaderboard(t *testing.T) {
	t.Run("returns empty leaderboard on fresh store", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		handler := newTestHandler(memStore)

		resp, err := handler.GetLeaderboard(context.Background(), nil)

		require.NoError(t, err)
		assert.True(t, resp.Body.Success)
		assert.NotNil(t, resp.Body.Leaderboard)
		assert.Empty(t, resp.Body.Leaderboard)
	})

	t.Run("returns entries ordered by clicks descending", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		handler := newTestHandler(memStore)

		for range 3 {
			_, err := handler.RegisterClick(context.Background(), clickRequest("Argentina"))
			require.NoError(t, err)
		}

		_, err := handler.RegisterClick(context.Background(), clickRequest("Chile"))
		require.NoError(t, err)

		resp, err := handler.GetLeaderboard(context.Background(), nil)

		require.NoError(t, err)
		require.Len(t, resp.Body.Leaderboard, 2)
		assert.Equal(t, "Argentina", resp.Body.Leaderboard[0].Country)
		assert.Equal(t, int64(3), resp.Body.Leaderboard[0].TotalClicks)
		assert.Equal(t, "Chile", resp.Body.Leaderboard[1].Country)
		assert.Equal(t, int64(1), resp.Body.Leaderboard[1].TotalClicks)
	})

	t.Run("caps the leaderboard at 20 entries", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		handler := newTestHandler(memStore)

		countries := []string{
			"Argentina", "Bolivia", "Brazil", "Chile", "Colombia",
			"Costa Rica", "Cuba", "Dominican Republic", "Ecuador", "El Salvador",
			"Guatemala", "Haiti", "Honduras", "Jamaica", "Mexico",
			"Nicaragua", "Panama", "Paraguay", "Peru", "Suriname",
			"Uruguay", "Venezuela",
		}
		for _, country := range countries {
			_, err := handler.RegisterClick(context.Background(), clickRequest(country))
			require.NoError(t, err)
		}

		resp, err := handler.GetLeaderboard(context.Background(), nil)

		require.NoError(t, err)
		assert.Len(t, resp.Body.Leaderboard, scoreboard.LeaderboardSize)
	})

	t.Run("returns 500 on store error", func(t *testing.T) {
		mock := &mockStore{topNErr: errMock}
		handler := newTestHandler(mock)

		resp, err := handler.GetLeaderboard(context.Background(), nil)

		assert.Nil(t, resp)
		assert.Error(t, err)
	})
}
