package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/popcat-go/internal/analytics"
	"github.com/serroba/popcat-go/internal/messaging"
	"github.com/serroba/popcat-go/internal/metrics"
	"github.com/serroba/popcat-go/internal/scoreboard"
	"go.uber.org/zap"
)

// ClickHandler handles click registration and leaderboard reads.
type ClickHandler struct {
	store        scoreboard.Repository
	publishClick messaging.Publish[analytics.ClickEvent]
	logger       *zap.Logger
}

// NewClickHandler creates a new click handler.
func NewClickHandler(
	store scoreboard.Repository,
	publishClick messaging.Publish[analytics.ClickEvent],
	logger *zap.Logger,
) *ClickHandler {
	return &ClickHandler{
		store:        store,
		publishClick: publishClick,
		logger:       logger,
	}
}

type requestMetaKey struct{}

// RequestMeta holds HTTP request metadata for click events.
type RequestMeta struct {
	ClientIP  string
	UserAgent string
	RequestID string
}

// ContextWithRequestMeta adds request metadata to context.
func ContextWithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey{}, meta)
}

// RequestMetaFromContext extracts request metadata from context.
func RequestMetaFromContext(ctx context.Context) RequestMeta {
	if v, ok := ctx.Value(requestMetaKey{}).(RequestMeta); ok {
		return v
	}

	return RequestMeta{}
}

// RegisterClick validates the country, applies the atomic increment, and
// returns the new total together with the refreshed leaderboard.
// Validation failures never reach storage.
func (h *ClickHandler) RegisterClick(ctx context.Context, req *RegisterClickRequest) (*RegisterClickResponse, error) {
	country := strings.TrimSpace(req.Body.Country)
	if country == "" {
		return nil, huma.Error400BadRequest("country is required")
	}

	total, err := h.store.IncrementAndGet(ctx, country)
	if err != nil {
		h.logger.Error("failed to register click",
			zap.String("country", country),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("storage unavailable")
	}

	scores, err := h.store.TopN(ctx, scoreboard.LeaderboardSize)
	if err != nil {
		h.logger.Error("failed to load leaderboard after click",
			zap.String("country", country),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("storage unavailable")
	}

	metrics.Clicks.WithLabelValues(country).Inc()

	meta := RequestMetaFromContext(ctx)
	event := &analytics.ClickEvent{
		Country:     country,
		TotalClicks: total,
		ClientIP:    meta.ClientIP,
		UserAgent:   meta.UserAgent,
		RequestID:   meta.RequestID,
		ClickedAt:   time.Now(),
	}

	if err := h.publishClick(event); err != nil {
		metrics.ClickPublishFailures.Inc()
		h.logger.Error("failed to publish click event",
			zap.String("country", country),
			zap.Error(err),
		)
	}

	resp := &RegisterClickResponse{}
	resp.Body.Success = true
	resp.Body.TotalClicks = total
	resp.Body.Leaderboard = toEntries(scores)

	return resp, nil
}

// GetLeaderboard returns the current top 20. An empty store yields an
// empty leaderboard, not an error.
func (h *ClickHandler) GetLeaderboard(ctx context.Context, _ *struct{}) (*LeaderboardResponse, error) {
	scores, err := h.store.TopN(ctx, scoreboard.LeaderboardSize)
	if err != nil {
		h.logger.Error("failed to load leaderboard", zap.Error(err))

		return nil, huma.Error500InternalServerError("storage unavailable")
	}

	metrics.LeaderboardRequests.Inc()

	resp := &LeaderboardResponse{}
	resp.Body.Success = true
	resp.Body.Leaderboard = toEntries(scores)

	return resp, nil
}

// toEntries never returns nil so an empty board serializes as [].
func toEntries(scores []scoreboard.CountryScore) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(scores))

	for _, score := range scores {
		entries = append(entries, LeaderboardEntry{
			Country:     score.Country,
			TotalClicks: score.TotalClicks,
		})
	}

	return entries
}
