package store

import (
	"context"

	"github.com/serroba/popcat-go/internal/analytics"
	"go.uber.org/zap"
)

// Noop is a no-op implementation of analytics.Store that logs events.
// Clicks are deliberately not persisted here: the authoritative totals
// live in the clicks table and no per-click history is kept.
type Noop struct {
	logger *zap.Logger
}

// NewNoop creates a new no-op analytics store.
func NewNoop(logger *zap.Logger) *Noop {
	return &Noop{logger: logger}
}

func (n *Noop) SaveClick(_ context.Context, event *analytics.ClickEvent) error {
	n.logger.Info("click event received",
		zap.String("country", event.Country),
		zap.Int64("totalClicks", event.TotalClicks),
		zap.String("requestId", event.RequestID),
		zap.Time("clickedAt", event.ClickedAt),
	)

	return nil
}
