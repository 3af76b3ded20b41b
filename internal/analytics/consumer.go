package analytics

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/serroba/popcat-go/internal/messaging"
	"go.uber.org/zap"
)

// NewClickConsumer creates a consumer that feeds click events into the store.
func NewClickConsumer(
	subscriber message.Subscriber,
	store Store,
	logger *zap.Logger,
) *messaging.Consumer[ClickEvent] {
	handler := func(ctx context.Context, event *ClickEvent) error {
		return store.SaveClick(ctx, event)
	}

	return messaging.NewConsumer(subscriber, TopicClickRegistered, handler, logger)
}
