package analytics

import "context"

// Store defines the interface for handling consumed click events.
type Store interface {
	SaveClick(ctx context.Context, event *ClickEvent) error
}
