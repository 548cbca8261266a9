package shared

import (
	"context"
	"time"
)

// IdempotencyStore stores processed event IDs to prevent duplicate processing
// of at-least-once deliveries such as payment webhooks.
type IdempotencyStore interface {
	// MarkProcessed marks an event as processed with a TTL
	// Returns true if the event was newly marked, false if it was already processed
	MarkProcessed(ctx context.Context, eventID string, ttl time.Duration) (bool, error)

	// Forget removes a mark so a failed event can be retried by the sender
	Forget(ctx context.Context, eventID string) error

	// Close closes the store and releases resources
	Close() error
}
