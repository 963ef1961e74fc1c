// Package events fans artist state changes out to live viewers and other
// processes.
package events

import (
	"context"

	"github.com/msuss/atelier/internal/domain"
)

// Multi publishes every event to each of its publishers in order.
type Multi []domain.EventPublisher

func (m Multi) Publish(ctx context.Context, e domain.Event) {
	for _, p := range m {
		if p != nil {
			p.Publish(ctx, e)
		}
	}
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, domain.Event) {}
