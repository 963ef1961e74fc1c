package domain

import "context"

// TextGenerator turns a prompt into free-form text. Implementations may be
// slow or fail; callers decide how to degrade.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// EventPublisher fans out state changes. Publishing is best effort.
type EventPublisher interface {
	Publish(ctx context.Context, e Event)
}
