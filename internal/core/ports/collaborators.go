package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/notification"
)

// SMSSender is the outbound text-message collaborator. Sending is
// best-effort: a failure is logged by the dispatcher and never unwinds a
// committed transition.
type SMSSender interface {
	Send(ctx context.Context, phone, message string) error
}

// EventDispatcher consumes the post-commit event list a transition
// returns and fans each event out to the notification channels. Dispatch
// never returns an error to its caller: channel failures are an
// observability concern, not a transition failure.
type EventDispatcher interface {
	Dispatch(ctx context.Context, events []notification.Event)
}
