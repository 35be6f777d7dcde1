package command

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/beliefted/beliefted-server/internal/domain"
)

// EventDispatcher accepts notification events for asynchronous delivery.
// Dispatch never blocks; it reports whether the event was accepted.
type EventDispatcher interface {
	Dispatch(ctx context.Context, event domain.NotificationEvent) bool
}

// DispatchError reports a notification event whose fan-out failed.
type DispatchError struct {
	Event domain.NotificationEvent
	Err   error
}

func (e DispatchError) Error() string {
	return fmt.Sprintf("fanning out notification event [%s]: %v", e.Event.ID, e.Err)
}

func (e DispatchError) Unwrap() error {
	return e.Err
}

type dispatchedEvent struct {
	event  domain.NotificationEvent
	logger *slog.Logger
}

// NotificationDispatcher decouples notification fan-out from the request that
// caused it. Events are queued on a bounded buffer and consumed by Run, each
// under its own timeout and detached from the request's cancellation.
type NotificationDispatcher struct {
	fanOut       Command[domain.NotificationEvent, Empty]
	events       chan dispatchedEvent
	errs         chan error
	eventTimeout time.Duration
}

var _ EventDispatcher = (*NotificationDispatcher)(nil)

func NewNotificationDispatcher(
	fanOut Command[domain.NotificationEvent, Empty],
	bufferSize int,
	eventTimeout time.Duration,
) *NotificationDispatcher {
	return &NotificationDispatcher{
		fanOut:       fanOut,
		events:       make(chan dispatchedEvent, bufferSize),
		errs:         make(chan error, bufferSize),
		eventTimeout: eventTimeout,
	}
}

func (d *NotificationDispatcher) Dispatch(ctx context.Context, event domain.NotificationEvent) bool {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	logger := domain.LoggerFromContext(ctx)

	select {
	case d.events <- dispatchedEvent{event: event, logger: logger}:
		return true
	default:
		logger.WarnContext(ctx, "notification queue full, dropping event",
			"event_id", event.ID, "kind", event.Kind)
		return false
	}
}

// Errors delivers fan-out failures. Failures are dropped if nobody reads
// them fast enough; they are always logged.
func (d *NotificationDispatcher) Errors() <-chan error {
	return d.errs
}

// Run consumes events until ctx is cancelled.
func (d *NotificationDispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-d.events:
			d.handle(ev)
		}
	}
}

func (d *NotificationDispatcher) handle(ev dispatchedEvent) {
	logger := ev.logger.With("event_id", ev.event.ID)
	ctx, cancel := context.WithTimeout(
		domain.ContextWithLogger(context.Background(), logger), d.eventTimeout)
	defer cancel()

	if _, err := d.fanOut.Execute(ctx, ev.event); err != nil {
		logger.ErrorContext(ctx, "notification fan-out failed", "error", err)

		select {
		case d.errs <- DispatchError{Event: ev.event, Err: err}:
		default:
		}
	}
}
