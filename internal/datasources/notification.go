package datasources

import (
	"context"
	"time"

	"github.com/beliefted/beliefted-server/internal/domain"
)

// NotificationInserter writes notifications independently of each other: one
// failing record must not prevent the rest from being stored.
type NotificationInserter interface {
	InsertNotifications(ctx context.Context, notifications []domain.Notification) error
}

type NotificationLister interface {
	ListNotifications(ctx context.Context, recipientID string, page, pageSize int) ([]domain.Notification, error)
}

type NotificationsReadMarker interface {
	MarkNotificationsRead(ctx context.Context, recipientID string, readAt time.Time) error
}

// NotificationDeleter deletes a recipient's notification. Deleting a missing
// notification, or one owned by someone else, is not an error.
type NotificationDeleter interface {
	DeleteNotification(ctx context.Context, id, recipientID string) error
}

type NotificationRepository interface {
	NotificationInserter
	NotificationLister
	NotificationsReadMarker
	NotificationDeleter
}
