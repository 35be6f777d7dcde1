package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"

	"github.com/beliefted/beliefted-server/internal/domain"
)

// InsertNotifications inserts row by row, so one failing record does not stop
// the ones after it. The failures are joined into the returned error.
func (r *Repository) InsertNotifications(ctx context.Context, notifications []domain.Notification) error {
	var errs []error
	for _, n := range notifications {
		ib := sqlbuilder.InsertInto(tableNotifications)
		ib.Cols("id", "recipient_id", "actor_id", "kind", "content_kind", "item_id", "created_at", "read_at")
		ib.Values(n.ID, n.RecipientID, n.ActorID, string(n.Kind), string(n.ContentKind), n.ItemID, n.CreatedAt, n.ReadAt)
		query, args := ib.Build()

		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			errs = append(errs, fmt.Errorf("inserting notification [%s]: %w", n.ID, err))
		}
	}
	return errors.Join(errs...)
}

func (r *Repository) ListNotifications(
	ctx context.Context, recipientID string, page, pageSize int,
) ([]domain.Notification, error) {
	limit, offset := paginationToLimitOffset(page, pageSize)

	sb := sqlbuilder.Select("id", "recipient_id", "actor_id", "kind", "content_kind", "item_id", "created_at", "read_at")
	sb.From(tableNotifications)
	sb.Where(sb.Equal("recipient_id", recipientID))
	sb.OrderBy("created_at DESC", "id DESC")
	sb.Limit(limit)
	sb.Offset(offset)

	result := []domain.Notification{}
	err := scanAll(ctx, r.db, sb, func(rows *sql.Rows) error {
		var n domain.Notification
		var kind, contentKind string
		var readAt sql.NullTime
		if err := rows.Scan(
			&n.ID, &n.RecipientID, &n.ActorID, &kind, &contentKind, &n.ItemID, &n.CreatedAt, &readAt,
		); err != nil {
			return err
		}
		n.Kind = domain.NotificationKind(kind)
		n.ContentKind = domain.ContentKind(contentKind)
		n.ReadAt = timePtr(readAt)
		result = append(result, n)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	return result, nil
}

func (r *Repository) MarkNotificationsRead(ctx context.Context, recipientID string, readAt time.Time) error {
	ub := sqlbuilder.Update(tableNotifications)
	ub.Set(ub.Assign("read_at", readAt))
	ub.Where(ub.Equal("recipient_id", recipientID), ub.IsNull("read_at"))
	query, args := ub.Build()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("marking notifications read: %w", err)
	}
	return nil
}

func (r *Repository) DeleteNotification(ctx context.Context, id, recipientID string) error {
	id, err := domain.ParseID(id)
	if err != nil {
		return err
	}

	db := sqlbuilder.DeleteFrom(tableNotifications)
	db.Where(db.Equal("id", id), db.Equal("recipient_id", recipientID))
	query, args := db.Build()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting notification: %w", err)
	}
	return nil
}
