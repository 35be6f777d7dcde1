package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/beliefted/beliefted-server/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type notificationDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	RecipientID string             `bson:"recipientId"`
	ActorID     string             `bson:"actorId"`
	Kind        string             `bson:"kind"`
	ContentKind string             `bson:"contentKind,omitempty"`
	ItemID      string             `bson:"itemId,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	ReadAt      *time.Time         `bson:"readAt,omitempty"`
}

func (r *Repository) notifications() *mongo.Collection {
	return r.db.Collection(collectionNotifications)
}

// InsertNotifications inserts unordered, so a failing document does not stop
// the ones after it.
func (r *Repository) InsertNotifications(ctx context.Context, notifications []domain.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(notifications))
	for _, n := range notifications {
		oid, err := parseObjectID(n.ID)
		if err != nil {
			return err
		}
		docs = append(docs, notificationDocument{
			ID:          oid,
			RecipientID: n.RecipientID,
			ActorID:     n.ActorID,
			Kind:        string(n.Kind),
			ContentKind: string(n.ContentKind),
			ItemID:      n.ItemID,
			CreatedAt:   n.CreatedAt,
			ReadAt:      n.ReadAt,
		})
	}

	if _, err := r.notifications().InsertMany(ctx, docs, options.InsertMany().SetOrdered(false)); err != nil {
		return fmt.Errorf("inserting notifications: %w", err)
	}
	return nil
}

func (r *Repository) ListNotifications(
	ctx context.Context, recipientID string, page, pageSize int,
) ([]domain.Notification, error) {
	skip, limit := skipLimit(page, pageSize)
	cursor, err := r.notifications().Find(ctx,
		bson.M{"recipientId": recipientID},
		options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
			SetSkip(skip).
			SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}

	var docs []notificationDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding notifications: %w", err)
	}

	result := make([]domain.Notification, 0, len(docs))
	for _, d := range docs {
		result = append(result, domain.Notification{
			ID:          d.ID.Hex(),
			RecipientID: d.RecipientID,
			ActorID:     d.ActorID,
			Kind:        domain.NotificationKind(d.Kind),
			ContentKind: domain.ContentKind(d.ContentKind),
			ItemID:      d.ItemID,
			CreatedAt:   d.CreatedAt,
			ReadAt:      d.ReadAt,
		})
	}
	return result, nil
}

func (r *Repository) MarkNotificationsRead(ctx context.Context, recipientID string, readAt time.Time) error {
	_, err := r.notifications().UpdateMany(ctx,
		bson.M{"recipientId": recipientID, "readAt": nil},
		bson.M{"$set": bson.M{"readAt": readAt}})
	if err != nil {
		return fmt.Errorf("marking notifications read: %w", err)
	}
	return nil
}

func (r *Repository) DeleteNotification(ctx context.Context, id, recipientID string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	if _, err := r.notifications().DeleteOne(ctx, bson.M{"_id": oid, "recipientId": recipientID}); err != nil {
		return fmt.Errorf("deleting notification: %w", err)
	}
	return nil
}
