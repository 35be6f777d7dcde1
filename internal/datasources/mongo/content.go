package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beliefted/beliefted-server/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type contentDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	AuthorID  string             `bson:"authorId"`
	Title     string             `bson:"title,omitempty"`
	Reference string             `bson:"reference,omitempty"`
	Body      string             `bson:"body"`
	CreatedAt time.Time          `bson:"createdAt"`
	PrayedBy  []string           `bson:"prayedBy"`
	LikedBy   []string           `bson:"likedBy"`
	SavedBy   []string           `bson:"savedBy"`
}

func (d contentDocument) toDomain(kind domain.ContentKind) domain.ContentItem {
	return domain.ContentItem{
		ID:        d.ID.Hex(),
		Kind:      kind,
		AuthorID:  d.AuthorID,
		Title:     d.Title,
		Reference: d.Reference,
		Body:      d.Body,
		CreatedAt: d.CreatedAt,
		PrayedBy:  d.PrayedBy,
		LikedBy:   d.LikedBy,
		SavedBy:   d.SavedBy,
	}
}

var interactionFields = map[domain.Interaction]string{
	domain.InteractionPray: "prayedBy",
	domain.InteractionLike: "likedBy",
	domain.InteractionSave: "savedBy",
}

func (r *Repository) FetchContentItem(
	ctx context.Context, kind domain.ContentKind, id string,
) (domain.ContentItem, error) {
	coll, err := r.contentCollection(kind)
	if err != nil {
		return domain.ContentItem{}, err
	}
	oid, err := parseObjectID(id)
	if err != nil {
		return domain.ContentItem{}, err
	}

	var doc contentDocument
	err = coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ContentItem{}, fmt.Errorf("%s [%s]: %w", kind, id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.ContentItem{}, fmt.Errorf("finding %s: %w", kind, err)
	}

	return doc.toDomain(kind), nil
}

func (r *Repository) AddInteraction(
	ctx context.Context, kind domain.ContentKind, itemID string, interaction domain.Interaction, userID string,
) (int, error) {
	return r.updateInteraction(ctx, kind, itemID, interaction, "$addToSet", userID)
}

func (r *Repository) RemoveInteraction(
	ctx context.Context, kind domain.ContentKind, itemID string, interaction domain.Interaction, userID string,
) (int, error) {
	return r.updateInteraction(ctx, kind, itemID, interaction, "$pull", userID)
}

// updateInteraction applies a single-field set operator and reads back the
// resulting set in the same round trip.
func (r *Repository) updateInteraction(
	ctx context.Context,
	kind domain.ContentKind,
	itemID string,
	interaction domain.Interaction,
	operator string,
	userID string,
) (int, error) {
	coll, err := r.contentCollection(kind)
	if err != nil {
		return 0, err
	}
	oid, err := parseObjectID(itemID)
	if err != nil {
		return 0, err
	}
	field, ok := interactionFields[interaction]
	if !ok {
		return 0, fmt.Errorf("%w: unknown interaction [%s]", domain.ErrInvalidInput, interaction)
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{field: 1})

	var doc contentDocument
	err = coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{operator: bson.M{field: userID}}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, fmt.Errorf("%s [%s]: %w", kind, itemID, domain.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("updating %s on %s: %w", field, kind, err)
	}

	return len(doc.toDomain(kind).Members(interaction)), nil
}

func (r *Repository) CreateContentItem(ctx context.Context, item domain.ContentItem) error {
	coll, err := r.contentCollection(item.Kind)
	if err != nil {
		return err
	}
	oid, err := parseObjectID(item.ID)
	if err != nil {
		return err
	}

	_, err = coll.InsertOne(ctx, contentDocument{
		ID:        oid,
		AuthorID:  item.AuthorID,
		Title:     item.Title,
		Reference: item.Reference,
		Body:      item.Body,
		CreatedAt: item.CreatedAt,
		PrayedBy:  []string{},
		LikedBy:   []string{},
		SavedBy:   []string{},
	})
	if err != nil {
		return fmt.Errorf("inserting %s: %w", item.Kind, err)
	}
	return nil
}

func (r *Repository) ListLatestContentItems(
	ctx context.Context, kind domain.ContentKind, listOptions domain.ContentListOptions,
) ([]domain.ContentItem, error) {
	coll, err := r.contentCollection(kind)
	if err != nil {
		return nil, err
	}

	filter := bson.M{}
	if listOptions.AuthorID != "" {
		filter["authorId"] = listOptions.AuthorID
	}

	skip, limit := skipLimit(listOptions.Page, listOptions.PageSize)
	cursor, err := coll.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", kind, err)
	}

	var docs []contentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", kind, err)
	}

	items := make([]domain.ContentItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toDomain(kind))
	}
	return items, nil
}

type commentDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ItemKind  string             `bson:"itemKind"`
	ItemID    string             `bson:"itemId"`
	AuthorID  string             `bson:"authorId"`
	Content   string             `bson:"content"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (r *Repository) CreateComment(ctx context.Context, comment domain.Comment) error {
	oid, err := parseObjectID(comment.ID)
	if err != nil {
		return err
	}

	_, err = r.db.Collection(collectionComments).InsertOne(ctx, commentDocument{
		ID:        oid,
		ItemKind:  string(comment.ContentKind),
		ItemID:    comment.ItemID,
		AuthorID:  comment.AuthorID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("inserting comment: %w", err)
	}
	return nil
}

func (r *Repository) ListComments(
	ctx context.Context, kind domain.ContentKind, itemID string,
) ([]domain.Comment, error) {
	cursor, err := r.db.Collection(collectionComments).Find(ctx,
		bson.M{"itemKind": string(kind), "itemId": itemID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}

	var docs []commentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding comments: %w", err)
	}

	comments := make([]domain.Comment, 0, len(docs))
	for _, d := range docs {
		comments = append(comments, domain.Comment{
			ID:          d.ID.Hex(),
			ContentKind: domain.ContentKind(d.ItemKind),
			ItemID:      d.ItemID,
			AuthorID:    d.AuthorID,
			Content:     d.Content,
			CreatedAt:   d.CreatedAt,
		})
	}
	return comments, nil
}
