package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beliefted/beliefted-server/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type deviceTokenDocument struct {
	Token     string    `bson:"_id"`
	UserID    string    `bson:"userId"`
	Platform  string    `bson:"platform"`
	CreatedAt time.Time `bson:"createdAt"`
}

// RegisterDeviceToken moves the token to the given user if another user had
// registered it before, since a device belongs to whoever signed in last.
func (r *Repository) RegisterDeviceToken(ctx context.Context, token domain.DeviceToken) error {
	_, err := r.db.Collection(collectionDeviceTokens).UpdateOne(ctx,
		bson.M{"_id": token.Token},
		bson.M{
			"$set":         bson.M{"userId": token.UserID, "platform": token.Platform},
			"$setOnInsert": bson.M{"createdAt": token.CreatedAt},
		},
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("registering device token: %w", err)
	}
	return nil
}

func (r *Repository) ListDeviceTokens(ctx context.Context, userID string) ([]domain.DeviceToken, error) {
	cursor, err := r.db.Collection(collectionDeviceTokens).Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("listing device tokens: %w", err)
	}

	var docs []deviceTokenDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding device tokens: %w", err)
	}

	tokens := make([]domain.DeviceToken, 0, len(docs))
	for _, d := range docs {
		tokens = append(tokens, domain.DeviceToken{
			Token:     d.Token,
			UserID:    d.UserID,
			Platform:  d.Platform,
			CreatedAt: d.CreatedAt,
		})
	}
	return tokens, nil
}

func (r *Repository) DeleteDeviceToken(ctx context.Context, token string) error {
	if _, err := r.db.Collection(collectionDeviceTokens).DeleteOne(ctx, bson.M{"_id": token}); err != nil {
		return fmt.Errorf("deleting device token: %w", err)
	}
	return nil
}

type apiTokenDocument struct {
	ID         string     `bson:"_id"`
	UserID     string     `bson:"userId"`
	TokenHash  string     `bson:"tokenHash"`
	Prefix     string     `bson:"prefix"`
	Name       *string    `bson:"name,omitempty"`
	CreatedAt  time.Time  `bson:"createdAt"`
	LastUsedAt *time.Time `bson:"lastUsedAt,omitempty"`
	ExpiresAt  *time.Time `bson:"expiresAt,omitempty"`
	RevokedAt  *time.Time `bson:"revokedAt,omitempty"`
}

func (d apiTokenDocument) toDomain() domain.APIToken {
	return domain.APIToken{
		ID:         d.ID,
		UserID:     d.UserID,
		TokenHash:  d.TokenHash,
		Prefix:     d.Prefix,
		Name:       d.Name,
		CreatedAt:  d.CreatedAt,
		LastUsedAt: d.LastUsedAt,
		ExpiresAt:  d.ExpiresAt,
		RevokedAt:  d.RevokedAt,
	}
}

func (r *Repository) apiTokens() *mongo.Collection {
	return r.db.Collection(collectionAPITokens)
}

func (r *Repository) CreateAPIToken(
	ctx context.Context,
	id, userID, tokenHash, tokenPrefix string,
	name *string,
	expiresAt *time.Time,
) error {
	_, err := r.apiTokens().InsertOne(ctx, apiTokenDocument{
		ID:        id,
		UserID:    userID,
		TokenHash: tokenHash,
		Prefix:    tokenPrefix,
		Name:      name,
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return fmt.Errorf("inserting API token: %w", err)
	}
	return nil
}

func (r *Repository) GetAPITokenByHash(ctx context.Context, tokenHash string) (domain.APIToken, error) {
	var doc apiTokenDocument
	err := r.apiTokens().FindOne(ctx, bson.M{"tokenHash": tokenHash}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.APIToken{}, fmt.Errorf("API token: %w", domain.ErrNotFound)
	}
	if err != nil {
		return domain.APIToken{}, fmt.Errorf("finding API token: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *Repository) UpdateAPITokenLastUsed(ctx context.Context, tokenID string) error {
	_, err := r.apiTokens().UpdateOne(ctx,
		bson.M{"_id": tokenID},
		bson.M{"$set": bson.M{"lastUsedAt": time.Now()}})
	if err != nil {
		return fmt.Errorf("updating API token last used: %w", err)
	}
	return nil
}

func (r *Repository) ListUserAPITokens(ctx context.Context, userID string) ([]domain.APIToken, error) {
	cursor, err := r.apiTokens().Find(ctx,
		bson.M{"userId": userID, "revokedAt": nil},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("listing API tokens: %w", err)
	}

	var docs []apiTokenDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding API tokens: %w", err)
	}

	tokens := make([]domain.APIToken, 0, len(docs))
	for _, d := range docs {
		tokens = append(tokens, d.toDomain())
	}
	return tokens, nil
}

func (r *Repository) CountUserActiveAPITokens(ctx context.Context, userID string) (int64, error) {
	n, err := r.apiTokens().CountDocuments(ctx, bson.M{
		"userId":    userID,
		"revokedAt": nil,
		"$or": bson.A{
			bson.M{"expiresAt": nil},
			bson.M{"expiresAt": bson.M{"$gt": time.Now()}},
		},
	})
	if err != nil {
		return 0, fmt.Errorf("counting API tokens: %w", err)
	}
	return n, nil
}

func (r *Repository) RevokeAPIToken(ctx context.Context, tokenID, userID string) error {
	_, err := r.apiTokens().UpdateOne(ctx,
		bson.M{"_id": tokenID, "userId": userID, "revokedAt": nil},
		bson.M{"$set": bson.M{"revokedAt": time.Now()}})
	if err != nil {
		return fmt.Errorf("revoking API token: %w", err)
	}
	return nil
}
