package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/beliefted/beliefted-server/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userDocument struct {
	ID          string    `bson:"_id"`
	DisplayName string    `bson:"displayName"`
	Username    string    `bson:"username"`
	ImageURL    string    `bson:"imageUrl,omitempty"`
	Followers   []string  `bson:"followers"`
	CreatedAt   time.Time `bson:"createdAt"`
}

func (d userDocument) toDomain() domain.User {
	return domain.User{
		ID:            d.ID,
		DisplayName:   d.DisplayName,
		Username:      d.Username,
		ImageURL:      d.ImageURL,
		FollowerCount: len(d.Followers),
		CreatedAt:     d.CreatedAt,
	}
}

func (r *Repository) users() *mongo.Collection {
	return r.db.Collection(collectionUsers)
}

func (r *Repository) findUser(ctx context.Context, filter bson.M, desc string) (domain.User, error) {
	var doc userDocument
	err := r.users().FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.User{}, fmt.Errorf("user [%s]: %w", desc, domain.ErrNotFound)
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("finding user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *Repository) FetchUser(ctx context.Context, id string) (domain.User, error) {
	return r.findUser(ctx, bson.M{"_id": id}, id)
}

func (r *Repository) FetchUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.findUser(ctx, bson.M{"username": username}, username)
}

func (r *Repository) ListUsersByUsernames(ctx context.Context, usernames []string) ([]domain.User, error) {
	if len(usernames) == 0 {
		return nil, nil
	}
	return r.findUsers(ctx, bson.M{"username": bson.M{"$in": usernames}}, options.Find())
}

func (r *Repository) SearchUsers(ctx context.Context, usernamePrefix string, limit int) ([]domain.User, error) {
	filter := bson.M{"username": bson.M{"$regex": "^" + regexp.QuoteMeta(usernamePrefix)}}
	return r.findUsers(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "username", Value: 1}}).
		SetLimit(int64(limit)))
}

func (r *Repository) findUsers(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.User, error) {
	cursor, err := r.users().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("finding users: %w", err)
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding users: %w", err)
	}

	users := make([]domain.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toDomain())
	}
	return users, nil
}

func (r *Repository) UpsertUser(ctx context.Context, user domain.User) error {
	set := bson.M{
		"displayName": user.DisplayName,
		"username":    user.Username,
	}
	if user.ImageURL != "" {
		set["imageUrl"] = user.ImageURL
	}

	_, err := r.users().UpdateOne(ctx,
		bson.M{"_id": user.ID},
		bson.M{
			"$set":         set,
			"$setOnInsert": bson.M{"createdAt": user.CreatedAt, "followers": []string{}},
		},
		options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrUsernameTaken
	}
	if err != nil {
		return fmt.Errorf("upserting user: %w", err)
	}
	return nil
}

func (r *Repository) AddFollower(ctx context.Context, userID, followerID string) (int, error) {
	return r.updateFollowers(ctx, userID, "$addToSet", followerID)
}

func (r *Repository) RemoveFollower(ctx context.Context, userID, followerID string) (int, error) {
	return r.updateFollowers(ctx, userID, "$pull", followerID)
}

func (r *Repository) updateFollowers(ctx context.Context, userID, operator, followerID string) (int, error) {
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"followers": 1})

	var doc userDocument
	err := r.users().FindOneAndUpdate(ctx,
		bson.M{"_id": userID},
		bson.M{operator: bson.M{"followers": followerID}},
		opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, fmt.Errorf("user [%s]: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("updating followers: %w", err)
	}
	return len(doc.Followers), nil
}

func (r *Repository) IsFollowing(ctx context.Context, userID, followerID string) (bool, error) {
	n, err := r.users().CountDocuments(ctx, bson.M{"_id": userID, "followers": followerID})
	if err != nil {
		return false, fmt.Errorf("checking follower: %w", err)
	}
	return n > 0, nil
}
