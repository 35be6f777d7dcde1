package mongo

import (
	"fmt"

	"github.com/beliefted/beliefted-server/internal/datasources"
	"github.com/beliefted/beliefted-server/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	collectionPrayers       = "prayers"
	collectionWords         = "words"
	collectionStories       = "stories"
	collectionComments      = "comments"
	collectionUsers         = "users"
	collectionNotifications = "notifications"
	collectionDeviceTokens  = "device_tokens"
	collectionAPITokens     = "api_tokens"
)

var contentCollections = map[domain.ContentKind]string{
	domain.ContentKindPrayer: collectionPrayers,
	domain.ContentKindWord:   collectionWords,
	domain.ContentKindStory:  collectionStories,
}

var _ datasources.DatasetRepository = (*Repository)(nil)

type Repository struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) contentCollection(kind domain.ContentKind) (*mongo.Collection, error) {
	name, ok := contentCollections[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown content kind [%s]", domain.ErrInvalidInput, kind)
	}
	return r.db.Collection(name), nil
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w [%s]", domain.ErrInvalidID, id)
	}
	return oid, nil
}

func skipLimit(page, pageSize int) (skip, limit int64) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}
	return int64((page - 1) * pageSize), int64(pageSize)
}
