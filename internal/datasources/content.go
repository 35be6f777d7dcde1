package datasources

import (
	"context"

	"github.com/beliefted/beliefted-server/internal/domain"
)

// ContentFetcher fetches a single content item, returning domain.ErrNotFound if it does not exist.
type ContentFetcher interface {
	FetchContentItem(ctx context.Context, kind domain.ContentKind, id string) (domain.ContentItem, error)
}

// InteractionSetter changes interaction set membership with atomic add-to-set and
// remove-from-set operations, never by rewriting the whole item. Both return the
// size of the set after the change, and domain.ErrNotFound if the item does not exist.
type InteractionSetter interface {
	AddInteraction(
		ctx context.Context,
		kind domain.ContentKind,
		itemID string,
		interaction domain.Interaction,
		userID string,
	) (int, error)
	RemoveInteraction(
		ctx context.Context,
		kind domain.ContentKind,
		itemID string,
		interaction domain.Interaction,
		userID string,
	) (int, error)
}

type ContentCreator interface {
	CreateContentItem(ctx context.Context, item domain.ContentItem) error
}

type LatestContentLister interface {
	ListLatestContentItems(
		ctx context.Context,
		kind domain.ContentKind,
		options domain.ContentListOptions,
	) ([]domain.ContentItem, error)
}

type ContentRepository interface {
	ContentFetcher
	InteractionSetter
	ContentCreator
	LatestContentLister
}

type CommentCreator interface {
	CreateComment(ctx context.Context, comment domain.Comment) error
}

type CommentLister interface {
	ListComments(ctx context.Context, kind domain.ContentKind, itemID string) ([]domain.Comment, error)
}

type CommentRepository interface {
	CommentCreator
	CommentLister
}
