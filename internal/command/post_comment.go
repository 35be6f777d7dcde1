package command

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/beliefted/beliefted-server/internal/datasources"
	"github.com/beliefted/beliefted-server/internal/domain"
)

const MaxCommentLength = 2000

type PostCommentRequest struct {
	UserID string
	// ItemKind may be empty, in which case the item is looked up in every kind.
	ItemKind domain.ContentKind
	ItemID   string
	Content  string
}

// PostComment stores a comment on a content item and notifies the item's
// author and anyone mentioned in the comment.
type PostComment struct {
	ContentFetcher datasources.ContentFetcher
	CommentCreator datasources.CommentCreator
	Dispatcher     EventDispatcher

	now func() time.Time
}

func NewPostComment(
	contentFetcher datasources.ContentFetcher,
	commentCreator datasources.CommentCreator,
	dispatcher EventDispatcher,
) *PostComment {
	return &PostComment{
		ContentFetcher: contentFetcher,
		CommentCreator: commentCreator,
		Dispatcher:     dispatcher,
		now:            time.Now,
	}
}

func (c *PostComment) Execute(ctx context.Context, req PostCommentRequest) (domain.Comment, error) {
	if req.UserID == "" {
		return domain.Comment{}, domain.ErrUnauthorized
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return domain.Comment{}, fmt.Errorf("%w: comment content is required", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(content) > MaxCommentLength {
		return domain.Comment{}, fmt.Errorf("%w: comment longer than %d characters",
			domain.ErrInvalidInput, MaxCommentLength)
	}

	itemID, err := domain.ParseID(req.ItemID)
	if err != nil {
		return domain.Comment{}, err
	}

	kind, item, err := c.locateItem(ctx, req.ItemKind, itemID)
	if err != nil {
		return domain.Comment{}, err
	}

	comment := domain.Comment{
		ID:          domain.NewID(),
		ContentKind: kind,
		ItemID:      itemID,
		AuthorID:    req.UserID,
		Content:     content,
		CreatedAt:   c.now(),
	}
	if err := c.CommentCreator.CreateComment(ctx, comment); err != nil {
		return domain.Comment{}, fmt.Errorf("creating comment: %w", err)
	}

	c.Dispatcher.Dispatch(ctx, domain.NotificationEvent{
		Kind:        domain.NotificationKindComment,
		ActorID:     req.UserID,
		RecipientID: item.AuthorID,
		ContentKind: kind,
		ItemID:      itemID,
		Text:        content,
	})

	return comment, nil
}

// locateItem fetches the commented item. Item ids are unique across kinds, so
// without a kind every kind is tried and the first match wins.
func (c *PostComment) locateItem(
	ctx context.Context, kind domain.ContentKind, itemID string,
) (domain.ContentKind, domain.ContentItem, error) {
	if kind != "" {
		item, err := c.ContentFetcher.FetchContentItem(ctx, kind, itemID)
		if err != nil {
			return "", domain.ContentItem{}, fmt.Errorf("fetching commented %s: %w", kind, err)
		}
		return kind, item, nil
	}

	for _, k := range domain.ContentKinds {
		item, err := c.ContentFetcher.FetchContentItem(ctx, k, itemID)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return "", domain.ContentItem{}, fmt.Errorf("fetching commented %s: %w", k, err)
		}
		return k, item, nil
	}
	return "", domain.ContentItem{}, fmt.Errorf("commented item %s: %w", itemID, domain.ErrNotFound)
}
