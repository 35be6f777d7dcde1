package command

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/beliefted/beliefted-server/internal/datasources"
	"github.com/beliefted/beliefted-server/internal/domain"
)

const (
	MaxContentBodyLength  = 5000
	MaxContentTitleLength = 200
)

type CreateContentRequest struct {
	UserID    string
	Kind      domain.ContentKind
	Title     string
	Reference string
	Body      string
}

// CreateContent publishes a prayer, word or story. Users mentioned in the
// body are notified.
type CreateContent struct {
	ContentCreator datasources.ContentCreator
	Dispatcher     EventDispatcher

	now func() time.Time
}

func NewCreateContent(contentCreator datasources.ContentCreator, dispatcher EventDispatcher) *CreateContent {
	return &CreateContent{
		ContentCreator: contentCreator,
		Dispatcher:     dispatcher,
		now:            time.Now,
	}
}

func (c *CreateContent) Execute(ctx context.Context, req CreateContentRequest) (domain.ContentItem, error) {
	if req.UserID == "" {
		return domain.ContentItem{}, domain.ErrUnauthorized
	}

	item := domain.ContentItem{
		ID:        domain.NewID(),
		Kind:      req.Kind,
		AuthorID:  req.UserID,
		Title:     strings.TrimSpace(req.Title),
		Reference: strings.TrimSpace(req.Reference),
		Body:      strings.TrimSpace(req.Body),
		CreatedAt: c.now(),
		PrayedBy:  []string{},
		LikedBy:   []string{},
		SavedBy:   []string{},
	}
	if err := validateContentItem(item); err != nil {
		return domain.ContentItem{}, err
	}

	if err := c.ContentCreator.CreateContentItem(ctx, item); err != nil {
		return domain.ContentItem{}, fmt.Errorf("creating %s: %w", req.Kind, err)
	}

	c.Dispatcher.Dispatch(ctx, domain.NotificationEvent{
		Kind:        domain.NotificationKindMention,
		ActorID:     req.UserID,
		ContentKind: item.Kind,
		ItemID:      item.ID,
		Text:        item.Body,
	})

	return item, nil
}

func validateContentItem(item domain.ContentItem) error {
	switch item.Kind {
	case domain.ContentKindPrayer, domain.ContentKindWord, domain.ContentKindStory:
	default:
		return fmt.Errorf("%w: unknown content kind [%s]", domain.ErrInvalidInput, item.Kind)
	}
	if item.Body == "" {
		return fmt.Errorf("%w: body is required", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(item.Body) > MaxContentBodyLength {
		return fmt.Errorf("%w: body longer than %d characters", domain.ErrInvalidInput, MaxContentBodyLength)
	}
	if utf8.RuneCountInString(item.Title) > MaxContentTitleLength {
		return fmt.Errorf("%w: title longer than %d characters", domain.ErrInvalidInput, MaxContentTitleLength)
	}
	return nil
}
