package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/beliefted/beliefted-server/internal/datasources"
	"github.com/beliefted/beliefted-server/internal/domain"
)

type ToggleInteractionRequest struct {
	UserID      string
	Kind        domain.ContentKind
	ItemID      string
	Interaction domain.Interaction
}

type ToggleInteractionResponse struct {
	Active bool
	Count  int
}

// ToggleInteraction flips the requesting user's membership in one of an
// item's interaction sets. The membership read and the set operation are
// separate, so two concurrent toggles by the same user may both add or both
// remove; the set operations themselves never duplicate or lose members.
type ToggleInteraction struct {
	ContentFetcher    datasources.ContentFetcher
	InteractionSetter datasources.InteractionSetter
	Dispatcher        EventDispatcher
}

func NewToggleInteraction(
	contentFetcher datasources.ContentFetcher,
	interactionSetter datasources.InteractionSetter,
	dispatcher EventDispatcher,
) *ToggleInteraction {
	return &ToggleInteraction{
		ContentFetcher:    contentFetcher,
		InteractionSetter: interactionSetter,
		Dispatcher:        dispatcher,
	}
}

func (c *ToggleInteraction) Execute(
	ctx context.Context, req ToggleInteractionRequest,
) (ToggleInteractionResponse, error) {
	if req.UserID == "" {
		return ToggleInteractionResponse{}, domain.ErrUnauthorized
	}
	if !req.Kind.Supports(req.Interaction) {
		return ToggleInteractionResponse{}, fmt.Errorf("%w: cannot %s a %s",
			domain.ErrInvalidInput, req.Interaction, req.Kind)
	}

	itemID, err := domain.ParseID(req.ItemID)
	if err != nil {
		return ToggleInteractionResponse{}, err
	}

	item, err := c.ContentFetcher.FetchContentItem(ctx, req.Kind, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ToggleInteractionResponse{}, err
		}
		return ToggleInteractionResponse{}, fmt.Errorf("fetching %s: %w", req.Kind, err)
	}

	wasActive := item.HasInteracted(req.Interaction, req.UserID)

	var count int
	if wasActive {
		count, err = c.InteractionSetter.RemoveInteraction(ctx, req.Kind, itemID, req.Interaction, req.UserID)
	} else {
		count, err = c.InteractionSetter.AddInteraction(ctx, req.Kind, itemID, req.Interaction, req.UserID)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ToggleInteractionResponse{}, err
		}
		return ToggleInteractionResponse{}, fmt.Errorf("updating %s set: %w", req.Interaction, err)
	}

	domain.LoggerFromContext(ctx).DebugContext(ctx, "toggled interaction",
		"kind", req.Kind, "item_id", itemID, "interaction", req.Interaction, "active", !wasActive, "count", count)

	if !wasActive && item.AuthorID != req.UserID {
		if kind, ok := req.Interaction.NotificationKind(); ok {
			c.Dispatcher.Dispatch(ctx, domain.NotificationEvent{
				Kind:        kind,
				ActorID:     req.UserID,
				RecipientID: item.AuthorID,
				ContentKind: req.Kind,
				ItemID:      itemID,
			})
		}
	}

	return ToggleInteractionResponse{Active: !wasActive, Count: count}, nil
}
