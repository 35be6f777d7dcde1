package domain

import (
	"fmt"
	"slices"
	"time"
)

// ContentKind identifies which collection a content item belongs to.
type ContentKind string

const (
	ContentKindPrayer ContentKind = "prayer"
	ContentKindWord   ContentKind = "word"
	ContentKindStory  ContentKind = "story"
)

var ContentKinds = []ContentKind{ContentKindPrayer, ContentKindWord, ContentKindStory}

// Interaction is a reversible per-user action on a content item, stored as set membership.
type Interaction string

const (
	InteractionPray Interaction = "pray"
	InteractionLike Interaction = "like"
	InteractionSave Interaction = "save"
)

var allowedInteractions = map[ContentKind][]Interaction{
	ContentKindPrayer: {InteractionPray, InteractionSave},
	ContentKindWord:   {InteractionLike, InteractionSave},
	ContentKindStory:  {InteractionLike, InteractionSave},
}

// ParseContentKind accepts either the kind itself or its plural URL segment.
func ParseContentKind(s string) (ContentKind, error) {
	switch s {
	case "prayer", "prayers":
		return ContentKindPrayer, nil
	case "word", "words":
		return ContentKindWord, nil
	case "story", "stories":
		return ContentKindStory, nil
	default:
		return "", fmt.Errorf("%w: unknown content kind [%s]", ErrInvalidInput, s)
	}
}

// Supports reports whether users can toggle the given interaction on this kind.
func (k ContentKind) Supports(i Interaction) bool {
	return slices.Contains(allowedInteractions[k], i)
}

// NotificationKind returns the notification sent to an item's author when a
// user first performs the interaction, if any.
func (i Interaction) NotificationKind() (NotificationKind, bool) {
	switch i {
	case InteractionPray:
		return NotificationKindPray, true
	case InteractionLike:
		return NotificationKindLike, true
	default:
		return "", false
	}
}

// ContentItem is a prayer, word or story together with its interaction sets.
type ContentItem struct {
	ID        string      `json:"id"`
	Kind      ContentKind `json:"kind"`
	AuthorID  string      `json:"author_id"`
	Title     string      `json:"title,omitempty"`
	Reference string      `json:"reference,omitempty"`
	Body      string      `json:"body"`
	CreatedAt time.Time   `json:"created_at"`

	PrayedBy []string `json:"-"`
	LikedBy  []string `json:"-"`
	SavedBy  []string `json:"-"`
}

// Members returns the users currently in the set for the interaction.
func (c ContentItem) Members(i Interaction) []string {
	switch i {
	case InteractionPray:
		return c.PrayedBy
	case InteractionLike:
		return c.LikedBy
	case InteractionSave:
		return c.SavedBy
	default:
		return nil
	}
}

// HasInteracted reports whether userID is in the set for the interaction.
func (c ContentItem) HasInteracted(i Interaction, userID string) bool {
	return slices.Contains(c.Members(i), userID)
}

// ContentListOptions controls paging of latest-first content listings.
type ContentListOptions struct {
	Page, PageSize int
	AuthorID       string
}
