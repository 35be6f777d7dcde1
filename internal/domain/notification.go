package domain

import "time"

type NotificationKind string

const (
	NotificationKindComment NotificationKind = "comment"
	NotificationKindPray    NotificationKind = "pray"
	NotificationKindLike    NotificationKind = "like"
	NotificationKindMention NotificationKind = "mention"
	NotificationKindFollow  NotificationKind = "follow"
)

// Notification tells a recipient that an actor did something involving them.
type Notification struct {
	ID          string           `json:"id"`
	RecipientID string           `json:"recipient_id"`
	ActorID     string           `json:"actor_id"`
	Kind        NotificationKind `json:"kind"`
	ContentKind ContentKind      `json:"content_kind,omitempty"`
	ItemID      string           `json:"item_id,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	ReadAt      *time.Time       `json:"read_at,omitempty"`
}

// NotificationEvent is handed to the fan-out when something notifiable happens.
// RecipientID is the direct recipient, usually the content author, and may be empty
// when only mentions in Text should be notified.
type NotificationEvent struct {
	ID          string
	Kind        NotificationKind
	ActorID     string
	RecipientID string
	ContentKind ContentKind
	ItemID      string
	Text        string
}
