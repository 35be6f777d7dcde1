package command

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/beliefted/beliefted-server/internal/datasources"
	"github.com/beliefted/beliefted-server/internal/domain"
)

const defaultPushConcurrency = 8

// FanOutNotifications turns a notification event into stored notifications
// for the direct recipient and every mentioned user, then pushes them to the
// recipients' devices. Push delivery is best effort and never fails Execute.
type FanOutNotifications struct {
	UserLister      datasources.UsersByUsernameLister
	Inserter        datasources.NotificationInserter
	DeviceLister    datasources.DeviceTokenLister
	DeviceDeleter   datasources.DeviceTokenDeleter
	Pusher          datasources.Pusher
	MentionPolicy   domain.MentionPolicy
	PushConcurrency int

	now func() time.Time
}

func NewFanOutNotifications(
	userLister datasources.UsersByUsernameLister,
	inserter datasources.NotificationInserter,
	deviceLister datasources.DeviceTokenLister,
	deviceDeleter datasources.DeviceTokenDeleter,
	pusher datasources.Pusher,
) *FanOutNotifications {
	return &FanOutNotifications{
		UserLister:      userLister,
		Inserter:        inserter,
		DeviceLister:    deviceLister,
		DeviceDeleter:   deviceDeleter,
		Pusher:          pusher,
		MentionPolicy:   domain.DefaultMentionPolicy,
		PushConcurrency: defaultPushConcurrency,
		now:             time.Now,
	}
}

func (c *FanOutNotifications) Execute(ctx context.Context, event domain.NotificationEvent) (Empty, error) {
	logger := domain.LoggerFromContext(ctx).With("event_id", event.ID, "kind", event.Kind)
	ctx = domain.ContextWithLogger(ctx, logger)

	notifications := make([]domain.Notification, 0, 1)
	notified := map[string]bool{event.ActorID: true}

	if event.RecipientID != "" && !notified[event.RecipientID] {
		notifications = append(notifications, c.newNotification(event, event.RecipientID, event.Kind))
		notified[event.RecipientID] = true
	}

	var errs []error
	if event.Text != "" {
		mentioned, err := c.resolveMentions(ctx, event.Text)
		if err != nil {
			errs = append(errs, fmt.Errorf("resolving mentions: %w", err))
		}
		for _, userID := range mentioned {
			if notified[userID] {
				continue
			}
			notifications = append(notifications, c.newNotification(event, userID, domain.NotificationKindMention))
			notified[userID] = true
		}
	}

	if len(notifications) == 0 {
		return Empty{}, errors.Join(errs...)
	}

	if err := c.Inserter.InsertNotifications(ctx, notifications); err != nil {
		errs = append(errs, fmt.Errorf("inserting notifications: %w", err))
	}

	c.push(ctx, notifications)

	logger.DebugContext(ctx, "fanned out notification event", "notifications", len(notifications))
	return Empty{}, errors.Join(errs...)
}

func (c *FanOutNotifications) newNotification(
	event domain.NotificationEvent, recipientID string, kind domain.NotificationKind,
) domain.Notification {
	return domain.Notification{
		ID:          domain.NewID(),
		RecipientID: recipientID,
		ActorID:     event.ActorID,
		Kind:        kind,
		ContentKind: event.ContentKind,
		ItemID:      event.ItemID,
		CreatedAt:   c.now(),
	}
}

// resolveMentions returns the ids of existing users mentioned in text, in
// mention order. Unknown usernames are dropped.
func (c *FanOutNotifications) resolveMentions(ctx context.Context, text string) ([]string, error) {
	var usernames []string
	seen := make(map[string]bool)
	for _, m := range c.MentionPolicy.Extract(text) {
		u := strings.ToLower(m)
		if !seen[u] {
			seen[u] = true
			usernames = append(usernames, u)
		}
	}
	if len(usernames) == 0 {
		return nil, nil
	}

	// Looked up on every event so a renamed user is never notified under
	// their old handle.
	users, lookupErr := c.UserLister.ListUsersByUsernames(ctx, usernames)
	ids := make(map[string]string, len(users))
	for _, user := range users {
		ids[strings.ToLower(user.Username)] = user.ID
	}

	result := make([]string, 0, len(ids))
	for _, u := range usernames {
		if id, ok := ids[u]; ok {
			result = append(result, id)
		}
	}
	return result, lookupErr
}

func (c *FanOutNotifications) push(ctx context.Context, notifications []domain.Notification) {
	logger := domain.LoggerFromContext(ctx)

	var g errgroup.Group
	limit := c.PushConcurrency
	if limit < 1 {
		limit = defaultPushConcurrency
	}
	g.SetLimit(limit)

	for _, n := range notifications {
		tokens, err := c.DeviceLister.ListDeviceTokens(ctx, n.RecipientID)
		if err != nil {
			logger.WarnContext(ctx, "unable to list device tokens", "recipient_id", n.RecipientID, "error", err)
			continue
		}

		message := pushMessageFor(n)
		for _, token := range tokens {
			g.Go(func() error {
				err := c.Pusher.Push(ctx, token.Token, message)
				switch {
				case errors.Is(err, datasources.ErrDeviceUnregistered):
					if delErr := c.DeviceDeleter.DeleteDeviceToken(ctx, token.Token); delErr != nil {
						logger.WarnContext(ctx, "unable to delete unregistered device token", "error", delErr)
					}
				case err != nil:
					logger.WarnContext(ctx, "push failed", "recipient_id", n.RecipientID, "error", err)
				}
				return nil
			})
		}
	}

	_ = g.Wait()
}

var pushTitles = map[domain.NotificationKind]string{
	domain.NotificationKindComment: "New comment",
	domain.NotificationKindPray:    "Someone prayed for you",
	domain.NotificationKindLike:    "Someone liked your post",
	domain.NotificationKindMention: "You were mentioned",
	domain.NotificationKindFollow:  "New follower",
}

func pushMessageFor(n domain.Notification) domain.PushMessage {
	data := map[string]string{
		"notificationId": n.ID,
		"kind":           string(n.Kind),
		"actorId":        n.ActorID,
	}
	if n.ItemID != "" {
		data["itemId"] = n.ItemID
		data["itemKind"] = string(n.ContentKind)
	}
	return domain.PushMessage{Title: pushTitles[n.Kind], Data: data}
}
