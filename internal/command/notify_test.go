package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/beliefted/beliefted-server/internal/datasources"
	"github.com/beliefted/beliefted-server/internal/datasources/mocks"
	"github.com/beliefted/beliefted-server/internal/domain"
)

type fanOutMocks struct {
	users    *mocks.MockUsersByUsernameLister
	inserter *mocks.MockNotificationInserter
	devices  *mocks.MockDeviceTokenLister
	deleter  *mocks.MockDeviceTokenDeleter
	pusher   *mocks.MockPusher
}

func newTestFanOut(t *testing.T) (*FanOutNotifications, fanOutMocks) {
	m := fanOutMocks{
		users:    mocks.NewMockUsersByUsernameLister(t),
		inserter: mocks.NewMockNotificationInserter(t),
		devices:  mocks.NewMockDeviceTokenLister(t),
		deleter:  mocks.NewMockDeviceTokenDeleter(t),
		pusher:   mocks.NewMockPusher(t),
	}
	cmd := NewFanOutNotifications(m.users, m.inserter, m.devices, m.deleter, m.pusher)
	cmd.now = testTime
	return cmd, m
}

type recipientKind struct {
	RecipientID string
	Kind        domain.NotificationKind
}

func recipientKinds(notifications []domain.Notification) []recipientKind {
	out := make([]recipientKind, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, recipientKind{n.RecipientID, n.Kind})
	}
	return out
}

func TestFanOutNotifications_Execute_OwnerAndMentions(t *testing.T) {
	cmd, m := newTestFanOut(t)

	m.users.EXPECT().
		ListUsersByUsernames(mock.Anything, []string{"alice", "bob", "ghost", "actor"}).
		Return([]domain.User{
			{ID: "alice-id", Username: "alice"},
			{ID: "author1", Username: "bob"},
			{ID: "u1", Username: "actor"},
		}, nil)

	var inserted []domain.Notification
	m.inserter.EXPECT().
		InsertNotifications(mock.Anything, mock.Anything).
		Run(func(_ context.Context, notifications []domain.Notification) {
			inserted = notifications
		}).
		Return(nil)

	m.devices.EXPECT().ListDeviceTokens(mock.Anything, "author1").
		Return([]domain.DeviceToken{{Token: "stale-token", UserID: "author1"}}, nil)
	m.devices.EXPECT().ListDeviceTokens(mock.Anything, "alice-id").
		Return([]domain.DeviceToken{{Token: "alice-phone", UserID: "alice-id"}}, nil)
	m.pusher.EXPECT().Push(mock.Anything, "stale-token", mock.Anything).
		Return(datasources.ErrDeviceUnregistered)
	m.pusher.EXPECT().Push(mock.Anything, "alice-phone", mock.Anything).
		Return(nil)
	m.deleter.EXPECT().DeleteDeviceToken(mock.Anything, "stale-token").Return(nil)

	_, err := cmd.Execute(testContext(), domain.NotificationEvent{
		ID:          "event-1",
		Kind:        domain.NotificationKindComment,
		ActorID:     "u1",
		RecipientID: "author1",
		ContentKind: domain.ContentKindPrayer,
		ItemID:      testItemID,
		Text:        "thanks @Alice and @bob, @ghost and @actor @alice",
	})
	require.NoError(t, err)

	assert.Equal(t, []recipientKind{
		{"author1", domain.NotificationKindComment},
		{"alice-id", domain.NotificationKindMention},
	}, recipientKinds(inserted))
	for _, n := range inserted {
		assert.Equal(t, "u1", n.ActorID)
		assert.Equal(t, testItemID, n.ItemID)
		assert.Equal(t, domain.ContentKindPrayer, n.ContentKind)
		assert.Equal(t, testTime(), n.CreatedAt)
		assert.Nil(t, n.ReadAt)
		_, err := domain.ParseID(n.ID)
		assert.NoError(t, err)
	}
}

func TestFanOutNotifications_Execute_NothingToNotify(t *testing.T) {
	cases := []struct {
		name  string
		event domain.NotificationEvent
	}{
		{
			name:  "actor_is_recipient",
			event: domain.NotificationEvent{Kind: domain.NotificationKindLike, ActorID: "u1", RecipientID: "u1"},
		},
		{
			name:  "no_recipient_and_no_mentions",
			event: domain.NotificationEvent{Kind: domain.NotificationKindMention, ActorID: "u1", Text: "amen"},
		},
		{
			name:  "email_address_is_not_a_mention",
			event: domain.NotificationEvent{Kind: domain.NotificationKindMention, ActorID: "u1", Text: "mail foo@bar.com"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, _ := newTestFanOut(t)
			_, err := cmd.Execute(testContext(), tc.event)
			require.NoError(t, err)
		})
	}
}

func TestFanOutNotifications_Execute_ResolvesRenamedUsername(t *testing.T) {
	cmd, m := newTestFanOut(t)

	m.users.EXPECT().
		ListUsersByUsernames(mock.Anything, []string{"alice"}).
		Return([]domain.User{{ID: "alice-id", Username: "alice"}}, nil).
		Once()
	m.users.EXPECT().
		ListUsersByUsernames(mock.Anything, []string{"alice"}).
		Return([]domain.User{{ID: "new-owner-id", Username: "alice"}}, nil).
		Once()

	var recipients []string
	m.inserter.EXPECT().InsertNotifications(mock.Anything, mock.Anything).
		Run(func(_ context.Context, n []domain.Notification) {
			for _, notification := range n {
				recipients = append(recipients, notification.RecipientID)
			}
		}).
		Return(nil).
		Twice()
	m.devices.EXPECT().ListDeviceTokens(mock.Anything, "alice-id").Return(nil, nil).Once()
	m.devices.EXPECT().ListDeviceTokens(mock.Anything, "new-owner-id").Return(nil, nil).Once()

	event := domain.NotificationEvent{Kind: domain.NotificationKindMention, ActorID: "u1", Text: "@alice look"}
	_, err := cmd.Execute(testContext(), event)
	require.NoError(t, err)
	_, err = cmd.Execute(testContext(), event)
	require.NoError(t, err)

	assert.Equal(t, []string{"alice-id", "new-owner-id"}, recipients)
}

func TestFanOutNotifications_Execute_Failures(t *testing.T) {
	t.Run("lookup_error_still_notifies_owner", func(t *testing.T) {
		cmd, m := newTestFanOut(t)

		m.users.EXPECT().ListUsersByUsernames(mock.Anything, []string{"alice"}).
			Return(nil, errors.New("db down"))
		m.inserter.EXPECT().
			InsertNotifications(mock.Anything, mock.MatchedBy(func(n []domain.Notification) bool {
				return len(n) == 1 && n[0].RecipientID == "author1"
			})).
			Return(nil)
		m.devices.EXPECT().ListDeviceTokens(mock.Anything, "author1").Return(nil, nil)

		_, err := cmd.Execute(testContext(), domain.NotificationEvent{
			Kind: domain.NotificationKindComment, ActorID: "u1", RecipientID: "author1", Text: "hi @alice",
		})
		assert.ErrorContains(t, err, "resolving mentions")
	})

	t.Run("insert_error_is_returned_and_push_still_attempted", func(t *testing.T) {
		cmd, m := newTestFanOut(t)

		m.inserter.EXPECT().InsertNotifications(mock.Anything, mock.Anything).
			Return(errors.New("bulk write exception"))
		m.devices.EXPECT().ListDeviceTokens(mock.Anything, "author1").
			Return([]domain.DeviceToken{{Token: "phone"}}, nil)
		m.pusher.EXPECT().Push(mock.Anything, "phone", mock.Anything).Return(errors.New("gateway timeout"))

		_, err := cmd.Execute(testContext(), domain.NotificationEvent{
			Kind: domain.NotificationKindFollow, ActorID: "u1", RecipientID: "author1",
		})
		assert.ErrorContains(t, err, "inserting notifications")
	})
}

func TestPushMessageFor(t *testing.T) {
	msg := pushMessageFor(domain.Notification{
		ID:          "n1",
		ActorID:     "u1",
		Kind:        domain.NotificationKindPray,
		ContentKind: domain.ContentKindPrayer,
		ItemID:      testItemID,
	})
	assert.Equal(t, "Someone prayed for you", msg.Title)
	assert.Equal(t, map[string]string{
		"notificationId": "n1",
		"kind":           "pray",
		"actorId":        "u1",
		"itemId":         testItemID,
		"itemKind":       "prayer",
	}, msg.Data)

	follow := pushMessageFor(domain.Notification{ID: "n2", ActorID: "u1", Kind: domain.NotificationKindFollow})
	assert.NotContains(t, follow.Data, "itemId")
}
