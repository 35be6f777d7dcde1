package mongo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/beliefted/beliefted-server/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDB(t *testing.T) *Repository {
	if testing.Short() {
		t.Skip("skipping MongoDB integration tests in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForLog("Waiting for connections").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017/tcp")
	require.NoError(t, err)

	db, err := Connect(ctx, fmt.Sprintf("mongodb://%s:%s", host, port.Port()), "beliefted_test")
	require.NoError(t, err)
	require.NoError(t, EnsureIndexes(ctx, db))
	t.Cleanup(func() {
		_ = db.Client().Disconnect(context.Background())
	})

	return New(db)
}

func testTime() time.Time {
	return time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC)
}

func TestRepository_Integration(t *testing.T) {
	repo := setupTestDB(t)

	t.Run("content_interactions", func(t *testing.T) { testContentInteractions(t, repo) })
	t.Run("comments", func(t *testing.T) { testComments(t, repo) })
	t.Run("users_and_followers", func(t *testing.T) { testUsers(t, repo) })
	t.Run("notifications", func(t *testing.T) { testNotifications(t, repo) })
	t.Run("device_tokens", func(t *testing.T) { testDeviceTokens(t, repo) })
	t.Run("api_tokens", func(t *testing.T) { testAPITokens(t, repo) })
}

func testContentInteractions(t *testing.T, repo *Repository) {
	ctx := context.Background()
	prayer := domain.ContentItem{
		ID:        domain.NewID(),
		Kind:      domain.ContentKindPrayer,
		AuthorID:  "author1",
		Body:      "Please pray for my family",
		CreatedAt: testTime(),
	}
	require.NoError(t, repo.CreateContentItem(ctx, prayer))

	fetched, err := repo.FetchContentItem(ctx, domain.ContentKindPrayer, prayer.ID)
	require.NoError(t, err)
	assert.Equal(t, prayer.Body, fetched.Body)
	assert.Equal(t, "author1", fetched.AuthorID)
	assert.Empty(t, fetched.PrayedBy)

	count, err := repo.AddInteraction(ctx, domain.ContentKindPrayer, prayer.ID, domain.InteractionPray, "user1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Adding the same user again keeps set semantics.
	count, err = repo.AddInteraction(ctx, domain.ContentKindPrayer, prayer.ID, domain.InteractionPray, "user1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.AddInteraction(ctx, domain.ContentKindPrayer, prayer.ID, domain.InteractionPray, "user2")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = repo.AddInteraction(ctx, domain.ContentKindPrayer, prayer.ID, domain.InteractionSave, "user1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.RemoveInteraction(ctx, domain.ContentKindPrayer, prayer.ID, domain.InteractionPray, "user1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.RemoveInteraction(ctx, domain.ContentKindPrayer, prayer.ID, domain.InteractionPray, "user1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	fetched, err = repo.FetchContentItem(ctx, domain.ContentKindPrayer, prayer.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"user2"}, fetched.PrayedBy)
	assert.Equal(t, []string{"user1"}, fetched.SavedBy)

	_, err = repo.AddInteraction(ctx, domain.ContentKindPrayer, domain.NewID(), domain.InteractionPray, "user1")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.FetchContentItem(ctx, domain.ContentKindWord, prayer.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.FetchContentItem(ctx, domain.ContentKindPrayer, "not-an-id")
	require.ErrorIs(t, err, domain.ErrInvalidID)

	second := domain.ContentItem{
		ID:        domain.NewID(),
		Kind:      domain.ContentKindPrayer,
		AuthorID:  "author2",
		Body:      "Newer prayer",
		CreatedAt: testTime().Add(time.Hour),
	}
	require.NoError(t, repo.CreateContentItem(ctx, second))

	items, err := repo.ListLatestContentItems(ctx, domain.ContentKindPrayer, domain.ContentListOptions{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, prayer.ID, items[1].ID)

	items, err = repo.ListLatestContentItems(ctx, domain.ContentKindPrayer, domain.ContentListOptions{
		Page: 1, PageSize: 10, AuthorID: "author1",
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, prayer.ID, items[0].ID)
}

func testComments(t *testing.T, repo *Repository) {
	ctx := context.Background()
	itemID := domain.NewID()

	for i, content := range []string{"first", "second"} {
		require.NoError(t, repo.CreateComment(ctx, domain.Comment{
			ID:          domain.NewID(),
			ContentKind: domain.ContentKindWord,
			ItemID:      itemID,
			AuthorID:    "user1",
			Content:     content,
			CreatedAt:   testTime().Add(time.Duration(i) * time.Minute),
		}))
	}

	comments, err := repo.ListComments(ctx, domain.ContentKindWord, itemID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, "second", comments[1].Content)
}

func testUsers(t *testing.T, repo *Repository) {
	ctx := context.Background()

	require.NoError(t, repo.UpsertUser(ctx, domain.User{
		ID: "auth0|alice", DisplayName: "Alice", Username: "alice", CreatedAt: testTime(),
	}))
	require.NoError(t, repo.UpsertUser(ctx, domain.User{
		ID: "auth0|albert", DisplayName: "Albert", Username: "albert", CreatedAt: testTime(),
	}))

	err := repo.UpsertUser(ctx, domain.User{ID: "auth0|mallory", DisplayName: "M", Username: "alice"})
	require.ErrorIs(t, err, domain.ErrUsernameTaken)

	user, err := repo.FetchUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "auth0|alice", user.ID)

	_, err = repo.FetchUser(ctx, "auth0|nobody")
	require.ErrorIs(t, err, domain.ErrNotFound)

	users, err := repo.ListUsersByUsernames(ctx, []string{"alice", "nobody"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "auth0|alice", users[0].ID)

	users, err = repo.SearchUsers(ctx, "al", 10)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "albert", users[0].Username)

	users, err = repo.SearchUsers(ctx, "al.", 10)
	require.NoError(t, err)
	assert.Empty(t, users)

	count, err := repo.AddFollower(ctx, "auth0|alice", "auth0|albert")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	following, err := repo.IsFollowing(ctx, "auth0|alice", "auth0|albert")
	require.NoError(t, err)
	assert.True(t, following)

	count, err = repo.RemoveFollower(ctx, "auth0|alice", "auth0|albert")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = repo.AddFollower(ctx, "auth0|nobody", "auth0|albert")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func testNotifications(t *testing.T, repo *Repository) {
	ctx := context.Background()

	first := domain.Notification{
		ID: domain.NewID(), RecipientID: "r1", ActorID: "a1", Kind: domain.NotificationKindPray,
		ContentKind: domain.ContentKindPrayer, ItemID: domain.NewID(), CreatedAt: testTime(),
	}
	second := domain.Notification{
		ID: domain.NewID(), RecipientID: "r1", ActorID: "a2", Kind: domain.NotificationKindFollow,
		CreatedAt: testTime().Add(time.Minute),
	}
	other := domain.Notification{
		ID: domain.NewID(), RecipientID: "r2", ActorID: "a1", Kind: domain.NotificationKindMention,
		CreatedAt: testTime(),
	}
	require.NoError(t, repo.InsertNotifications(ctx, []domain.Notification{first, second, other}))

	// A duplicate id fails on its own without stopping the rest of the batch.
	third := domain.Notification{
		ID: domain.NewID(), RecipientID: "r1", ActorID: "a3", Kind: domain.NotificationKindComment,
		CreatedAt: testTime().Add(2 * time.Minute),
	}
	err := repo.InsertNotifications(ctx, []domain.Notification{first, third})
	require.Error(t, err)

	list, err := repo.ListNotifications(ctx, "r1", 1, 10)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, third.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
	assert.Nil(t, list[0].ReadAt)

	require.NoError(t, repo.MarkNotificationsRead(ctx, "r1", testTime().Add(time.Hour)))
	list, err = repo.ListNotifications(ctx, "r1", 1, 10)
	require.NoError(t, err)
	for _, n := range list {
		require.NotNil(t, n.ReadAt)
	}

	// Someone else's notification is left alone.
	require.NoError(t, repo.DeleteNotification(ctx, other.ID, "r1"))
	list, err = repo.ListNotifications(ctx, "r2", 1, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, repo.DeleteNotification(ctx, other.ID, "r2"))
	require.NoError(t, repo.DeleteNotification(ctx, other.ID, "r2"))
	list, err = repo.ListNotifications(ctx, "r2", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func testDeviceTokens(t *testing.T, repo *Repository) {
	ctx := context.Background()

	require.NoError(t, repo.RegisterDeviceToken(ctx, domain.DeviceToken{
		Token: "tok1", UserID: "u1", Platform: "android", CreatedAt: testTime(),
	}))
	require.NoError(t, repo.RegisterDeviceToken(ctx, domain.DeviceToken{
		Token: "tok2", UserID: "u1", Platform: "ios", CreatedAt: testTime(),
	}))
	require.NoError(t, repo.RegisterDeviceToken(ctx, domain.DeviceToken{
		Token: "tok2", UserID: "u2", Platform: "ios", CreatedAt: testTime(),
	}))

	tokens, err := repo.ListDeviceTokens(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "tok1", tokens[0].Token)

	require.NoError(t, repo.DeleteDeviceToken(ctx, "tok1"))
	tokens, err = repo.ListDeviceTokens(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func testAPITokens(t *testing.T, repo *Repository) {
	ctx := context.Background()
	name := "laptop"

	require.NoError(t, repo.CreateAPIToken(ctx, "tid1", "u1", "hash1", "abcd1234", &name, nil))

	token, err := repo.GetAPITokenByHash(ctx, "hash1")
	require.NoError(t, err)
	assert.Equal(t, "u1", token.UserID)
	assert.True(t, token.IsActive())

	_, err = repo.GetAPITokenByHash(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repo.UpdateAPITokenLastUsed(ctx, "tid1"))

	count, err := repo.CountUserActiveAPITokens(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.RevokeAPIToken(ctx, "tid1", "someone-else"))
	count, err = repo.CountUserActiveAPITokens(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.RevokeAPIToken(ctx, "tid1", "u1"))
	count, err = repo.CountUserActiveAPITokens(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	tokens, err := repo.ListUserAPITokens(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}
