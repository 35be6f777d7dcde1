package mysql

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beliefted/beliefted-server/internal/domain"
)

func setupTestDB(t *testing.T) *Repository {
	if testing.Short() {
		t.Skip("skipping MySQL integration tests in short mode")
	}
	uri := os.Getenv("MYSQL_URI")
	if uri == "" {
		t.Skip("MYSQL_URI not set")
	}

	db, err := Connect(context.Background(), uri)
	require.NoError(t, err)
	require.NoError(t, EnsureSchema(context.Background(), db))
	t.Cleanup(func() { _ = db.Close() })

	return New(db)
}

// uniqueName keeps rows from separate runs against the same database apart.
func uniqueName(prefix string) string {
	return prefix + "_" + uuid.NewString()[:8]
}

func TestRepository_ContentInteractions(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	word := domain.ContentItem{
		ID:        domain.NewID(),
		Kind:      domain.ContentKindWord,
		AuthorID:  uniqueName("author"),
		Title:     "Be still",
		Reference: "Psalm 46:10",
		Body:      "Be still, and know that I am God",
		CreatedAt: time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.CreateContentItem(ctx, word))

	count, err := repo.AddInteraction(ctx, domain.ContentKindWord, word.ID, domain.InteractionLike, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.AddInteraction(ctx, domain.ContentKindWord, word.ID, domain.InteractionLike, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "adding an existing member must not duplicate it")

	count, err = repo.AddInteraction(ctx, domain.ContentKindWord, word.ID, domain.InteractionLike, "u2")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = repo.AddInteraction(ctx, domain.ContentKindWord, word.ID, domain.InteractionSave, "u1")
	require.NoError(t, err)

	fetched, err := repo.FetchContentItem(ctx, domain.ContentKindWord, word.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"u1", "u2"}, fetched.LikedBy)
	assert.Equal(t, []string{"u1"}, fetched.SavedBy)
	assert.Equal(t, "Psalm 46:10", fetched.Reference)

	count, err = repo.RemoveInteraction(ctx, domain.ContentKindWord, word.ID, domain.InteractionLike, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.RemoveInteraction(ctx, domain.ContentKindWord, word.ID, domain.InteractionLike, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "removing a non-member is a no-op")

	_, err = repo.AddInteraction(ctx, domain.ContentKindStory, word.ID, domain.InteractionLike, "u1")
	assert.ErrorIs(t, err, domain.ErrNotFound, "kind must match")

	_, err = repo.AddInteraction(ctx, domain.ContentKindWord, "not-an-id", domain.InteractionLike, "u1")
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	items, err := repo.ListLatestContentItems(ctx, domain.ContentKindWord, domain.ContentListOptions{
		Page: 1, PageSize: 10, AuthorID: word.AuthorID,
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, word.ID, items[0].ID)
}

func TestRepository_Comments(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	itemID := domain.NewID()

	for i, text := range []string{"first", "second"} {
		require.NoError(t, repo.CreateComment(ctx, domain.Comment{
			ID:          domain.NewID(),
			ContentKind: domain.ContentKindPrayer,
			ItemID:      itemID,
			AuthorID:    "u1",
			Content:     text,
			CreatedAt:   time.Date(2024, 4, 27, 12, i, 0, 0, time.UTC),
		}))
	}

	comments, err := repo.ListComments(ctx, domain.ContentKindPrayer, itemID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, "second", comments[1].Content)
}

func TestRepository_UsersAndFollowers(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	alice := domain.User{ID: uniqueName("auth0|alice"), DisplayName: "Alice", Username: uniqueName("alice")}
	bob := domain.User{ID: uniqueName("auth0|bob"), DisplayName: "Bob", Username: uniqueName("bob")}
	require.NoError(t, repo.UpsertUser(ctx, alice))
	require.NoError(t, repo.UpsertUser(ctx, bob))

	err := repo.UpsertUser(ctx, domain.User{ID: bob.ID, DisplayName: "Bob", Username: alice.Username})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	alice.DisplayName = "Alice A."
	require.NoError(t, repo.UpsertUser(ctx, alice))
	fetched, err := repo.FetchUserByUsername(ctx, alice.Username)
	require.NoError(t, err)
	assert.Equal(t, "Alice A.", fetched.DisplayName)

	count, err := repo.AddFollower(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	count, err = repo.AddFollower(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	following, err := repo.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	fetched, err = repo.FetchUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fetched.FollowerCount)

	count, err = repo.RemoveFollower(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = repo.AddFollower(ctx, uniqueName("missing"), bob.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	users, err := repo.ListUsersByUsernames(ctx, []string{alice.Username, "nobody_here"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, alice.ID, users[0].ID)

	found, err := repo.SearchUsers(ctx, alice.Username, 5)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, alice.ID, found[0].ID)
}

func TestRepository_Notifications(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	recipient := uniqueName("recipient")

	first := domain.Notification{
		ID:          domain.NewID(),
		RecipientID: recipient,
		ActorID:     "actor",
		Kind:        domain.NotificationKindLike,
		ContentKind: domain.ContentKindWord,
		ItemID:      domain.NewID(),
		CreatedAt:   time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC),
	}
	second := first
	second.ID = domain.NewID()
	second.Kind = domain.NotificationKindFollow
	second.CreatedAt = first.CreatedAt.Add(time.Minute)
	require.NoError(t, repo.InsertNotifications(ctx, []domain.Notification{first}))

	err := repo.InsertNotifications(ctx, []domain.Notification{first, second})
	assert.Error(t, err, "duplicate id must be reported")

	list, err := repo.ListNotifications(ctx, recipient, 1, 10)
	require.NoError(t, err)
	require.Len(t, list, 2, "the record after the failing one is still stored")
	assert.Equal(t, second.ID, list[0].ID)
	assert.Nil(t, list[0].ReadAt)

	require.NoError(t, repo.MarkNotificationsRead(ctx, recipient, time.Now()))
	list, err = repo.ListNotifications(ctx, recipient, 1, 10)
	require.NoError(t, err)
	assert.NotNil(t, list[0].ReadAt)

	require.NoError(t, repo.DeleteNotification(ctx, first.ID, "someone-else"))
	require.NoError(t, repo.DeleteNotification(ctx, first.ID, recipient))
	require.NoError(t, repo.DeleteNotification(ctx, first.ID, recipient))
	list, err = repo.ListNotifications(ctx, recipient, 1, 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRepository_DeviceAndAPITokens(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	token := uniqueName("fcm")
	alice, bob := uniqueName("alice"), uniqueName("bob")

	require.NoError(t, repo.RegisterDeviceToken(ctx, domain.DeviceToken{
		Token: token, UserID: alice, Platform: "android", CreatedAt: time.Now(),
	}))
	require.NoError(t, repo.RegisterDeviceToken(ctx, domain.DeviceToken{
		Token: token, UserID: bob, Platform: "android", CreatedAt: time.Now(),
	}))

	tokens, err := repo.ListDeviceTokens(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, tokens)
	tokens, err = repo.ListDeviceTokens(ctx, bob)
	require.NoError(t, err)
	require.Len(t, tokens, 1)

	require.NoError(t, repo.DeleteDeviceToken(ctx, token))
	tokens, err = repo.ListDeviceTokens(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, tokens)

	id := uuid.NewString()
	hash := uuid.NewString() + uuid.NewString()[:28]
	name := "ci"
	require.NoError(t, repo.CreateAPIToken(ctx, id, alice, hash, "bt_abcd", &name, nil))

	apiToken, err := repo.GetAPITokenByHash(ctx, hash)
	require.NoError(t, err)
	assert.Equal(t, alice, apiToken.UserID)
	require.NotNil(t, apiToken.Name)
	assert.Equal(t, "ci", *apiToken.Name)
	assert.True(t, apiToken.IsActive())

	n, err := repo.CountUserActiveAPITokens(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, repo.RevokeAPIToken(ctx, id, alice))
	n, err = repo.CountUserActiveAPITokens(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	_, err = repo.GetAPITokenByHash(ctx, "unknown")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
