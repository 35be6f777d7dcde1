package command

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cmdmocks "github.com/beliefted/beliefted-server/internal/command/mocks"
	"github.com/beliefted/beliefted-server/internal/datasources/mocks"
	"github.com/beliefted/beliefted-server/internal/domain"
)

func TestPostComment_Execute(t *testing.T) {
	fetcher := mocks.NewMockContentFetcher(t)
	creator := mocks.NewMockCommentCreator(t)
	dispatcher := cmdmocks.NewMockEventDispatcher(t)

	fetcher.EXPECT().
		FetchContentItem(mock.Anything, domain.ContentKindPrayer, testItemID).
		Return(domain.ContentItem{ID: testItemID, AuthorID: "author1"}, nil)
	creator.EXPECT().
		CreateComment(mock.Anything, mock.MatchedBy(func(c domain.Comment) bool {
			return c.AuthorID == "u1" && c.ItemID == testItemID && c.Content == "Praying @alice"
		})).
		Return(nil)
	dispatcher.EXPECT().
		Dispatch(mock.Anything, domain.NotificationEvent{
			Kind:        domain.NotificationKindComment,
			ActorID:     "u1",
			RecipientID: "author1",
			ContentKind: domain.ContentKindPrayer,
			ItemID:      testItemID,
			Text:        "Praying @alice",
		}).
		Return(true)

	cmd := NewPostComment(fetcher, creator, dispatcher)
	cmd.now = testTime

	comment, err := cmd.Execute(testContext(), PostCommentRequest{
		UserID:   "u1",
		ItemKind: domain.ContentKindPrayer,
		ItemID:   `ObjectId('` + testItemID + `')`,
		Content:  "  Praying @alice ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Praying @alice", comment.Content)
	assert.Equal(t, testTime(), comment.CreatedAt)
	assert.Equal(t, domain.ContentKindPrayer, comment.ContentKind)
}

func TestPostComment_Execute_ResolvesKind(t *testing.T) {
	fetcher := mocks.NewMockContentFetcher(t)
	creator := mocks.NewMockCommentCreator(t)
	dispatcher := cmdmocks.NewMockEventDispatcher(t)

	fetcher.EXPECT().
		FetchContentItem(mock.Anything, domain.ContentKindPrayer, testItemID).
		Return(domain.ContentItem{}, domain.ErrNotFound)
	fetcher.EXPECT().
		FetchContentItem(mock.Anything, domain.ContentKindWord, testItemID).
		Return(domain.ContentItem{ID: testItemID, Kind: domain.ContentKindWord, AuthorID: "author1"}, nil)
	creator.EXPECT().
		CreateComment(mock.Anything, mock.MatchedBy(func(c domain.Comment) bool {
			return c.ContentKind == domain.ContentKindWord && c.ItemID == testItemID
		})).
		Return(nil)
	dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.MatchedBy(func(e domain.NotificationEvent) bool {
			return e.ContentKind == domain.ContentKindWord && e.RecipientID == "author1"
		})).
		Return(true)

	cmd := NewPostComment(fetcher, creator, dispatcher)
	cmd.now = testTime

	comment, err := cmd.Execute(testContext(), PostCommentRequest{
		UserID:  "u1",
		ItemID:  testItemID,
		Content: "Amen",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ContentKindWord, comment.ContentKind)
}

func TestPostComment_Execute_Rejects(t *testing.T) {
	cases := []struct {
		name      string
		req       PostCommentRequest
		fetchErr     error
		wantFetch    bool
		wantFetchAll bool
		wantErrIs    error
	}{
		{
			name:      "no_user",
			req:       PostCommentRequest{ItemKind: domain.ContentKindWord, ItemID: testItemID, Content: "hi"},
			wantErrIs: domain.ErrUnauthorized,
		},
		{
			name:      "blank_content",
			req:       PostCommentRequest{UserID: "u1", ItemKind: domain.ContentKindWord, ItemID: testItemID, Content: "   "},
			wantErrIs: domain.ErrInvalidInput,
		},
		{
			name: "content_too_long",
			req: PostCommentRequest{
				UserID: "u1", ItemKind: domain.ContentKindWord, ItemID: testItemID,
				Content: strings.Repeat("a", MaxCommentLength+1),
			},
			wantErrIs: domain.ErrInvalidInput,
		},
		{
			name:      "missing_item_id",
			req:       PostCommentRequest{UserID: "u1", ItemKind: domain.ContentKindWord, Content: "hi"},
			wantErrIs: domain.ErrInvalidID,
		},
		{
			name:      "item_not_found",
			req:       PostCommentRequest{UserID: "u1", ItemKind: domain.ContentKindWord, ItemID: testItemID, Content: "hi"},
			fetchErr:  domain.ErrNotFound,
			wantFetch: true,
			wantErrIs: domain.ErrNotFound,
		},
		{
			name:         "item_not_found_in_any_kind",
			req:          PostCommentRequest{UserID: "u1", ItemID: testItemID, Content: "hi"},
			fetchErr:     domain.ErrNotFound,
			wantFetchAll: true,
			wantErrIs:    domain.ErrNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockContentFetcher(t)
			if tc.wantFetchAll {
				for _, kind := range domain.ContentKinds {
					fetcher.EXPECT().
						FetchContentItem(mock.Anything, kind, testItemID).
						Return(domain.ContentItem{}, tc.fetchErr)
				}
			}
			if tc.wantFetch {
				fetcher.EXPECT().
					FetchContentItem(mock.Anything, tc.req.ItemKind, testItemID).
					Return(domain.ContentItem{}, tc.fetchErr)
			}

			cmd := NewPostComment(fetcher, mocks.NewMockCommentCreator(t), cmdmocks.NewMockEventDispatcher(t))
			_, err := cmd.Execute(testContext(), tc.req)
			assert.ErrorIs(t, err, tc.wantErrIs)
		})
	}
}

func TestPostComment_Execute_ResolveStopsOnLookupError(t *testing.T) {
	fetcher := mocks.NewMockContentFetcher(t)
	fetcher.EXPECT().
		FetchContentItem(mock.Anything, domain.ContentKindPrayer, testItemID).
		Return(domain.ContentItem{}, errors.New("connection reset"))

	cmd := NewPostComment(fetcher, mocks.NewMockCommentCreator(t), cmdmocks.NewMockEventDispatcher(t))
	_, err := cmd.Execute(testContext(), PostCommentRequest{UserID: "u1", ItemID: testItemID, Content: "hi"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
