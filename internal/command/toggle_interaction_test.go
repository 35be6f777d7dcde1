package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cmdmocks "github.com/beliefted/beliefted-server/internal/command/mocks"
	"github.com/beliefted/beliefted-server/internal/datasources/mocks"
	"github.com/beliefted/beliefted-server/internal/domain"
)

func TestToggleInteraction_Execute(t *testing.T) {
	cases := []struct {
		name       string
		req        ToggleInteractionRequest
		item       domain.ContentItem
		fetchErr   error
		setCount   int
		setErr     error
		wantFetch  bool
		wantAdd    bool
		wantRemove bool
		wantEvent  *domain.NotificationEvent
		wantResp   ToggleInteractionResponse
		wantErrIs  error
		wantAnyErr bool
	}{
		{
			name: "pray_adds_and_notifies_author",
			req: ToggleInteractionRequest{
				UserID: "u1", Kind: domain.ContentKindPrayer, ItemID: testItemID, Interaction: domain.InteractionPray,
			},
			item:      domain.ContentItem{ID: testItemID, AuthorID: "author1"},
			setCount:  1,
			wantFetch: true,
			wantAdd:   true,
			wantEvent: &domain.NotificationEvent{
				Kind:        domain.NotificationKindPray,
				ActorID:     "u1",
				RecipientID: "author1",
				ContentKind: domain.ContentKindPrayer,
				ItemID:      testItemID,
			},
			wantResp: ToggleInteractionResponse{Active: true, Count: 1},
		},
		{
			name: "pray_again_removes_without_notification",
			req: ToggleInteractionRequest{
				UserID: "u1", Kind: domain.ContentKindPrayer, ItemID: testItemID, Interaction: domain.InteractionPray,
			},
			item:       domain.ContentItem{ID: testItemID, AuthorID: "author1", PrayedBy: []string{"u2", "u1"}},
			setCount:   1,
			wantFetch:  true,
			wantRemove: true,
			wantResp:   ToggleInteractionResponse{Active: false, Count: 1},
		},
		{
			name: "like_own_word_does_not_notify",
			req: ToggleInteractionRequest{
				UserID: "author1", Kind: domain.ContentKindWord, ItemID: testItemID, Interaction: domain.InteractionLike,
			},
			item:      domain.ContentItem{ID: testItemID, AuthorID: "author1"},
			setCount:  1,
			wantFetch: true,
			wantAdd:   true,
			wantResp:  ToggleInteractionResponse{Active: true, Count: 1},
		},
		{
			name: "save_never_notifies",
			req: ToggleInteractionRequest{
				UserID: "u1", Kind: domain.ContentKindStory, ItemID: testItemID, Interaction: domain.InteractionSave,
			},
			item:      domain.ContentItem{ID: testItemID, AuthorID: "author1"},
			setCount:  3,
			wantFetch: true,
			wantAdd:   true,
			wantResp:  ToggleInteractionResponse{Active: true, Count: 3},
		},
		{
			name: "like_on_story_notifies",
			req: ToggleInteractionRequest{
				UserID: "u1", Kind: domain.ContentKindStory, ItemID: testItemID, Interaction: domain.InteractionLike,
			},
			item:      domain.ContentItem{ID: testItemID, AuthorID: "author1", SavedBy: []string{"u1"}},
			setCount:  1,
			wantFetch: true,
			wantAdd:   true,
			wantEvent: &domain.NotificationEvent{
				Kind:        domain.NotificationKindLike,
				ActorID:     "u1",
				RecipientID: "author1",
				ContentKind: domain.ContentKindStory,
				ItemID:      testItemID,
			},
			wantResp: ToggleInteractionResponse{Active: true, Count: 1},
		},
		{
			name: "wrapped_object_id_is_normalized",
			req: ToggleInteractionRequest{
				UserID:      "u1",
				Kind:        domain.ContentKindWord,
				ItemID:      ` ObjectId("507F1F77BCF86CD799439011") `,
				Interaction: domain.InteractionSave,
			},
			item:      domain.ContentItem{ID: testItemID, AuthorID: "author1"},
			setCount:  1,
			wantFetch: true,
			wantAdd:   true,
			wantResp:  ToggleInteractionResponse{Active: true, Count: 1},
		},
		{
			name: "missing_user",
			req: ToggleInteractionRequest{
				Kind: domain.ContentKindPrayer, ItemID: testItemID, Interaction: domain.InteractionPray,
			},
			wantErrIs: domain.ErrUnauthorized,
		},
		{
			name: "pray_on_word_is_invalid",
			req: ToggleInteractionRequest{
				UserID: "u1", Kind: domain.ContentKindWord, ItemID: testItemID, Interaction: domain.InteractionPray,
			},
			wantErrIs: domain.ErrInvalidInput,
		},
		{
			name: "malformed_id",
			req: ToggleInteractionRequest{
				UserID: "u1", Kind: domain.ContentKindPrayer, ItemID: "12345", Interaction: domain.InteractionPray,
			},
			wantErrIs: domain.ErrInvalidID,
		},
		{
			name: "item_not_found",
			req: ToggleInteractionRequest{
				UserID: "u1", Kind: domain.ContentKindPrayer, ItemID: testItemID, Interaction: domain.InteractionPray,
			},
			fetchErr:  domain.ErrNotFound,
			wantFetch: true,
			wantErrIs: domain.ErrNotFound,
		},
		{
			name: "item_deleted_between_read_and_update",
			req: ToggleInteractionRequest{
				UserID: "u1", Kind: domain.ContentKindPrayer, ItemID: testItemID, Interaction: domain.InteractionPray,
			},
			item:      domain.ContentItem{ID: testItemID, AuthorID: "author1"},
			setErr:    domain.ErrNotFound,
			wantFetch: true,
			wantAdd:   true,
			wantErrIs: domain.ErrNotFound,
		},
		{
			name: "storage_error",
			req: ToggleInteractionRequest{
				UserID: "u1", Kind: domain.ContentKindPrayer, ItemID: testItemID, Interaction: domain.InteractionPray,
			},
			item:       domain.ContentItem{ID: testItemID, AuthorID: "author1"},
			setErr:     errors.New("connection reset"),
			wantFetch:  true,
			wantAdd:    true,
			wantAnyErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockContentFetcher(t)
			setter := mocks.NewMockInteractionSetter(t)
			dispatcher := cmdmocks.NewMockEventDispatcher(t)

			if tc.wantFetch {
				fetcher.EXPECT().
					FetchContentItem(mock.Anything, tc.req.Kind, testItemID).
					Return(tc.item, tc.fetchErr)
			}
			if tc.wantAdd {
				setter.EXPECT().
					AddInteraction(mock.Anything, tc.req.Kind, testItemID, tc.req.Interaction, tc.req.UserID).
					Return(tc.setCount, tc.setErr)
			}
			if tc.wantRemove {
				setter.EXPECT().
					RemoveInteraction(mock.Anything, tc.req.Kind, testItemID, tc.req.Interaction, tc.req.UserID).
					Return(tc.setCount, tc.setErr)
			}
			if tc.wantEvent != nil {
				dispatcher.EXPECT().Dispatch(mock.Anything, *tc.wantEvent).Return(true)
			}

			cmd := NewToggleInteraction(fetcher, setter, dispatcher)
			resp, err := cmd.Execute(testContext(), tc.req)

			switch {
			case tc.wantErrIs != nil:
				assert.ErrorIs(t, err, tc.wantErrIs)
			case tc.wantAnyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.wantResp, resp)
			}
		})
	}
}

func TestToggleInteraction_Execute_DispatchRejectedStillSucceeds(t *testing.T) {
	fetcher := mocks.NewMockContentFetcher(t)
	setter := mocks.NewMockInteractionSetter(t)
	dispatcher := cmdmocks.NewMockEventDispatcher(t)

	fetcher.EXPECT().
		FetchContentItem(mock.Anything, domain.ContentKindWord, testItemID).
		Return(domain.ContentItem{ID: testItemID, AuthorID: "author1"}, nil)
	setter.EXPECT().
		AddInteraction(mock.Anything, domain.ContentKindWord, testItemID, domain.InteractionLike, "u1").
		Return(7, nil)
	dispatcher.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(false)

	resp, err := NewToggleInteraction(fetcher, setter, dispatcher).Execute(testContext(), ToggleInteractionRequest{
		UserID: "u1", Kind: domain.ContentKindWord, ItemID: testItemID, Interaction: domain.InteractionLike,
	})
	require.NoError(t, err)
	assert.Equal(t, ToggleInteractionResponse{Active: true, Count: 7}, resp)
}
