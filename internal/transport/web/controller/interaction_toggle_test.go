package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/beliefted/beliefted-server/internal/command"
	cmdmocks "github.com/beliefted/beliefted-server/internal/command/mocks"
	"github.com/beliefted/beliefted-server/internal/domain"
)

func TestInteractionToggle_ServeHTTP(t *testing.T) {
	cases := []struct {
		name        string
		kind        string
		interaction string
		userID      string
		wantReq     *command.ToggleInteractionRequest
		result      command.ToggleInteractionResponse
		cmdErr      error
		wantStatus  int
		wantKey     string
		wantActive  bool
		wantCount   int
	}{
		{
			name:        "pray_added",
			kind:        "prayers",
			interaction: "pray",
			userID:      "user-a",
			wantReq: &command.ToggleInteractionRequest{
				UserID: "user-a", Kind: domain.ContentKindPrayer, ItemID: testItemID, Interaction: domain.InteractionPray,
			},
			result:     command.ToggleInteractionResponse{Active: true, Count: 3},
			wantStatus: http.StatusOK,
			wantKey:    "prayed",
			wantActive: true,
			wantCount:  3,
		},
		{
			name:        "like_removed",
			kind:        "words",
			interaction: "like",
			userID:      "user-a",
			wantReq: &command.ToggleInteractionRequest{
				UserID: "user-a", Kind: domain.ContentKindWord, ItemID: testItemID, Interaction: domain.InteractionLike,
			},
			result:     command.ToggleInteractionResponse{Active: false, Count: 0},
			wantStatus: http.StatusOK,
			wantKey:    "liked",
		},
		{
			name:        "save_story",
			kind:        "stories",
			interaction: "save",
			userID:      "user-a",
			wantReq: &command.ToggleInteractionRequest{
				UserID: "user-a", Kind: domain.ContentKindStory, ItemID: testItemID, Interaction: domain.InteractionSave,
			},
			result:     command.ToggleInteractionResponse{Active: true, Count: 1},
			wantStatus: http.StatusOK,
			wantKey:    "saved",
			wantActive: true,
			wantCount:  1,
		},
		{
			name:        "unknown_kind",
			kind:        "journals",
			interaction: "save",
			userID:      "user-a",
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "unknown_interaction",
			kind:        "prayers",
			interaction: "share",
			userID:      "user-a",
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "unauthorized",
			kind:        "prayers",
			interaction: "pray",
			wantReq: &command.ToggleInteractionRequest{
				Kind: domain.ContentKindPrayer, ItemID: testItemID, Interaction: domain.InteractionPray,
			},
			cmdErr:     domain.ErrUnauthorized,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:        "item_not_found",
			kind:        "prayers",
			interaction: "pray",
			userID:      "user-a",
			wantReq: &command.ToggleInteractionRequest{
				UserID: "user-a", Kind: domain.ContentKindPrayer, ItemID: testItemID, Interaction: domain.InteractionPray,
			},
			cmdErr:     domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:        "storage_error",
			kind:        "prayers",
			interaction: "pray",
			userID:      "user-a",
			wantReq: &command.ToggleInteractionRequest{
				UserID: "user-a", Kind: domain.ContentKindPrayer, ItemID: testItemID, Interaction: domain.InteractionPray,
			},
			cmdErr:     errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := cmdmocks.NewMockCommand[command.ToggleInteractionRequest, command.ToggleInteractionResponse](t)
			if tc.wantReq != nil {
				cmd.EXPECT().Execute(mock.Anything, *tc.wantReq).Return(tc.result, tc.cmdErr)
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/"+tc.kind+"/"+testItemID+"/"+tc.interaction, nil)
			req = testContextWithUserID(tc.userID)(req)
			req = mux.SetURLVars(req, map[string]string{
				"kind":        tc.kind,
				"item_id":     testItemID,
				"interaction": tc.interaction,
			})
			rec := httptest.NewRecorder()

			InteractionToggle{ToggleCmd: cmd}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus != http.StatusOK {
				return
			}

			var body map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tc.wantActive, body["active"])
			assert.Equal(t, tc.wantActive, body[tc.wantKey])
			assert.EqualValues(t, tc.wantCount, body["count"])
		})
	}
}
