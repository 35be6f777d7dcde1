package controller

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/beliefted/beliefted-server/internal/command"
	"github.com/beliefted/beliefted-server/internal/domain"
)

// InteractionToggleResponse carries the new state under both "active" and the
// interaction's own past-tense name, e.g. {"active":true,"prayed":true,"count":3}.
type InteractionToggleResponse struct {
	Active bool  `json:"active"`
	Prayed *bool `json:"prayed,omitempty"`
	Liked  *bool `json:"liked,omitempty"`
	Saved  *bool `json:"saved,omitempty"`
	Count  int   `json:"count"`
}

// InteractionToggle handles POST /v1/{kind}/{item_id}/{interaction}.
type InteractionToggle struct {
	ToggleCmd command.Command[command.ToggleInteractionRequest, command.ToggleInteractionResponse]
}

func (c InteractionToggle) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("item_id", vars["item_id"]))

	kind, err := domain.ParseContentKind(vars["kind"])
	if err != nil {
		writeError(ctx, w, "unknown content kind", err)
		return
	}

	interaction := domain.Interaction(vars["interaction"])
	switch interaction {
	case domain.InteractionPray, domain.InteractionLike, domain.InteractionSave:
	default:
		writeError(ctx, w, "unknown interaction",
			fmt.Errorf("%w: unknown interaction [%s]", domain.ErrInvalidInput, vars["interaction"]))
		return
	}

	result, err := c.ToggleCmd.Execute(ctx, command.ToggleInteractionRequest{
		UserID:      domain.UserIDFromContext(ctx),
		Kind:        kind,
		ItemID:      vars["item_id"],
		Interaction: interaction,
	})
	if err != nil {
		writeError(ctx, w, "unable to toggle interaction", err)
		return
	}

	resp := InteractionToggleResponse{Active: result.Active, Count: result.Count}
	active := result.Active
	switch interaction {
	case domain.InteractionPray:
		resp.Prayed = &active
	case domain.InteractionLike:
		resp.Liked = &active
	case domain.InteractionSave:
		resp.Saved = &active
	}

	writeJSON(ctx, w, http.StatusOK, resp)
}
