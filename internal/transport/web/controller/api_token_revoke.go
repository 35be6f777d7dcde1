package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/beliefted/beliefted-server/internal/datasources"
	"github.com/beliefted/beliefted-server/internal/domain"
)

// APITokenRevoke handles DELETE /v1/tokens/{token_id}.
type APITokenRevoke struct {
	TokenRevoker datasources.APITokenRevoker
}

func (c APITokenRevoke) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		writeError(ctx, w, "token revoke without user", domain.ErrUnauthorized)
		return
	}

	tokenID := mux.Vars(r)["token_id"]
	if err := c.TokenRevoker.RevokeAPIToken(ctx, tokenID, userID); err != nil {
		writeError(ctx, w, "unable to revoke API token", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
