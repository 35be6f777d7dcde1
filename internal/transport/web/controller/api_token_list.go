package controller

import (
	"net/http"
	"time"

	"github.com/beliefted/beliefted-server/internal/datasources"
	"github.com/beliefted/beliefted-server/internal/domain"
)

type APITokenListItem struct {
	ID         string     `json:"id"`
	Prefix     string     `json:"prefix"`
	Name       *string    `json:"name,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	Active     bool       `json:"active"`
}

type APITokenListResponse struct {
	Data []APITokenListItem `json:"data"`
}

// APITokenList handles GET /v1/tokens.
type APITokenList struct {
	TokenLister datasources.UserAPITokenLister
}

func (c APITokenList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		writeError(ctx, w, "token list without user", domain.ErrUnauthorized)
		return
	}

	tokens, err := c.TokenLister.ListUserAPITokens(ctx, userID)
	if err != nil {
		writeError(ctx, w, "unable to list API tokens", err)
		return
	}

	resp := APITokenListResponse{Data: make([]APITokenListItem, 0, len(tokens))}
	for _, token := range tokens {
		resp.Data = append(resp.Data, APITokenListItem{
			ID:         token.ID,
			Prefix:     token.Prefix,
			Name:       token.Name,
			CreatedAt:  token.CreatedAt,
			LastUsedAt: token.LastUsedAt,
			ExpiresAt:  token.ExpiresAt,
			Active:     token.IsActive(),
		})
	}

	writeJSON(ctx, w, http.StatusOK, resp)
}
