package controller

import (
	"net/http"
	"time"

	"github.com/beliefted/beliefted-server/internal/command"
	"github.com/beliefted/beliefted-server/internal/domain"
)

type APITokenCreateRequest struct {
	Name          string `json:"name,omitempty"`
	ExpiresInDays int    `json:"expires_in_days,omitempty"`
}

// APITokenCreateResponse carries the full token. It is only ever shown once.
type APITokenCreateResponse struct {
	ID        string     `json:"id"`
	Token     string     `json:"token"`
	Prefix    string     `json:"prefix"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// APITokenCreate handles POST /v1/tokens.
type APITokenCreate struct {
	CreateCmd command.Command[command.CreateAPITokenRequest, command.CreateAPITokenResponse]
}

func (c APITokenCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body APITokenCreateRequest
	if r.ContentLength > 0 {
		if err := decodeJSONBody(r, &body); err != nil {
			writeError(ctx, w, "unable to parse token request", err)
			return
		}
	}

	req := command.CreateAPITokenRequest{
		UserID:    domain.UserIDFromContext(ctx),
		ExpiresIn: time.Duration(body.ExpiresInDays) * 24 * time.Hour,
	}
	if body.Name != "" {
		req.Name = &body.Name
	}

	result, err := c.CreateCmd.Execute(ctx, req)
	if err != nil {
		writeError(ctx, w, "unable to create API token", err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, APITokenCreateResponse{
		ID:        result.TokenID,
		Token:     result.FullToken,
		Prefix:    result.Prefix,
		ExpiresAt: result.ExpiresAt,
	})
}
