package command

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/beliefted/beliefted-server/internal/datasources"
	"github.com/beliefted/beliefted-server/internal/domain"
)

const (
	MaxAPITokensPerUser = 10
	maxAPITokenName     = 100
)

// ErrTokenLimitExceeded is returned when a user already holds MaxAPITokensPerUser active tokens.
var ErrTokenLimitExceeded = fmt.Errorf("%w: maximum number of active API tokens reached", domain.ErrConflict)

// APITokenPrefix marks bearer credentials that are API tokens rather than JWTs.
const APITokenPrefix = "bt_pat_"

type CreateAPITokenRequest struct {
	UserID    string
	Name      *string
	ExpiresIn time.Duration
}

type CreateAPITokenResponse struct {
	TokenID   string
	FullToken string
	Prefix    string
	ExpiresAt *time.Time
}

type CreateAPIToken struct {
	TokenCounter datasources.UserAPITokenCounter
	TokenCreator datasources.APITokenCreator

	now func() time.Time
}

func NewCreateAPIToken(
	tokenCounter datasources.UserAPITokenCounter,
	tokenCreator datasources.APITokenCreator,
) *CreateAPIToken {
	return &CreateAPIToken{
		TokenCounter: tokenCounter,
		TokenCreator: tokenCreator,
		now:          time.Now,
	}
}

// HashAPIToken returns the stored form of a full token.
func HashAPIToken(fullToken string) string {
	hash := sha256.Sum256([]byte(fullToken))
	return hex.EncodeToString(hash[:])
}

func (c *CreateAPIToken) Execute(ctx context.Context, req CreateAPITokenRequest) (CreateAPITokenResponse, error) {
	if req.UserID == "" {
		return CreateAPITokenResponse{}, domain.ErrUnauthorized
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if utf8.RuneCountInString(name) > maxAPITokenName {
			return CreateAPITokenResponse{}, fmt.Errorf("%w: token name too long", domain.ErrInvalidInput)
		}
		req.Name = &name
	}
	if req.ExpiresIn < 0 {
		return CreateAPITokenResponse{}, fmt.Errorf("%w: negative expiry", domain.ErrInvalidInput)
	}

	count, err := c.TokenCounter.CountUserActiveAPITokens(ctx, req.UserID)
	if err != nil {
		return CreateAPITokenResponse{}, fmt.Errorf("counting user tokens: %w", err)
	}
	if count >= MaxAPITokensPerUser {
		return CreateAPITokenResponse{}, ErrTokenLimitExceeded
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return CreateAPITokenResponse{}, fmt.Errorf("generating random token: %w", err)
	}
	secretHex := hex.EncodeToString(secret)
	fullToken := APITokenPrefix + secretHex
	displayPrefix := APITokenPrefix + secretHex[:6]

	var expiresAt *time.Time
	if req.ExpiresIn > 0 {
		t := c.now().Add(req.ExpiresIn)
		expiresAt = &t
	}

	tokenID := uuid.NewString()
	if err := c.TokenCreator.CreateAPIToken(
		ctx, tokenID, req.UserID, HashAPIToken(fullToken), displayPrefix, req.Name, expiresAt,
	); err != nil {
		return CreateAPITokenResponse{}, fmt.Errorf("storing token: %w", err)
	}

	return CreateAPITokenResponse{
		TokenID:   tokenID,
		FullToken: fullToken,
		Prefix:    displayPrefix,
		ExpiresAt: expiresAt,
	}, nil
}
