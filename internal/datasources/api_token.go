package datasources

import (
	"context"
	"time"

	"github.com/beliefted/beliefted-server/internal/domain"
)

type APITokenCreator interface {
	CreateAPIToken(
		ctx context.Context,
		id, userID, tokenHash, tokenPrefix string,
		name *string,
		expiresAt *time.Time,
	) error
}

// APITokenByHashGetter returns domain.ErrNotFound for unknown hashes.
type APITokenByHashGetter interface {
	GetAPITokenByHash(ctx context.Context, tokenHash string) (domain.APIToken, error)
}

type APITokenLastUsedUpdater interface {
	UpdateAPITokenLastUsed(ctx context.Context, tokenID string) error
}

type UserAPITokenLister interface {
	ListUserAPITokens(ctx context.Context, userID string) ([]domain.APIToken, error)
}

type UserAPITokenCounter interface {
	CountUserActiveAPITokens(ctx context.Context, userID string) (int64, error)
}

// APITokenRevoker revokes one of the user's own tokens.
type APITokenRevoker interface {
	RevokeAPIToken(ctx context.Context, tokenID, userID string) error
}

type APITokenRepository interface {
	APITokenCreator
	APITokenByHashGetter
	APITokenLastUsedUpdater
	UserAPITokenLister
	UserAPITokenCounter
	APITokenRevoker
}
