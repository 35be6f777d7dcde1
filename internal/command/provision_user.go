package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/beliefted/beliefted-server/internal/datasources"
	"github.com/beliefted/beliefted-server/internal/domain"
)

type ProvisionUserRequest struct {
	UserID      string
	DisplayName string
	Username    string
	ImageURL    string
}

// ProvisionUser creates or updates the caller's own profile.
type ProvisionUser struct {
	Upserter datasources.UserUpserter
	Fetcher  datasources.UserFetcher

	now func() time.Time
}

func NewProvisionUser(upserter datasources.UserUpserter, fetcher datasources.UserFetcher) *ProvisionUser {
	return &ProvisionUser{Upserter: upserter, Fetcher: fetcher, now: time.Now}
}

func (c *ProvisionUser) Execute(ctx context.Context, req ProvisionUserRequest) (domain.User, error) {
	if req.UserID == "" {
		return domain.User{}, domain.ErrUnauthorized
	}

	username, err := domain.NormalizeUsername(req.Username)
	if err != nil {
		return domain.User{}, err
	}
	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		return domain.User{}, fmt.Errorf("%w: display name is required", domain.ErrInvalidInput)
	}

	if err := c.Upserter.UpsertUser(ctx, domain.User{
		ID:          req.UserID,
		DisplayName: displayName,
		Username:    username,
		ImageURL:    strings.TrimSpace(req.ImageURL),
		CreatedAt:   c.now(),
	}); err != nil {
		return domain.User{}, fmt.Errorf("saving profile: %w", err)
	}

	user, err := c.Fetcher.FetchUser(ctx, req.UserID)
	if err != nil {
		return domain.User{}, fmt.Errorf("reading back profile: %w", err)
	}
	return user, nil
}
