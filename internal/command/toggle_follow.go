package command

import (
	"context"
	"fmt"

	"github.com/beliefted/beliefted-server/internal/datasources"
	"github.com/beliefted/beliefted-server/internal/domain"
)

type ToggleFollowRequest struct {
	UserID   string
	Username string
}

type ToggleFollowResponse struct {
	Following     bool
	FollowerCount int
}

// ToggleFollow adds the user to, or removes them from, the target's follower
// set with the same set semantics as ToggleInteraction.
type ToggleFollow struct {
	UserFetcher    datasources.UserByUsernameFetcher
	FollowChecker  datasources.FollowChecker
	FollowerSetter datasources.FollowerSetter
	Dispatcher     EventDispatcher
}

func NewToggleFollow(
	userFetcher datasources.UserByUsernameFetcher,
	followChecker datasources.FollowChecker,
	followerSetter datasources.FollowerSetter,
	dispatcher EventDispatcher,
) *ToggleFollow {
	return &ToggleFollow{
		UserFetcher:    userFetcher,
		FollowChecker:  followChecker,
		FollowerSetter: followerSetter,
		Dispatcher:     dispatcher,
	}
}

func (c *ToggleFollow) Execute(ctx context.Context, req ToggleFollowRequest) (ToggleFollowResponse, error) {
	if req.UserID == "" {
		return ToggleFollowResponse{}, domain.ErrUnauthorized
	}

	username, err := domain.NormalizeUsername(req.Username)
	if err != nil {
		return ToggleFollowResponse{}, err
	}

	target, err := c.UserFetcher.FetchUserByUsername(ctx, username)
	if err != nil {
		return ToggleFollowResponse{}, fmt.Errorf("fetching followed user: %w", err)
	}
	if target.ID == req.UserID {
		return ToggleFollowResponse{}, fmt.Errorf("%w: cannot follow yourself", domain.ErrInvalidInput)
	}

	wasFollowing, err := c.FollowChecker.IsFollowing(ctx, target.ID, req.UserID)
	if err != nil {
		return ToggleFollowResponse{}, fmt.Errorf("checking follow state: %w", err)
	}

	var count int
	if wasFollowing {
		count, err = c.FollowerSetter.RemoveFollower(ctx, target.ID, req.UserID)
	} else {
		count, err = c.FollowerSetter.AddFollower(ctx, target.ID, req.UserID)
	}
	if err != nil {
		return ToggleFollowResponse{}, fmt.Errorf("updating followers: %w", err)
	}

	if !wasFollowing {
		c.Dispatcher.Dispatch(ctx, domain.NotificationEvent{
			Kind:        domain.NotificationKindFollow,
			ActorID:     req.UserID,
			RecipientID: target.ID,
		})
	}

	return ToggleFollowResponse{Following: !wasFollowing, FollowerCount: count}, nil
}
