package datasources

import (
	"context"

	"github.com/beliefted/beliefted-server/internal/domain"
)

type UserFetcher interface {
	FetchUser(ctx context.Context, id string) (domain.User, error)
}

type UserByUsernameFetcher interface {
	FetchUserByUsername(ctx context.Context, username string) (domain.User, error)
}

// UsersByUsernameLister resolves lowercase usernames to users. Unknown usernames
// are omitted from the result rather than reported as errors.
type UsersByUsernameLister interface {
	ListUsersByUsernames(ctx context.Context, usernames []string) ([]domain.User, error)
}

// UserUpserter creates or updates a profile, returning domain.ErrUsernameTaken
// if another user holds the username.
type UserUpserter interface {
	UpsertUser(ctx context.Context, user domain.User) error
}

type UserSearcher interface {
	SearchUsers(ctx context.Context, usernamePrefix string, limit int) ([]domain.User, error)
}

// FollowerSetter maintains a user's follower set with the same atomic set
// semantics as InteractionSetter.
type FollowerSetter interface {
	AddFollower(ctx context.Context, userID, followerID string) (int, error)
	RemoveFollower(ctx context.Context, userID, followerID string) (int, error)
}

type FollowChecker interface {
	IsFollowing(ctx context.Context, userID, followerID string) (bool, error)
}

type UserRepository interface {
	UserFetcher
	UserByUsernameFetcher
	UsersByUsernameLister
	UserUpserter
	UserSearcher
	FollowerSetter
	FollowChecker
}
