package controller

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/beliefted/beliefted-server/internal/command"
	"github.com/beliefted/beliefted-server/internal/datasources"
	"github.com/beliefted/beliefted-server/internal/domain"
)

const userSearchLimit = 20

type UserProfileRequest struct {
	DisplayName string `json:"display_name"`
	Username    string `json:"username"`
	ImageURL    string `json:"image_url,omitempty"`
}

// UserMePut handles PUT /v1/users/me, creating or updating the caller's profile.
type UserMePut struct {
	ProvisionCmd command.Command[command.ProvisionUserRequest, domain.User]
}

func (c UserMePut) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body UserProfileRequest
	if err := decodeJSONBody(r, &body); err != nil {
		writeError(ctx, w, "unable to parse profile", err)
		return
	}

	user, err := c.ProvisionCmd.Execute(ctx, command.ProvisionUserRequest{
		UserID:      domain.UserIDFromContext(ctx),
		DisplayName: body.DisplayName,
		Username:    body.Username,
		ImageURL:    body.ImageURL,
	})
	if err != nil {
		writeError(ctx, w, "unable to save profile", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, user)
}

// UserMeGet handles GET /v1/users/me.
type UserMeGet struct {
	Fetcher datasources.UserFetcher
}

func (c UserMeGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		writeError(ctx, w, "profile fetch without user", domain.ErrUnauthorized)
		return
	}

	user, err := c.Fetcher.FetchUser(ctx, userID)
	if err != nil {
		writeError(ctx, w, "unable to fetch profile", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, user)
}

type UserProfileResponse struct {
	domain.User
	Following *bool `json:"following,omitempty"`
}

// UserGet handles GET /v1/users/{username}. Signed-in viewers also learn
// whether they follow the user.
type UserGet struct {
	Fetcher       datasources.UserByUsernameFetcher
	FollowChecker datasources.FollowChecker
}

func (c UserGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, err := domain.NormalizeUsername(mux.Vars(r)["username"])
	if err != nil {
		writeError(ctx, w, "invalid username", err)
		return
	}

	user, err := c.Fetcher.FetchUserByUsername(ctx, username)
	if err != nil {
		writeError(ctx, w, "unable to fetch user", err)
		return
	}

	resp := UserProfileResponse{User: user}
	if viewerID := domain.UserIDFromContext(ctx); viewerID != "" && viewerID != user.ID {
		following, err := c.FollowChecker.IsFollowing(ctx, user.ID, viewerID)
		if err != nil {
			writeError(ctx, w, "unable to check follow state", err)
			return
		}
		resp.Following = &following
	}

	writeJSON(ctx, w, http.StatusOK, resp)
}

type UsersSearchResponse struct {
	Data []domain.User `json:"data"`
}

// UsersSearch handles GET /v1/users?q=prefix, used for mention autocomplete.
type UsersSearch struct {
	Searcher datasources.UserSearcher
}

func (c UsersSearch) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	prefix := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(r.URL.Query().Get("q")), "@"))
	if prefix == "" {
		writeJSON(ctx, w, http.StatusOK, UsersSearchResponse{Data: []domain.User{}})
		return
	}

	users, err := c.Searcher.SearchUsers(ctx, prefix, userSearchLimit)
	if err != nil {
		writeError(ctx, w, "unable to search users", err)
		return
	}
	if users == nil {
		users = []domain.User{}
	}

	writeJSON(ctx, w, http.StatusOK, UsersSearchResponse{Data: users})
}

type UserFollowResponse struct {
	Following     bool `json:"following"`
	FollowerCount int  `json:"follower_count"`
}

// UserFollow handles POST /v1/users/{username}/follow, toggling whether the
// caller follows the user.
type UserFollow struct {
	ToggleCmd command.Command[command.ToggleFollowRequest, command.ToggleFollowResponse]
}

func (c UserFollow) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := c.ToggleCmd.Execute(ctx, command.ToggleFollowRequest{
		UserID:   domain.UserIDFromContext(ctx),
		Username: mux.Vars(r)["username"],
	})
	if err != nil {
		writeError(ctx, w, "unable to toggle follow", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, UserFollowResponse{
		Following:     result.Following,
		FollowerCount: result.FollowerCount,
	})
}
