package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/beliefted/beliefted-server/internal/command"
	"github.com/beliefted/beliefted-server/internal/datasources"
	"github.com/beliefted/beliefted-server/internal/domain"
	"github.com/beliefted/beliefted-server/internal/transport/web/controller"
)

// Commands are the write paths the router exposes.
type Commands struct {
	ToggleInteraction command.Command[command.ToggleInteractionRequest, command.ToggleInteractionResponse]
	PostComment       command.Command[command.PostCommentRequest, domain.Comment]
	CreateContent     command.Command[command.CreateContentRequest, domain.ContentItem]
	ToggleFollow      command.Command[command.ToggleFollowRequest, command.ToggleFollowResponse]
	ProvisionUser     command.Command[command.ProvisionUserRequest, domain.User]
	RegisterDevice    command.Command[command.RegisterDeviceRequest, command.Empty]
	CreateAPIToken    command.Command[command.CreateAPITokenRequest, command.CreateAPITokenResponse]
}

type RSSConfig struct {
	BaseURL     string
	AuthorName  string
	AuthorEmail string
}

const contentKindPattern = "{kind:prayers|words|stories}"

func MakeRouter(
	logger *slog.Logger,
	dataset datasources.DatasetRepository,
	commands Commands,
	limiter RateChecker,
	rateLimits map[string]RateLimit,
	rss RSSConfig,
	latestCacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(loggingMiddleware(logger))
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	limitOf := func(feature string) RateLimit {
		if l, ok := rateLimits[feature]; ok {
			return l
		}
		return DefaultRateLimits[feature]
	}
	authed := func(h http.Handler) http.Handler {
		return requireAuthMiddleware(h)
	}
	limited := func(feature string, h http.Handler) http.Handler {
		return requireAuthMiddleware(rateLimitMiddleware(limiter, feature, limitOf(feature))(h))
	}

	r.Handle("/v1/verse", controller.VerseGet{}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/comments", limited(FeatureComment, controller.CommentCreate{
		PostCmd: commands.PostComment,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/notifications", authed(controller.NotificationsList{
		Lister: dataset,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/notifications/read", authed(controller.NotificationsRead{
		Marker: dataset,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/notifications/{id}", authed(controller.NotificationDelete{
		Deleter: dataset,
	})).Methods(http.MethodDelete, http.MethodOptions)

	r.Handle("/v1/users", controller.UsersSearch{
		Searcher: dataset,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/users/me", authed(controller.UserMeGet{
		Fetcher: dataset,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/users/me", authed(controller.UserMePut{
		ProvisionCmd: commands.ProvisionUser,
	})).Methods(http.MethodPut, http.MethodOptions)

	r.Handle("/v1/users/{username}", controller.UserGet{
		Fetcher:       dataset,
		FollowChecker: dataset,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/users/{username}/follow", limited(FeatureFollow, controller.UserFollow{
		ToggleCmd: commands.ToggleFollow,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/devices", authed(controller.DeviceRegister{
		RegisterCmd: commands.RegisterDevice,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/tokens", authed(controller.APITokenList{
		TokenLister: dataset,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/tokens", authed(controller.APITokenCreate{
		CreateCmd: commands.CreateAPIToken,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/tokens/{token_id}", authed(controller.APITokenRevoke{
		TokenRevoker: dataset,
	})).Methods(http.MethodDelete, http.MethodOptions)

	r.Handle("/v1/"+contentKindPattern, controller.ContentList{
		Lister:      dataset,
		CacheMaxAge: latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/"+contentKindPattern, limited(FeatureContentCreate, controller.ContentCreate{
		CreateCmd: commands.CreateContent,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/"+contentKindPattern+"/{item_id}", controller.ContentGet{
		Fetcher: dataset,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/"+contentKindPattern+"/{item_id}/comments", controller.CommentsList{
		Lister: dataset,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/"+contentKindPattern+"/{item_id}/{interaction}", limited(FeatureToggle, controller.InteractionToggle{
		ToggleCmd: commands.ToggleInteraction,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/rss/words", controller.RSS{
		FeedHostname:    rss.BaseURL,
		FeedPath:        "/rss/words",
		FeedAuthorName:  rss.AuthorName,
		FeedAuthorEmail: rss.AuthorEmail,
		Lister:          dataset,
		CacheMaxAge:     latestCacheMaxAge,
	}).Methods(http.MethodGet)

	return r, nil
}
