package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/beliefted/beliefted-server/internal/command"
	"github.com/beliefted/beliefted-server/internal/datasources"
	"github.com/beliefted/beliefted-server/internal/domain"
	"github.com/beliefted/beliefted-server/internal/transport/web/router"
	"github.com/beliefted/beliefted-server/internal/transport/web/server"
)

const (
	notificationQueueSize    = 1024
	notificationEventTimeout = 30 * time.Second
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	dataset, err := SetupDatasetRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up dataset repository: %w", err)
	}

	limiter, err := setupRateLimiter(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up rate limiter: %w", err)
	}

	pusher, err := setupPusher(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up push gateway: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx, dataset)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	fanOut := command.NewFanOutNotifications(dataset, dataset, dataset, dataset, pusher)
	dispatcher := command.NewNotificationDispatcher(fanOut, notificationQueueSize, notificationEventTimeout)

	commands := router.Commands{
		ToggleInteraction: command.NewToggleInteraction(dataset, dataset, dispatcher),
		PostComment:       command.NewPostComment(dataset, dataset, dispatcher),
		CreateContent:     command.NewCreateContent(dataset, dispatcher),
		ToggleFollow:      command.NewToggleFollow(dataset, dataset, dataset, dispatcher),
		ProvisionUser:     command.NewProvisionUser(dataset, dataset),
		RegisterDevice:    command.NewRegisterDevice(dataset),
		CreateAPIToken:    command.NewCreateAPIToken(dataset, dataset),
	}

	httpRouter, err := router.MakeRouter(
		domain.LoggerFromContext(ctx),
		dataset,
		commands,
		limiter,
		router.DefaultRateLimits,
		router.RSSConfig{
			BaseURL:     MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
			AuthorName:  MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
			AuthorEmail: MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		},
		MustGetEnvAsDuration(ctx, "LATEST_CACHE_MAX_AGE"),
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
		dispatcher,
		&dispatchFailureMonitor{Errors: dispatcher.Errors(), Interval: time.Minute},
	}, nil
}

func setupAuthMiddleware(
	ctx context.Context, dataset datasources.APITokenRepository,
) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		case "api_token":
			validators = append(validators, router.NewAPITokenValidator(ctx, dataset, dataset))
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
