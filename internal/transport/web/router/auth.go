package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"

	"github.com/beliefted/beliefted-server/internal/command"
	"github.com/beliefted/beliefted-server/internal/datasources"
	"github.com/beliefted/beliefted-server/internal/domain"
)

const bearerPrefix = "Bearer "

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	UserID string
	Method domain.AuthMethod
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (wrong auth type).
// Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware tries each validator in turn. Requests no validator
// applies to pass through anonymously; routes that need a user wrap
// themselves in requireAuthMiddleware.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				result, err := validate(r)
				if result == nil && err == nil {
					continue
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)
					writeUnauthorized(w, err.Error())
					return
				}

				ctx := domain.ContextWithUserID(r.Context(), result.UserID)
				ctx = domain.ContextWithAuthMethod(ctx, result.Method)
				logger := domain.LoggerFromContext(ctx).With("user_id", result.UserID)
				ctx = domain.ContextWithLogger(ctx, logger)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", false
	}
	return strings.TrimSpace(authHeader[len(bearerPrefix):]), true
}

// NewAuth0Validator validates bearer JWTs issued by the Auth0 tenant. API
// tokens are left to NewAPITokenValidator.
func NewAuth0Validator(auth0Domain, auth0Audience string) (AuthValidator, error) {
	issuerURL, err := url.Parse("https://" + auth0Domain + "/")
	if err != nil {
		return nil, fmt.Errorf("failed to parse the issuer url: %w", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)
	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{auth0Audience},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT validator: %w", err)
	}

	return newJWTValidator(jwtValidator.ValidateToken), nil
}

type tokenValidateFunc func(ctx context.Context, token string) (any, error)

func newJWTValidator(validate tokenValidateFunc) AuthValidator {
	return func(r *http.Request) (*AuthResult, error) {
		token, ok := bearerToken(r)
		if !ok || token == "" || strings.HasPrefix(token, command.APITokenPrefix) {
			return nil, nil
		}

		validated, err := validate(r.Context(), token)
		if err != nil {
			return nil, errors.New("invalid JWT token")
		}

		claims, ok := validated.(*validator.ValidatedClaims)
		if !ok || claims.RegisteredClaims.Subject == "" {
			return nil, errors.New("JWT token has no subject")
		}
		return &AuthResult{
			UserID: claims.RegisteredClaims.Subject,
			Method: domain.AuthMethodAuth0,
		}, nil
	}
}

// NewAPITokenValidator creates a validator for API tokens.
// It asynchronously updates the token's last used time on successful validation.
func NewAPITokenValidator(
	ctx context.Context,
	tokenGetter datasources.APITokenByHashGetter,
	lastUsedUpdater datasources.APITokenLastUsedUpdater,
) AuthValidator {
	// Best effort: updates still buffered at shutdown are lost, and updates
	// are dropped while the buffer is full.
	updateChan := make(chan string, 100)
	go func() {
		for tokenID := range updateChan {
			updateErr := lastUsedUpdater.UpdateAPITokenLastUsed(context.WithoutCancel(ctx), tokenID)
			if updateErr != nil {
				logger := domain.LoggerFromContext(ctx).With("token", tokenID)
				logger.WarnContext(context.WithoutCancel(ctx),
					"failed to update last used time for token",
					"error", updateErr)
			}
		}
	}()

	return func(r *http.Request) (*AuthResult, error) {
		fullToken, ok := bearerToken(r)
		if !ok || !strings.HasPrefix(fullToken, command.APITokenPrefix) {
			return nil, nil
		}

		token, err := tokenGetter.GetAPITokenByHash(r.Context(), command.HashAPIToken(fullToken))
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				logger := domain.LoggerFromContext(r.Context())
				logger.ErrorContext(r.Context(), "unable to look up API token", "error", err)
			}
			return nil, errors.New("invalid API token")
		}

		if !token.IsActive() {
			return nil, errors.New("API token is revoked or expired")
		}

		select {
		case updateChan <- token.ID:
		default:
		}

		return &AuthResult{
			UserID: token.UserID,
			Method: domain.AuthMethodAPIToken,
		}, nil
	}
}
