package datasources

import (
	"context"
	"errors"

	"github.com/beliefted/beliefted-server/internal/domain"
)

// ErrDeviceUnregistered is returned by a Pusher when the gateway no longer
// recognises a device token. The token should be deleted, not retried.
var ErrDeviceUnregistered = errors.New("device token is no longer registered")

type Pusher interface {
	Push(ctx context.Context, token string, message domain.PushMessage) error
}

type DeviceTokenRegistrar interface {
	RegisterDeviceToken(ctx context.Context, token domain.DeviceToken) error
}

type DeviceTokenLister interface {
	ListDeviceTokens(ctx context.Context, userID string) ([]domain.DeviceToken, error)
}

type DeviceTokenDeleter interface {
	DeleteDeviceToken(ctx context.Context, token string) error
}

type DeviceTokenRepository interface {
	DeviceTokenRegistrar
	DeviceTokenLister
	DeviceTokenDeleter
}

// NullPusher discards every message.
type NullPusher struct{}

var _ Pusher = NullPusher{}

func (NullPusher) Push(_ context.Context, _ string, _ domain.PushMessage) error {
	return nil
}
