package command

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/beliefted/beliefted-server/internal/datasources"
	"github.com/beliefted/beliefted-server/internal/domain"
)

var DevicePlatforms = []string{"android", "ios", "web"}

const maxDeviceTokenLength = 255

type RegisterDeviceRequest struct {
	UserID   string
	Token    string
	Platform string
}

type RegisterDevice struct {
	Registrar datasources.DeviceTokenRegistrar

	now func() time.Time
}

func NewRegisterDevice(registrar datasources.DeviceTokenRegistrar) *RegisterDevice {
	return &RegisterDevice{Registrar: registrar, now: time.Now}
}

func (c *RegisterDevice) Execute(ctx context.Context, req RegisterDeviceRequest) (Empty, error) {
	if req.UserID == "" {
		return Empty{}, domain.ErrUnauthorized
	}

	token := strings.TrimSpace(req.Token)
	if token == "" || len(token) > maxDeviceTokenLength {
		return Empty{}, fmt.Errorf("%w: device token must be 1-%d characters", domain.ErrInvalidInput, maxDeviceTokenLength)
	}
	platform := strings.ToLower(strings.TrimSpace(req.Platform))
	if !slices.Contains(DevicePlatforms, platform) {
		return Empty{}, fmt.Errorf("%w: unknown platform [%s]", domain.ErrInvalidInput, req.Platform)
	}

	if err := c.Registrar.RegisterDeviceToken(ctx, domain.DeviceToken{
		Token:     token,
		UserID:    req.UserID,
		Platform:  platform,
		CreatedAt: c.now(),
	}); err != nil {
		return Empty{}, fmt.Errorf("registering device token: %w", err)
	}
	return Empty{}, nil
}
