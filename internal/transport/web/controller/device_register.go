package controller

import (
	"net/http"

	"github.com/beliefted/beliefted-server/internal/command"
	"github.com/beliefted/beliefted-server/internal/domain"
)

type DeviceRegisterRequest struct {
	Token    string `json:"token"`
	Platform string `json:"platform"`
}

// DeviceRegister handles POST /v1/devices.
type DeviceRegister struct {
	RegisterCmd command.Command[command.RegisterDeviceRequest, command.Empty]
}

func (c DeviceRegister) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body DeviceRegisterRequest
	if err := decodeJSONBody(r, &body); err != nil {
		writeError(ctx, w, "unable to parse device registration", err)
		return
	}

	if _, err := c.RegisterCmd.Execute(ctx, command.RegisterDeviceRequest{
		UserID:   domain.UserIDFromContext(ctx),
		Token:    body.Token,
		Platform: body.Platform,
	}); err != nil {
		writeError(ctx, w, "unable to register device", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, okResponse{OK: true})
}
