package push

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/beliefted/beliefted-server/internal/datasources"
	"github.com/beliefted/beliefted-server/internal/domain"
)

const DefaultFCMBaseURL = "https://fcm.googleapis.com"

// FCMClient sends messages through the Firebase Cloud Messaging HTTP v1 API.
type FCMClient struct {
	client    *resty.Client
	projectID string
}

var _ datasources.Pusher = (*FCMClient)(nil)

// NewFCMClient builds a client authenticating with a bearer access token.
// Minting the token from service account credentials happens outside this process.
func NewFCMClient(baseURL, projectID, accessToken string, timeout time.Duration) *FCMClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(accessToken).
		SetTimeout(timeout)

	return &FCMClient{client: c, projectID: projectID}
}

type fcmNotification struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
}

type fcmMessage struct {
	Token        string            `json:"token"`
	Notification fcmNotification   `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

type fcmRequest struct {
	Message fcmMessage `json:"message"`
}

type fcmErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
		Details []struct {
			Type      string `json:"@type"`
			ErrorCode string `json:"errorCode"`
		} `json:"details"`
	} `json:"error"`
}

func (e fcmErrorResponse) unregistered() bool {
	for _, d := range e.Error.Details {
		if d.ErrorCode == "UNREGISTERED" {
			return true
		}
	}
	return false
}

func (c *FCMClient) Push(ctx context.Context, token string, message domain.PushMessage) error {
	body := fcmRequest{Message: fcmMessage{
		Token:        token,
		Notification: fcmNotification{Title: message.Title, Body: message.Body},
		Data:         message.Data,
	}}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(&body).
		Post(fmt.Sprintf("/v1/projects/%s/messages:send", c.projectID))
	if err != nil {
		return fmt.Errorf("fcm request: %w", err)
	}
	if resp.StatusCode() == http.StatusOK {
		return nil
	}

	var errResp fcmErrorResponse
	_ = json.Unmarshal(resp.Body(), &errResp)
	// A bare 404 can mean a wrong project id, so only the explicit error code
	// marks the token as stale.
	if errResp.unregistered() {
		return datasources.ErrDeviceUnregistered
	}
	return fmt.Errorf("fcm status %d: %s", resp.StatusCode(), errResp.Error.Message)
}
