package push

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beliefted/beliefted-server/internal/datasources"
	"github.com/beliefted/beliefted-server/internal/domain"
)

func TestFCMClient_Push(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		response    string
		expectedErr error
		expectErr   bool
	}{
		{
			name:     "delivered",
			status:   http.StatusOK,
			response: `{"name":"projects/p/messages/1"}`,
		},
		{
			name:        "unregistered_token",
			status:      http.StatusNotFound,
			response:    `{"error":{"code":404,"status":"NOT_FOUND","details":[{"@type":"type.googleapis.com/google.firebase.fcm.v1.FcmError","errorCode":"UNREGISTERED"}]}}`,
			expectedErr: datasources.ErrDeviceUnregistered,
		},
		{
			name:        "unregistered_with_bad_request_status",
			status:      http.StatusBadRequest,
			response:    `{"error":{"code":400,"details":[{"errorCode":"UNREGISTERED"}]}}`,
			expectedErr: datasources.ErrDeviceUnregistered,
		},
		{
			name:      "not_found_without_error_code",
			status:    http.StatusNotFound,
			response:  `{"error":{"code":404,"status":"NOT_FOUND","message":"Requested entity was not found."}}`,
			expectErr: true,
		},
		{
			name:      "server_error",
			status:    http.StatusInternalServerError,
			response:  `{"error":{"code":500,"message":"internal"}}`,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var received fcmRequest
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/projects/beliefted/messages:send", r.URL.Path)
				assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.response))
			}))
			defer server.Close()

			client := NewFCMClient(server.URL, "beliefted", "secret", 5*time.Second)
			err := client.Push(context.Background(), "device-1", domain.PushMessage{
				Title: "New prayer",
				Body:  "Someone prayed for you",
				Data:  map[string]string{"itemId": "abc"},
			})

			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.expectErr:
				require.Error(t, err)
				assert.NotErrorIs(t, err, datasources.ErrDeviceUnregistered)
			default:
				require.NoError(t, err)
			}

			assert.Equal(t, "device-1", received.Message.Token)
			assert.Equal(t, "New prayer", received.Message.Notification.Title)
			assert.Equal(t, "abc", received.Message.Data["itemId"])
		})
	}
}
