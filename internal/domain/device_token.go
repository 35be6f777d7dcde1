package domain

import "time"

// DeviceToken is a push registration for one of a user's devices.
type DeviceToken struct {
	Token     string    `json:"token"`
	UserID    string    `json:"-"`
	Platform  string    `json:"platform"`
	CreatedAt time.Time `json:"created_at"`
}

// PushMessage is the payload delivered to a device.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}
