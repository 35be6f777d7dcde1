package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

type User struct {
	ID            string    `json:"id"`
	DisplayName   string    `json:"display_name"`
	Username      string    `json:"username"`
	ImageURL      string    `json:"image_url,omitempty"`
	FollowerCount int       `json:"follower_count"`
	CreatedAt     time.Time `json:"created_at"`
}

var usernamePattern = regexp.MustCompile(`^[a-z0-9_.]{1,30}$`)

// NormalizeUsername lowercases and validates a username so that it can be
// found by a mention.
func NormalizeUsername(s string) (string, error) {
	u := strings.ToLower(strings.TrimSpace(s))
	if !usernamePattern.MatchString(u) {
		return "", fmt.Errorf("%w: invalid username [%s]", ErrInvalidInput, s)
	}
	return u, nil
}
