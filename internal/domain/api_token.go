package domain

import "time"

// APIToken is a long-lived bearer credential a user issues for scripts and
// integrations. Only a hash of the full token is stored; Prefix is kept so
// users can tell their tokens apart.
type APIToken struct {
	ID         string     `json:"id"`
	UserID     string     `json:"-"`
	TokenHash  string     `json:"-"`
	Prefix     string     `json:"prefix"`
	Name       *string    `json:"name,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	RevokedAt  *time.Time `json:"-"`
}

func (t APIToken) IsActive() bool {
	return t.IsActiveAt(time.Now())
}

// IsActiveAt reports whether the token can authenticate at now. Revocation
// is permanent; expiry takes effect at ExpiresAt itself.
func (t APIToken) IsActiveAt(now time.Time) bool {
	if t.RevokedAt != nil {
		return false
	}
	return t.ExpiresAt == nil || now.Before(*t.ExpiresAt)
}
