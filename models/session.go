package models

import "time"

// Session maps the opaque cookie token to a user id. TTL is fixed at
// issuance; there is no sliding renewal.
type Session struct {
	Token     string    `gorm:"primaryKey" json:"token"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	ExpiresAt time.Time `gorm:"index;not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
