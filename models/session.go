package models

import "time"

// Session stores a hashed representation of a browser session token.
// The raw token only ever lives in the cookie.
type Session struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UserID    uint      `gorm:"index;not null"`
	TokenHash string    `gorm:"size:128;not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"index;not null"`
}
