package models

import (
	"time"
)

// User model. Image/URL hold the profile photo pair and FotoAbsen/URLFotoAbsen
// the attendance photo pair; each URL is always derived from the configured
// backend base URL plus the stored filename.
type User struct {
	ID           uint `gorm:"primaryKey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time `gorm:"index"`
	Name         string     `gorm:"size:255;not null"`
	Email        string     `gorm:"size:255;not null"` // should be unique, never enforced upstream
	Password     string     `gorm:"size:255;not null"` // argon2id, PHC encoded
	RoleID       *uint      `gorm:"index"`
	Role         Role       `gorm:"foreignKey:RoleID;references:ID"`
	Image        string     `gorm:"size:255"`
	URL          string     `gorm:"size:512"`
	Status       string     `gorm:"size:32;default:aktif"`
	FotoAbsen    string     `gorm:"column:foto_absen;size:255"`
	URLFotoAbsen string     `gorm:"column:url_foto_absen;size:512"`
}
