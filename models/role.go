package models

import "time"

// Role is the access tier plus the attendance policy attached to it.
type Role struct {
	ID         uint `gorm:"primaryKey"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	NamaRole   string `gorm:"column:nama_role;size:100;not null"`
	JamPulang  string `gorm:"column:jam_pulang;size:8;not null"` // HH:MM:SS
	DendaTelat int64  `gorm:"column:denda_telat;not null;default:0"`
}
