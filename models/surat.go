package models

import "time"

// Surat is a letter submitted by a user (permission letter, sick note, ...)
// with an optional scanned attachment.
type Surat struct {
	ID         uint `gorm:"primaryKey"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	UserID     uint   `gorm:"index;not null"`
	User       User   `gorm:"foreignKey:UserID;references:ID"`
	Perihal    string `gorm:"size:255;not null"`
	Keterangan string `gorm:"size:512"`
	Tanggal    string `gorm:"size:10;not null"` // YYYY-MM-DD
	Status     string `gorm:"size:32;default:diajukan"`
	File       string `gorm:"size:255"`
	URL        string `gorm:"size:512"`
}
