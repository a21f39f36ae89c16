package models

import "time"

// HariLibur marks a calendar date as a non-working day.
type HariLibur struct {
	ID         uint `gorm:"primaryKey"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Tanggal    string `gorm:"size:10;not null;uniqueIndex"` // YYYY-MM-DD
	Keterangan string `gorm:"size:255;not null"`
}
