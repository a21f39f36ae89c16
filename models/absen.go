package models

import "time"

// Absen is one attendance row per user per day.
type Absen struct {
	ID         uint `gorm:"primaryKey"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	UserID     uint     `gorm:"index;not null;uniqueIndex:idx_absen_user_tanggal"`
	User       User     `gorm:"foreignKey:UserID;references:ID"`
	Tanggal    string   `gorm:"size:10;not null;uniqueIndex:idx_absen_user_tanggal"` // YYYY-MM-DD
	JamMasuk   string   `gorm:"column:jam_masuk;size:8"`
	JamKeluar  string   `gorm:"column:jam_keluar;size:8"`
	Telat      bool     `gorm:"default:false"`
	Denda      int64    `gorm:"default:0"`
	Latitude   *float64 `gorm:"type:decimal(10,7)"`
	Longitude  *float64 `gorm:"type:decimal(10,7)"`
	FotoGeo    string   `gorm:"column:foto_geo;size:255"`
	URLFotoGeo string   `gorm:"column:url_foto_geo;size:512"`
}
