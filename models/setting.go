package models

import "time"

// Setting holds the frontend theme colors. Nothing enforces a single row;
// readers take the first one.
type Setting struct {
	ID             uint `gorm:"primaryKey"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	WarnaPrimary   string `gorm:"column:warna_primary;size:100;not null"`
	WarnaSecondary string `gorm:"column:warna_secondary;size:100;not null"`
	WarnaSidebar   string `gorm:"column:warna_sidebar;size:100;not null"`
}

func (Setting) TableName() string {
	return "setting"
}
