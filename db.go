package main

import (
	"errors"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"presensi/models"
	"presensi/pkg/logger"
)

// openDB connects, migrates and seeds. Postgres is the production driver;
// DB_DRIVER=sqlite selects the cgo-free sqlite driver (also what the tests
// run against, in memory).
func openDB(cfg Config) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dial = sqlite.Open(cfg.DSN)
	case "postgres":
		if cfg.DSN == "" {
			return nil, errors.New("DB_DSN is not set")
		}
		dial = postgres.Open(cfg.DSN)
	default:
		return nil, errors.New("unsupported DB_DRIVER: " + cfg.DBDriver)
	}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if cfg.DBDriver == "sqlite" {
		// a fresh pooled connection to :memory: would see an empty database
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}
	migrateDB(db)
	seedDB(db)
	return db, nil
}

// migrateDB migrates models individually so a failure on one doesn't block
// the others; permission errors are logged and ignored.
func migrateDB(db *gorm.DB) {
	for _, m := range []interface{}{
		&models.Role{},
		&models.User{},
		&models.Absen{},
		&models.HariLibur{},
		&models.Setting{},
		&models.Surat{},
		&models.Session{},
	} {
		if err := db.AutoMigrate(m); err != nil {
			logger.Warnf("migration warning: %v", err)
		}
	}
}

func seedDB(db *gorm.DB) {
	// master roles
	roles := []models.Role{
		{NamaRole: "admin", JamPulang: "17:00:00", DendaTelat: 0},
		{NamaRole: "karyawan", JamPulang: "17:00:00", DendaTelat: 50000},
	}
	for _, r := range roles {
		var cnt int64
		db.Model(&models.Role{}).Where("nama_role = ?", r.NamaRole).Count(&cnt)
		if cnt == 0 {
			db.Create(&r)
		}
	}

	var count int64
	db.Model(&models.User{}).Where("email = ?", "admin@presensi.local").Count(&count)
	if count == 0 {
		var role models.Role
		if err := db.Where("nama_role = ?", "admin").First(&role).Error; err != nil {
			logger.Errorf("failed to find admin role: %v", err)
			return
		}
		hash, err := HashPassword("admin123")
		if err != nil {
			logger.Errorf("failed to hash seed password: %v", err)
			return
		}
		rid := role.ID
		admin := models.User{
			Name:     "Administrator",
			Email:    "admin@presensi.local",
			Password: hash,
			RoleID:   &rid,
		}
		if err := db.Create(&admin).Error; err != nil {
			logger.Errorf("failed to seed admin user: %v", err)
			return
		}
		logger.Info("Seeded admin user: email=admin@presensi.local, password=admin123")
	}

	var scount int64
	db.Model(&models.Setting{}).Count(&scount)
	if scount == 0 {
		db.Create(&models.Setting{
			WarnaPrimary:   "#0d6efd",
			WarnaSecondary: "#6c757d",
			WarnaSidebar:   "#212529",
		})
	}
}
