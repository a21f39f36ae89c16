package main

import (
	"gorm.io/gorm"

	"presensi/models"
	"presensi/pkg/session"
	"presensi/pkg/storage"
)

// Server bundles the injected handles the handlers work against.
type Server struct {
	cfg      Config
	db       *gorm.DB
	store    *storage.Store
	sessions *session.Store
}

func NewServer(cfg Config, db *gorm.DB, store *storage.Store, sessions *session.Store) *Server {
	return &Server{cfg: cfg, db: db, store: store, sessions: sessions}
}

// fileReferenced backs the storage reconciler: does any row still point at
// this stored filename?
func (s *Server) fileReferenced(subdir, name string) bool {
	var n int64
	switch subdir {
	case "images":
		s.db.Model(&models.User{}).Where("image = ?", name).Count(&n)
	case "absen":
		s.db.Model(&models.User{}).Where("foto_absen = ?", name).Count(&n)
	case "geolocation":
		s.db.Model(&models.Absen{}).Where("foto_geo = ?", name).Count(&n)
	case "signature":
		s.db.Model(&models.Surat{}).Where("file = ?", name).Count(&n)
	default:
		// logo and anything else under public is not database backed
		return true
	}
	return n > 0
}
