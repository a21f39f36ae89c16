package session

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"gorm.io/gorm"

	"presensi/models"
)

// ErrInvalid covers unknown, malformed and expired session tokens alike.
var ErrInvalid = errors.New("session invalid or expired")

// CookieName is the cookie carrying the raw session token.
const CookieName = "session_token"

// Store keeps sessions in the database, keyed by the sha256 of the raw token.
// The raw token never touches persistent storage.
type Store struct {
	db  *gorm.DB
	ttl time.Duration
}

func New(db *gorm.DB, ttl time.Duration) *Store {
	return &Store{db: db, ttl: ttl}
}

// Create issues a new session for userID and returns the raw token.
func (s *Store) Create(userID uint) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	token := hex.EncodeToString(b)
	rec := models.Session{
		UserID:    userID,
		TokenHash: hashToken(token),
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.db.Create(&rec).Error; err != nil {
		return "", err
	}
	return token, nil
}

// Get resolves a raw token to its session record, rejecting expired ones.
func (s *Store) Get(token string) (*models.Session, error) {
	if token == "" {
		return nil, ErrInvalid
	}
	var rec models.Session
	if err := s.db.Where("token_hash = ?", hashToken(token)).First(&rec).Error; err != nil {
		return nil, ErrInvalid
	}
	if time.Now().After(rec.ExpiresAt) {
		return nil, ErrInvalid
	}
	return &rec, nil
}

// Delete removes the session for a raw token. Deleting an unknown token is
// not an error.
func (s *Store) Delete(token string) error {
	if token == "" {
		return nil
	}
	return s.db.Where("token_hash = ?", hashToken(token)).Delete(&models.Session{}).Error
}

// PurgeExpired drops all sessions past their expiry.
func (s *Store) PurgeExpired() error {
	return s.db.Where("expires_at < ?", time.Now()).Delete(&models.Session{}).Error
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}
