package storage

import (
	"bytes"
	"crypto/md5"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"presensi/pkg/logger"
)

// MaxFileSize matches the upstream 5 MB ceiling (decimal, not binary).
const MaxFileSize = 5000000

const thumbDir = "thumbs"

var (
	ErrInvalidType = errors.New("invalid image type")
	ErrTooLarge    = errors.New("image larger than 5 MB")
)

var allowedExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// Store writes uploads under BaseDir/<subdir> and derives public URLs from
// BaseURL. Filenames are content derived: md5 of the bytes plus the original
// extension, so identical uploads collapse onto one file.
type Store struct {
	BaseDir string
	BaseURL string
}

func New(baseDir, baseURL string) *Store {
	return &Store{BaseDir: baseDir, BaseURL: strings.TrimSuffix(baseURL, "/")}
}

// Validate checks the declared filename and size against the allow-list and
// ceiling without touching the disk.
func (s *Store) Validate(originalName string, size int64) error {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExt[ext] {
		return ErrInvalidType
	}
	if size > MaxFileSize {
		return ErrTooLarge
	}
	return nil
}

// Save validates and persists data, returning the stored filename.
// The file hits the disk before any database row references it; a later DB
// failure leaves the file behind for the reconciler to report.
func (s *Store) Save(data []byte, originalName, subdir string) (string, error) {
	if err := s.Validate(originalName, int64(len(data))); err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(originalName))
	name := fmt.Sprintf("%x", md5.Sum(data)) + ext

	dir := filepath.Join(s.BaseDir, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		return "", err
	}
	s.writeThumbnail(dir, name, data)
	return name, nil
}

// Delete removes a stored file. Deleting a file that is already gone is not
// an error.
func (s *Store) Delete(name, subdir string) error {
	if name == "" {
		return nil
	}
	if err := os.Remove(filepath.Join(s.BaseDir, subdir, name)); err != nil && !os.IsNotExist(err) {
		return err
	}
	// thumbnail is best effort both ways
	_ = os.Remove(filepath.Join(s.BaseDir, subdir, thumbDir, name))
	return nil
}

// Exists reports whether a stored file is present on disk.
func (s *Store) Exists(name, subdir string) bool {
	if name == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(s.BaseDir, subdir, name))
	return err == nil
}

// URL builds the public URL for a stored file.
func (s *Store) URL(subdir, name string) string {
	return s.BaseURL + "/" + subdir + "/" + name
}

// writeThumbnail renders a 128px-wide preview next to the original. The
// upload is accepted on extension and size alone, so undecodable bytes are
// logged and skipped rather than rejected.
func (s *Store) writeThumbnail(dir, name string, data []byte) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		logger.Debugf("thumbnail skipped for %s: %v", name, err)
		return
	}
	if err := os.MkdirAll(filepath.Join(dir, thumbDir), 0755); err != nil {
		logger.Warnf("thumbnail dir: %v", err)
		return
	}
	thumb := imaging.Resize(img, 128, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(dir, thumbDir, name)); err != nil {
		logger.Warnf("thumbnail save %s: %v", name, err)
	}
}
