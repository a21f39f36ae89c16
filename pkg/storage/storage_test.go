package storage

import (
	"bytes"
	"crypto/md5"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestValidate(t *testing.T) {
	s := New(t.TempDir(), "http://localhost:5000")
	tests := []struct {
		name     string
		fileName string
		size     int64
		want     error
	}{
		{"png ok", "a.png", 100, nil},
		{"jpg ok", "a.jpg", 100, nil},
		{"jpeg ok", "a.JPEG", 100, nil},
		{"gif rejected", "a.gif", 100, ErrInvalidType},
		{"no extension", "a", 100, ErrInvalidType},
		{"at limit", "a.png", MaxFileSize, nil},
		{"over limit", "a.png", MaxFileSize + 1, ErrTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Validate(tt.fileName, tt.size); got != tt.want {
				t.Errorf("Validate(%q, %d) = %v, want %v", tt.fileName, tt.size, got, tt.want)
			}
		})
	}
}

func TestSaveNamesByContent(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, "http://localhost:5000")
	data := pngBytes(t)

	name, err := s.Save(data, "photo.png", "images")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	want := fmt.Sprintf("%x", md5.Sum(data)) + ".png"
	if name != want {
		t.Errorf("name = %q, want %q", name, want)
	}
	stored, err := os.ReadFile(filepath.Join(dir, "images", name))
	if err != nil {
		t.Fatalf("stored file: %v", err)
	}
	if !bytes.Equal(stored, data) {
		t.Error("stored bytes differ from input")
	}

	// same content under a different original name collapses onto one file
	again, err := s.Save(data, "other.png", "images")
	if err != nil {
		t.Fatalf("Save again: %v", err)
	}
	if again != name {
		t.Errorf("second save name = %q, want %q", again, name)
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	s := New(t.TempDir(), "http://localhost:5000")
	if _, err := s.Save([]byte("x"), "a.gif", "images"); err != ErrInvalidType {
		t.Errorf("gif: err = %v, want ErrInvalidType", err)
	}
	big := make([]byte, MaxFileSize+1)
	if _, err := s.Save(big, "a.png", "images"); err != ErrTooLarge {
		t.Errorf("oversize: err = %v, want ErrTooLarge", err)
	}
}

func TestSaveWritesThumbnail(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, "http://localhost:5000")
	name, err := s.Save(pngBytes(t), "photo.png", "images")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "images", thumbDir, name)); err != nil {
		t.Errorf("thumbnail missing: %v", err)
	}
}

func TestDeleteIdempotent(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, "http://localhost:5000")
	name, err := s.Save(pngBytes(t), "photo.png", "images")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(name, "images"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if s.Exists(name, "images") {
		t.Error("file still exists after Delete")
	}
	if err := s.Delete(name, "images"); err != nil {
		t.Errorf("second Delete: %v", err)
	}
	if err := s.Delete("", "images"); err != nil {
		t.Errorf("Delete empty name: %v", err)
	}
}

func TestURL(t *testing.T) {
	s := New(t.TempDir(), "http://localhost:5000/")
	got := s.URL("images", "abc.png")
	if got != "http://localhost:5000/images/abc.png" {
		t.Errorf("URL = %q", got)
	}
}

func TestSweepFindsOrphans(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, "http://localhost:5000")

	kept, err := s.Save(pngBytes(t), "kept.png", "images")
	if err != nil {
		t.Fatal(err)
	}
	orphanData := append(pngBytes(t), 0x00)
	if err := os.WriteFile(filepath.Join(dir, "images", "orphan.png"), orphanData, 0644); err != nil {
		t.Fatal(err)
	}

	r := NewReconciler(s, func(subdir, name string) bool {
		return subdir == "images" && name == kept
	})
	orphans := r.Sweep("images")
	if len(orphans) != 1 {
		t.Fatalf("orphans = %v, want exactly one", orphans)
	}
	if orphans[0] != filepath.Join("images", "orphan.png") {
		t.Errorf("orphan = %q", orphans[0])
	}
}
