package main

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"presensi/pkg/session"
	"presensi/pkg/storage"
)

// performRequest drives the router with an optional session cookie.
func performRequest(r http.Handler, method, path string, body io.Reader, token string, contentType string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func setupTestServer(t *testing.T) (*gin.Engine, *Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := Config{
		Port:      "5000",
		BaseURL:   "http://localhost:5000",
		DBDriver:  "sqlite",
		DSN:       ":memory:",
		PublicDir: t.TempDir(),
		SessTTL:   24 * time.Hour,
	}
	db, err := openDB(cfg)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	srv := NewServer(cfg, db, storage.New(cfg.PublicDir, cfg.BaseURL), session.New(db, cfg.SessTTL))
	r := gin.New()
	setupRoutes(r, srv)
	return r, srv
}

// loginAs logs in over the real handler and returns the session token.
func loginAs(t *testing.T, r http.Handler, email, password string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	rec := performRequest(r, http.MethodPost, "/login", bytes.NewBuffer(body), "", "application/json")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed status=%d body=%s", rec.Code, rec.Body.String())
	}
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.CookieName {
			return ck.Value
		}
	}
	t.Fatal("no session cookie in login response")
	return ""
}

func loginAdmin(t *testing.T, r http.Handler) string {
	return loginAs(t, r, "admin@presensi.local", "admin123")
}

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return bytes.NewBuffer(b)
}

// pngBytes renders a small real PNG so the full store path (thumbnail
// included) is exercised.
func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 60), B: 128, A: 255})
		}
	}
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// multipartForm builds a multipart body from fields plus an optional file part.
func multipartForm(t *testing.T, fields map[string]string, fileName string, fileData []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	if fileName != "" {
		w, err := mw.CreateFormFile("file", fileName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		_, _ = w.Write(fileData)
	}
	_ = mw.Close()
	return buf, mw.FormDataContentType()
}
