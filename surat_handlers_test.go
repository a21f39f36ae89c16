package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"presensi/models"
)

func createSurat(t *testing.T, r http.Handler, token string, userID uint, withFile bool) {
	t.Helper()
	fields := map[string]string{
		"userId":     fmt.Sprint(userID),
		"perihal":    "Izin Sakit",
		"keterangan": "Demam",
	}
	var fileName string
	var fileData []byte
	if withFile {
		fileName, fileData = "scan.png", pngBytes(t)
	}
	body, ct := multipartForm(t, fields, fileName, fileData)
	rec := performRequest(r, http.MethodPost, "/surat", body, token, ct)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create surat status = %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCreateSuratWithAttachment(t *testing.T) {
	r, srv := setupTestServer(t)
	worker := seedWorker(t, srv, "worker@x.com")
	token := loginAs(t, r, "worker@x.com", "password1")

	createSurat(t, r, token, worker.ID, true)

	var surat models.Surat
	if err := srv.db.Where("user_id = ?", worker.ID).First(&surat).Error; err != nil {
		t.Fatalf("surat row missing: %v", err)
	}
	if surat.Status != "diajukan" {
		t.Errorf("status = %q, want diajukan", surat.Status)
	}
	if surat.File == "" {
		t.Fatal("attachment name not persisted")
	}
	if _, err := os.Stat(filepath.Join(srv.cfg.PublicDir, "signature", surat.File)); err != nil {
		t.Errorf("attachment missing on disk: %v", err)
	}
	if want := srv.cfg.BaseURL + "/signature/" + surat.File; surat.URL != want {
		t.Errorf("url = %q, want %q", surat.URL, want)
	}
}

func TestCreateSuratWithoutAttachment(t *testing.T) {
	r, srv := setupTestServer(t)
	worker := seedWorker(t, srv, "worker@x.com")
	token := loginAs(t, r, "worker@x.com", "password1")

	createSurat(t, r, token, worker.ID, false)

	var surat models.Surat
	if err := srv.db.Where("user_id = ?", worker.ID).First(&surat).Error; err != nil {
		t.Fatalf("surat row missing: %v", err)
	}
	if surat.File != "" || surat.URL != "" {
		t.Errorf("unexpected attachment: %+v", surat)
	}
}

func TestCreateSuratRequiresPerihal(t *testing.T) {
	r, srv := setupTestServer(t)
	worker := seedWorker(t, srv, "worker@x.com")
	token := loginAs(t, r, "worker@x.com", "password1")

	body, ct := multipartForm(t, map[string]string{"userId": fmt.Sprint(worker.ID)}, "", nil)
	rec := performRequest(r, http.MethodPost, "/surat", body, token, ct)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateSuratStatus(t *testing.T) {
	r, srv := setupTestServer(t)
	worker := seedWorker(t, srv, "worker@x.com")
	token := loginAs(t, r, "worker@x.com", "password1")
	createSurat(t, r, token, worker.ID, false)

	var surat models.Surat
	srv.db.Where("user_id = ?", worker.ID).First(&surat)

	admin := loginAdmin(t, r)
	rec := performRequest(r, http.MethodPatch, fmt.Sprintf("/surat/%d", surat.ID), jsonBody(t, map[string]string{
		"status": "disetujui",
	}), admin, "application/json")
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d body=%s", rec.Code, rec.Body.String())
	}
	srv.db.First(&surat, surat.ID)
	if surat.Status != "disetujui" {
		t.Errorf("status = %q", surat.Status)
	}
}

func TestDeleteSuratRemovesRowAndFile(t *testing.T) {
	r, srv := setupTestServer(t)
	worker := seedWorker(t, srv, "worker@x.com")
	token := loginAs(t, r, "worker@x.com", "password1")
	createSurat(t, r, token, worker.ID, true)

	var surat models.Surat
	srv.db.Where("user_id = ?", worker.ID).First(&surat)
	path := filepath.Join(srv.cfg.PublicDir, "signature", surat.File)

	admin := loginAdmin(t, r)
	rec := performRequest(r, http.MethodDelete, fmt.Sprintf("/surat/%d", surat.ID), nil, admin, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d body=%s", rec.Code, rec.Body.String())
	}
	if err := srv.db.First(&models.Surat{}, surat.ID).Error; err == nil {
		t.Error("surat row survived delete")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("attachment survived delete")
	}
}

func TestSuratWritesRequireAdmin(t *testing.T) {
	r, srv := setupTestServer(t)
	worker := seedWorker(t, srv, "worker@x.com")
	token := loginAs(t, r, "worker@x.com", "password1")
	createSurat(t, r, token, worker.ID, false)

	var surat models.Surat
	srv.db.Where("user_id = ?", worker.ID).First(&surat)

	rec := performRequest(r, http.MethodPatch, fmt.Sprintf("/surat/%d", surat.ID), jsonBody(t, map[string]string{
		"status": "disetujui",
	}), token, "application/json")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-admin update status = %d, want 403", rec.Code)
	}
}
