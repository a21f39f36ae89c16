package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"presensi/models"
)

func TestGetSettingIsOpen(t *testing.T) {
	r, _ := setupTestServer(t)

	// readable without a session so the frontend can theme the login page
	rec := performRequest(r, http.MethodGet, "/setting", nil, "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	var setting models.Setting
	if err := json.Unmarshal(rec.Body.Bytes(), &setting); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if setting.WarnaPrimary == "" {
		t.Error("seeded setting has empty warna_primary")
	}
}

func TestUpdateSetting(t *testing.T) {
	r, srv := setupTestServer(t)
	token := loginAdmin(t, r)

	var setting models.Setting
	if err := srv.db.First(&setting).Error; err != nil {
		t.Fatalf("seeded setting missing: %v", err)
	}

	rec := performRequest(r, http.MethodPatch, fmt.Sprintf("/setting/%d", setting.ID), jsonBody(t, map[string]string{
		"warna_primary": "#ff0000",
	}), token, "application/json")
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d body=%s", rec.Code, rec.Body.String())
	}
	old := setting.WarnaSecondary
	srv.db.First(&setting, setting.ID)
	if setting.WarnaPrimary != "#ff0000" {
		t.Errorf("warna_primary = %q", setting.WarnaPrimary)
	}
	if setting.WarnaSecondary != old {
		t.Errorf("partial update touched warna_secondary: %q", setting.WarnaSecondary)
	}
}

func TestSettingWritesRequireAdmin(t *testing.T) {
	r, _ := setupTestServer(t)
	rec := performRequest(r, http.MethodPost, "/setting", jsonBody(t, map[string]string{
		"warna_primary": "#111111", "warna_secondary": "#222222", "warna_sidebar": "#333333",
	}), "", "application/json")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
