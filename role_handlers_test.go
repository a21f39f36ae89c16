package main

import (
	"fmt"
	"net/http"
	"testing"

	"presensi/models"
)

func TestRoleCRUD(t *testing.T) {
	r, srv := setupTestServer(t)
	token := loginAdmin(t, r)

	rec := performRequest(r, http.MethodPost, "/roles", jsonBody(t, map[string]interface{}{
		"nama_role": "magang", "jam_pulang": "16:00:00", "denda_telat": 25000,
	}), token, "application/json")
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d body=%s", rec.Code, rec.Body.String())
	}

	var role models.Role
	if err := srv.db.Where("nama_role = ?", "magang").First(&role).Error; err != nil {
		t.Fatalf("role row missing: %v", err)
	}
	if role.JamPulang != "16:00:00" || role.DendaTelat != 25000 {
		t.Errorf("role = %+v", role)
	}

	rec = performRequest(r, http.MethodGet, fmt.Sprintf("/roles/%d", role.ID), nil, token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}

	// partial update leaves untouched fields alone
	rec = performRequest(r, http.MethodPatch, fmt.Sprintf("/roles/%d", role.ID), jsonBody(t, map[string]string{
		"jam_pulang": "16:30:00",
	}), token, "application/json")
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d body=%s", rec.Code, rec.Body.String())
	}
	srv.db.First(&role, role.ID)
	if role.JamPulang != "16:30:00" {
		t.Errorf("jam_pulang = %q", role.JamPulang)
	}
	if role.NamaRole != "magang" || role.DendaTelat != 25000 {
		t.Errorf("partial update touched other fields: %+v", role)
	}

	rec = performRequest(r, http.MethodDelete, fmt.Sprintf("/roles/%d", role.ID), nil, token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}
	if err := srv.db.First(&models.Role{}, role.ID).Error; err == nil {
		t.Error("role row survived delete")
	}
}

func TestRoleNotFound(t *testing.T) {
	r, _ := setupTestServer(t)
	token := loginAdmin(t, r)

	for _, tt := range []struct{ method, path string }{
		{http.MethodGet, "/roles/9999"},
		{http.MethodPatch, "/roles/9999"},
		{http.MethodDelete, "/roles/9999"},
	} {
		rec := performRequest(r, tt.method, tt.path, jsonBody(t, map[string]string{}), token, "application/json")
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s %s status = %d, want 404", tt.method, tt.path, rec.Code)
		}
	}
}

func TestCreateRoleRequiresFields(t *testing.T) {
	r, _ := setupTestServer(t)
	token := loginAdmin(t, r)
	rec := performRequest(r, http.MethodPost, "/roles", jsonBody(t, map[string]string{
		"nama_role": "magang",
	}), token, "application/json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
