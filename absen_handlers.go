package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"presensi/models"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

type absenResponse struct {
	ID         uint     `json:"id"`
	UserID     uint     `json:"userId"`
	Name       string   `json:"name"`
	Tanggal    string   `json:"tanggal"`
	JamMasuk   string   `json:"jam_masuk"`
	JamKeluar  string   `json:"jam_keluar"`
	Telat      bool     `json:"telat"`
	Denda      int64    `json:"denda"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	URLFotoGeo string   `json:"url_foto_geo"`
}

func toAbsenResponse(a *models.Absen) absenResponse {
	return absenResponse{
		ID:         a.ID,
		UserID:     a.UserID,
		Name:       a.User.Name,
		Tanggal:    a.Tanggal,
		JamMasuk:   a.JamMasuk,
		JamKeluar:  a.JamKeluar,
		Telat:      a.Telat,
		Denda:      a.Denda,
		Latitude:   a.Latitude,
		Longitude:  a.Longitude,
		URLFotoGeo: a.URLFotoGeo,
	}
}

func (s *Server) GetAbsens(c *gin.Context) {
	var absens []models.Absen
	if err := s.db.Preload("User").Find(&absens).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	resp := make([]absenResponse, 0, len(absens))
	for i := range absens {
		resp = append(resp, toAbsenResponse(&absens[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// CreateAbsen clocks a user in; one row per user per day.
func (s *Server) CreateAbsen(c *gin.Context) {
	var req struct {
		UserID uint `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	var user models.User
	if err := s.db.First(&user, req.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "User Tidak di Temukan"})
		return
	}
	now := time.Now()
	today := now.Format(dateLayout)
	var existing models.Absen
	if err := s.db.Where("user_id = ? AND tanggal = ?", user.ID, today).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"msg": "Sudah Absen Hari Ini"})
		return
	}
	absen := models.Absen{
		UserID:   user.ID,
		Tanggal:  today,
		JamMasuk: now.Format(timeLayout),
	}
	if err := s.db.Create(&absen).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"msg": "Absen Masuk Berhasil"})
}

// AbsenKeluar clocks out. Leaving before the role's jam_pulang marks the row
// telat and applies the role's denda_telat.
func (s *Server) AbsenKeluar(c *gin.Context) {
	var absen models.Absen
	if err := s.db.First(&absen, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Data Absen Tidak di Temukan"})
		return
	}
	if absen.JamKeluar != "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Sudah Absen Pulang"})
		return
	}
	var user models.User
	if err := s.db.Preload("Role").First(&user, absen.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "User Tidak di Temukan"})
		return
	}
	jamKeluar := time.Now().Format(timeLayout)
	telat := false
	var denda int64
	// zero-padded HH:MM:SS compares correctly as a string
	if user.Role.JamPulang != "" && jamKeluar < user.Role.JamPulang {
		telat = true
		denda = user.Role.DendaTelat
	}
	updates := map[string]interface{}{
		"jam_keluar": jamKeluar,
		"telat":      telat,
		"denda":      denda,
	}
	if err := s.db.Model(&absen).Updates(updates).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Absen Pulang Berhasil"})
}

// GeoLocation attaches a geolocation photo and coordinates to today's row.
func (s *Server) GeoLocation(c *gin.Context) {
	userID := c.PostForm("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "userId Harus Diisi"})
		return
	}
	today := time.Now().Format(dateLayout)
	var absen models.Absen
	if err := s.db.Where("user_id = ? AND tanggal = ?", userID, today).First(&absen).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Belum Absen Hari Ini"})
		return
	}

	data, originalName, err := readFormFile(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	if data == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"msg": "Invalid Images"})
		return
	}
	if err := s.store.Validate(originalName, int64(len(data))); err != nil {
		fileError(c, err)
		return
	}
	fileName, err := s.store.Save(data, originalName, "geolocation")
	if err != nil {
		fileError(c, err)
		return
	}

	updates := map[string]interface{}{
		"foto_geo":     fileName,
		"url_foto_geo": s.store.URL("geolocation", fileName),
	}
	if v, err := strconv.ParseFloat(c.PostForm("latitude"), 64); err == nil {
		updates["latitude"] = v
	}
	if v, err := strconv.ParseFloat(c.PostForm("longitude"), 64); err == nil {
		updates["longitude"] = v
	}
	if err := s.db.Model(&absen).Updates(updates).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"msg": "Geolocation Berhasil Disimpan"})
}

// GetPercentageUser reports a user's attendance for the current month:
// days present over elapsed working days (weekends and holidays excluded).
func (s *Server) GetPercentageUser(c *gin.Context) {
	var user models.User
	if err := s.db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "User Tidak di Temukan"})
		return
	}
	now := time.Now()
	monthPrefix := now.Format("2006-01")

	var hadir int64
	if err := s.db.Model(&models.Absen{}).
		Where("user_id = ? AND tanggal LIKE ?", user.ID, monthPrefix+"%").
		Count(&hadir).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}

	var libur []models.HariLibur
	s.db.Where("tanggal LIKE ?", monthPrefix+"%").Find(&libur)
	liburSet := make(map[string]bool, len(libur))
	for _, h := range libur {
		liburSet[h.Tanggal] = true
	}

	hariKerja := 0
	for d := 1; d <= now.Day(); d++ {
		date := time.Date(now.Year(), now.Month(), d, 0, 0, 0, 0, now.Location())
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		if liburSet[date.Format(dateLayout)] {
			continue
		}
		hariKerja++
	}

	persentase := 0.0
	if hariKerja > 0 {
		persentase = float64(hadir) / float64(hariKerja) * 100
	}
	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"name":       user.Name,
		"hadir":      hadir,
		"hari_kerja": hariKerja,
		"persentase": persentase,
	})
}
