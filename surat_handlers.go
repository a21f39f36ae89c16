package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"presensi/models"
)

type suratResponse struct {
	ID         uint   `json:"id"`
	UserID     uint   `json:"userId"`
	Name       string `json:"name"`
	Perihal    string `json:"perihal"`
	Keterangan string `json:"keterangan"`
	Tanggal    string `json:"tanggal"`
	Status     string `json:"status"`
	URL        string `json:"url"`
}

func toSuratResponse(su *models.Surat) suratResponse {
	return suratResponse{
		ID:         su.ID,
		UserID:     su.UserID,
		Name:       su.User.Name,
		Perihal:    su.Perihal,
		Keterangan: su.Keterangan,
		Tanggal:    su.Tanggal,
		Status:     su.Status,
		URL:        su.URL,
	}
}

func (s *Server) GetSurats(c *gin.Context) {
	var surats []models.Surat
	if err := s.db.Preload("User").Find(&surats).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	resp := make([]suratResponse, 0, len(surats))
	for i := range surats {
		resp = append(resp, toSuratResponse(&surats[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetSuratById(c *gin.Context) {
	var surat models.Surat
	if err := s.db.Preload("User").First(&surat, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Surat Tidak di Temukan"})
		return
	}
	c.JSON(http.StatusOK, toSuratResponse(&surat))
}

// CreateSurat files a letter from a multipart form; the scanned attachment is
// optional and follows the same validation and ordering as the user photos.
func (s *Server) CreateSurat(c *gin.Context) {
	perihal := c.PostForm("perihal")
	if perihal == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Perihal Harus Diisi"})
		return
	}
	userID, err := strconv.ParseUint(c.PostForm("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "userId Harus Diisi"})
		return
	}
	var user models.User
	if err := s.db.First(&user, uint(userID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "User Tidak di Temukan"})
		return
	}

	data, originalName, err := readFormFile(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	var fileName, fileURL string
	if data != nil {
		if err := s.store.Validate(originalName, int64(len(data))); err != nil {
			fileError(c, err)
			return
		}
		fileName, err = s.store.Save(data, originalName, "signature")
		if err != nil {
			fileError(c, err)
			return
		}
		fileURL = s.store.URL("signature", fileName)
	}

	surat := models.Surat{
		UserID:     user.ID,
		Perihal:    perihal,
		Keterangan: c.PostForm("keterangan"),
		Tanggal:    time.Now().Format(dateLayout),
		File:       fileName,
		URL:        fileURL,
	}
	if err := s.db.Create(&surat).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"msg": "Surat Berhasil Dibuat"})
}

func (s *Server) UpdateSurat(c *gin.Context) {
	var surat models.Surat
	if err := s.db.First(&surat, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Surat Tidak di Temukan"})
		return
	}
	var req struct {
		Status     string `json:"status"`
		Keterangan string `json:"keterangan"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	updates := map[string]interface{}{}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.Keterangan != "" {
		updates["keterangan"] = req.Keterangan
	}
	if err := s.db.Model(&surat).Updates(updates).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Surat Berhasil Diperbarui"})
}

// DeleteSurat removes the attachment before the row, mirroring DeleteUser's
// ordering and its partial-failure gap.
func (s *Server) DeleteSurat(c *gin.Context) {
	var surat models.Surat
	if err := s.db.First(&surat, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Surat Tidak di Temukan"})
		return
	}
	if err := s.store.Delete(surat.File, "signature"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	if err := s.db.Delete(&surat).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Surat Berhasil Dihapus"})
}
