package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"presensi/models"
)

// GetSetting returns the first settings row. Nothing stops multiple rows from
// existing; readers only ever see the first.
func (s *Server) GetSetting(c *gin.Context) {
	var setting models.Setting
	if err := s.db.First(&setting).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Setting Tidak di Temukan"})
		return
	}
	c.JSON(http.StatusOK, setting)
}

func (s *Server) CreateSetting(c *gin.Context) {
	var req struct {
		WarnaPrimary   string `json:"warna_primary" binding:"required"`
		WarnaSecondary string `json:"warna_secondary" binding:"required"`
		WarnaSidebar   string `json:"warna_sidebar" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	setting := models.Setting{
		WarnaPrimary:   req.WarnaPrimary,
		WarnaSecondary: req.WarnaSecondary,
		WarnaSidebar:   req.WarnaSidebar,
	}
	if err := s.db.Create(&setting).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"msg": "Setting Berhasil Ditambahkan"})
}

func (s *Server) UpdateSetting(c *gin.Context) {
	var setting models.Setting
	if err := s.db.First(&setting, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Setting Tidak di Temukan"})
		return
	}
	var req struct {
		WarnaPrimary   string `json:"warna_primary"`
		WarnaSecondary string `json:"warna_secondary"`
		WarnaSidebar   string `json:"warna_sidebar"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	updates := map[string]interface{}{}
	if req.WarnaPrimary != "" {
		updates["warna_primary"] = req.WarnaPrimary
	}
	if req.WarnaSecondary != "" {
		updates["warna_secondary"] = req.WarnaSecondary
	}
	if req.WarnaSidebar != "" {
		updates["warna_sidebar"] = req.WarnaSidebar
	}
	if err := s.db.Model(&setting).Updates(updates).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Setting Berhasil Diperbarui"})
}
