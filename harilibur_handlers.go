package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"presensi/models"
)

func (s *Server) GetHariLiburs(c *gin.Context) {
	var libur []models.HariLibur
	if err := s.db.Order("tanggal").Find(&libur).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, libur)
}

func (s *Server) CreateHariLibur(c *gin.Context) {
	var req struct {
		Tanggal    string `json:"tanggal" binding:"required"`
		Keterangan string `json:"keterangan" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	if _, err := time.Parse(dateLayout, req.Tanggal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Format Tanggal Harus YYYY-MM-DD"})
		return
	}
	libur := models.HariLibur{Tanggal: req.Tanggal, Keterangan: req.Keterangan}
	if err := s.db.Create(&libur).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"msg": "Hari Libur Berhasil Ditambahkan"})
}

func (s *Server) UpdateHariLibur(c *gin.Context) {
	var libur models.HariLibur
	if err := s.db.First(&libur, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Hari Libur Tidak di Temukan"})
		return
	}
	var req struct {
		Tanggal    string `json:"tanggal"`
		Keterangan string `json:"keterangan"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	updates := map[string]interface{}{}
	if req.Tanggal != "" {
		if _, err := time.Parse(dateLayout, req.Tanggal); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Format Tanggal Harus YYYY-MM-DD"})
			return
		}
		updates["tanggal"] = req.Tanggal
	}
	if req.Keterangan != "" {
		updates["keterangan"] = req.Keterangan
	}
	if err := s.db.Model(&libur).Updates(updates).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Hari Libur Berhasil Diperbarui"})
}

func (s *Server) DeleteHariLibur(c *gin.Context) {
	var libur models.HariLibur
	if err := s.db.First(&libur, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Hari Libur Tidak di Temukan"})
		return
	}
	if err := s.db.Delete(&libur).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Hari Libur Berhasil Dihapus"})
}
