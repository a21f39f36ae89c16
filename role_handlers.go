package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"presensi/models"
)

func (s *Server) GetRoles(c *gin.Context) {
	var roles []models.Role
	if err := s.db.Find(&roles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, roles)
}

func (s *Server) GetRoleById(c *gin.Context) {
	var role models.Role
	if err := s.db.First(&role, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Role Tidak di Temukan"})
		return
	}
	c.JSON(http.StatusOK, role)
}

func (s *Server) CreateRole(c *gin.Context) {
	var req struct {
		NamaRole   string `json:"nama_role" binding:"required"`
		JamPulang  string `json:"jam_pulang" binding:"required"`
		DendaTelat int64  `json:"denda_telat"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	role := models.Role{NamaRole: req.NamaRole, JamPulang: req.JamPulang, DendaTelat: req.DendaTelat}
	if err := s.db.Create(&role).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"msg": "Role Berhasil Ditambahkan"})
}

func (s *Server) UpdateRole(c *gin.Context) {
	var role models.Role
	if err := s.db.First(&role, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Role Tidak di Temukan"})
		return
	}
	var req struct {
		NamaRole   string `json:"nama_role"`
		JamPulang  string `json:"jam_pulang"`
		DendaTelat *int64 `json:"denda_telat"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	updates := map[string]interface{}{}
	if req.NamaRole != "" {
		updates["nama_role"] = req.NamaRole
	}
	if req.JamPulang != "" {
		updates["jam_pulang"] = req.JamPulang
	}
	if req.DendaTelat != nil {
		updates["denda_telat"] = *req.DendaTelat
	}
	if err := s.db.Model(&role).Updates(updates).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Role Berhasil Diperbarui"})
}

// DeleteRole does not guard against users still referencing the role; that
// matches the upstream schema, which declares no cascade rule.
func (s *Server) DeleteRole(c *gin.Context) {
	var role models.Role
	if err := s.db.First(&role, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Role Tidak di Temukan"})
		return
	}
	if err := s.db.Delete(&role).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Role Berhasil Dihapus"})
}
