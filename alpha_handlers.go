package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"presensi/models"
)

// GetAlphas lists users with no attendance row today. On a holiday nobody is
// alpha, so the list is empty by definition.
func (s *Server) GetAlphas(c *gin.Context) {
	today := time.Now().Format(dateLayout)

	var libur models.HariLibur
	if err := s.db.Where("tanggal = ?", today).First(&libur).Error; err == nil {
		c.JSON(http.StatusOK, []userResponse{})
		return
	}

	sub := s.db.Model(&models.Absen{}).Select("user_id").Where("tanggal = ?", today)
	var users []models.User
	if err := s.db.Preload("Role").Where("id NOT IN (?)", sub).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	resp := make([]userResponse, 0, len(users))
	for i := range users {
		resp = append(resp, toUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, resp)
}
