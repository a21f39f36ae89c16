package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"presensi/models"
	"presensi/pkg/session"
)

func (s *Server) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	var user models.User
	if err := s.db.Preload("Role").Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "User Tidak di Temukan"})
		return
	}
	if !VerifyPassword(user.Password, req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Password Salah"})
		return
	}
	token, err := s.sessions.Create(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Gagal Membuat Session"})
		return
	}
	c.SetCookie(session.CookieName, token, int(s.cfg.SessTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, toUserResponse(&user))
}

// Me resolves the session itself instead of going through verifyUser, so the
// frontend can probe login state without tripping the middleware chain.
func (s *Server) Me(c *gin.Context) {
	token, _ := c.Cookie(session.CookieName)
	sess, err := s.sessions.Get(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Mohon Login ke Akun Anda!"})
		return
	}
	var user models.User
	if err := s.db.Preload("Role").First(&user, sess.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "User Tidak di Temukan"})
		return
	}
	c.JSON(http.StatusOK, toUserResponse(&user))
}

func (s *Server) Logout(c *gin.Context) {
	token, _ := c.Cookie(session.CookieName)
	if err := s.sessions.Delete(token); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Tidak Dapat Logout"})
		return
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"msg": "Anda Telah Logout"})
}
