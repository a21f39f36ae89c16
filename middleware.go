package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"presensi/models"
	"presensi/pkg/session"
)

// verifyUser admits a request only when its cookie carries a live session for
// an existing user, and stashes the resolved user (with role) in the context.
func (s *Server) verifyUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(session.CookieName)
		sess, err := s.sessions.Get(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Mohon Login ke Akun Anda!"})
			c.Abort()
			return
		}
		var user models.User
		if err := s.db.Preload("Role").First(&user, sess.UserID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"msg": "User Tidak di Temukan"})
			c.Abort()
			return
		}
		c.Set("user", &user)
		c.Next()
	}
}

// adminOnly rejects anyone whose role is not admin. Must run after verifyUser.
func (s *Server) adminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil || user.Role.NamaRole != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"msg": "Akses Terlarang"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get("user")
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
