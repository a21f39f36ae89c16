package main

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// setupRoutes wires the route table. Static dirs mirror the public layout the
// frontend expects; POST /users and PATCH /userAbsen/:id are deliberately
// unauthenticated, as is the absen group used by the kiosk client.
func setupRoutes(r *gin.Engine, s *Server) {
	for _, sub := range []string{"images", "absen", "geolocation", "logo", "signature"} {
		r.Static("/"+sub, filepath.Join(s.cfg.PublicDir, sub))
	}

	// auth
	r.POST("/login", s.Login)
	r.GET("/me", s.Me)
	r.DELETE("/logout", s.Logout)

	// open endpoints
	r.POST("/users", s.CreateUser)
	r.PATCH("/userAbsen/:id", s.UpdateForFotoAbsen)
	r.GET("/fotoabsen", s.GetUserFotoAbsen)
	r.GET("/setting", s.GetSetting)

	// absen (kiosk client, no session)
	r.GET("/absens", s.GetAbsens)
	r.GET("/detailuser/:id", s.GetPercentageUser)
	r.POST("/absen", s.CreateAbsen)
	r.PATCH("/absen/:id", s.AbsenKeluar)
	r.POST("/absen/geolocation", s.GeoLocation)

	authGroup := r.Group("")
	authGroup.Use(s.verifyUser())
	{
		authGroup.PATCH("/userProfile/:id", s.UpdatePotoProfile)
		authGroup.GET("/hariliburs", s.GetHariLiburs)
		authGroup.GET("/surats", s.GetSurats)
		authGroup.GET("/surats/:id", s.GetSuratById)
		authGroup.POST("/surat", s.CreateSurat)
		authGroup.GET("/alphas", s.GetAlphas)
	}

	adminGroup := authGroup.Group("")
	adminGroup.Use(s.adminOnly())
	{
		adminGroup.GET("/users", s.GetUsers)
		adminGroup.GET("/users/:id", s.GetUsersById)
		adminGroup.GET("/userbyrole/:role", s.GetUsersByRole)
		adminGroup.PATCH("/users/:id", s.UpdateUser)
		adminGroup.PATCH("/userStatus/:id", s.UpdateUserStatus)
		adminGroup.DELETE("/users/:id", s.DeleteUser)

		adminGroup.GET("/roles", s.GetRoles)
		adminGroup.GET("/roles/:id", s.GetRoleById)
		adminGroup.POST("/roles", s.CreateRole)
		adminGroup.PATCH("/roles/:id", s.UpdateRole)
		adminGroup.DELETE("/roles/:id", s.DeleteRole)

		adminGroup.POST("/harilibur", s.CreateHariLibur)
		adminGroup.PATCH("/harilibur/:id", s.UpdateHariLibur)
		adminGroup.DELETE("/harilibur/:id", s.DeleteHariLibur)

		adminGroup.POST("/setting", s.CreateSetting)
		adminGroup.PATCH("/setting/:id", s.UpdateSetting)

		adminGroup.PATCH("/surat/:id", s.UpdateSurat)
		adminGroup.DELETE("/surat/:id", s.DeleteSurat)
	}
}
