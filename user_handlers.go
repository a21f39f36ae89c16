package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"presensi/models"
	"presensi/pkg/storage"
)

// roleResponse and userResponse are the explicit read projections; credential
// columns never cross this boundary.
type roleResponse struct {
	NamaRole   string `json:"nama_role"`
	JamPulang  string `json:"jam_pulang"`
	DendaTelat int64  `json:"denda_telat"`
}

type userResponse struct {
	ID     uint         `json:"id"`
	Name   string       `json:"name"`
	Email  string       `json:"email"`
	RoleID *uint        `json:"roleId"`
	Status string       `json:"status"`
	URL    string       `json:"url"`
	Role   roleResponse `json:"role"`
}

// userRoleResponse is the wider projection GetUsersByRole returns.
type userRoleResponse struct {
	userResponse
	Image        string `json:"image"`
	URLFotoAbsen string `json:"url_foto_absen"`
}

type fotoAbsenResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	URLFotoAbsen string `json:"url_foto_absen"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		RoleID: u.RoleID,
		Status: u.Status,
		URL:    u.URL,
		Role: roleResponse{
			NamaRole:   u.Role.NamaRole,
			JamPulang:  u.Role.JamPulang,
			DendaTelat: u.Role.DendaTelat,
		},
	}
}

// readFormFile pulls the multipart "file" field into memory. A missing field
// is (nil, "", nil); callers decide whether that is an error.
func readFormFile(c *gin.Context) ([]byte, string, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, "", nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, fh.Filename, nil
}

// fileError maps storage validation failures onto the upstream status codes.
func fileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrInvalidType):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"msg": "Invalid Images"})
	case errors.Is(err, storage.ErrTooLarge):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"msg": "Image must be less than 5 MB"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
	}
}

func parseRoleID(c *gin.Context) *uint {
	v := c.PostForm("roleId")
	if v == "" {
		return nil
	}
	parsed, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return nil
	}
	id := uint(parsed)
	return &id
}

// CreateUser registers a user from a multipart form. Validation order:
// password confirmation, password length, file extension, file size. The
// image is stored before the row is written; a DB failure leaves the file
// behind (no rollback) for the reconciler to report.
func (s *Server) CreateUser(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")
	confPassword := c.PostForm("confPassword")

	if password != confPassword {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Password Dan Confirm Password Tidak Cocok"})
		return
	}
	if len(password) < 8 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Password harus minimal 8 karakter"})
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

	hash, err := HashPassword(password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	fileName, err := s.store.Save(data, originalName, "images")
	if err != nil {
		fileError(c, err)
		return
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		RoleID:   parseRoleID(c),
		Image:    fileName,
		URL:      s.store.URL("images", fileName),
	}
	if err := s.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"msg": "Register Berhasil"})
}

func (s *Server) GetUsers(c *gin.Context) {
	var users []models.User
	if err := s.db.Preload("Role").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	resp := make([]userResponse, 0, len(users))
	for i := range users {
		resp = append(resp, toUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetUsersById(c *gin.Context) {
	var user models.User
	if err := s.db.Preload("Role").First(&user, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "User Tidak di Temukan"})
		return
	}
	c.JSON(http.StatusOK, toUserResponse(&user))
}

// GetUsersByRole keeps the upstream contract: zero matches is a 404, not an
// empty array.
func (s *Server) GetUsersByRole(c *gin.Context) {
	var users []models.User
	if err := s.db.Preload("Role").Where("role_id = ?", c.Param("role")).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	if len(users) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Tidak ada pengguna dengan roleId ini"})
		return
	}
	resp := make([]userRoleResponse, 0, len(users))
	for i := range users {
		resp = append(resp, userRoleResponse{
			userResponse: toUserResponse(&users[i]),
			Image:        users[i].Image,
			URLFotoAbsen: users[i].URLFotoAbsen,
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetUserFotoAbsen(c *gin.Context) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	resp := make([]fotoAbsenResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, fotoAbsenResponse{ID: u.ID, Name: u.Name, URLFotoAbsen: u.URLFotoAbsen})
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateUser replaces fields, the photo and the password where supplied.
// When a new file arrives the old one is unlinked before the new write, so a
// failed write leaves the row pointing at a file that is gone; that ordering
// is upstream behavior and is kept.
func (s *Server) UpdateUser(c *gin.Context) {
	var user models.User
	if err := s.db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "User Tidak di Temukan"})
		return
	}

	data, originalName, err := readFormFile(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	fileName := user.Image
	if data != nil {
		if err := s.store.Validate(originalName, int64(len(data))); err != nil {
			fileError(c, err)
			return
		}
		if err := s.store.Delete(user.Image, "images"); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
			return
		}
		fileName, err = s.store.Save(data, originalName, "images")
		if err != nil {
			fileError(c, err)
			return
		}
	}

	hash := user.Password
	password := c.PostForm("password")
	if password != "" {
		// always re-hash a supplied password; the upstream plaintext-vs-hash
		// comparison could never match and is not reproduced
		if password != c.PostForm("confPassword") {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Password Dan Confirm Password Tidak Cocok"})
			return
		}
		hash, err = HashPassword(password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
			return
		}
	}

	updates := map[string]interface{}{
		"image":    fileName,
		"url":      s.store.URL("images", fileName),
		"password": hash,
	}
	if v := c.PostForm("name"); v != "" {
		updates["name"] = v
	}
	if v := c.PostForm("email"); v != "" {
		updates["email"] = v
	}
	if rid := parseRoleID(c); rid != nil {
		updates["role_id"] = *rid
	}
	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"msg": "Update Berhasil"})
}

// UpdatePotoProfile is UpdateUser restricted to the profile photo pair.
func (s *Server) UpdatePotoProfile(c *gin.Context) {
	var user models.User
	if err := s.db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "User Tidak di Temukan"})
		return
	}

	data, originalName, err := readFormFile(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	fileName := user.Image
	if data != nil {
		if err := s.store.Validate(originalName, int64(len(data))); err != nil {
			fileError(c, err)
			return
		}
		if err := s.store.Delete(user.Image, "images"); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
			return
		}
		fileName, err = s.store.Save(data, originalName, "images")
		if err != nil {
			fileError(c, err)
			return
		}
	}

	updates := map[string]interface{}{
		"image": fileName,
		"url":   s.store.URL("images", fileName),
	}
	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"msg": "Update Foto Berhasil"})
}

// UpdateForFotoAbsen targets the attendance photo pair in the absen subdir,
// which is created on demand.
func (s *Server) UpdateForFotoAbsen(c *gin.Context) {
	var user models.User
	if err := s.db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "User Tidak di Temukan"})
		return
	}

	data, originalName, err := readFormFile(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	fileName := user.FotoAbsen
	if data != nil {
		if err := s.store.Validate(originalName, int64(len(data))); err != nil {
			fileError(c, err)
			return
		}
		if err := s.store.Delete(user.FotoAbsen, "absen"); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
			return
		}
		fileName, err = s.store.Save(data, originalName, "absen")
		if err != nil {
			fileError(c, err)
			return
		}
	}

	updates := map[string]interface{}{
		"foto_absen":     fileName,
		"url_foto_absen": s.store.URL("absen", fileName),
	}
	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"msg": "Update Berhasil"})
}

func (s *Server) UpdateUserStatus(c *gin.Context) {
	var user models.User
	if err := s.db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "User Tidak di Temukan"})
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	if err := s.db.Model(&user).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Status Berhasil Diperbarui"})
}

// DeleteUser removes the image file first and the row second; if the row
// delete then fails the file is already gone. That gap is upstream behavior.
func (s *Server) DeleteUser(c *gin.Context) {
	var user models.User
	if err := s.db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "User tidak ditemukan"})
		return
	}
	if err := s.store.Delete(user.Image, "images"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	if err := s.db.Delete(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": fmt.Sprintf("Berhasil Delete Data Dengan Username %s", user.Name)})
}
