package handlers

import (
	"net/http"

	"prodiny/internal/db"
	"prodiny/internal/models"
	"prodiny/internal/services"
	"prodiny/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type registerRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	CollegeName string `json:"college_name"`
	IsStudent   bool   `json:"is_student"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type profileSetupRequest struct {
	FullName      string   `json:"full_name" binding:"required"`
	College       string   `json:"college" binding:"required"`
	Skills        []string `json:"skills"`
	GithubProfile string   `json:"github_profile"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Invalid registration payload")
		return
	}

	if len(req.Password) < 6 {
		Fail(c, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	var existing models.User
	if err := db.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		Fail(c, http.StatusBadRequest, "Email already registered")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	user := models.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    hash,
		CollegeName: req.CollegeName,
		IsStudent:   req.IsStudent,
		Role:        "student",
	}
	if err := db.DB.Create(&user).Error; err != nil {
		Fail(c, http.StatusBadRequest, "Failed to create user")
		return
	}

	token, err := services.CreateAccessToken(user.Email)
	if err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to create access token")
		return
	}

	// Cookie session alongside the bearer token, for same-origin clients
	session := sessions.Default(c)
	session.Set("user_email", user.Email)
	session.Save()

	c.JSON(http.StatusOK, gin.H{
		"message":      "User registered successfully",
		"access_token": token,
		"token_type":   "bearer",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Invalid login payload")
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		Fail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		Fail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := services.CreateAccessToken(user.Email)
	if err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to create access token")
		return
	}

	session := sessions.Default(c)
	session.Set("user_email", user.Email)
	session.Save()

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// Logout clears the cookie session. Bearer tokens are not revoked
// server-side; clients drop them and they expire.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user := MustCurrentUser(c)
	c.JSON(http.StatusOK, user)
}

// ProfileSetup fills the onboarding fields and flips profile_completed.
func (h *AuthHandler) ProfileSetup(c *gin.Context) {
	user := MustCurrentUser(c)

	var req profileSetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Invalid profile payload")
		return
	}

	updates := map[string]interface{}{
		"name":              req.FullName,
		"college_name":      req.College,
		"skills":            utils.JoinTags(req.Skills),
		"github_profile":    req.GithubProfile,
		"profile_completed": true,
	}
	if err := db.DB.Model(user).Updates(updates).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}
