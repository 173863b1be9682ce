package auth

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/DhavalSuthar-24/crease/config"
	"github.com/DhavalSuthar-24/crease/internal/common"
	"github.com/DhavalSuthar-24/crease/internal/user"
	"github.com/DhavalSuthar-24/crease/pkg/rmiddleware"
	"github.com/DhavalSuthar-24/crease/pkg/token"
	"github.com/DhavalSuthar-24/crease/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	repo   AuthRepository
	config *config.Config
}

func NewAuthController(repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{repo: repo, config: cfg}
}

// @Summary      Admin login
// @Description  Exchange admin credentials for a bearer token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200   {object} AuthResponse "Login successful"
// @Failure      400   {object} map[string]string "Invalid input"
// @Failure      401   {object} map[string]string "Invalid credentials"
// @Failure      500   {object} map[string]string "Internal server error"
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	found, err := ac.repo.GetUserByUsername(strings.TrimSpace(req.Username))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}
	if !utils.CheckPassword(found.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	expiry := ac.config.JWT.AccessTokenExpiryMinutes
	accessToken, err := token.GenerateJWT(found.ID, found.Username, found.Role, ac.config.JWT.AccessTokenSecret, expiry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "access token generation failed"})
		return
	}

	now := time.Now()
	found.LastLogin = &now
	if err := ac.repo.UpdateUser(found); err != nil {
		log.Printf("auth: recording last login for user %d: %v", found.ID, err)
	}

	c.JSON(http.StatusOK, AuthResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   expiry * 60,
		User:        user.FilterUserRecord(found),
	})
}

// @Summary      Current account
// @Description  Returns the account behind the bearer token.
// @Tags         Auth
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} user.UserResponse "Account"
// @Failure      401 {object} map[string]string "Unauthorized"
// @Failure      404 {object} map[string]string "User not found"
// @Router       /auth/me [get]
func (ac *AuthController) GetProfile(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
		return
	}

	current, err := ac.repo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, user.FilterUserRecord(current))
}

// SeedAdmin makes sure an admin account with the configured credentials
// exists. An empty password disables seeding.
func SeedAdmin(repo AuthRepository, username, password string) error {
	if password == "" {
		log.Println("auth: ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}
	existing, err := repo.GetUserByUsername(username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("looking up admin %q: %w", username, err)
	}
	if existing != nil && existing.Role == rmiddleware.RoleAdmin && utils.CheckPassword(existing.Password, password) {
		return nil
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}
	if existing != nil {
		existing.Password = hashed
		existing.Role = rmiddleware.RoleAdmin
		return repo.UpdateUser(existing)
	}
	log.Printf("auth: seeding admin account %q", username)
	return repo.CreateUser(&user.User{Username: username, Password: hashed, Role: rmiddleware.RoleAdmin})
}
