package controllers

import (
	"os"
	"time"

	"github.com/arundas-dev/CycleKart/config"
	"github.com/arundas-dev/CycleKart/models"
	"github.com/arundas-dev/CycleKart/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks a submitted password against stored credentials.
// Injectable so the check is never a hard-coded comparison.
type CredentialVerifier interface {
	Verify(storedHash, password string) error
	Hash(password string) (string, error)
}

// BcryptVerifier verifies credentials against bcrypt hashes
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(storedHash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password))
}

func (BcryptVerifier) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

var credentialVerifier CredentialVerifier = BcryptVerifier{}

// SetCredentialVerifier swaps the credential verification strategy
func SetCredentialVerifier(v CredentialVerifier) {
	credentialVerifier = v
}

// AdminLoginRequest represents the admin login request
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin handles admin authentication
func AdminLogin(c *gin.Context) {
	utils.LogInfo("AdminLogin called")
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid login request: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}
	utils.LogDebug("Processing login request for email: %s", req.Email)

	var admin models.Admin
	if err := config.DB.Where("email = ?", req.Email).First(&admin).Error; err != nil {
		utils.LogError("Admin not found for email: %s: %v", req.Email, err)
		utils.Unauthorized(c, utils.ErrInvalidCredentials)
		return
	}

	if !admin.IsActive {
		utils.LogError("Inactive admin account attempted login: %s", admin.Email)
		utils.Forbidden(c, "Admin account is inactive")
		return
	}

	if err := credentialVerifier.Verify(admin.Password, req.Password); err != nil {
		utils.LogError("Invalid password for admin: %s", admin.Email)
		utils.Unauthorized(c, utils.ErrInvalidCredentials)
		return
	}
	utils.LogDebug("Password verified for admin: %s", admin.Email)

	// Update last login
	admin.LastLogin = time.Now()
	if err := config.DB.Save(&admin).Error; err != nil {
		utils.LogError("Failed to update last login for admin: %s: %v", admin.Email, err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": admin.ID,
		"exp":      time.Now().Add(time.Hour * 24).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		utils.LogError("JWT secret not configured")
		utils.InternalServerError(c, "JWT secret not configured", nil)
		return
	}

	tokenString, err := token.SignedString([]byte(jwtSecret))
	if err != nil {
		utils.LogError("Failed to sign JWT token for admin: %s: %v", admin.Email, err)
		utils.InternalServerError(c, "Failed to generate token", err.Error())
		return
	}

	utils.LogInfo("Admin login successful: %s", admin.Email)
	utils.Success(c, utils.MsgLoginSuccess, gin.H{
		"token": tokenString,
		"admin": gin.H{
			"id":        admin.ID,
			"email":     admin.Email,
			"firstName": admin.FirstName,
			"lastName":  admin.LastName,
		},
	})
}

// AdminLogout handles admin logout. Tokens are short-lived; the client simply
// discards its copy.
func AdminLogout(c *gin.Context) {
	utils.LogInfo("AdminLogout called")
	utils.Success(c, utils.MsgLogoutSuccess, nil)
}

// CreateSampleAdmin seeds an admin account from environment credentials so a
// fresh deployment is reachable. Skipped when the variables are unset or the
// account already exists.
func CreateSampleAdmin() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		utils.LogInfo("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seeding")
		return nil
	}

	var existing models.Admin
	if err := config.DB.Where("email = ?", cfg.AdminEmail).First(&existing).Error; err == nil {
		utils.LogDebug("Admin account already exists: %s", cfg.AdminEmail)
		return nil
	}

	hash, err := credentialVerifier.Hash(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Email:     cfg.AdminEmail,
		Password:  hash,
		FirstName: "Store",
		LastName:  "Admin",
		IsActive:  true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		return err
	}
	utils.LogInfo("Seeded admin account: %s", cfg.AdminEmail)
	return nil
}
