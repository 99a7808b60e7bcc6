package middleware

import (
	"fmt"
	"os"
	"strings"

	"github.com/arundas-dev/CycleKart/config"
	"github.com/arundas-dev/CycleKart/models"
	"github.com/arundas-dev/CycleKart/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// ContextKeyAdmin is where the authenticated admin is stored on the request
const ContextKeyAdmin = "admin"

func rejectAuth(c *gin.Context, appErr *utils.AppError) {
	utils.LogError("Admin auth rejected: %s", appErr.Error())
	utils.Error(c, appErr.Code, appErr.Message, nil)
	c.Abort()
}

// adminIDFromToken verifies the bearer token signature and pulls the admin ID
// out of its claims.
func adminIDFromToken(tokenString, secret string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, fmt.Errorf("token is not valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("unreadable token claims")
	}
	adminID, ok := claims["admin_id"].(float64)
	if !ok {
		return 0, fmt.Errorf("token carries no admin_id claim")
	}
	return uint(adminID), nil
}

// AdminAuthMiddleware guards the back-office routes. It accepts a bearer
// token issued by AdminLogin, loads the admin it names and refuses inactive
// accounts.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			rejectAuth(c, utils.UnauthorizedError("Admin login required", nil))
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		jwtSecret := os.Getenv("JWT_SECRET")
		if jwtSecret == "" {
			utils.LogError("JWT_SECRET is not set; refusing admin access")
			utils.InternalServerError(c, "Server is misconfigured", nil)
			c.Abort()
			return
		}

		adminID, err := adminIDFromToken(tokenString, jwtSecret)
		if err != nil {
			rejectAuth(c, utils.UnauthorizedError("Admin login required", err))
			return
		}
		utils.LogDebug("Bearer token names admin %d", adminID)

		var admin models.Admin
		if err := config.DB.First(&admin, adminID).Error; err != nil {
			rejectAuth(c, utils.UnauthorizedError("Admin account no longer exists", err))
			return
		}
		if !admin.IsActive {
			utils.LogError("Blocked admin %d attempted back-office access", admin.ID)
			utils.Forbidden(c, "Admin account is inactive")
			c.Abort()
			return
		}

		c.Set(ContextKeyAdmin, admin)
		utils.LogInfo("Admin %d authenticated", admin.ID)
		c.Next()
	}
}
