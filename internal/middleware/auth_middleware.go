package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Baaaki/trainergo/internal/models"
	"github.com/Baaaki/trainergo/internal/utils"
	"github.com/Baaaki/trainergo/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserID = "user_id"
	ContextEmail  = "user_email"
	ContextRole   = "user_role"
	ContextClaims = "claims"
)

// AuthMiddleware rejects requests without a valid bearer token and stores the claims on the context.
func AuthMiddleware(opts utils.TokenOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Authorization header required",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid authorization format. Use: Bearer <token>",
			})
			return
		}

		claims, err := utils.ValidateToken(tokenString, opts)
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, utils.ErrExpiredToken) {
				msg = "Token expired"
			}
			logger.Log.Debug("Token rejected",
				zap.String("ip", c.ClientIP()),
				zap.Error(err),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": msg,
			})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextClaims, claims)

		c.Next()
	}
}

// RequireRoles lets the request through only for the listed roles. Must run after AuthMiddleware.
func RequireRoles(roles ...models.RoleName) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Unauthorized",
			})
			return
		}

		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"message": "forbidden",
		})
	}
}

func AdminMiddleware() gin.HandlerFunc {
	return RequireRoles(models.RoleAdmin)
}
