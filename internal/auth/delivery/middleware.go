package delivery

import (
	"errors"
	"net/http"
	"strings"

	"expense-tracker-backend/internal/auth/token"
	"expense-tracker-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware extracts and verifies the bearer token on every request.
// Each rejection aborts the chain; no downstream handler runs.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token"})
			return
		}

		user, err := authUsecase.Authenticate(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, token.ErrExpired):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token expired, please login again"})
			case errors.Is(err, token.ErrMalformed), errors.Is(err, token.ErrAlgorithmMismatch):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			case errors.Is(err, usecase.ErrUserNotFound):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, user not found"})
			default:
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed"})
			}
			return
		}

		c.Set("userID", user.ID)
		c.Set("user", user)
		c.Next()
	}
}

// bearerToken returns the token portion of a "Bearer <token>" header, or
// "" when the header is missing or uses a different scheme.
func bearerToken(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
