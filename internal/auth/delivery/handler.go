package delivery

import (
	"errors"
	"log"
	"net/http"

	authdto "expense-tracker-backend/internal/auth/dto"
	"expense-tracker-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	resp, err := h.authUsecase.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		case errors.Is(err, usecase.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Please enter a valid email address"})
		case errors.Is(err, usecase.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Password must be at least 8 characters with uppercase, lowercase, and number"})
		case errors.Is(err, usecase.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already taken"})
		default:
			log.Printf("register failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error registering user"})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	resp, err := h.authUsecase.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		default:
			log.Printf("login failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error logging in"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetUserInfo handles GET /auth/getUser (protected)
func (h *AuthHandler) GetUserInfo(c *gin.Context) {
	userID := c.GetString("userID")

	user, err := h.authUsecase.GetUserInfo(userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		log.Printf("get user info failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching user information"})
		return
	}

	c.JSON(http.StatusOK, user)
}
