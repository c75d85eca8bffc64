package usecase

import (
	"errors"

	authdomain "expense-tracker-backend/internal/auth/domain"
	authdto "expense-tracker-backend/internal/auth/dto"
)

// Sentinel errors returned by the auth flows. Delivery maps each to a
// status code and message with errors.Is; anything else is an internal
// error and must reach the client only as a generic 500.
var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = errors.New("password too weak")
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// Register validates the request, creates the user, and returns the
	// public user view plus a fresh bearer token.
	Register(req *authdto.RegisterRequest) (*authdto.AuthResponse, error)

	// Login authenticates the credentials and returns the public user view
	// plus a fresh bearer token. Unknown email and wrong password are not
	// distinguishable in the result.
	Login(req *authdto.LoginRequest) (*authdto.AuthResponse, error)

	// GetUserInfo returns the stored public view for a user id.
	GetUserInfo(userID string) (*authdto.UserResponse, error)

	// Authenticate resolves a bearer token to the user it was issued for.
	// Used by the request gate middleware.
	Authenticate(tokenString string) (*authdomain.User, error)
}
