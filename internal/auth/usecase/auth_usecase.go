package usecase

import (
	"errors"
	"strings"

	authdomain "expense-tracker-backend/internal/auth/domain"
	authdto "expense-tracker-backend/internal/auth/dto"
	"expense-tracker-backend/internal/auth/repository"
	"expense-tracker-backend/internal/auth/token"
	"expense-tracker-backend/pkg/validator"

	"gorm.io/gorm"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	tokens   *token.Service
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, tokens *token.Service) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// normalizeEmail trims surrounding whitespace and lowercases the address.
// Every lookup and every stored email goes through this.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdto.AuthResponse, error) {
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}
	if !validator.IsValidEmail(req.Email) {
		return nil, ErrInvalidEmail
	}
	if !validator.IsStrongPassword(req.Password) {
		return nil, ErrWeakPassword
	}

	email := normalizeEmail(req.Email)

	existing, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	user := &authdomain.User{
		FullName:        strings.TrimSpace(req.FullName),
		Email:           email,
		Password:        req.Password, // hashed by the repository on Create
		ProfileImageURL: req.ProfileImageURL,
	}

	if err := u.userRepo.Create(user); err != nil {
		// Two concurrent registrations can both pass the pre-check; the
		// unique index is the authoritative arbiter.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return u.authResponse(user)
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}

	user, err := u.userRepo.FindByEmail(normalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return u.authResponse(user)
}

func (u *authUsecase) GetUserInfo(userID string) (*authdto.UserResponse, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return publicView(user), nil
}

// Authenticate verifies a bearer token and loads the user it was issued
// for. Token errors pass through unchanged so the middleware can map
// expired and invalid tokens to distinct responses.
func (u *authUsecase) Authenticate(tokenString string) (*authdomain.User, error) {
	userID, err := u.tokens.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (u *authUsecase) authResponse(user *authdomain.User) (*authdto.AuthResponse, error) {
	tok, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &authdto.AuthResponse{
		ID:    user.ID,
		User:  publicView(user),
		Token: tok,
	}, nil
}

func publicView(user *authdomain.User) *authdto.UserResponse {
	return &authdto.UserResponse{
		ID:              user.ID,
		FullName:        user.FullName,
		Email:           user.Email,
		ProfileImageURL: user.ProfileImageURL,
	}
}
