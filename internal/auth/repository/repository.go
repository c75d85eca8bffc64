package repository

import authdomain "expense-tracker-backend/internal/auth/domain"

// UserRepository defines the persistence contract consumed by the auth
// usecase. Find methods return (nil, nil) when no record matches.
type UserRepository interface {
	// Create stores a new user. The Password field must hold the plaintext
	// on entry; it is hashed before the record is written and never stored
	// as-is. A duplicate email fails with gorm.ErrDuplicatedKey.
	Create(user *authdomain.User) error

	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
}
