package dto

type RegisterRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ProfileImageURL string `json:"profileImageURL"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public view of a user. It has no password field at
// all, so the secret cannot leak through serialization.
type UserResponse struct {
	ID              string `json:"id"`
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	ProfileImageURL string `json:"profileImageURL,omitempty"`
}

type AuthResponse struct {
	ID    string        `json:"id"`
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}
