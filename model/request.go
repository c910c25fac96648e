// file: model/request.go

package model

// RegisterRequest defines the payload for creating a new user.
// Only presence is checked here; password strength and email shape are
// business rules enforced by the auth service.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest defines the payload for user authentication.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
