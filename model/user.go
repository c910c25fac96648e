package model

import "time"

type Group string

const (
	GroupAdmin Group = "ADMIN"
	GroupUser  Group = "USER"
)

// User is the credential record. Password and RefreshTokenHash are never
// exposed in JSON responses. RefreshTokenHash is empty until the first login;
// it holds the hash of the single currently valid refresh token.
type User struct {
	ID               int       `json:"id"`
	Email            string    `json:"email"`
	Password         string    `json:"-"`
	RefreshTokenHash string    `json:"-"`
	Group            string    `json:"group"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
