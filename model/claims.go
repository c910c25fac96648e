package model

import "github.com/golang-jwt/jwt/v5"

type AppClaims struct {
	UserID int    `json:"user_id"`
	Group  string `json:"user_group"`
	jwt.RegisteredClaims
}
