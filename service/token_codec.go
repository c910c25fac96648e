// file: service/token_codec.go

package service

import (
	"errors"
	"fmt"
	"go-auth-api/logger"
	"go-auth-api/model"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for any token that fails verification:
// bad signature, malformed input, or expiry.
var ErrInvalidToken = errors.New("invalid or expired token")

// ITokenCodec defines the contract for signing and verifying the two token
// kinds. Access and refresh tokens use distinct secrets and TTLs.
type ITokenCodec interface {
	SignAccess(userID int, group string) (string, error)
	SignRefresh(userID int, group string) (string, error)
	VerifyAccess(tokenString string) (*model.AppClaims, error)
	VerifyRefresh(tokenString string) (*model.AppClaims, error)
}

// TokenCodec signs and verifies HS256 JWTs. Tokens are stateless: nothing is
// persisted here, verification is signature plus expiry only.
type TokenCodec struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenCodec(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenCodec {
	return &TokenCodec{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// RefreshTTL exposes the refresh token lifetime for cookie max-age.
func (c *TokenCodec) RefreshTTL() time.Duration {
	return c.refreshTTL
}

func (c *TokenCodec) SignAccess(userID int, group string) (string, error) {
	return c.sign(userID, group, c.accessSecret, c.accessTTL)
}

func (c *TokenCodec) SignRefresh(userID int, group string) (string, error) {
	return c.sign(userID, group, c.refreshSecret, c.refreshTTL)
}

func (c *TokenCodec) sign(userID int, group string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &model.AppClaims{
		UserID: userID,
		Group:  group,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secret)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID).Error("Failed to sign token")
		return "", fmt.Errorf("failed to sign token string: %w", err)
	}

	return tokenString, nil
}

func (c *TokenCodec) VerifyAccess(tokenString string) (*model.AppClaims, error) {
	return c.verify(tokenString, c.accessSecret)
}

func (c *TokenCodec) VerifyRefresh(tokenString string) (*model.AppClaims, error) {
	return c.verify(tokenString, c.refreshSecret)
}

func (c *TokenCodec) verify(tokenString string, secret []byte) (*model.AppClaims, error) {
	claims := &model.AppClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
