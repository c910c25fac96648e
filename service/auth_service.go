package service

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"go-auth-api/logger"
	"go-auth-api/model"
	"go-auth-api/repository"
	"regexp"

	"github.com/sirupsen/logrus"
)

var (
	ErrDuplicateEmail      = errors.New("email is already registered")
	ErrWeakPassword        = errors.New("password must be at least 6 characters")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// TokenPair holds the two tokens issued at login. The refresh token travels
// in an HTTP-only cookie, never in a response body.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"-"`
}

// IAuthService defines the contract for the authentication lifecycle.
type IAuthService interface {
	Register(email, password string) (*model.User, error)
	Login(email, password string) (*TokenPair, *model.User, error)
	Refresh(userID int, refreshToken string) (string, error)
}

// AuthService orchestrates registration, login and token refresh over the
// user store, the password hasher and the token codec.
type AuthService struct {
	users  repository.IUserRepository
	hasher IHasher
	codec  ITokenCodec
}

func NewAuthService(users repository.IUserRepository, hasher IHasher, codec ITokenCodec) *AuthService {
	return &AuthService{users: users, hasher: hasher, codec: codec}
}

// Register creates a new user with a hashed password and no refresh token.
func (s *AuthService) Register(email, password string) (*model.User, error) {
	if len(password) < 6 {
		return nil, ErrWeakPassword
	}
	if !emailRegex.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	hashedPassword, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:    email,
		Password: hashedPassword,
		Group:    string(model.GroupUser),
	}

	// The unique index on email is the real duplicate check; the repository
	// maps its violation so concurrent registrations cannot both succeed.
	if err := s.users.CreateUser(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("User registered")

	return user, nil
}

// Login verifies credentials and issues a fresh token pair. The hash of the
// new refresh token overwrites whatever was stored before, so every refresh
// token issued by earlier logins stops working.
func (s *AuthService) Login(email, password string) (*TokenPair, *model.User, error) {
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Same failure as a wrong password, to avoid user enumeration.
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !s.hasher.Verify(password, user.Password) {
		return nil, nil, ErrInvalidCredentials
	}

	accessToken, err := s.codec.SignAccess(user.ID, user.Group)
	if err != nil {
		return nil, nil, err
	}

	refreshToken, err := s.codec.SignRefresh(user.ID, user.Group)
	if err != nil {
		return nil, nil, err
	}

	refreshHash, err := s.hasher.Hash(refreshDigest(refreshToken))
	if err != nil {
		return nil, nil, err
	}

	if err := s.users.UpdateRefreshTokenHash(user.ID, refreshHash); err != nil {
		return nil, nil, err
	}
	user.RefreshTokenHash = refreshHash

	logger.Log.WithField("user_id", user.ID).Info("User logged in, refresh token rotated")

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, user, nil
}

// Refresh exchanges a valid refresh token for a new access token. The
// refresh token itself is not rotated here; rotation happens at login only.
func (s *AuthService) Refresh(userID int, refreshToken string) (string, error) {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidRefreshToken
		}
		return "", err
	}

	if user.RefreshTokenHash == "" {
		return "", ErrInvalidRefreshToken
	}

	if !s.hasher.Verify(refreshDigest(refreshToken), user.RefreshTokenHash) {
		return "", ErrInvalidRefreshToken
	}

	accessToken, err := s.codec.SignAccess(user.ID, user.Group)
	if err != nil {
		return "", err
	}

	logger.Log.WithField("user_id", user.ID).Info("Access token renewed")

	return accessToken, nil
}

// refreshDigest reduces a refresh token to a fixed-size digest before it is
// passed to bcrypt, which only accepts inputs up to 72 bytes.
func refreshDigest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
