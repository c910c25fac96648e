package repository

import (
	"database/sql"
	"errors"
	"go-auth-api/logger"
	"go-auth-api/model"

	"github.com/lib/pq"
)

// ErrDuplicateEmail is returned when an insert violates the unique email
// index. The database constraint is authoritative: two concurrent
// registrations can both pass an application-level existence check.
var ErrDuplicateEmail = errors.New("email already exists")

// IUserRepository defines the contract for user database operations.
type IUserRepository interface {
	CreateUser(user *model.User) error
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateRefreshTokenHash(userID int, tokenHash string) error
}

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// CreateUser inserts a new user row. The refresh token hash column stays
// NULL until the first login.
func (r *UserRepository) CreateUser(user *model.User) error {
	query := `INSERT INTO users (email, password, user_group) VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`
	err := r.DB.QueryRow(query, user.Email, user.Password, user.Group).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		logger.Log.WithError(err).Error("Failed to execute create user query")
		return err
	}
	return nil
}

func (r *UserRepository) GetUserByEmail(email string) (*model.User, error) {
	user := &model.User{}
	var refreshHash sql.NullString
	query := `SELECT id, email, password, refresh_token_hash, user_group, created_at, updated_at FROM users WHERE email=$1`
	err := r.DB.QueryRow(query, email).Scan(&user.ID, &user.Email, &user.Password, &refreshHash, &user.Group, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	user.RefreshTokenHash = refreshHash.String
	return user, nil
}

func (r *UserRepository) GetUserByID(id int) (*model.User, error) {
	user := &model.User{}
	var refreshHash sql.NullString
	query := `SELECT id, email, password, refresh_token_hash, user_group, created_at, updated_at FROM users WHERE id=$1`
	err := r.DB.QueryRow(query, id).Scan(&user.ID, &user.Email, &user.Password, &refreshHash, &user.Group, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	user.RefreshTokenHash = refreshHash.String
	return user, nil
}

// UpdateRefreshTokenHash overwrites the stored refresh token hash for a user.
// It is a blind overwrite keyed by user id; the previous hash, and with it
// every previously issued refresh token, stops being valid.
func (r *UserRepository) UpdateRefreshTokenHash(userID int, tokenHash string) error {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Executing query to update refresh token hash")

	query := `UPDATE users SET refresh_token_hash = $1, updated_at = NOW() WHERE id = $2`
	result, err := r.DB.Exec(query, tokenHash, userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute update refresh token hash query")
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
