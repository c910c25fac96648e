// file: service/hasher.go

package service

import (
	"go-auth-api/logger"

	"golang.org/x/crypto/bcrypt"
)

// IHasher defines the contract for one-way hashing of passwords and refresh
// token digests.
type IHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// BcryptHasher implements IHasher with bcrypt. The salt is embedded in the
// produced hash and the comparison is done by bcrypt itself.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash value")
		return "", err
	}
	return string(bytes), nil
}

// Verify reports whether plaintext matches the hash. A mismatch is not an
// error, it is simply false.
func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	return err == nil
}
