// file: service/token_codec_test.go

package service

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestCodec() *TokenCodec {
	return NewTokenCodec("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestTokenCodec_SignAndVerifyAccess(t *testing.T) {
	codec := newTestCodec()

	token, err := codec.SignAccess(42, "ADMIN")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := codec.VerifyAccess(token)
	assert.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "ADMIN", claims.Group)
	assert.Equal(t, strconv.Itoa(42), claims.Subject)
}

func TestTokenCodec_SignAndVerifyRefresh(t *testing.T) {
	codec := newTestCodec()

	token, err := codec.SignRefresh(7, "USER")
	assert.NoError(t, err)

	claims, err := codec.VerifyRefresh(token)
	assert.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
}

// TestTokenCodec_DistinctSecrets ensures an access token cannot pass as a
// refresh token and vice versa.
func TestTokenCodec_DistinctSecrets(t *testing.T) {
	codec := newTestCodec()

	accessToken, err := codec.SignAccess(1, "USER")
	assert.NoError(t, err)
	refreshToken, err := codec.SignRefresh(1, "USER")
	assert.NoError(t, err)

	_, err = codec.VerifyRefresh(accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = codec.VerifyAccess(refreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodec_ExpiredToken(t *testing.T) {
	expired := NewTokenCodec("access-secret", "refresh-secret", -time.Minute, -time.Minute)

	accessToken, err := expired.SignAccess(1, "USER")
	assert.NoError(t, err)
	refreshToken, err := expired.SignRefresh(1, "USER")
	assert.NoError(t, err)

	// Expiry is a recoverable, expected condition: the same error value,
	// never a panic.
	_, err = expired.VerifyAccess(accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = expired.VerifyRefresh(refreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodec_TamperedSignature(t *testing.T) {
	codec := newTestCodec()

	token, err := codec.SignAccess(1, "USER")
	assert.NoError(t, err)

	_, err = codec.VerifyAccess(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewTokenCodec("another-secret", "refresh-secret", 15*time.Minute, time.Hour)
	_, err = other.VerifyAccess(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodec_MalformedToken(t *testing.T) {
	codec := newTestCodec()

	for _, bad := range []string{"", "garbage", "a.b.c"} {
		_, err := codec.VerifyAccess(bad)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

// TestTokenCodec_UniqueTokens ensures every issued token is a distinct
// string even for the same subject, because of the jti claim.
func TestTokenCodec_UniqueTokens(t *testing.T) {
	codec := newTestCodec()

	first, err := codec.SignAccess(1, "USER")
	assert.NoError(t, err)
	second, err := codec.SignAccess(1, "USER")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}
