package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	claims := SessionClaims{UserID: 12, Email: "pat@example.com", IsAdmin: true}
	token, err := NewSessionToken("s3cret", claims)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := ParseSessionToken("s3cret", token)
	assert.NoError(t, err)
	assert.Equal(t, claims, got)
}

func TestSessionTokenWrongSecretRejected(t *testing.T) {
	token, err := NewSessionToken("right", SessionClaims{UserID: 1})
	assert.NoError(t, err)

	_, err = ParseSessionToken("wrong", token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionTokenGarbageRejected(t *testing.T) {
	_, err := ParseSessionToken("s3cret", "definitely.not.ajwt")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionTokenTamperedPayloadRejected(t *testing.T) {
	token, err := NewSessionToken("s3cret", SessionClaims{UserID: 1})
	assert.NoError(t, err)

	// Flip a character inside the payload segment.
	b := []byte(token)
	mid := len(b) / 2
	if b[mid] == 'a' {
		b[mid] = 'b'
	} else {
		b[mid] = 'a'
	}
	_, err = ParseSessionToken("s3cret", string(b))
	assert.ErrorIs(t, err, ErrInvalidSession)
}
