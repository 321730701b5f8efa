package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/painel/painel-backend/pkg/config"
	"github.com/painel/painel-backend/pkg/errors"
)

func newManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:   "test-secret",
		TokenExpiry: time.Hour,
		Issuer:      "painel",
	})
}

func TestGenerateAndValidate(t *testing.T) {
	m := newManager()

	token, err := m.GenerateToken(&UserInfo{Username: "admin", Name: "Administrador"}, "session-1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.NotEmpty(t, token.AccessToken)

	claims, err := m.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "Administrador", claims.Name)
	assert.Equal(t, "session-1", claims.SessionID)
	assert.Equal(t, "admin", claims.Subject)
}

func TestValidateToken_Expired(t *testing.T) {
	m := newManager()
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := m.GenerateToken(&UserInfo{Username: "admin"}, "session-1")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.ValidateToken(token.AccessToken)
	assert.ErrorIs(t, err, errors.ErrTokenExpired)
}

func TestValidateToken_Invalid(t *testing.T) {
	m := newManager()

	token, err := m.GenerateToken(&UserInfo{Username: "admin"}, "session-1")
	require.NoError(t, err)

	other := NewManager(&config.AuthConfig{JWTSecret: "other", TokenExpiry: time.Hour, Issuer: "painel"})
	_, err = other.ValidateToken(token.AccessToken)
	assert.ErrorIs(t, err, errors.ErrTokenInvalid)

	_, err = m.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, errors.ErrTokenInvalid)
}
