package jwt

import (
	stderrors "errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/painel/painel-backend/pkg/config"
	"github.com/painel/painel-backend/pkg/errors"
)

// Claims represents the JWT claims
type Claims struct {
	jwt.RegisteredClaims
	Username  string `json:"username"`
	Name      string `json:"name"`
	SessionID string `json:"session_id"`
}

// Manager handles JWT operations
type Manager struct {
	config *config.AuthConfig
	now    func() time.Time
}

// NewManager creates a new JWT manager
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{config: cfg, now: time.Now}
}

// UserInfo contains user information for token generation
type UserInfo struct {
	Username string
	Name     string
}

// Token is a signed session token
type Token struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	TokenType   string    `json:"token_type"`
}

// GenerateToken signs a token bound to a dashboard session
func (m *Manager) GenerateToken(user *UserInfo, sessionID string) (*Token, error) {
	now := m.now()
	expiry := now.Add(m.config.TokenExpiry)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.config.Issuer,
			Subject:   user.Username,
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
		Username:  user.Username,
		Name:      user.Name,
		SessionID: sessionID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.config.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &Token{
		AccessToken: signed,
		ExpiresAt:   expiry,
		TokenType:   "Bearer",
	}, nil
}

// ValidateToken validates a token and returns the claims
func (m *Manager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.TokenInvalid()
		}
		return []byte(m.config.JWTSecret), nil
	}, jwt.WithIssuer(m.config.Issuer), jwt.WithTimeFunc(m.now))

	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.TokenExpired()
		}
		return nil, errors.TokenInvalid()
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, errors.TokenInvalid()
	}

	return claims, nil
}

// GetTokenExpiry returns the token expiry duration
func (m *Manager) GetTokenExpiry() time.Duration {
	return m.config.TokenExpiry
}
