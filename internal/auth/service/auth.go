// Package service implements the dashboard login. It is a toy credential
// check against a users file, not a security boundary.
package service

import (
	"context"
	stderrors "errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/painel/painel-backend/internal/auth/jwt"
	"github.com/painel/painel-backend/internal/auth/repository"
	"github.com/painel/painel-backend/internal/dashboard/session"
	"github.com/painel/painel-backend/pkg/errors"
	"github.com/painel/painel-backend/pkg/logger"
)

// Authenticator checks credentials and opens a session for them
type Authenticator interface {
	Authenticate(ctx context.Context, username, secret string) (session.Context, error)
}

// AuthService handles authentication logic
type AuthService struct {
	users      *repository.UserRepository
	sessions   *session.Store
	jwtManager *jwt.Manager
	logger     *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(users *repository.UserRepository, sessions *session.Store, jwtManager *jwt.Manager, log *logger.Logger) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		jwtManager: jwtManager,
		logger:     log.WithComponent("auth_service"),
	}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a login response
type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	ExpiresAt   time.Time       `json:"expires_at"`
	TokenType   string          `json:"token_type"`
	Session     session.Context `json:"session"`
}

// Authenticate verifies the password against the stored bcrypt hash and
// opens a session. Unknown users and wrong passwords fail the same way.
func (s *AuthService) Authenticate(ctx context.Context, username, secret string) (session.Context, error) {
	user, err := s.verify(username, secret)
	if err != nil {
		return session.Context{}, err
	}
	return s.sessions.Create(user.Username), nil
}

func (s *AuthService) verify(username, secret string) (*repository.User, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		if stderrors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.InvalidCredentials()
		}
		return nil, errors.Internal("failed to look up user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(secret)); err != nil {
		return nil, errors.InvalidCredentials()
	}
	return user, nil
}

// Login authenticates a user and returns a session token
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	user, err := s.verify(req.Username, req.Password)
	if err != nil {
		s.logger.Warn().Str("username", req.Username).Msg("login rejected")
		return nil, err
	}

	sess := s.sessions.Create(user.Username)
	token, err := s.jwtManager.GenerateToken(&jwt.UserInfo{Username: user.Username, Name: user.Name}, sess.ID)
	if err != nil {
		s.sessions.Delete(sess.ID)
		return nil, errors.Internal("failed to generate token")
	}

	s.logger.Info().Str("username", sess.Username).Str("session_id", sess.ID).Msg("user logged in")

	return &LoginResponse{
		AccessToken: token.AccessToken,
		ExpiresAt:   token.ExpiresAt,
		TokenType:   token.TokenType,
		Session:     sess,
	}, nil
}

// HashPassword returns the bcrypt hash stored in the users file
func HashPassword(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Logout ends a session
func (s *AuthService) Logout(ctx context.Context, sessionID string) {
	s.sessions.Delete(sessionID)
}

// Resolve validates a token and returns its live session
func (s *AuthService) Resolve(ctx context.Context, token string) (session.Context, error) {
	claims, err := s.jwtManager.ValidateToken(token)
	if err != nil {
		return session.Context{}, err
	}

	sess, err := s.sessions.Get(claims.SessionID)
	if err != nil {
		return session.Context{}, errors.TokenExpired()
	}
	return sess, nil
}
