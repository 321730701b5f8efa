package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/painel/painel-backend/internal/auth/jwt"
	"github.com/painel/painel-backend/internal/auth/repository"
	"github.com/painel/painel-backend/internal/auth/service"
	"github.com/painel/painel-backend/internal/dashboard/session"
	"github.com/painel/painel-backend/pkg/config"
	"github.com/painel/painel-backend/pkg/logger"
	"github.com/painel/painel-backend/pkg/testutil"
)

type envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func newRouter(t *testing.T) (http.Handler, *session.Store) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.MinCost)
	require.NoError(t, err)

	users := repository.NewUserRepositoryFromUsers([]repository.User{
		{Username: "admin", Name: "Administrador", PasswordHash: string(hash)},
	})
	sessions := session.NewStore(time.Hour)
	manager := jwt.NewManager(&config.AuthConfig{JWTSecret: "test", TokenExpiry: time.Hour, Issuer: "painel"})
	h := NewAuthHandler(service.NewAuthService(users, sessions, manager, logger.Nop()), logger.Nop())

	r := chi.NewRouter()
	r.Post("/auth/login", h.Login)
	r.Group(func(r chi.Router) {
		r.Use(h.RequireSession)
		r.Get("/auth/me", h.Me)
		r.Post("/auth/logout", h.Logout)
	})
	return r, sessions
}

func login(t *testing.T, router http.Handler) string {
	t.Helper()
	rr := testutil.ExecuteRequest(router, testutil.NewHTTPRequest(http.MethodPost, "/auth/login",
		map[string]string{"username": "admin", "password": "senha123"}))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body envelope[service.LoginResponse]
	testutil.ParseJSONBody(t, rr, &body)
	require.NotEmpty(t, body.Data.AccessToken)
	return body.Data.AccessToken
}

func TestLogin(t *testing.T) {
	router, sessions := newRouter(t)

	token := login(t, router)
	assert.NotEmpty(t, token)
	assert.Equal(t, 1, sessions.Len())
}

func TestLogin_Errors(t *testing.T) {
	router, _ := newRouter(t)

	tests := []struct {
		name   string
		body   interface{}
		status int
		code   string
	}{
		{"wrong password", map[string]string{"username": "admin", "password": "x"}, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"missing password", map[string]string{"username": "admin"}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"not json", "nope", http.StatusBadRequest, "BAD_REQUEST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := testutil.ExecuteRequest(router, testutil.NewHTTPRequest(http.MethodPost, "/auth/login", tt.body))
			testutil.AssertStatus(t, rr, tt.status)

			var body envelope[any]
			testutil.ParseJSONBody(t, rr, &body)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}

func TestMeAndLogout(t *testing.T) {
	router, sessions := newRouter(t)
	token := login(t, router)

	rr := testutil.ExecuteRequest(router, testutil.WithBearer(testutil.NewHTTPRequest(http.MethodGet, "/auth/me", nil), token))
	testutil.AssertStatus(t, rr, http.StatusOK)
	var me envelope[session.Context]
	testutil.ParseJSONBody(t, rr, &me)
	assert.Equal(t, "admin", me.Data.Username)
	assert.True(t, me.Data.LoggedIn)

	rr = testutil.ExecuteRequest(router, testutil.WithBearer(testutil.NewHTTPRequest(http.MethodPost, "/auth/logout", nil), token))
	testutil.AssertStatus(t, rr, http.StatusNoContent)
	assert.Equal(t, 0, sessions.Len())

	rr = testutil.ExecuteRequest(router, testutil.WithBearer(testutil.NewHTTPRequest(http.MethodGet, "/auth/me", nil), token))
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}

func TestRequireSession_Rejects(t *testing.T) {
	router, _ := newRouter(t)

	rr := testutil.ExecuteRequest(router, testutil.NewHTTPRequest(http.MethodGet, "/auth/me", nil))
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)

	req := testutil.NewHTTPRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Token abc")
	rr = testutil.ExecuteRequest(router, req)
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)

	rr = testutil.ExecuteRequest(router, testutil.WithBearer(testutil.NewHTTPRequest(http.MethodGet, "/auth/me", nil), "garbage"))
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}
