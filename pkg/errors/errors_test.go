package errors

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/painel/painel-backend/pkg/i18n"
	"github.com/stretchr/testify/assert"
)

func TestAppError_Unwrap(t *testing.T) {
	err := fmt.Errorf("login: %w", InvalidCredentials())

	var appErr *AppError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.StatusCode)
	assert.True(t, Is(err, ErrInvalidCredentials))
}

func TestAppError_Localize(t *testing.T) {
	err := NotFound("session")

	ctx := i18n.WithLocale(context.Background(), i18n.LocaleEnglish)
	assert.Equal(t, "session not found", err.Localize(ctx))

	ctx = i18n.WithLocale(context.Background(), i18n.LocalePortuguese)
	assert.Equal(t, "session não encontrado", err.Localize(ctx))
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(cause, "SNAPSHOT_WRITE", "failed to persist snapshot", http.StatusInternalServerError)

	assert.Equal(t, "failed to persist snapshot: disk full", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestValidation_Details(t *testing.T) {
	err := Validation(map[string]string{"start": "invalid date"})
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "invalid date", err.Details["start"])
}
