package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Webdevrishabh/ELMS/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error", func(t *testing.T) {
		err := apperror.New(apperror.CodeNotFound, "Leave not found", http.StatusNotFound)

		got := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusNotFound, got.Status)
		assert.Equal(t, apperror.CodeNotFound, got.Code)
		assert.Equal(t, "Leave not found", got.Message)
	})

	t.Run("wrapped app error", func(t *testing.T) {
		err := fmt.Errorf("approve: %w", apperror.ErrForbidden)

		got := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusForbidden, got.Status)
	})

	t.Run("plain error hides cause", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, "An unexpected error occurred", got.Message)
	})
}

func TestWrap(t *testing.T) {
	cause := errors.New("boom")
	err := apperror.Wrap(cause, apperror.CodeInternalError, "failed", http.StatusInternalServerError)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed: boom", err.Error())
	assert.Nil(t, apperror.Wrap(nil, apperror.CodeInternalError, "x", 500))
}

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	assert.True(t, apperror.IsUniqueViolation(pgErr, ""))
	assert.True(t, apperror.IsUniqueViolation(fmt.Errorf("create: %w", pgErr), "users_email_key"))
	assert.False(t, apperror.IsUniqueViolation(pgErr, "teams_name_key"))
	assert.True(t, apperror.IsUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "teams_name_key"`), "teams_name_key"))
	assert.False(t, apperror.IsUniqueViolation(errors.New("timeout"), ""))
	assert.False(t, apperror.IsUniqueViolation(nil, ""))
}

type bindTarget struct {
	FromDate string `json:"fromDate" validate:"required"`
	Role     string `json:"role" validate:"oneof=employee admin"`
}

func TestMapValidationError(t *testing.T) {
	v := validator.New()

	t.Run("required", func(t *testing.T) {
		err := apperror.MapValidationError(v.Struct(bindTarget{Role: "admin"}))

		got := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusBadRequest, got.Status)
		assert.Equal(t, "From Date is required", got.Message)
	})

	t.Run("invalid", func(t *testing.T) {
		err := apperror.MapValidationError(v.Struct(bindTarget{FromDate: "2026-01-01", Role: "owner"}))
		assert.Equal(t, "Role is invalid", apperror.ToHTTP(err).Message)
	})

	t.Run("non validation error", func(t *testing.T) {
		err := apperror.MapValidationError(errors.New("unexpected EOF"))
		assert.Equal(t, "Invalid request body", apperror.ToHTTP(err).Message)
	})
}
