package autherrors

import (
	"net/http"

	"github.com/Webdevrishabh/ELMS/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid credentials",
		http.StatusUnauthorized,
	)
	ErrTokenNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"No token provided",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token expired",
		http.StatusUnauthorized,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"Forbidden",
		http.StatusForbidden,
	)
	ErrPasswordsRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Current and new password are required",
		http.StatusBadRequest,
	)
	ErrPasswordTooShort = apperror.New(
		apperror.CodeInvalidInput,
		"New password must be at least 6 characters",
		http.StatusBadRequest,
	)
	ErrWrongCurrentPassword = apperror.New(
		apperror.CodeUnauthorized,
		"Current password is incorrect",
		http.StatusUnauthorized,
	)
	ErrCredentialsRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Email and password are required",
		http.StatusBadRequest,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
)
