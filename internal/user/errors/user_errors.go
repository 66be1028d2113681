package usererrors

import (
	"net/http"

	"github.com/Webdevrishabh/ELMS/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrUserAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Email already exists",
		http.StatusConflict,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)

	ErrMissingRequiredFields = apperror.New(
		apperror.CodeInvalidInput,
		"Email, password, name, and role are required",
		http.StatusBadRequest,
	)

	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid role",
		http.StatusBadRequest,
	)

	ErrInvalidTeam = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid team",
		http.StatusBadRequest,
	)

	ErrInvalidBalance = apperror.New(
		apperror.CodeInvalidInput,
		"Leave balances cannot be negative",
		http.StatusBadRequest,
	)

	ErrNoFieldsToUpdate = apperror.New(
		apperror.CodeInvalidInput,
		"No fields to update",
		http.StatusBadRequest,
	)

	ErrCannotDeleteSelf = apperror.New(
		apperror.CodeInvalidInput,
		"Cannot delete yourself",
		http.StatusBadRequest,
	)
)
