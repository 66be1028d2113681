package aierrors

import (
	"net/http"

	"github.com/Webdevrishabh/ELMS/internal/shared/apperror"
)

var (
	ErrMessageRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Message is required",
		http.StatusBadRequest,
	)

	ErrInputRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Input is required",
		http.StatusBadRequest,
	)

	ErrDatesRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Dates are required",
		http.StatusBadRequest,
	)

	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave not found",
		http.StatusNotFound,
	)
)
