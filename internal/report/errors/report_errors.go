package reporterrors

import (
	"net/http"

	"github.com/Webdevrishabh/ELMS/internal/shared/apperror"
)

var (
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid status filter",
		http.StatusBadRequest,
	)

	ErrGenerateFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate report",
		http.StatusInternalServerError,
	)
)
