package teamerrors

import (
	"net/http"

	"github.com/Webdevrishabh/ELMS/internal/shared/apperror"
)

var (
	ErrTeamNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Team name is required",
		http.StatusBadRequest,
	)

	ErrTeamAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Team already exists",
		http.StatusConflict,
	)

	ErrTeamNotFound = apperror.New(
		apperror.CodeNotFound,
		"Team not found",
		http.StatusNotFound,
	)
)
