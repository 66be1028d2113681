package dashboarderrors

import (
	"net/http"

	"github.com/Webdevrishabh/ELMS/internal/shared/apperror"
)

var ErrInvalidRole = apperror.New(
	apperror.CodeInvalidInput,
	"Invalid role",
	http.StatusBadRequest,
)
