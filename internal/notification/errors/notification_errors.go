package notificationerrors

import (
	"net/http"

	"github.com/Webdevrishabh/ELMS/internal/shared/apperror"
)

var ErrNotificationNotFound = apperror.New(
	apperror.CodeNotFound,
	"Notification not found",
	http.StatusNotFound,
)
