package notification

import (
	"net/http"

	autherrors "github.com/Webdevrishabh/ELMS/internal/auth/errors"
	"github.com/Webdevrishabh/ELMS/internal/middleware"
	"github.com/Webdevrishabh/ELMS/internal/shared/apperror"
	"github.com/Webdevrishabh/ELMS/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) List(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		writeServiceError(c, autherrors.ErrTokenNotFound)
		return
	}

	resp, err := h.service.List(c.Request.Context(), actor, c.Query("unread") == "true")
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) MarkRead(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		writeServiceError(c, autherrors.ErrTokenNotFound)
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), actor, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Notification marked as read", nil)
}
