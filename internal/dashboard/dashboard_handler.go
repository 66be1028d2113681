package dashboard

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

func (h *Handler) Get(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		httpErr := apperror.ToHTTP(autherrors.ErrTokenNotFound)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	out, err := h.service.Get(c.Request.Context(), actor)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, out)
}
