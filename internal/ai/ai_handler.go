package ai

import (
	"errors"
	"io"
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

// bind decodes an optional JSON body. Missing fields are reported by the service.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		writeServiceError(c, apperror.MapValidationError(err))
		return false
	}
	return true
}

func (h *Handler) Chat(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		writeServiceError(c, autherrors.ErrTokenNotFound)
		return
	}

	var req ChatRequest
	if !bind(c, &req) {
		return
	}

	resp, err := h.service.Chat(c.Request.Context(), actor, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Autofill(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		writeServiceError(c, autherrors.ErrTokenNotFound)
		return
	}

	var req AutofillRequest
	if !bind(c, &req) {
		return
	}

	resp, err := h.service.Autofill(c.Request.Context(), actor, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Recommend(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		writeServiceError(c, autherrors.ErrTokenNotFound)
		return
	}

	resp, err := h.service.Recommend(c.Request.Context(), actor, c.Param("leaveId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Conflicts(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		writeServiceError(c, autherrors.ErrTokenNotFound)
		return
	}

	var req ConflictRequest
	if !bind(c, &req) {
		return
	}

	resp, err := h.service.Conflicts(c.Request.Context(), actor, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}
