package rbac

import (
	"net/http"
	"strings"

	autherrors "github.com/Webdevrishabh/ELMS/internal/auth/errors"
	"github.com/Webdevrishabh/ELMS/internal/middleware"
	"github.com/Webdevrishabh/ELMS/internal/shared/apperror"
	"github.com/Webdevrishabh/ELMS/internal/shared/contextutil"
	"github.com/Webdevrishabh/ELMS/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, logger: l}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Enforce answers whether the caller's own role may perform the requested action.
func (h *Handler) Enforce(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		writeServiceError(c, autherrors.ErrTokenNotFound)
		return
	}

	var req EnforceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resource := strings.TrimSpace(req.Resource)
	action := strings.TrimSpace(req.Action)

	allowed, err := h.service.Enforce(actor.Role, resource, action)
	if err != nil {
		contextutil.GetLogger(c.Request.Context(), h.logger).Error("enforce failed", zap.Error(err))
		writeServiceError(c, apperror.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, EnforceResponse{Allowed: allowed})
}

func (h *Handler) MyPermissions(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		writeServiceError(c, autherrors.ErrTokenNotFound)
		return
	}

	perms, err := h.service.Permissions(actor.Role)
	if err != nil {
		contextutil.GetLogger(c.Request.Context(), h.logger).Error("list permissions failed", zap.Error(err))
		writeServiceError(c, apperror.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, PermissionsResponse{Role: actor.Role, Permissions: perms})
}
