package leave

import (
	"errors"
	"io"
	"net/http"

	autherrors "github.com/Webdevrishabh/ELMS/internal/auth/errors"
	"github.com/Webdevrishabh/ELMS/internal/middleware"
	"github.com/Webdevrishabh/ELMS/internal/shared/apperror"
	"github.com/Webdevrishabh/ELMS/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func listFilter(c *gin.Context) ListFilter {
	return ListFilter{
		Status:      c.Query("status"),
		PendingOnly: c.Query("approval") == ApprovalPending,
	}
}

func (h *Handler) Apply(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		h.writeServiceError(c, autherrors.ErrTokenNotFound)
		return
	}

	var req ApplyLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Apply(c.Request.Context(), actor, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusCreated, "Leave applied successfully", gin.H{
		"leaveId":   resp.LeaveID,
		"totalDays": resp.TotalDays,
	})
}

func (h *Handler) GetMine(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		h.writeServiceError(c, autherrors.ErrTokenNotFound)
		return
	}

	leaves, err := h.service.GetMine(c.Request.Context(), actor, c.Query("status"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"leaves": leaves})
}

func (h *Handler) GetTeam(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		h.writeServiceError(c, autherrors.ErrTokenNotFound)
		return
	}

	leaves, err := h.service.GetTeam(c.Request.Context(), actor, listFilter(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"leaves": leaves})
}

func (h *Handler) GetAll(c *gin.Context) {
	leaves, err := h.service.GetAll(c.Request.Context(), listFilter(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"leaves": leaves})
}

func (h *Handler) GetByID(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		h.writeServiceError(c, autherrors.ErrTokenNotFound)
		return
	}

	l, err := h.service.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"leave": l})
}

func (h *Handler) Approve(c *gin.Context) {
	h.decide(c, DecisionApprove)
}

func (h *Handler) Reject(c *gin.Context) {
	h.decide(c, DecisionReject)
}

func (h *Handler) decide(c *gin.Context, decision Decision) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		h.writeServiceError(c, autherrors.ErrTokenNotFound)
		return
	}

	// The body is optional.
	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")

	var err error
	msg := "Leave approved successfully"
	if decision == DecisionApprove {
		err = h.service.Approve(ctx, actor, id, req.Comment)
	} else {
		err = h.service.Reject(ctx, actor, id, req.Comment)
		msg = "Leave rejected successfully"
	}
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, msg, nil)
}
