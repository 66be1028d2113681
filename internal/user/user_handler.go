package user

import (
	"net/http"
	"sort"
	"strings"

	autherrors "github.com/Webdevrishabh/ELMS/internal/auth/errors"
	"github.com/Webdevrishabh/ELMS/internal/middleware"
	"github.com/Webdevrishabh/ELMS/internal/shared/apperror"
	"github.com/Webdevrishabh/ELMS/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("user.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.handler")
	}
	return &Handler{svc: service, logger: l}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// GetAll lists users; q filters by email or name, sort_by is created_at, name or email.
func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	q := strings.TrimSpace(strings.ToLower(c.Query("q")))
	if q != "" {
		filtered := make([]UserResponse, 0, len(resp))
		for _, u := range resp {
			if strings.Contains(strings.ToLower(u.Email), q) || strings.Contains(strings.ToLower(u.Name), q) {
				filtered = append(filtered, u)
			}
		}
		resp = filtered
	}

	sortBy := strings.ToLower(strings.TrimSpace(c.Query("sort_by")))
	if sortBy != "" {
		desc := strings.EqualFold(c.DefaultQuery("sort_dir", "asc"), "desc")
		sort.SliceStable(resp, func(i, j int) bool {
			var less bool
			switch sortBy {
			case "name":
				less = strings.ToLower(resp[i].Name) < strings.ToLower(resp[j].Name)
			case "email":
				less = strings.ToLower(resp[i].Email) < strings.ToLower(resp[j].Email)
			default:
				less = resp[i].CreatedAt.Before(resp[j].CreatedAt)
			}
			if desc {
				return !less
			}
			return less
		})
	}

	response.Success(c, http.StatusOK, gin.H{"users": resp})
}

func (h *Handler) GetByID(c *gin.Context) {
	res, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": res})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusCreated, "User created successfully", gin.H{"userId": res.ID})
}

func (h *Handler) Update(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		writeServiceError(c, autherrors.ErrTokenNotFound)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.svc.Update(c.Request.Context(), actor, c.Param("id"), req); err != nil {
		writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "User updated successfully", nil)
}

func (h *Handler) Delete(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		writeServiceError(c, autherrors.ErrTokenNotFound)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "User deleted successfully", nil)
}

func (h *Handler) GetProfile(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		writeServiceError(c, autherrors.ErrTokenNotFound)
		return
	}

	res, err := h.svc.GetProfile(c.Request.Context(), actor)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": res})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		writeServiceError(c, autherrors.ErrTokenNotFound)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.svc.UpdateProfile(c.Request.Context(), actor, req); err != nil {
		writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Profile updated successfully", nil)
}
