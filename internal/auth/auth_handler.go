package auth

import (
	"net/http"
	"time"

	autherrors "github.com/Webdevrishabh/ELMS/internal/auth/errors"
	"github.com/Webdevrishabh/ELMS/internal/middleware"
	"github.com/Webdevrishabh/ELMS/internal/shared/apperror"
	"github.com/Webdevrishabh/ELMS/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const accessTokenCookie = "access_token"

type Handler struct {
	service      Service
	cookieMaxAge int
	secureCookie bool
}

// NewHandler sets the access_token cookie with the same lifetime as the token.
func NewHandler(s Service, tokenTTL time.Duration, secureCookie bool) *Handler {
	return &Handler{
		service:      s,
		cookieMaxAge: int(tokenTTL.Seconds()),
		secureCookie: secureCookie,
	}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    res.Token,
		Path:     "/",
		MaxAge:   h.cookieMaxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Logout(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	response.Message(c, http.StatusOK, "Logout successful", nil)
}

func (h *Handler) ChangePassword(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		writeServiceError(c, autherrors.ErrTokenNotFound)
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), actor.ID, req); err != nil {
		writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Password changed successfully", nil)
}

func (h *Handler) Me(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		writeServiceError(c, autherrors.ErrTokenNotFound)
		return
	}

	user, err := h.service.GetMe(c.Request.Context(), actor.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}
