package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Webdevrishabh/ELMS/internal/auth"
	autherrors "github.com/Webdevrishabh/ELMS/internal/auth/errors"
	authMock "github.com/Webdevrishabh/ELMS/internal/auth/mock"
	"github.com/Webdevrishabh/ELMS/internal/middleware"
	"github.com/Webdevrishabh/ELMS/internal/shared/identity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func TestHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService, time.Hour, false)
	router := setupAuthRouter()
	router.POST("/login", handler.Login)

	t.Run("success sets cookie", func(t *testing.T) {
		reqBody := auth.LoginRequest{Email: "admin@elms.com", Password: "admin123"}
		mockService.EXPECT().
			Login(gomock.Any(), reqBody).
			Return(auth.LoginResponse{
				Message: "Login successful",
				Token:   "signed-token",
				User:    auth.AuthUser{ID: "u-1", Email: "admin@elms.com", Role: "admin"},
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/login", jsonBody(t, reqBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "access_token", cookies[0].Name)
		assert.Equal(t, "signed-token", cookies[0].Value)
		assert.Equal(t, 3600, cookies[0].MaxAge)

		var res map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "signed-token", res["token"])
		assert.Equal(t, "admin@elms.com", res["user"].(map[string]any)["email"])
	})

	t.Run("negative invalid credentials", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(auth.LoginResponse{}, autherrors.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/login", jsonBody(t, auth.LoginRequest{Email: "x@y.z", Password: "bad"}))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Invalid credentials","code":"UNAUTHORIZED"}`, w.Body.String())
	})

	t.Run("negative malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService, time.Hour, false)
	actor := identity.Actor{ID: uuid.New(), Role: identity.RoleEmployee}

	router := setupAuthRouter()
	router.POST("/change-password", func(c *gin.Context) {
		middleware.SetActor(c, actor)
		c.Next()
	}, handler.ChangePassword)

	body := auth.ChangePasswordRequest{CurrentPassword: "old-secret", NewPassword: "new-secret"}

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().ChangePassword(gomock.Any(), actor.ID, body).Return(nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/change-password", jsonBody(t, body)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Password changed successfully"}`, w.Body.String())
	})

	t.Run("negative wrong current password", func(t *testing.T) {
		mockService.EXPECT().ChangePassword(gomock.Any(), actor.ID, body).Return(autherrors.ErrWrongCurrentPassword)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/change-password", jsonBody(t, body)))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Current password is incorrect")
	})
}

func TestHandler_Logout(t *testing.T) {
	handler := auth.NewHandler(nil, time.Hour, true)
	router := setupAuthRouter()
	router.POST("/logout", handler.Logout)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "access_token", cookies[0].Name)
	assert.True(t, cookies[0].MaxAge < 0)
}
