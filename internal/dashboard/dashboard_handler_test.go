package dashboard_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Webdevrishabh/ELMS/internal/dashboard"
	dashboarderrors "github.com/Webdevrishabh/ELMS/internal/dashboard/errors"
	dashboardMock "github.com/Webdevrishabh/ELMS/internal/dashboard/mock"
	"github.com/Webdevrishabh/ELMS/internal/leave"
	"github.com/Webdevrishabh/ELMS/internal/middleware"
	"github.com/Webdevrishabh/ELMS/internal/shared/identity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupRouter(t *testing.T, actor identity.Actor) (*gin.Engine, *dashboardMock.MockService) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := dashboardMock.NewMockService(ctrl)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetActor(c, actor)
		c.Next()
	})
	r.GET("/dashboard", dashboard.NewHandler(svc).Get)
	return r, svc
}

func TestDashboardHandler_Get(t *testing.T) {
	t.Run("employee shape", func(t *testing.T) {
		actor := identity.Actor{ID: uuid.New(), Role: identity.RoleEmployee}
		r, svc := setupRouter(t, actor)
		svc.EXPECT().Get(gomock.Any(), actor).Return(dashboard.EmployeeDashboard{
			Role:         identity.RoleEmployee,
			Balances:     dashboard.Balances{Annual: 20, Sick: 10, Casual: 5},
			RecentLeaves: []leave.LeaveResponse{},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "employee", body["role"])
		assert.Equal(t, map[string]any{"annual": 20.0, "sick": 10.0, "casual": 5.0}, body["balances"])
		assert.Contains(t, body, "stats")
		assert.Contains(t, body, "recentLeaves")
	})

	t.Run("negative invalid role", func(t *testing.T) {
		actor := identity.Actor{ID: uuid.New(), Role: "guest"}
		r, svc := setupRouter(t, actor)
		svc.EXPECT().Get(gomock.Any(), actor).Return(nil, dashboarderrors.ErrInvalidRole)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid role","code":"INVALID_INPUT"}`, w.Body.String())
	})
}
