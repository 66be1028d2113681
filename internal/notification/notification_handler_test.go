package notification_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Webdevrishabh/ELMS/internal/middleware"
	"github.com/Webdevrishabh/ELMS/internal/notification"
	notificationerrors "github.com/Webdevrishabh/ELMS/internal/notification/errors"
	notificationMock "github.com/Webdevrishabh/ELMS/internal/notification/mock"
	"github.com/Webdevrishabh/ELMS/internal/shared/identity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRouter(t *testing.T, actor identity.Actor) (*gin.Engine, *notificationMock.MockService) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := notificationMock.NewMockService(ctrl)
	h := notification.NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetActor(c, actor)
		c.Next()
	})
	r.GET("/notifications", h.List)
	r.PUT("/notifications/:id/read", h.MarkRead)
	return r, svc
}

func TestNotificationHandler_List(t *testing.T) {
	actor := identity.Actor{ID: uuid.New(), Role: identity.RoleEmployee}
	r, svc := setupRouter(t, actor)
	svc.EXPECT().List(gomock.Any(), actor, true).Return(notification.ListResponse{
		Notifications: []notification.NotificationResponse{},
		UnreadCount:   2,
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications?unread=true", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"notifications":[],"unreadCount":2}`, w.Body.String())
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	actor := identity.Actor{ID: uuid.New(), Role: identity.RoleEmployee}

	t.Run("all", func(t *testing.T) {
		r, svc := setupRouter(t, actor)
		svc.EXPECT().MarkRead(gomock.Any(), actor, "all").Return(nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/notifications/all/read", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Notification marked as read"}`, w.Body.String())
	})

	t.Run("negative not found", func(t *testing.T) {
		r, svc := setupRouter(t, actor)
		svc.EXPECT().MarkRead(gomock.Any(), actor, "x").Return(notificationerrors.ErrNotificationNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/notifications/x/read", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
