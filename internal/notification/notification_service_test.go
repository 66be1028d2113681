package notification_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Webdevrishabh/ELMS/internal/events"
	"github.com/Webdevrishabh/ELMS/internal/notification"
	notificationerrors "github.com/Webdevrishabh/ELMS/internal/notification/errors"
	notificationMock "github.com/Webdevrishabh/ELMS/internal/notification/mock"
	"github.com/Webdevrishabh/ELMS/internal/shared/identity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (notification.Service, *notificationMock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := notificationMock.NewMockRepository(ctrl)
	return notification.NewService(repo, zap.NewNop()), repo
}

func TestNotificationService_Store(t *testing.T) {
	ctx := context.Background()
	svc, repo := setupService(t)
	leaveID := uuid.New()
	ev := events.NewNotificationRequested(uuid.New(), "Your leave request has been approved!", events.NotificationLeaveApproved, &leaveID)

	repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, n *notification.Notification) error {
			assert.Equal(t, ev.UserID, n.UserID)
			assert.Equal(t, ev.Message, n.Message)
			assert.Equal(t, events.NotificationLeaveApproved, n.Type)
			require.NotNil(t, n.EventID)
			assert.Equal(t, ev.EventID, *n.EventID)
			assert.Equal(t, &leaveID, n.LeaveID)
			assert.False(t, n.IsRead)
			return nil
		})

	assert.NoError(t, svc.Store(ctx, ev))
}

func TestNotificationService_List(t *testing.T) {
	ctx := context.Background()
	actor := identity.Actor{ID: uuid.New(), Role: identity.RoleEmployee}

	t.Run("success", func(t *testing.T) {
		svc, repo := setupService(t)
		repo.EXPECT().FindByUser(ctx, actor.ID, true, notification.ListLimit).Return([]notification.Notification{
			{ID: uuid.New(), UserID: actor.ID, Message: "m1", Type: events.NotificationLeavePending},
		}, nil)
		repo.EXPECT().CountUnread(ctx, actor.ID).Return(int64(4), nil)

		resp, err := svc.List(ctx, actor, true)

		require.NoError(t, err)
		assert.Len(t, resp.Notifications, 1)
		assert.Equal(t, int64(4), resp.UnreadCount)
		assert.Nil(t, resp.Notifications[0].LeaveID)
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		svc, repo := setupService(t)
		repo.EXPECT().FindByUser(ctx, actor.ID, false, notification.ListLimit).Return(nil, nil)
		repo.EXPECT().CountUnread(ctx, actor.ID).Return(int64(0), nil)

		resp, err := svc.List(ctx, actor, false)

		require.NoError(t, err)
		assert.NotNil(t, resp.Notifications)
	})

	t.Run("negative repo error", func(t *testing.T) {
		svc, repo := setupService(t)
		repo.EXPECT().FindByUser(ctx, actor.ID, false, notification.ListLimit).Return(nil, errors.New("db down"))

		_, err := svc.List(ctx, actor, false)
		assert.Error(t, err)
	})
}

func TestNotificationService_MarkRead(t *testing.T) {
	ctx := context.Background()
	actor := identity.Actor{ID: uuid.New(), Role: identity.RoleEmployee}

	t.Run("single", func(t *testing.T) {
		svc, repo := setupService(t)
		id := uuid.New()
		repo.EXPECT().MarkRead(ctx, actor.ID, id).Return(nil)

		assert.NoError(t, svc.MarkRead(ctx, actor, id.String()))
	})

	t.Run("all only touches the caller", func(t *testing.T) {
		svc, repo := setupService(t)
		repo.EXPECT().MarkAllRead(ctx, actor.ID).Return(int64(3), nil)

		assert.NoError(t, svc.MarkRead(ctx, actor, notification.MarkAllID))
	})

	t.Run("negative someone else's notification", func(t *testing.T) {
		svc, repo := setupService(t)
		id := uuid.New()
		repo.EXPECT().MarkRead(ctx, actor.ID, id).Return(gorm.ErrRecordNotFound)

		err := svc.MarkRead(ctx, actor, id.String())
		assert.ErrorIs(t, err, notificationerrors.ErrNotificationNotFound)
	})

	t.Run("negative malformed id", func(t *testing.T) {
		svc, _ := setupService(t)
		err := svc.MarkRead(ctx, actor, "17")
		assert.ErrorIs(t, err, notificationerrors.ErrNotificationNotFound)
	})
}
