package notification

import (
	"context"
	"errors"

	"github.com/Webdevrishabh/ELMS/internal/events"
	notificationerrors "github.com/Webdevrishabh/ELMS/internal/notification/errors"
	"github.com/Webdevrishabh/ELMS/internal/shared/contextutil"
	"github.com/Webdevrishabh/ELMS/internal/shared/identity"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ListLimit caps a single notifications page.
const ListLimit = 50

// MarkAllID is the path id that marks every notification of the caller read.
const MarkAllID = "all"

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	// Store persists one requested notification.
	Store(ctx context.Context, ev events.NotificationRequested) error
	List(ctx context.Context, actor identity.Actor, unreadOnly bool) (ListResponse, error)
	MarkRead(ctx context.Context, actor identity.Actor, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Store(ctx context.Context, ev events.NotificationRequested) error {
	n := &Notification{
		ID:      uuid.New(),
		UserID:  ev.UserID,
		Message: ev.Message,
		Type:    ev.Type,
		LeaveID: ev.LeaveID,
	}
	if ev.EventID != uuid.Nil {
		eventID := ev.EventID
		n.EventID = &eventID
	}
	return s.repo.Create(ctx, n)
}

func (s *service) List(ctx context.Context, actor identity.Actor, unreadOnly bool) (ListResponse, error) {
	rows, err := s.repo.FindByUser(ctx, actor.ID, unreadOnly, ListLimit)
	if err != nil {
		return ListResponse{}, err
	}

	unread, err := s.repo.CountUnread(ctx, actor.ID)
	if err != nil {
		return ListResponse{}, err
	}

	resp := ListResponse{
		Notifications: make([]NotificationResponse, len(rows)),
		UnreadCount:   unread,
	}
	for i, n := range rows {
		resp.Notifications[i] = mapToResponse(n)
	}
	return resp, nil
}

func (s *service) MarkRead(ctx context.Context, actor identity.Actor, id string) error {
	l := contextutil.GetLogger(ctx, s.logger)

	if id == MarkAllID {
		n, err := s.repo.MarkAllRead(ctx, actor.ID)
		if err != nil {
			l.Error("mark all notifications read failed", zap.Error(err))
			return err
		}
		l.Debug("mark all notifications read success", zap.Int64("updated", n))
		return nil
	}

	nid, err := uuid.Parse(id)
	if err != nil {
		return notificationerrors.ErrNotificationNotFound
	}

	if err := s.repo.MarkRead(ctx, actor.ID, nid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notificationerrors.ErrNotificationNotFound
		}
		l.Error("mark notification read failed", zap.String("notification_id", id), zap.Error(err))
		return err
	}
	return nil
}
