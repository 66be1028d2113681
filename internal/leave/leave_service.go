package leave

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/Webdevrishabh/ELMS/internal/config"
	"github.com/Webdevrishabh/ELMS/internal/events"
	leaveerrors "github.com/Webdevrishabh/ELMS/internal/leave/errors"
	"github.com/Webdevrishabh/ELMS/internal/shared/apperror"
	"github.com/Webdevrishabh/ELMS/internal/shared/contextutil"
	"github.com/Webdevrishabh/ELMS/internal/shared/identity"
	"github.com/Webdevrishabh/ELMS/internal/shared/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock

// Dispatcher delivers notification events once the producing transaction has committed.
// Implementations log their own failures.
type Dispatcher interface {
	Dispatch(ctx context.Context, notes []events.NotificationRequested)
}

type Service interface {
	Apply(ctx context.Context, actor identity.Actor, req ApplyLeaveRequest) (ApplyLeaveResponse, error)
	GetMine(ctx context.Context, actor identity.Actor, status string) ([]LeaveResponse, error)
	GetTeam(ctx context.Context, actor identity.Actor, filter ListFilter) ([]LeaveResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]LeaveResponse, error)
	GetByID(ctx context.Context, actor identity.Actor, id string) (LeaveResponse, error)
	Approve(ctx context.Context, actor identity.Actor, id, comment string) error
	Reject(ctx context.Context, actor identity.Actor, id, comment string) error
}

type service struct {
	db         *sql.DB
	repo       Repository
	dispatcher Dispatcher
	cfg        config.LeaveConfig
	metrics    *metrics.Registry
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	dispatcher Dispatcher,
	cfg config.LeaveConfig,
	m *metrics.Registry,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, dispatcher: dispatcher, cfg: cfg, metrics: m, logger: l}
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

func (s *service) Apply(ctx context.Context, actor identity.Actor, req ApplyLeaveRequest) (ApplyLeaveResponse, error) {
	l := s.log(ctx)
	l.Debug("apply leave requested",
		zap.String("leave_type", req.LeaveType),
		zap.String("from_date", req.FromDate),
		zap.String("to_date", req.ToDate),
	)

	from, to, err := validateApply(req)
	if err != nil {
		return ApplyLeaveResponse{}, err
	}

	lv := &Leave{
		ID:               uuid.New(),
		UserID:           actor.ID,
		LeaveType:        req.LeaveType,
		FromDate:         from,
		ToDate:           to,
		TotalDays:        BusinessDays(from, to),
		Description:      optionalComment(derefString(req.Description)),
		Status:           StatusPending,
		TeamLeadApproval: InitialTeamLeadApproval(actor.Role),
		AdminApproval:    ApprovalPending,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("apply leave begin tx failed", zap.Error(err))
		return ApplyLeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if s.cfg.PreventOverlap {
		overlap, err := qtx.HasOverlap(ctx, actor.ID, from, to)
		if err != nil {
			l.Error("apply leave overlap check failed", zap.Error(err))
			return ApplyLeaveResponse{}, err
		}
		if overlap {
			l.Warn("apply leave overlap detected", zap.String("from_date", req.FromDate), zap.String("to_date", req.ToDate))
			return ApplyLeaveResponse{}, leaveerrors.ErrLeaveOverlap
		}
	}

	if err := qtx.Create(ctx, lv); err != nil {
		l.Error("apply leave persist failed", zap.Error(err))
		return ApplyLeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		l.Error("apply leave commit failed", zap.Error(err))
		return ApplyLeaveResponse{}, err
	}

	l.Info("apply leave success",
		zap.String("leave_id", lv.ID.String()),
		zap.Int("total_days", lv.TotalDays),
		zap.String("team_lead_approval", lv.TeamLeadApproval),
	)
	s.metrics.LeaveTransition("apply", "submitted")

	s.dispatcher.Dispatch(ctx, ApplicationNotifications(lv.ID, actor.Role, s.applicationRecipients(ctx, actor)))

	return ApplyLeaveResponse{LeaveID: lv.ID.String(), TotalDays: lv.TotalDays}, nil
}

// applicationRecipients never fails; a lookup error only loses the notifications.
func (s *service) applicationRecipients(ctx context.Context, actor identity.Actor) []uuid.UUID {
	var (
		ids []uuid.UUID
		err error
	)
	switch {
	case actor.IsTeamLead():
		ids, err = s.repo.UserIDsByRole(ctx, identity.RoleAdmin, nil)
	case actor.TeamID != nil:
		ids, err = s.repo.UserIDsByRole(ctx, identity.RoleTeamLead, actor.TeamID)
	}
	if err != nil {
		s.log(ctx).Warn("resolve leave notification recipients failed", zap.Error(err))
		return nil
	}
	return ids
}

func (s *service) GetMine(ctx context.Context, actor identity.Actor, status string) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindByUser(ctx, actor.ID, status)
	if err != nil {
		return nil, err
	}
	return ToListResponse(leaves), nil
}

func (s *service) GetTeam(ctx context.Context, actor identity.Actor, filter ListFilter) ([]LeaveResponse, error) {
	if actor.TeamID == nil {
		return []LeaveResponse{}, nil
	}

	leaves, err := s.repo.FindByTeam(ctx, *actor.TeamID, filter)
	if err != nil {
		return nil, err
	}
	return JoinedToListResponse(leaves), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return JoinedToListResponse(leaves), nil
}

func (s *service) GetByID(ctx context.Context, actor identity.Actor, id string) (LeaveResponse, error) {
	leaveID, err := uuid.Parse(id)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}

	l, err := s.repo.FindByID(ctx, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	if l.UserID != actor.ID && !actor.IsAdmin() {
		if !actor.IsTeamLead() {
			return LeaveResponse{}, apperror.ErrForbidden
		}
		applicant, err := s.repo.FindApplicant(ctx, l.UserID)
		if err != nil {
			return LeaveResponse{}, err
		}
		if !actor.InTeam(applicant.TeamID) {
			return LeaveResponse{}, apperror.ErrForbidden
		}
	}

	return JoinedToResponse(*l), nil
}

func (s *service) Approve(ctx context.Context, actor identity.Actor, id, comment string) error {
	return s.decide(ctx, actor, id, DecisionApprove, comment)
}

func (s *service) Reject(ctx context.Context, actor identity.Actor, id, comment string) error {
	return s.decide(ctx, actor, id, DecisionReject, comment)
}

func (s *service) decide(ctx context.Context, actor identity.Actor, id string, decision Decision, comment string) error {
	l := s.log(ctx).With(zap.String("leave_id", id), zap.String("decision", string(decision)))
	l.Debug("leave decision requested", zap.String("role", actor.Role))

	stage, ok := StageFor(actor.Role)
	if !ok {
		return apperror.ErrForbidden
	}

	leaveID, err := uuid.Parse(id)
	if err != nil {
		return leaveerrors.ErrLeaveNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("leave decision begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lv, err := qtx.FindByIDForUpdate(ctx, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return leaveerrors.ErrLeaveNotFound
		}
		l.Error("leave decision load failed", zap.Error(err))
		return err
	}

	var admins []uuid.UUID
	if stage == StageTeamLead {
		if err := s.authorizeTeamLead(ctx, qtx, actor, lv.UserID); err != nil {
			return err
		}
		if decision == DecisionApprove {
			admins, err = qtx.UserIDsByRole(ctx, identity.RoleAdmin, nil)
			if err != nil {
				l.Warn("resolve admin recipients failed", zap.Error(err))
				admins = nil
			}
		}
	}

	t, err := Decide(*lv, stage, decision, comment, admins)
	if err != nil {
		l.Warn("leave decision rejected by workflow", zap.Error(err))
		return err
	}

	if err := qtx.UpdateDecision(ctx, lv.ID, t); err != nil {
		l.Error("leave decision persist failed", zap.Error(err))
		return err
	}

	if t.Deduction != nil {
		if err := qtx.DeductBalance(ctx, *t.Deduction); err != nil {
			l.Error("leave balance deduction failed",
				zap.String("column", string(t.Deduction.Column)),
				zap.Error(err),
			)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		l.Error("leave decision commit failed", zap.Error(err))
		return err
	}

	l.Info("leave decision success",
		zap.String("stage", string(stage)),
		zap.String("status", t.Status),
	)
	s.metrics.LeaveTransition(string(stage), string(decision))

	s.dispatcher.Dispatch(ctx, t.Notifications)
	return nil
}

// authorizeTeamLead allows a team lead to act only on members of their own team.
func (s *service) authorizeTeamLead(ctx context.Context, repo Repository, actor identity.Actor, applicantID uuid.UUID) error {
	if applicantID == actor.ID {
		return leaveerrors.ErrOwnLeave
	}

	applicant, err := repo.FindApplicant(ctx, applicantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return leaveerrors.ErrLeaveNotFound
		}
		return err
	}
	if !actor.InTeam(applicant.TeamID) {
		return leaveerrors.ErrNotInTeam
	}
	return nil
}

func validateApply(req ApplyLeaveRequest) (time.Time, time.Time, error) {
	if strings.TrimSpace(req.LeaveType) == "" || strings.TrimSpace(req.FromDate) == "" || strings.TrimSpace(req.ToDate) == "" {
		return time.Time{}, time.Time{}, leaveerrors.ErrMissingFields
	}
	if !ValidLeaveType(req.LeaveType) {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidLeaveType
	}

	from, err := ParseDate(req.FromDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := ParseDate(req.ToDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return from, to, nil
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
