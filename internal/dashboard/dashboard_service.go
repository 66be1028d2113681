package dashboard

import (
	"context"

	dashboarderrors "github.com/Webdevrishabh/ELMS/internal/dashboard/errors"
	"github.com/Webdevrishabh/ELMS/internal/leave"
	"github.com/Webdevrishabh/ELMS/internal/shared/contextutil"
	"github.com/Webdevrishabh/ELMS/internal/shared/identity"

	"go.uber.org/zap"
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	// Get returns the dashboard shape of the actor's role.
	Get(ctx context.Context, actor identity.Actor) (any, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Get(ctx context.Context, actor identity.Actor) (any, error) {
	l := contextutil.GetLogger(ctx, s.logger).With(zap.String("role", actor.Role))

	var (
		out any
		err error
	)
	switch actor.Role {
	case identity.RoleEmployee:
		out, err = s.employee(ctx, actor)
	case identity.RoleTeamLead:
		out, err = s.teamLead(ctx, actor)
	case identity.RoleAdmin:
		out, err = s.admin(ctx)
	default:
		return nil, dashboarderrors.ErrInvalidRole
	}
	if err != nil {
		l.Error("load dashboard failed", zap.Error(err))
		return nil, err
	}
	return out, nil
}

func (s *service) employee(ctx context.Context, actor identity.Actor) (EmployeeDashboard, error) {
	balances, err := s.repo.Balances(ctx, actor.ID)
	if err != nil {
		return EmployeeDashboard{}, err
	}
	counts, err := s.repo.UserLeaveCounts(ctx, actor.ID)
	if err != nil {
		return EmployeeDashboard{}, err
	}
	recent, err := s.repo.RecentByUser(ctx, actor.ID, employeeRecentLimit)
	if err != nil {
		return EmployeeDashboard{}, err
	}

	return EmployeeDashboard{
		Role:     identity.RoleEmployee,
		Balances: balances,
		Stats: EmployeeStats{
			Total:    counts.Total,
			Pending:  counts.Pending,
			Approved: counts.Approved,
			Rejected: counts.Rejected,
		},
		RecentLeaves: leave.ToListResponse(recent),
	}, nil
}

// teamLead reports on the lead's own leaves and on the employees of their team.
// A lead without a team gets an empty team section.
func (s *service) teamLead(ctx context.Context, actor identity.Actor) (TeamLeadDashboard, error) {
	balances, err := s.repo.Balances(ctx, actor.ID)
	if err != nil {
		return TeamLeadDashboard{}, err
	}
	own, err := s.repo.UserLeaveCounts(ctx, actor.ID)
	if err != nil {
		return TeamLeadDashboard{}, err
	}

	out := TeamLeadDashboard{
		Role:              identity.RoleTeamLead,
		Balances:          balances,
		PendingTeamLeaves: []leave.LeaveResponse{},
		OwnStats:          OwnStats{Pending: own.Pending, Approved: own.Approved},
	}
	if actor.TeamID == nil {
		return out, nil
	}

	pending, err := s.repo.PendingTeamLeaves(ctx, *actor.TeamID)
	if err != nil {
		return TeamLeadDashboard{}, err
	}
	team, err := s.repo.TeamLeaveCounts(ctx, *actor.TeamID)
	if err != nil {
		return TeamLeadDashboard{}, err
	}

	out.PendingTeamLeaves = leave.JoinedToListResponse(pending)
	out.TeamStats = TeamStats{Total: team.Total, Pending: team.Pending, Approved: team.Approved}
	return out, nil
}

func (s *service) admin(ctx context.Context) (AdminDashboard, error) {
	system, err := s.repo.SystemLeaveCounts(ctx)
	if err != nil {
		return AdminDashboard{}, err
	}
	pending, err := s.repo.PendingAdminApproval(ctx)
	if err != nil {
		return AdminDashboard{}, err
	}
	users, err := s.repo.UserCounts(ctx)
	if err != nil {
		return AdminDashboard{}, err
	}
	recent, err := s.repo.RecentAll(ctx, adminRecentLimit)
	if err != nil {
		return AdminDashboard{}, err
	}

	return AdminDashboard{
		Role: identity.RoleAdmin,
		SystemStats: SystemStats{
			TotalLeaves: system.Total,
			Pending:     system.Pending,
			Approved:    system.Approved,
			Rejected:    system.Rejected,
		},
		PendingAdminApproval: leave.JoinedToListResponse(pending),
		UserCounts:           users,
		RecentLeaves:         leave.JoinedToListResponse(recent),
	}, nil
}
