package dashboard

import (
	"context"

	"github.com/Webdevrishabh/ELMS/internal/leave"
	"github.com/Webdevrishabh/ELMS/internal/shared/identity"
	"github.com/Webdevrishabh/ELMS/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const countsSelect = `COUNT(*) AS total,
	COALESCE(SUM(CASE WHEN l.status = 'pending' THEN 1 ELSE 0 END), 0) AS pending,
	COALESCE(SUM(CASE WHEN l.status = 'approved' THEN 1 ELSE 0 END), 0) AS approved,
	COALESCE(SUM(CASE WHEN l.status = 'rejected' THEN 1 ELSE 0 END), 0) AS rejected`

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	Balances(ctx context.Context, userID uuid.UUID) (Balances, error)
	UserLeaveCounts(ctx context.Context, userID uuid.UUID) (LeaveCounts, error)
	TeamLeaveCounts(ctx context.Context, teamID uuid.UUID) (LeaveCounts, error)
	SystemLeaveCounts(ctx context.Context) (LeaveCounts, error)
	UserCounts(ctx context.Context) (UserCounts, error)
	RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]leave.Leave, error)
	PendingTeamLeaves(ctx context.Context, teamID uuid.UUID) ([]leave.LeaveWithUser, error)
	PendingAdminApproval(ctx context.Context) ([]leave.LeaveWithUser, error)
	RecentAll(ctx context.Context, limit int) ([]leave.LeaveWithUser, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("leaves l").
		Select("l.*, u.name AS user_name, u.email AS user_email, u.role AS user_role, t.name AS team_name").
		Joins("JOIN users u ON u.id = l.user_id").
		Joins("LEFT JOIN teams t ON t.id = u.team_id")
}

func (r *repository) Balances(ctx context.Context, userID uuid.UUID) (Balances, error) {
	var b Balances
	err := r.db.WithContext(ctx).
		Table("users").
		Select("leave_balance AS annual, sick_leave_balance AS sick, casual_leave_balance AS casual").
		Where("id = ?", userID).
		Take(&b).Error
	return b, err
}

func (r *repository) UserLeaveCounts(ctx context.Context, userID uuid.UUID) (LeaveCounts, error) {
	var c LeaveCounts
	err := r.db.WithContext(ctx).
		Table("leaves l").
		Select(countsSelect).
		Where("l.user_id = ?", userID).
		Scan(&c).Error
	return c, err
}

// TeamLeaveCounts aggregates leaves of the team's employees only.
func (r *repository) TeamLeaveCounts(ctx context.Context, teamID uuid.UUID) (LeaveCounts, error) {
	var c LeaveCounts
	err := r.db.WithContext(ctx).
		Table("leaves l").
		Select(countsSelect).
		Joins("JOIN users u ON u.id = l.user_id").
		Scopes(scope.TeamEmployees(teamID)).
		Scan(&c).Error
	return c, err
}

func (r *repository) SystemLeaveCounts(ctx context.Context) (LeaveCounts, error) {
	var c LeaveCounts
	err := r.db.WithContext(ctx).
		Table("leaves l").
		Select(countsSelect).
		Scan(&c).Error
	return c, err
}

// UserCounts counts non-admin users.
func (r *repository) UserCounts(ctx context.Context) (UserCounts, error) {
	var c UserCounts
	err := r.db.WithContext(ctx).
		Table("users").
		Select(`COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN role = ? THEN 1 ELSE 0 END), 0) AS employees,
			COALESCE(SUM(CASE WHEN role = ? THEN 1 ELSE 0 END), 0) AS team_leads`,
			identity.RoleEmployee, identity.RoleTeamLead).
		Where("role <> ?", identity.RoleAdmin).
		Scan(&c).Error
	return c, err
}

func (r *repository) RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]leave.Leave, error) {
	var rows []leave.Leave
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *repository) PendingTeamLeaves(ctx context.Context, teamID uuid.UUID) ([]leave.LeaveWithUser, error) {
	var rows []leave.LeaveWithUser
	err := r.joined(ctx).
		Scopes(scope.TeamEmployees(teamID)).
		Where("l.team_lead_approval = ?", leave.ApprovalPending).
		Order("l.created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) PendingAdminApproval(ctx context.Context) ([]leave.LeaveWithUser, error) {
	var rows []leave.LeaveWithUser
	err := r.joined(ctx).
		Where("l.admin_approval = ?", leave.ApprovalPending).
		Where("l.team_lead_approval IN ?", []string{leave.ApprovalApproved, leave.ApprovalNA}).
		Order("l.created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) RecentAll(ctx context.Context, limit int) ([]leave.LeaveWithUser, error) {
	var rows []leave.LeaveWithUser
	err := r.joined(ctx).
		Order("l.created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
