package ai

import (
	"context"
	"time"

	"github.com/Webdevrishabh/ELMS/internal/leave"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=ai_repo.go -destination=mock/ai_repo_mock.go -package=mock
type Repository interface {
	LogCall(ctx context.Context, l *Log) error
	ChatContext(ctx context.Context, userID uuid.UUID) (ChatContext, error)
	FindLeaveContext(ctx context.Context, leaveID uuid.UUID) (*LeaveContext, error)
	TeamOverlapCount(ctx context.Context, teamID uuid.UUID, from, to time.Time) (int64, error)
	TeamSize(ctx context.Context, teamID uuid.UUID) (int64, error)
	UserTeamID(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error)
	TeammateLeaves(ctx context.Context, teamID, excludeUserID uuid.UUID, from, to time.Time) ([]TeammateLeave, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) LogCall(ctx context.Context, l *Log) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) ChatContext(ctx context.Context, userID uuid.UUID) (ChatContext, error) {
	var c ChatContext
	err := r.db.WithContext(ctx).
		Table("users").
		Select("leave_balance AS annual, sick_leave_balance AS sick, casual_leave_balance AS casual").
		Where("id = ?", userID).
		Take(&c).Error
	if err != nil {
		return ChatContext{}, err
	}

	var counts struct {
		Total    int64
		Pending  int64
		Approved int64
	}
	err = r.db.WithContext(ctx).
		Table("leaves").
		Select(`COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS pending,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS approved`,
			leave.StatusPending, leave.StatusApproved).
		Where("user_id = ?", userID).
		Scan(&counts).Error
	if err != nil {
		return ChatContext{}, err
	}

	c.Total, c.Pending, c.Approved = counts.Total, counts.Pending, counts.Approved
	return c, nil
}

func (r *repository) FindLeaveContext(ctx context.Context, leaveID uuid.UUID) (*LeaveContext, error) {
	var lc LeaveContext
	err := r.db.WithContext(ctx).
		Table("leaves l").
		Select("l.*, u.team_id, u.leave_balance").
		Joins("JOIN users u ON u.id = l.user_id").
		Where("l.id = ?", leaveID).
		Take(&lc).Error
	if err != nil {
		return nil, err
	}
	return &lc, nil
}

// TeamOverlapCount counts approved leaves of the team that intersect [from, to].
func (r *repository) TeamOverlapCount(ctx context.Context, teamID uuid.UUID, from, to time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("leaves l").
		Joins("JOIN users u ON u.id = l.user_id").
		Where("u.team_id = ? AND l.status = ?", teamID, leave.StatusApproved).
		Where("l.from_date <= ? AND l.to_date >= ?", to, from).
		Count(&n).Error
	return n, err
}

func (r *repository) TeamSize(ctx context.Context, teamID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Table("users").Where("team_id = ?", teamID).Count(&n).Error
	return n, err
}

func (r *repository) UserTeamID(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error) {
	var row struct {
		TeamID *uuid.UUID
	}
	err := r.db.WithContext(ctx).Table("users").Select("team_id").Where("id = ?", userID).Take(&row).Error
	if err != nil {
		return nil, err
	}
	return row.TeamID, nil
}

func (r *repository) TeammateLeaves(ctx context.Context, teamID, excludeUserID uuid.UUID, from, to time.Time) ([]TeammateLeave, error) {
	var rows []TeammateLeave
	err := r.db.WithContext(ctx).
		Table("leaves l").
		Select("l.from_date, l.to_date, l.leave_type, l.status").
		Joins("JOIN users u ON u.id = l.user_id").
		Where("u.team_id = ?", teamID).
		Where("l.status IN ?", []string{leave.StatusApproved, leave.StatusPending}).
		Where("l.from_date <= ? AND l.to_date >= ?", to, from).
		Where("l.user_id <> ?", excludeUserID).
		Scan(&rows).Error
	return rows, err
}
