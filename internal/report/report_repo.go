package report

import (
	"context"

	"github.com/Webdevrishabh/ELMS/internal/leave"
	"github.com/Webdevrishabh/ELMS/internal/shared/identity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CalendarScope limits calendar rows. Nil fields mean no restriction.
type CalendarScope struct {
	UserID *uuid.UUID
	// TeamID adds the employees of a team on top of UserID.
	TeamID *uuid.UUID
}

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	ApprovedLeaves(ctx context.Context, scope CalendarScope) ([]leave.LeaveWithUser, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ApprovedLeaves(ctx context.Context, scope CalendarScope) ([]leave.LeaveWithUser, error) {
	q := r.db.WithContext(ctx).
		Table("leaves l").
		Select("l.*, u.name AS user_name, u.email AS user_email, u.role AS user_role, t.name AS team_name").
		Joins("JOIN users u ON u.id = l.user_id").
		Joins("LEFT JOIN teams t ON t.id = u.team_id").
		Where("l.status = ?", leave.StatusApproved)

	switch {
	case scope.UserID != nil && scope.TeamID != nil:
		q = q.Where("(l.user_id = ? OR (u.team_id = ? AND u.role = ?))", *scope.UserID, *scope.TeamID, identity.RoleEmployee)
	case scope.UserID != nil:
		q = q.Where("l.user_id = ?", *scope.UserID)
	}

	var rows []leave.LeaveWithUser
	err := q.Order("l.from_date ASC").Find(&rows).Error
	return rows, err
}
