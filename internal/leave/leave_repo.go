package leave

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Webdevrishabh/ELMS/internal/database"
	"github.com/Webdevrishabh/ELMS/internal/shared/identity"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	FindByID(ctx context.Context, id uuid.UUID) (*LeaveWithUser, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Leave, error)
	FindApplicant(ctx context.Context, userID uuid.UUID) (*Applicant, error)
	FindByUser(ctx context.Context, userID uuid.UUID, status string) ([]Leave, error)
	FindByTeam(ctx context.Context, teamID uuid.UUID, filter ListFilter) ([]LeaveWithUser, error)
	FindAll(ctx context.Context, filter ListFilter) ([]LeaveWithUser, error)
	UpdateDecision(ctx context.Context, id uuid.UUID, t Transition) error
	DeductBalance(ctx context.Context, d Deduction) error
	UserIDsByRole(ctx context.Context, role string, teamID *uuid.UUID) ([]uuid.UUID, error)
	HasOverlap(ctx context.Context, userID uuid.UUID, from, to time.Time) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return database.Conn(ctx, r.db, r.tx)
}

func (r *repository) joined(ctx context.Context) *gorm.DB {
	return r.conn(ctx).
		Table("leaves l").
		Select("l.*, u.name AS user_name, u.email AS user_email, u.role AS user_role, t.name AS team_name").
		Joins("JOIN users u ON u.id = l.user_id").
		Joins("LEFT JOIN teams t ON t.id = u.team_id")
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.conn(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*LeaveWithUser, error) {
	var l LeaveWithUser
	err := r.joined(ctx).Where("l.id = ?", id).Take(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// FindByIDForUpdate locks the row until the surrounding transaction ends.
func (r *repository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Leave, error) {
	var l Leave
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		Take(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) FindApplicant(ctx context.Context, userID uuid.UUID) (*Applicant, error) {
	var a Applicant
	err := r.conn(ctx).
		Table("users").
		Select("id, name, email, role, team_id").
		Where("id = ?", userID).
		Take(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindByUser(ctx context.Context, userID uuid.UUID, status string) ([]Leave, error) {
	q := r.conn(ctx).Where("user_id = ?", userID)
	if status != "" && status != "all" {
		q = q.Where("status = ?", status)
	}

	var leaves []Leave
	err := q.Order("created_at DESC").Find(&leaves).Error
	return leaves, err
}

// FindByTeam lists leaves of employees in teamID. PendingOnly keeps leaves
// waiting on the team lead.
func (r *repository) FindByTeam(ctx context.Context, teamID uuid.UUID, filter ListFilter) ([]LeaveWithUser, error) {
	q := r.joined(ctx).
		Where("u.team_id = ?", teamID).
		Where("u.role = ?", identity.RoleEmployee)
	if filter.hasStatus() {
		q = q.Where("l.status = ?", filter.Status)
	}
	if filter.PendingOnly {
		q = q.Where("l.team_lead_approval = ?", ApprovalPending)
	}

	var leaves []LeaveWithUser
	err := q.Order("l.created_at DESC").Find(&leaves).Error
	return leaves, err
}

// FindAll lists every leave. PendingOnly keeps leaves waiting on an admin.
func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]LeaveWithUser, error) {
	q := r.joined(ctx)
	if filter.hasStatus() {
		q = q.Where("l.status = ?", filter.Status)
	}
	if filter.PendingOnly {
		q = q.Where("l.admin_approval = ?", ApprovalPending).
			Where("l.team_lead_approval IN ?", []string{ApprovalApproved, ApprovalNA})
	}

	var leaves []LeaveWithUser
	err := q.Order("l.created_at DESC").Find(&leaves).Error
	return leaves, err
}

func (r *repository) UpdateDecision(ctx context.Context, id uuid.UUID, t Transition) error {
	res := r.conn(ctx).
		Model(&Leave{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"team_lead_approval": t.TeamLeadApproval,
			"admin_approval":     t.AdminApproval,
			"status":             t.Status,
			"team_lead_comment":  t.TeamLeadComment,
			"admin_comment":      t.AdminComment,
			"updated_at":         gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DeductBalance(ctx context.Context, d Deduction) error {
	if !d.Column.Valid() {
		return fmt.Errorf("leave: unknown balance column %q", d.Column)
	}

	col := string(d.Column)
	res := r.conn(ctx).
		Table("users").
		Where("id = ?", d.UserID).
		Updates(map[string]any{
			col:          gorm.Expr(col+" - ?", d.Days),
			"updated_at": gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) UserIDsByRole(ctx context.Context, role string, teamID *uuid.UUID) ([]uuid.UUID, error) {
	q := r.conn(ctx).Table("users").Where("role = ?", role)
	if teamID != nil {
		q = q.Where("team_id = ?", *teamID)
	}

	var ids []uuid.UUID
	err := q.Pluck("id", &ids).Error
	return ids, err
}

func (r *repository) HasOverlap(ctx context.Context, userID uuid.UUID, from, to time.Time) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&Leave{}).
		Where("user_id = ?", userID).
		Where("status IN ?", []string{StatusPending, StatusApproved}).
		Where("NOT (to_date < ? OR from_date > ?)", from, to).
		Count(&count).Error
	return count > 0, err
}
