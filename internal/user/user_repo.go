package user

import (
	"context"
	"database/sql"

	"github.com/Webdevrishabh/ELMS/internal/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*UserWithTeam, error)
	FindAll(ctx context.Context) ([]UserWithTeam, error)
	Update(ctx context.Context, id uuid.UUID, patch Patch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return database.Conn(ctx, r.db, r.tx)
}

func (r *repository) withTeam(ctx context.Context) *gorm.DB {
	return r.conn(ctx).
		Table("users u").
		Select("u.*, t.name AS team_name").
		Joins("LEFT JOIN teams t ON t.id = u.team_id")
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.conn(ctx).Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*UserWithTeam, error) {
	var u UserWithTeam
	err := r.withTeam(ctx).Where("u.id = ?", id).Take(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindAll(ctx context.Context) ([]UserWithTeam, error) {
	var users []UserWithTeam
	err := r.withTeam(ctx).Order("u.created_at DESC").Find(&users).Error
	return users, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, patch Patch) error {
	cols := patch.Columns()
	cols["updated_at"] = gorm.Expr("NOW()")

	res := r.conn(ctx).Model(&User{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.conn(ctx).Delete(&User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
