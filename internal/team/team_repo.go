package team

import (
	"context"
	"database/sql"

	"github.com/Webdevrishabh/ELMS/internal/database"

	"gorm.io/gorm"
)

//go:generate mockgen -source=team_repo.go -destination=mock/team_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *Team) error
	FindAll(ctx context.Context) ([]Team, error)
	FindByID(ctx context.Context, id string) (*Team, error)
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

func (r *repository) Create(ctx context.Context, t *Team) error {
	return r.conn(ctx).Create(t).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Team, error) {
	var teams []Team
	err := r.conn(ctx).Order("name ASC").Find(&teams).Error
	return teams, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Team, error) {
	var t Team
	if err := r.conn(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}
