package database_test

import (
	"context"
	"testing"

	"github.com/Webdevrishabh/ELMS/internal/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("skips when users exist", func(t *testing.T) {
		db, mock := newGormMock(t)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		require.NoError(t, database.Seed(ctx, db, zap.NewNop()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("creates teams and demo users", func(t *testing.T) {
		db, mock := newGormMock(t)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectBegin()
		for i := 0; i < 4; i++ {
			mock.ExpectExec(`INSERT INTO teams`).WillReturnResult(sqlmock.NewResult(0, 1))
		}
		// admin has no team
		mock.ExpectExec(`INSERT INTO users`).
			WithArgs("admin@elms.com", sqlmock.AnyArg(), "System Admin", "admin", nil, 0, 0, 0).
			WillReturnResult(sqlmock.NewResult(0, 1))
		for _, email := range []string{"teamlead@elms.com", "employee@elms.com"} {
			mock.ExpectQuery(`SELECT id::text FROM teams WHERE name = \$1`).
				WithArgs("Engineering").
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("6f1c2d9e-0000-4000-8000-000000000001"))
			mock.ExpectExec(`INSERT INTO users`).
				WithArgs(email, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), 20, 10, 5).
				WillReturnResult(sqlmock.NewResult(0, 1))
		}
		mock.ExpectCommit()

		require.NoError(t, database.Seed(ctx, db, zap.NewNop()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
