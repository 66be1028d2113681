package database

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Conn returns a gorm handle bound to ctx. When tx is not nil every statement
// issued through the handle runs inside that transaction.
func Conn(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db.WithContext(ctx)
	}

	s := db.Session(&gorm.Session{Context: ctx, SkipDefaultTransaction: true})
	s.Statement.ConnPool = tx
	return s
}
