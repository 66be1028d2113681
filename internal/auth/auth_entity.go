package auth

import (
	"github.com/google/uuid"
)

// Credential is the slice of a users row needed to authenticate.
type Credential struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email        string     `gorm:"type:varchar(255)"`
	PasswordHash string     `gorm:"column:password_hash"`
	Name         string     `gorm:"type:varchar(255)"`
	Role         string     `gorm:"type:varchar(20)"`
	TeamID       *uuid.UUID `gorm:"type:uuid"`
}

func (Credential) TableName() string {
	return "users"
}
