package team

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"column:name;type:varchar(100);not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Team) TableName() string {
	return "teams"
}
