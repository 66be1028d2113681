package notification

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null"`
	EventID   *uuid.UUID `gorm:"type:uuid"`
	Message   string     `gorm:"type:text;not null"`
	Type      string     `gorm:"type:varchar(30);not null"`
	LeaveID   *uuid.UUID `gorm:"type:uuid"`
	IsRead    bool       `gorm:"not null;default:false"`
	CreatedAt time.Time
}

func (Notification) TableName() string {
	return "notifications"
}
