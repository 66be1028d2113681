package user

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                 uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Email              string     `gorm:"column:email;type:varchar(255);not null"`
	PasswordHash       string     `gorm:"column:password_hash;not null"`
	Name               string     `gorm:"column:name;type:varchar(150);not null"`
	Role               string     `gorm:"column:role;type:varchar(20);not null"`
	TeamID             *uuid.UUID `gorm:"column:team_id;type:uuid"`
	LeaveBalance       int        `gorm:"column:leave_balance;default:20"`
	SickLeaveBalance   int        `gorm:"column:sick_leave_balance;default:10"`
	CasualLeaveBalance int        `gorm:"column:casual_leave_balance;default:5"`
	Phone              *string    `gorm:"column:phone"`
	Skills             Skills     `gorm:"column:skills;type:jsonb"`
	CreatedAt          time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

// UserWithTeam is a users row joined with its team name.
type UserWithTeam struct {
	User
	TeamName *string `gorm:"column:team_name"`
}

// Skills is stored as a JSON array of strings.
type Skills []string

func (s Skills) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *Skills) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*s = Skills{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("skills: unsupported type %T", src)
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	*s = out
	return nil
}
