package ai

import (
	"time"

	"github.com/Webdevrishabh/ELMS/internal/leave"

	"github.com/google/uuid"
)

// Action types recorded in ai_logs and metrics.
const (
	ActionChat              = "chat"
	ActionAutofill          = "autofill"
	ActionRecommendation    = "recommendation"
	ActionConflictDetection = "conflict_detection"
)

// Log is one masked request/response pair sent to the model.
type Log struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;not null"`
	ActionType    string    `gorm:"type:varchar(40);not null"`
	RequestMasked string
	ResponseData  string
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (Log) TableName() string {
	return "ai_logs"
}

// ChatContext is the caller's own leave summary given to the assistant.
type ChatContext struct {
	Annual   int
	Sick     int
	Casual   int
	Total    int64
	Pending  int64
	Approved int64
}

// LeaveContext is a leave joined with its applicant's team and annual balance.
type LeaveContext struct {
	leave.Leave
	TeamID       *uuid.UUID `gorm:"column:team_id"`
	LeaveBalance *int       `gorm:"column:leave_balance"`
}

type TeamContext struct {
	Overlapping int64
	TeamSize    int64
	Balance     *int
}

// TeammateLeave is the minimal view of a colleague's leave used for conflict checks.
type TeammateLeave struct {
	FromDate  time.Time
	ToDate    time.Time
	LeaveType string
	Status    string
}
