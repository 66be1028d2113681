package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeAnnual    = "annual"
	TypeSick      = "sick"
	TypeCasual    = "casual"
	TypeUnpaid    = "unpaid"
	TypeMaternity = "maternity"
	TypePaternity = "paternity"
)

const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
	ApprovalNA       = "na"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const dateLayout = "2006-01-02"

var leaveTypes = map[string]struct{}{
	TypeAnnual:    {},
	TypeSick:      {},
	TypeCasual:    {},
	TypeUnpaid:    {},
	TypeMaternity: {},
	TypePaternity: {},
}

func ValidLeaveType(t string) bool {
	_, ok := leaveTypes[t]
	return ok
}

type Leave struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID           uuid.UUID `gorm:"type:uuid;not null"`
	LeaveType        string    `gorm:"type:varchar(20);not null"`
	FromDate         time.Time `gorm:"type:date;not null"`
	ToDate           time.Time `gorm:"type:date;not null"`
	TotalDays        int       `gorm:"not null;default:1"`
	Description      *string   `gorm:"type:text"`
	Status           string    `gorm:"type:varchar(20);not null;default:'pending'"`
	TeamLeadApproval string    `gorm:"type:varchar(20);not null;default:'pending'"`
	AdminApproval    string    `gorm:"type:varchar(20);not null;default:'pending'"`
	TeamLeadComment  *string   `gorm:"type:text"`
	AdminComment     *string   `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Leave) TableName() string {
	return "leaves"
}

// LeaveWithUser is a leave row joined with its applicant and team.
type LeaveWithUser struct {
	Leave
	UserName  *string
	UserEmail *string
	UserRole  *string
	TeamName  *string
}

// Applicant is the subset of the users row the workflow needs.
type Applicant struct {
	ID     uuid.UUID
	Name   string
	Email  string
	Role   string
	TeamID *uuid.UUID
}

type ListFilter struct {
	Status      string
	PendingOnly bool
}

func (f ListFilter) hasStatus() bool {
	return f.Status != "" && f.Status != "all"
}
