package leave

import (
	"strings"
	"time"

	"github.com/Webdevrishabh/ELMS/internal/events"
	leaveerrors "github.com/Webdevrishabh/ELMS/internal/leave/errors"
	"github.com/Webdevrishabh/ELMS/internal/shared/apperror"
	"github.com/Webdevrishabh/ELMS/internal/shared/identity"

	"github.com/google/uuid"
)

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// Stage is the approval step a role acts on.
type Stage string

const (
	StageTeamLead Stage = "team_lead"
	StageAdmin    Stage = "admin"
)

const (
	msgAppliedByTeamLead = "New leave request from Team Lead requires your approval"
	msgAppliedByMember   = "New leave request from your team member"
	msgPendingAdmin      = "Leave request approved by Team Lead, pending your final approval"
	msgPendingApplicant  = "Your leave request has been approved by Team Lead, pending Admin approval"
	msgApproved          = "Your leave request has been approved!"
	msgRejected          = "Your leave request has been rejected."
)

func StageFor(role string) (Stage, bool) {
	switch role {
	case identity.RoleTeamLead:
		return StageTeamLead, true
	case identity.RoleAdmin:
		return StageAdmin, true
	}
	return "", false
}

// Deduction charges Days against one balance column of UserID.
type Deduction struct {
	UserID uuid.UUID
	Column BalanceColumn
	Days   int
}

// Transition is the result of one approval decision.
type Transition struct {
	Stage            Stage
	Decision         Decision
	TeamLeadApproval string
	AdminApproval    string
	Status           string
	TeamLeadComment  *string
	AdminComment     *string
	Deduction        *Deduction
	Notifications    []events.NotificationRequested
}

// BusinessDays counts Monday to Friday in [from, to], never less than 1.
func BusinessDays(from, to time.Time) int {
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)

	days := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	if days == 0 {
		return 1
	}
	return days
}

// InitialTeamLeadApproval skips the team lead stage for team leads' own leave.
func InitialTeamLeadApproval(applicantRole string) string {
	if applicantRole == identity.RoleTeamLead {
		return ApprovalNA
	}
	return ApprovalPending
}

// DeriveStatus computes the overall status from the two approval stages.
func DeriveStatus(teamLeadApproval, adminApproval string) string {
	switch {
	case teamLeadApproval == ApprovalRejected || adminApproval == ApprovalRejected:
		return StatusRejected
	case adminApproval == ApprovalApproved &&
		(teamLeadApproval == ApprovalApproved || teamLeadApproval == ApprovalNA):
		return StatusApproved
	default:
		return StatusPending
	}
}

// ApplicationNotifications builds the messages sent when a leave is filed.
// Recipients are admins for a team lead applicant, otherwise the applicant's team leads.
func ApplicationNotifications(leaveID uuid.UUID, applicantRole string, recipients []uuid.UUID) []events.NotificationRequested {
	msg := msgAppliedByMember
	if applicantRole == identity.RoleTeamLead {
		msg = msgAppliedByTeamLead
	}
	return events.Notify(recipients, msg, events.NotificationLeaveApplied, &leaveID)
}

// Decide applies one decision to l. It has no side effects; admins is only
// read for a team lead approval.
func Decide(l Leave, stage Stage, decision Decision, comment string, admins []uuid.UUID) (Transition, error) {
	t := Transition{
		Stage:            stage,
		Decision:         decision,
		TeamLeadApproval: l.TeamLeadApproval,
		AdminApproval:    l.AdminApproval,
		TeamLeadComment:  l.TeamLeadComment,
		AdminComment:     l.AdminComment,
	}
	note := optionalComment(comment)
	leaveID := l.ID

	switch stage {
	case StageTeamLead:
		if l.TeamLeadApproval != ApprovalPending || l.Status != StatusPending {
			if decision == DecisionApprove {
				return Transition{}, leaveerrors.ErrAlreadyProcessedByTeamLead
			}
			return Transition{}, leaveerrors.ErrAlreadyProcessed
		}
		t.TeamLeadComment = note

		if decision == DecisionApprove {
			t.TeamLeadApproval = ApprovalApproved
			t.Notifications = append(
				events.Notify(admins, msgPendingAdmin, events.NotificationLeavePending, &leaveID),
				events.NewNotificationRequested(l.UserID, msgPendingApplicant, events.NotificationLeavePending, &leaveID),
			)
		} else {
			t.TeamLeadApproval = ApprovalRejected
			t.Notifications = []events.NotificationRequested{rejectionNotice(l, note)}
		}

	case StageAdmin:
		if l.AdminApproval != ApprovalPending || l.Status != StatusPending {
			return Transition{}, leaveerrors.ErrAlreadyProcessedByAdmin
		}
		t.AdminComment = note

		if decision == DecisionApprove {
			if l.TeamLeadApproval != ApprovalApproved && l.TeamLeadApproval != ApprovalNA {
				return Transition{}, leaveerrors.ErrNeedsTeamLeadApproval
			}
			t.AdminApproval = ApprovalApproved
			if col, ok := BalanceColumnFor(l.LeaveType); ok {
				t.Deduction = &Deduction{UserID: l.UserID, Column: col, Days: l.TotalDays}
			}
			t.Notifications = []events.NotificationRequested{
				events.NewNotificationRequested(l.UserID, msgApproved, events.NotificationLeaveApproved, &leaveID),
			}
		} else {
			t.AdminApproval = ApprovalRejected
			t.Notifications = []events.NotificationRequested{rejectionNotice(l, note)}
		}

	default:
		return Transition{}, apperror.ErrForbidden
	}

	t.Status = DeriveStatus(t.TeamLeadApproval, t.AdminApproval)
	return t, nil
}

func rejectionNotice(l Leave, comment *string) events.NotificationRequested {
	msg := msgRejected
	if comment != nil {
		msg += " Reason: " + *comment
	}
	leaveID := l.ID
	return events.NewNotificationRequested(l.UserID, msg, events.NotificationLeaveRejected, &leaveID)
}

func optionalComment(comment string) *string {
	c := strings.TrimSpace(comment)
	if c == "" {
		return nil
	}
	return &c
}
