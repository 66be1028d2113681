package leave_test

import (
	"testing"
	"time"

	"github.com/Webdevrishabh/ELMS/internal/events"
	"github.com/Webdevrishabh/ELMS/internal/leave"
	leaveerrors "github.com/Webdevrishabh/ELMS/internal/leave/errors"
	"github.com/Webdevrishabh/ELMS/internal/shared/identity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, v string) time.Time {
	t.Helper()
	d, err := leave.ParseDate(v)
	require.NoError(t, err)
	return d
}

func TestBusinessDays(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     int
	}{
		{"single weekday", "2026-03-02", "2026-03-02", 1},
		{"mon to wed", "2026-03-02", "2026-03-04", 3},
		{"full week", "2026-03-02", "2026-03-08", 5},
		{"spans weekend", "2026-03-05", "2026-03-10", 4},
		{"saturday only clamps to one", "2026-03-07", "2026-03-07", 1},
		{"weekend only clamps to one", "2026-03-07", "2026-03-08", 1},
		{"two weeks", "2026-03-02", "2026-03-13", 10},
		{"crosses month end", "2026-02-27", "2026-03-03", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, leave.BusinessDays(date(t, tt.from), date(t, tt.to)))
		})
	}
}

func TestInitialTeamLeadApproval(t *testing.T) {
	assert.Equal(t, leave.ApprovalNA, leave.InitialTeamLeadApproval(identity.RoleTeamLead))
	assert.Equal(t, leave.ApprovalPending, leave.InitialTeamLeadApproval(identity.RoleEmployee))
	assert.Equal(t, leave.ApprovalPending, leave.InitialTeamLeadApproval(identity.RoleAdmin))
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		tl, admin string
		want      string
	}{
		{leave.ApprovalPending, leave.ApprovalPending, leave.StatusPending},
		{leave.ApprovalApproved, leave.ApprovalPending, leave.StatusPending},
		{leave.ApprovalApproved, leave.ApprovalApproved, leave.StatusApproved},
		{leave.ApprovalNA, leave.ApprovalApproved, leave.StatusApproved},
		{leave.ApprovalPending, leave.ApprovalApproved, leave.StatusPending},
		{leave.ApprovalRejected, leave.ApprovalPending, leave.StatusRejected},
		{leave.ApprovalApproved, leave.ApprovalRejected, leave.StatusRejected},
		{leave.ApprovalNA, leave.ApprovalRejected, leave.StatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.tl+"/"+tt.admin, func(t *testing.T) {
			assert.Equal(t, tt.want, leave.DeriveStatus(tt.tl, tt.admin))
		})
	}
}

func TestBalanceColumnFor(t *testing.T) {
	tests := []struct {
		leaveType string
		want      leave.BalanceColumn
		ok        bool
	}{
		{leave.TypeAnnual, leave.BalanceAnnual, true},
		{leave.TypeSick, leave.BalanceSick, true},
		{leave.TypeCasual, leave.BalanceCasual, true},
		{leave.TypeMaternity, leave.BalanceAnnual, true},
		{leave.TypePaternity, leave.BalanceAnnual, true},
		{leave.TypeUnpaid, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.leaveType, func(t *testing.T) {
			col, ok := leave.BalanceColumnFor(tt.leaveType)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, col)
		})
	}

	assert.False(t, leave.BalanceColumn("password_hash").Valid())
}

func TestApplicationNotifications(t *testing.T) {
	leaveID := uuid.New()
	recipients := []uuid.UUID{uuid.New(), uuid.New()}

	t.Run("team lead applicant notifies admins", func(t *testing.T) {
		notes := leave.ApplicationNotifications(leaveID, identity.RoleTeamLead, recipients)

		require.Len(t, notes, 2)
		for i, n := range notes {
			assert.Equal(t, recipients[i], n.UserID)
			assert.Equal(t, "New leave request from Team Lead requires your approval", n.Message)
			assert.Equal(t, events.NotificationLeaveApplied, n.Type)
			assert.Equal(t, leaveID, *n.LeaveID)
			assert.NotEqual(t, uuid.Nil, n.EventID)
		}
		assert.NotEqual(t, notes[0].EventID, notes[1].EventID)
	})

	t.Run("employee applicant notifies team leads", func(t *testing.T) {
		notes := leave.ApplicationNotifications(leaveID, identity.RoleEmployee, recipients[:1])

		require.Len(t, notes, 1)
		assert.Equal(t, "New leave request from your team member", notes[0].Message)
	})

	t.Run("no recipients", func(t *testing.T) {
		assert.Empty(t, leave.ApplicationNotifications(leaveID, identity.RoleEmployee, nil))
	})
}

func pendingLeave(tl string) leave.Leave {
	return leave.Leave{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		LeaveType:        leave.TypeAnnual,
		TotalDays:        3,
		Status:           leave.StatusPending,
		TeamLeadApproval: tl,
		AdminApproval:    leave.ApprovalPending,
	}
}

func TestDecide_TeamLead(t *testing.T) {
	admins := []uuid.UUID{uuid.New(), uuid.New()}

	t.Run("approve keeps status pending and notifies admins and applicant", func(t *testing.T) {
		l := pendingLeave(leave.ApprovalPending)

		tr, err := leave.Decide(l, leave.StageTeamLead, leave.DecisionApprove, "  fine by me ", admins)

		require.NoError(t, err)
		assert.Equal(t, leave.ApprovalApproved, tr.TeamLeadApproval)
		assert.Equal(t, leave.ApprovalPending, tr.AdminApproval)
		assert.Equal(t, leave.StatusPending, tr.Status)
		require.NotNil(t, tr.TeamLeadComment)
		assert.Equal(t, "fine by me", *tr.TeamLeadComment)
		assert.Nil(t, tr.Deduction)

		require.Len(t, tr.Notifications, 3)
		assert.Equal(t, admins[0], tr.Notifications[0].UserID)
		assert.Equal(t, "Leave request approved by Team Lead, pending your final approval", tr.Notifications[0].Message)
		assert.Equal(t, l.UserID, tr.Notifications[2].UserID)
		assert.Equal(t, "Your leave request has been approved by Team Lead, pending Admin approval", tr.Notifications[2].Message)
		for _, n := range tr.Notifications {
			assert.Equal(t, events.NotificationLeavePending, n.Type)
		}
	})

	t.Run("reject sets status rejected", func(t *testing.T) {
		l := pendingLeave(leave.ApprovalPending)

		tr, err := leave.Decide(l, leave.StageTeamLead, leave.DecisionReject, "", nil)

		require.NoError(t, err)
		assert.Equal(t, leave.ApprovalRejected, tr.TeamLeadApproval)
		assert.Equal(t, leave.StatusRejected, tr.Status)
		assert.Nil(t, tr.TeamLeadComment)
		require.Len(t, tr.Notifications, 1)
		assert.Equal(t, "Your leave request has been rejected.", tr.Notifications[0].Message)
		assert.Equal(t, events.NotificationLeaveRejected, tr.Notifications[0].Type)
	})

	t.Run("negative approve already processed", func(t *testing.T) {
		_, err := leave.Decide(pendingLeave(leave.ApprovalApproved), leave.StageTeamLead, leave.DecisionApprove, "", admins)
		assert.ErrorIs(t, err, leaveerrors.ErrAlreadyProcessedByTeamLead)
	})

	t.Run("negative approve after admin rejection", func(t *testing.T) {
		l := pendingLeave(leave.ApprovalPending)
		rejected, err := leave.Decide(l, leave.StageAdmin, leave.DecisionReject, "", nil)
		require.NoError(t, err)
		l.AdminApproval = rejected.AdminApproval
		l.Status = rejected.Status
		require.Equal(t, leave.ApprovalPending, l.TeamLeadApproval)

		tr, err := leave.Decide(l, leave.StageTeamLead, leave.DecisionApprove, "", admins)

		assert.ErrorIs(t, err, leaveerrors.ErrAlreadyProcessedByTeamLead)
		assert.Empty(t, tr.Notifications)
	})

	t.Run("negative reject after admin rejection", func(t *testing.T) {
		l := pendingLeave(leave.ApprovalPending)
		l.AdminApproval = leave.ApprovalRejected
		l.Status = leave.StatusRejected

		_, err := leave.Decide(l, leave.StageTeamLead, leave.DecisionReject, "", nil)
		assert.ErrorIs(t, err, leaveerrors.ErrAlreadyProcessed)
	})

	t.Run("negative reject team lead own leave", func(t *testing.T) {
		_, err := leave.Decide(pendingLeave(leave.ApprovalNA), leave.StageTeamLead, leave.DecisionReject, "", nil)
		assert.ErrorIs(t, err, leaveerrors.ErrAlreadyProcessed)
	})
}

func TestDecide_Admin(t *testing.T) {
	t.Run("approve after team lead deducts annual balance", func(t *testing.T) {
		l := pendingLeave(leave.ApprovalApproved)

		tr, err := leave.Decide(l, leave.StageAdmin, leave.DecisionApprove, "", nil)

		require.NoError(t, err)
		assert.Equal(t, leave.ApprovalApproved, tr.AdminApproval)
		assert.Equal(t, leave.StatusApproved, tr.Status)
		require.NotNil(t, tr.Deduction)
		assert.Equal(t, leave.Deduction{UserID: l.UserID, Column: leave.BalanceAnnual, Days: 3}, *tr.Deduction)
		require.Len(t, tr.Notifications, 1)
		assert.Equal(t, "Your leave request has been approved!", tr.Notifications[0].Message)
		assert.Equal(t, events.NotificationLeaveApproved, tr.Notifications[0].Type)
	})

	t.Run("approve team lead leave", func(t *testing.T) {
		l := pendingLeave(leave.ApprovalNA)
		l.LeaveType = leave.TypeSick

		tr, err := leave.Decide(l, leave.StageAdmin, leave.DecisionApprove, "", nil)

		require.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, tr.Status)
		assert.Equal(t, leave.BalanceSick, tr.Deduction.Column)
	})

	t.Run("approve unpaid leaves balances alone", func(t *testing.T) {
		l := pendingLeave(leave.ApprovalApproved)
		l.LeaveType = leave.TypeUnpaid

		tr, err := leave.Decide(l, leave.StageAdmin, leave.DecisionApprove, "", nil)

		require.NoError(t, err)
		assert.Nil(t, tr.Deduction)
	})

	t.Run("negative approve before team lead", func(t *testing.T) {
		_, err := leave.Decide(pendingLeave(leave.ApprovalPending), leave.StageAdmin, leave.DecisionApprove, "", nil)
		assert.ErrorIs(t, err, leaveerrors.ErrNeedsTeamLeadApproval)
	})

	t.Run("negative approve already processed", func(t *testing.T) {
		l := pendingLeave(leave.ApprovalApproved)
		l.AdminApproval = leave.ApprovalApproved
		l.Status = leave.StatusApproved

		_, err := leave.Decide(l, leave.StageAdmin, leave.DecisionApprove, "", nil)
		assert.ErrorIs(t, err, leaveerrors.ErrAlreadyProcessedByAdmin)
	})

	t.Run("reject with reason", func(t *testing.T) {
		l := pendingLeave(leave.ApprovalNA)

		tr, err := leave.Decide(l, leave.StageAdmin, leave.DecisionReject, "short-staffed", nil)

		require.NoError(t, err)
		assert.Equal(t, leave.ApprovalRejected, tr.AdminApproval)
		assert.Equal(t, leave.StatusRejected, tr.Status)
		assert.Equal(t, "short-staffed", *tr.AdminComment)
		require.Len(t, tr.Notifications, 1)
		assert.Equal(t, "Your leave request has been rejected. Reason: short-staffed", tr.Notifications[0].Message)
		assert.Equal(t, l.UserID, tr.Notifications[0].UserID)
	})

	t.Run("negative reject already rejected by team lead", func(t *testing.T) {
		l := pendingLeave(leave.ApprovalRejected)
		l.Status = leave.StatusRejected

		_, err := leave.Decide(l, leave.StageAdmin, leave.DecisionReject, "", nil)
		assert.ErrorIs(t, err, leaveerrors.ErrAlreadyProcessedByAdmin)
	})

	t.Run("team lead comment is preserved", func(t *testing.T) {
		l := pendingLeave(leave.ApprovalApproved)
		note := "ok"
		l.TeamLeadComment = &note

		tr, err := leave.Decide(l, leave.StageAdmin, leave.DecisionApprove, "", nil)

		require.NoError(t, err)
		assert.Equal(t, &note, tr.TeamLeadComment)
		assert.Nil(t, tr.AdminComment)
	})
}
