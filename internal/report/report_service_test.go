package report_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Webdevrishabh/ELMS/internal/leave"
	leaveMock "github.com/Webdevrishabh/ELMS/internal/leave/mock"
	"github.com/Webdevrishabh/ELMS/internal/report"
	reporterrors "github.com/Webdevrishabh/ELMS/internal/report/errors"
	reportMock "github.com/Webdevrishabh/ELMS/internal/report/mock"
	"github.com/Webdevrishabh/ELMS/internal/shared/identity"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type reportTestSetup struct {
	svc    report.Service
	leaves *leaveMock.MockRepository
	repo   *reportMock.MockRepository
}

func setupReportTest(t *testing.T) reportTestSetup {
	ctrl := gomock.NewController(t)
	leaves := leaveMock.NewMockRepository(ctrl)
	repo := reportMock.NewMockRepository(ctrl)
	return reportTestSetup{
		svc:    report.NewService(leaves, repo, zap.NewNop()),
		leaves: leaves,
		repo:   repo,
	}
}

func approvedLeave(name string) leave.LeaveWithUser {
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	email := strings.ToLower(name) + "@acme.co"
	team := "Platform"
	return leave.LeaveWithUser{
		Leave: leave.Leave{
			ID:               uuid.New(),
			UserID:           uuid.New(),
			LeaveType:        leave.TypeAnnual,
			FromDate:         from,
			ToDate:           from.AddDate(0, 0, 2),
			TotalDays:        3,
			Status:           leave.StatusApproved,
			TeamLeadApproval: leave.ApprovalApproved,
			AdminApproval:    leave.ApprovalApproved,
		},
		UserName:  &name,
		UserEmail: &email,
		TeamName:  &team,
	}
}

func TestReportService_ExportLeaves(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		s := setupReportTest(t)
		s.leaves.EXPECT().FindAll(ctx, leave.ListFilter{Status: "approved"}).
			Return([]leave.LeaveWithUser{approvedLeave("Alice"), approvedLeave("Bob")}, nil)

		buf, filename, err := s.svc.ExportLeaves(ctx, "approved")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(filename, "leaves_"))
		assert.True(t, strings.HasSuffix(filename, ".xlsx"))

		f, err := excelize.OpenReader(buf)
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Leaves")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "Employee", rows[0][0])
		assert.Equal(t, "Alice", rows[1][0])
		assert.Equal(t, "alice@acme.co", rows[1][1])
		assert.Equal(t, "Platform", rows[1][3])
		assert.Equal(t, "2026-03-02", rows[1][5])
		assert.Equal(t, "3", rows[1][7])
	})

	t.Run("negative unknown status", func(t *testing.T) {
		s := setupReportTest(t)
		_, _, err := s.svc.ExportLeaves(ctx, "archived")
		assert.ErrorIs(t, err, reporterrors.ErrInvalidStatus)
	})

	t.Run("negative repo failure", func(t *testing.T) {
		s := setupReportTest(t)
		s.leaves.EXPECT().FindAll(ctx, leave.ListFilter{}).Return(nil, errors.New("db down"))

		_, _, err := s.svc.ExportLeaves(ctx, "")
		assert.Error(t, err)
	})
}

func TestReportService_Calendar(t *testing.T) {
	ctx := context.Background()

	t.Run("employee sees own approved leaves", func(t *testing.T) {
		s := setupReportTest(t)
		actor := identity.Actor{ID: uuid.New(), Role: identity.RoleEmployee}
		l := approvedLeave("Alice")

		s.repo.EXPECT().ApprovedLeaves(ctx, report.CalendarScope{UserID: &actor.ID}).
			Return([]leave.LeaveWithUser{l}, nil)

		body, err := s.svc.Calendar(ctx, actor)
		require.NoError(t, err)

		cal, err := ics.ParseCalendar(strings.NewReader(body))
		require.NoError(t, err)
		events := cal.Events()
		require.Len(t, events, 1)

		ev := events[0]
		assert.Equal(t, l.ID.String()+"@elms", ev.Id())
		assert.Equal(t, "Alice: Annual leave", ev.GetProperty(ics.ComponentPropertySummary).Value)
		assert.Equal(t, "20260302", ev.GetProperty(ics.ComponentPropertyDtStart).Value)
		assert.Equal(t, "20260305", ev.GetProperty(ics.ComponentPropertyDtEnd).Value)
	})

	t.Run("team lead scope includes team", func(t *testing.T) {
		s := setupReportTest(t)
		teamID := uuid.New()
		actor := identity.Actor{ID: uuid.New(), Role: identity.RoleTeamLead, TeamID: &teamID}

		s.repo.EXPECT().ApprovedLeaves(ctx, report.CalendarScope{UserID: &actor.ID, TeamID: &teamID}).Return(nil, nil)

		body, err := s.svc.Calendar(ctx, actor)
		require.NoError(t, err)
		assert.Contains(t, body, "BEGIN:VCALENDAR")
	})

	t.Run("admin is unscoped", func(t *testing.T) {
		s := setupReportTest(t)
		actor := identity.Actor{ID: uuid.New(), Role: identity.RoleAdmin}

		s.repo.EXPECT().ApprovedLeaves(ctx, report.CalendarScope{}).Return(nil, nil)

		_, err := s.svc.Calendar(ctx, actor)
		assert.NoError(t, err)
	})
}
