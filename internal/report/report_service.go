package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/Webdevrishabh/ELMS/internal/leave"
	reporterrors "github.com/Webdevrishabh/ELMS/internal/report/errors"
	"github.com/Webdevrishabh/ELMS/internal/shared/contextutil"
	"github.com/Webdevrishabh/ELMS/internal/shared/identity"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	// ExportLeaves renders every leave, optionally filtered by status, as an XLSX workbook.
	ExportLeaves(ctx context.Context, status string) (*bytes.Buffer, string, error)
	// Calendar renders the approved leaves visible to actor as an iCalendar feed.
	Calendar(ctx context.Context, actor identity.Actor) (string, error)
}

type service struct {
	leaves leave.Repository
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(leaves leave.Repository, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{leaves: leaves, repo: repo, logger: l, now: time.Now}
}

func (s *service) ExportLeaves(ctx context.Context, status string) (*bytes.Buffer, string, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	switch status {
	case "", "all", leave.StatusPending, leave.StatusApproved, leave.StatusRejected:
	default:
		return nil, "", reporterrors.ErrInvalidStatus
	}

	rows, err := s.leaves.FindAll(ctx, leave.ListFilter{Status: status})
	if err != nil {
		l.Error("load leaves for export failed", zap.Error(err))
		return nil, "", err
	}

	buf, err := buildLeavesWorkbook(rows)
	if err != nil {
		l.Error("write leaves workbook failed", zap.Error(err))
		return nil, "", reporterrors.ErrGenerateFailed
	}

	l.Info("export leaves success", zap.Int("rows", len(rows)), zap.String("status", status))
	return buf, fmt.Sprintf("leaves_%s.xlsx", s.now().UTC().Format(dateLayout)), nil
}

func (s *service) Calendar(ctx context.Context, actor identity.Actor) (string, error) {
	var scope CalendarScope
	switch {
	case actor.IsAdmin():
	case actor.IsTeamLead():
		scope = CalendarScope{UserID: &actor.ID, TeamID: actor.TeamID}
	default:
		scope = CalendarScope{UserID: &actor.ID}
	}

	rows, err := s.repo.ApprovedLeaves(ctx, scope)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("load calendar leaves failed", zap.Error(err))
		return "", err
	}

	return buildCalendar(rows, s.now().UTC()), nil
}
