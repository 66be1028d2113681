package ai

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	aierrors "github.com/Webdevrishabh/ELMS/internal/ai/errors"
	"github.com/Webdevrishabh/ELMS/internal/leave"
	"github.com/Webdevrishabh/ELMS/internal/shared/contextutil"
	"github.com/Webdevrishabh/ELMS/internal/shared/identity"
	"github.com/Webdevrishabh/ELMS/internal/shared/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=ai_service.go -destination=mock/ai_service_mock.go -package=mock
type Service interface {
	Chat(ctx context.Context, actor identity.Actor, req ChatRequest) (ChatResponse, error)
	Autofill(ctx context.Context, actor identity.Actor, req AutofillRequest) (AutofillResponse, error)
	Recommend(ctx context.Context, actor identity.Actor, leaveID string) (RecommendResponse, error)
	Conflicts(ctx context.Context, actor identity.Actor, req ConflictRequest) (ConflictResponse, error)
}

type service struct {
	repo      Repository
	completer Completer
	metrics   *metrics.Registry
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(repo Repository, completer Completer, m *metrics.Registry, logger ...*zap.Logger) Service {
	l := zap.L().Named("ai.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ai.service")
	}
	return &service{
		repo:      repo,
		completer: completer,
		metrics:   m,
		logger:    l,
		now:       time.Now,
	}
}

func (s *service) Chat(ctx context.Context, actor identity.Actor, req ChatRequest) (ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return ChatResponse{}, aierrors.ErrMessageRequired
	}

	fallback := ChatResponse{Success: false, Message: chatFallback}

	cc, err := s.repo.ChatContext(ctx, actor.ID)
	if err != nil {
		s.fail(ctx, ActionChat, "load chat context failed", err)
		return fallback, nil
	}

	reply, err := s.completer.Complete(ctx, chatPrompt(cc, MaskText(message)))
	if err != nil {
		s.fail(ctx, ActionChat, "ai chat failed", err)
		return fallback, nil
	}

	s.logCall(ctx, actor.ID, ActionChat, MaskText(message), reply)
	s.metrics.AICall(ActionChat, "ok")
	return ChatResponse{Success: true, Message: reply}, nil
}

func (s *service) Autofill(ctx context.Context, actor identity.Actor, req AutofillRequest) (AutofillResponse, error) {
	input := strings.TrimSpace(req.Input)
	if input == "" {
		return AutofillResponse{}, aierrors.ErrInputRequired
	}

	fallback := AutofillResponse{Success: false, Error: autofillFallback}
	masked := MaskText(input)

	reply, err := s.completer.Complete(ctx, autofillPrompt(s.now().UTC().Format(dateLayout), masked))
	if err != nil {
		s.fail(ctx, ActionAutofill, "ai autofill failed", err)
		return fallback, nil
	}

	var data AutofillData
	if err := decodeReply(reply, &data); err != nil {
		s.fail(ctx, ActionAutofill, "ai autofill reply unparsable", err)
		return fallback, nil
	}
	if !leave.ValidLeaveType(data.LeaveType) {
		data.LeaveType = leave.TypeCasual
	}

	encoded, _ := json.Marshal(data)
	s.logCall(ctx, actor.ID, ActionAutofill, masked, string(encoded))
	s.metrics.AICall(ActionAutofill, "ok")
	return AutofillResponse{Success: true, Data: &data}, nil
}

func (s *service) Recommend(ctx context.Context, actor identity.Actor, leaveID string) (RecommendResponse, error) {
	id, err := uuid.Parse(leaveID)
	if err != nil {
		return RecommendResponse{}, aierrors.ErrLeaveNotFound
	}

	fallback := RecommendResponse{Success: false, Recommendation: fallbackRecommendation()}

	lc, err := s.repo.FindLeaveContext(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RecommendResponse{}, aierrors.ErrLeaveNotFound
		}
		s.fail(ctx, ActionRecommendation, "load leave for recommendation failed", err)
		return fallback, nil
	}

	team := TeamContext{Balance: lc.LeaveBalance}
	if lc.TeamID != nil {
		if team.Overlapping, err = s.repo.TeamOverlapCount(ctx, *lc.TeamID, lc.FromDate, lc.ToDate); err == nil {
			team.TeamSize, err = s.repo.TeamSize(ctx, *lc.TeamID)
		}
		if err != nil {
			s.fail(ctx, ActionRecommendation, "load team context failed", err)
			return fallback, nil
		}
	}

	maskedLeave, _ := MaskValue(leaveFields(lc.Leave)).(map[string]any)

	reply, err := s.completer.Complete(ctx, recommendPrompt(maskedLeave, team))
	if err != nil {
		s.fail(ctx, ActionRecommendation, "ai recommendation failed", err)
		return fallback, nil
	}

	var rec Recommendation
	if err := decodeReply(reply, &rec); err != nil {
		s.fail(ctx, ActionRecommendation, "ai recommendation reply unparsable", err)
		return fallback, nil
	}
	if rec.Considerations == nil {
		rec.Considerations = []string{}
	}

	request, _ := json.Marshal(maskedLeave)
	response, _ := json.Marshal(rec)
	s.logCall(ctx, actor.ID, ActionRecommendation, string(request), string(response))
	s.metrics.AICall(ActionRecommendation, "ok")
	return RecommendResponse{Success: true, Recommendation: rec}, nil
}

func (s *service) Conflicts(ctx context.Context, actor identity.Actor, req ConflictRequest) (ConflictResponse, error) {
	if strings.TrimSpace(req.FromDate) == "" || strings.TrimSpace(req.ToDate) == "" {
		return ConflictResponse{}, aierrors.ErrDatesRequired
	}
	from, err := leave.ParseDate(req.FromDate)
	if err != nil {
		return ConflictResponse{}, err
	}
	to, err := leave.ParseDate(req.ToDate)
	if err != nil {
		return ConflictResponse{}, err
	}

	fallback := ConflictResponse{Success: false, Conflicts: Conflicts{Warnings: []Warning{}}}
	masked := ConflictRequest{
		FromDate:  req.FromDate,
		ToDate:    req.ToDate,
		LeaveType: MaskText(req.LeaveType),
	}

	teamID, err := s.repo.UserTeamID(ctx, actor.ID)
	if err != nil {
		s.fail(ctx, ActionConflictDetection, "load caller team failed", err)
		return fallback, nil
	}

	existing := []map[string]any{}
	if teamID != nil {
		rows, err := s.repo.TeammateLeaves(ctx, *teamID, actor.ID, from, to)
		if err != nil {
			s.fail(ctx, ActionConflictDetection, "load teammate leaves failed", err)
			return fallback, nil
		}
		for _, r := range rows {
			existing = append(existing, map[string]any{
				"from": r.FromDate.Format(dateLayout),
				"to":   r.ToDate.Format(dateLayout),
				"type": r.LeaveType,
			})
		}
	}
	existingJSON, _ := json.Marshal(MaskValue(existing))

	reply, err := s.completer.Complete(ctx, conflictPrompt(masked, existingJSON))
	if err != nil {
		s.fail(ctx, ActionConflictDetection, "ai conflict detection failed", err)
		return fallback, nil
	}

	var conflicts Conflicts
	if err := decodeReply(reply, &conflicts); err != nil {
		s.fail(ctx, ActionConflictDetection, "ai conflict reply unparsable", err)
		return fallback, nil
	}
	if conflicts.Warnings == nil {
		conflicts.Warnings = []Warning{}
	}

	request, _ := json.Marshal(masked)
	response, _ := json.Marshal(conflicts)
	s.logCall(ctx, actor.ID, ActionConflictDetection, string(request), string(response))
	s.metrics.AICall(ActionConflictDetection, "ok")
	return ConflictResponse{Success: true, Conflicts: conflicts}, nil
}

// fail records a degraded call. A disabled completer is not an error.
func (s *service) fail(ctx context.Context, action, msg string, err error) {
	if errors.Is(err, ErrCompleterDisabled) {
		s.metrics.AICall(action, "disabled")
		return
	}
	contextutil.GetLogger(ctx, s.logger).Warn(msg, zap.String("action", action), zap.Error(err))
	s.metrics.AICall(action, "fallback")
}

func (s *service) logCall(ctx context.Context, userID uuid.UUID, action, request, response string) {
	entry := &Log{
		ID:            uuid.New(),
		UserID:        userID,
		ActionType:    action,
		RequestMasked: request,
		ResponseData:  response,
	}
	if err := s.repo.LogCall(ctx, entry); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("write ai log failed", zap.String("action", action), zap.Error(err))
	}
}

func leaveFields(l leave.Leave) map[string]any {
	m := map[string]any{
		"leave_type": l.LeaveType,
		"from_date":  l.FromDate.Format(dateLayout),
		"to_date":    l.ToDate.Format(dateLayout),
		"total_days": l.TotalDays,
	}
	if l.Description != nil {
		m["description"] = *l.Description
	}
	return m
}
