package leaveerrors

import (
	"net/http"

	"github.com/Webdevrishabh/ELMS/internal/shared/apperror"
)

var (
	ErrMissingFields = apperror.New(
		apperror.CodeInvalidInput,
		"Leave type, from date, and to date are required",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid leave type",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"From date cannot be after to date",
		http.StatusBadRequest,
	)
	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"Leave overlaps an existing pending or approved leave",
		http.StatusConflict,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave not found",
		http.StatusNotFound,
	)

	ErrAlreadyProcessedByTeamLead = apperror.New(
		apperror.CodeInvalidState,
		"Leave already processed by team lead",
		http.StatusBadRequest,
	)
	ErrAlreadyProcessed = apperror.New(
		apperror.CodeInvalidState,
		"Leave already processed",
		http.StatusBadRequest,
	)
	ErrAlreadyProcessedByAdmin = apperror.New(
		apperror.CodeInvalidState,
		"Leave already processed by admin",
		http.StatusBadRequest,
	)
	ErrNeedsTeamLeadApproval = apperror.New(
		apperror.CodeInvalidState,
		"Leave needs Team Lead approval first",
		http.StatusBadRequest,
	)

	ErrNotInTeam = apperror.New(
		apperror.CodeForbidden,
		"You can only act on leaves of your own team members",
		http.StatusForbidden,
	)
	ErrOwnLeave = apperror.New(
		apperror.CodeForbidden,
		"You cannot approve or reject your own leave",
		http.StatusForbidden,
	)
)
