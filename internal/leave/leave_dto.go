package leave

import "time"

type ApplyLeaveRequest struct {
	LeaveType   string  `json:"leaveType"`
	FromDate    string  `json:"fromDate"`
	ToDate      string  `json:"toDate"`
	Description *string `json:"description"`
}

type ApplyLeaveResponse struct {
	LeaveID   string `json:"leaveId"`
	TotalDays int    `json:"totalDays"`
}

type DecisionRequest struct {
	Comment string `json:"comment"`
}

type LeaveResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	LeaveType        string    `json:"leave_type"`
	FromDate         string    `json:"from_date"`
	ToDate           string    `json:"to_date"`
	TotalDays        int       `json:"total_days"`
	Description      *string   `json:"description"`
	Status           string    `json:"status"`
	TeamLeadApproval string    `json:"team_lead_approval"`
	AdminApproval    string    `json:"admin_approval"`
	TeamLeadComment  *string   `json:"team_lead_comment"`
	AdminComment     *string   `json:"admin_comment"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	UserName  *string `json:"user_name,omitempty"`
	UserEmail *string `json:"user_email,omitempty"`
	UserRole  *string `json:"user_role,omitempty"`
	TeamName  *string `json:"team_name,omitempty"`
}

func ToResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:               l.ID.String(),
		UserID:           l.UserID.String(),
		LeaveType:        l.LeaveType,
		FromDate:         l.FromDate.Format(dateLayout),
		ToDate:           l.ToDate.Format(dateLayout),
		TotalDays:        l.TotalDays,
		Description:      l.Description,
		Status:           l.Status,
		TeamLeadApproval: l.TeamLeadApproval,
		AdminApproval:    l.AdminApproval,
		TeamLeadComment:  l.TeamLeadComment,
		AdminComment:     l.AdminComment,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

func JoinedToResponse(l LeaveWithUser) LeaveResponse {
	resp := ToResponse(l.Leave)
	resp.UserName = l.UserName
	resp.UserEmail = l.UserEmail
	resp.UserRole = l.UserRole
	resp.TeamName = l.TeamName
	return resp
}

func ToListResponse(leaves []Leave) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = ToResponse(l)
	}
	return resp
}

func JoinedToListResponse(leaves []LeaveWithUser) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = JoinedToResponse(l)
	}
	return resp
}
