package dashboard

import "github.com/Webdevrishabh/ELMS/internal/leave"

const (
	employeeRecentLimit = 5
	adminRecentLimit    = 10
)

// Balances is the remaining leave of one user, in days.
type Balances struct {
	Annual int `json:"annual"`
	Sick   int `json:"sick"`
	Casual int `json:"casual"`
}

// LeaveCounts is the row shape of every status aggregate query.
type LeaveCounts struct {
	Total    int64
	Pending  int64
	Approved int64
	Rejected int64
}

type UserCounts struct {
	Total     int64 `json:"total"`
	Employees int64 `json:"employees"`
	TeamLeads int64 `json:"teamLeads"`
}

type EmployeeStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

type TeamStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
}

type OwnStats struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
}

type SystemStats struct {
	TotalLeaves int64 `json:"totalLeaves"`
	Pending     int64 `json:"pending"`
	Approved    int64 `json:"approved"`
	Rejected    int64 `json:"rejected"`
}

type EmployeeDashboard struct {
	Role         string                `json:"role"`
	Balances     Balances              `json:"balances"`
	Stats        EmployeeStats         `json:"stats"`
	RecentLeaves []leave.LeaveResponse `json:"recentLeaves"`
}

type TeamLeadDashboard struct {
	Role              string                `json:"role"`
	Balances          Balances              `json:"balances"`
	PendingTeamLeaves []leave.LeaveResponse `json:"pendingTeamLeaves"`
	TeamStats         TeamStats             `json:"teamStats"`
	OwnStats          OwnStats              `json:"ownStats"`
}

type AdminDashboard struct {
	Role                 string                `json:"role"`
	SystemStats          SystemStats           `json:"systemStats"`
	PendingAdminApproval []leave.LeaveResponse `json:"pendingAdminApproval"`
	UserCounts           UserCounts            `json:"userCounts"`
	RecentLeaves         []leave.LeaveResponse `json:"recentLeaves"`
}
