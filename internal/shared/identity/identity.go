package identity

import "github.com/google/uuid"

const (
	RoleEmployee = "employee"
	RoleTeamLead = "team_lead"
	RoleAdmin    = "admin"
)

// ValidRole reports whether role is one of the three system roles.
func ValidRole(role string) bool {
	switch role {
	case RoleEmployee, RoleTeamLead, RoleAdmin:
		return true
	}
	return false
}

// Actor is the authenticated caller of a request.
type Actor struct {
	ID     uuid.UUID
	Email  string
	Role   string
	TeamID *uuid.UUID
}

func (a Actor) IsAdmin() bool    { return a.Role == RoleAdmin }
func (a Actor) IsTeamLead() bool { return a.Role == RoleTeamLead }
func (a Actor) IsEmployee() bool { return a.Role == RoleEmployee }

// InTeam reports whether the actor belongs to team.
func (a Actor) InTeam(team *uuid.UUID) bool {
	return a.TeamID != nil && team != nil && *a.TeamID == *team
}
