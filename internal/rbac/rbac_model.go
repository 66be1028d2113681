package rbac

import "github.com/Webdevrishabh/ELMS/internal/shared/identity"

const modelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// Resources and actions referenced by route guards.
const (
	ResourceLeave        = "leave"
	ResourceDashboard    = "dashboard"
	ResourceNotification = "notification"
	ResourceAI           = "ai"
	ResourceProfile      = "profile"
	ResourceTeam         = "team"
	ResourceUser         = "user"
	ResourceReport       = "report"
	ResourceRBAC         = "rbac"

	ActionCreate    = "create"
	ActionRead      = "read"
	ActionUpdate    = "update"
	ActionReadTeam  = "read_team"
	ActionReadAll   = "read_all"
	ActionDecide    = "decide"
	ActionManage    = "manage"
	ActionChat      = "chat"
	ActionAutofill  = "autofill"
	ActionConflicts = "conflicts"
	ActionRecommend = "recommend"
	ActionCalendar  = "calendar"
	ActionExport    = "export"
)

// rolePolicies is the static permission table. Roles inherit through roleInheritance.
var rolePolicies = [][]string{
	{identity.RoleEmployee, ResourceLeave, ActionCreate},
	{identity.RoleEmployee, ResourceLeave, ActionRead},
	{identity.RoleEmployee, ResourceDashboard, ActionRead},
	{identity.RoleEmployee, ResourceNotification, ActionRead},
	{identity.RoleEmployee, ResourceNotification, ActionUpdate},
	{identity.RoleEmployee, ResourceAI, ActionChat},
	{identity.RoleEmployee, ResourceAI, ActionAutofill},
	{identity.RoleEmployee, ResourceAI, ActionConflicts},
	{identity.RoleEmployee, ResourceProfile, ActionRead},
	{identity.RoleEmployee, ResourceProfile, ActionUpdate},
	{identity.RoleEmployee, ResourceTeam, ActionRead},
	{identity.RoleEmployee, ResourceUser, ActionUpdate},
	{identity.RoleEmployee, ResourceReport, ActionCalendar},
	{identity.RoleEmployee, ResourceRBAC, ActionRead},

	{identity.RoleTeamLead, ResourceLeave, ActionReadTeam},
	{identity.RoleTeamLead, ResourceLeave, ActionDecide},
	{identity.RoleTeamLead, ResourceAI, ActionRecommend},

	{identity.RoleAdmin, ResourceLeave, ActionReadAll},
	{identity.RoleAdmin, ResourceUser, ActionManage},
	{identity.RoleAdmin, ResourceTeam, ActionCreate},
	{identity.RoleAdmin, ResourceReport, ActionExport},
}

var roleInheritance = [][]string{
	{identity.RoleTeamLead, identity.RoleEmployee},
	{identity.RoleAdmin, identity.RoleTeamLead},
}
