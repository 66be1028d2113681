package user

import "github.com/google/uuid"

// Patch is a typed partial update of a users row. Only non-nil fields are written.
type Patch struct {
	Name               *string
	Phone              *OptionalString
	Skills             *Skills
	Role               *string
	TeamID             *OptionalUUID
	LeaveBalance       *int
	SickLeaveBalance   *int
	CasualLeaveBalance *int
}

// OptionalUUID carries a team assignment; a nil Value clears it.
type OptionalUUID struct {
	Value *uuid.UUID
}

func (p Patch) IsEmpty() bool {
	return len(p.Columns()) == 0
}

// Columns maps the patch onto column names. The key set is fixed, never caller supplied.
func (p Patch) Columns() map[string]any {
	cols := make(map[string]any)
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Phone != nil {
		cols["phone"] = p.Phone.Value
	}
	if p.Skills != nil {
		cols["skills"] = *p.Skills
	}
	if p.Role != nil {
		cols["role"] = *p.Role
	}
	if p.TeamID != nil {
		cols["team_id"] = p.TeamID.Value
	}
	if p.LeaveBalance != nil {
		cols["leave_balance"] = *p.LeaveBalance
	}
	if p.SickLeaveBalance != nil {
		cols["sick_leave_balance"] = *p.SickLeaveBalance
	}
	if p.CasualLeaveBalance != nil {
		cols["casual_leave_balance"] = *p.CasualLeaveBalance
	}
	return cols
}
