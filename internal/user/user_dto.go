package user

import (
	"bytes"
	"encoding/json"
	"time"
)

type CreateUserRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	TeamID   *string `json:"teamId"`
	Phone    *string `json:"phone"`
}

// OptionalString distinguishes an absent field from an explicit null.
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(b, []byte("null")) {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

type UpdateUserRequest struct {
	Name               *string        `json:"name"`
	Phone              OptionalString `json:"phone"`
	Role               *string        `json:"role"`
	TeamID             OptionalString `json:"teamId"`
	LeaveBalance       *int           `json:"leaveBalance"`
	SickLeaveBalance   *int           `json:"sickLeaveBalance"`
	CasualLeaveBalance *int           `json:"casualLeaveBalance"`
}

type UpdateProfileRequest struct {
	Name   *string        `json:"name"`
	Phone  OptionalString `json:"phone"`
	Skills *[]string      `json:"skills"`
}

type UserResponse struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	Name               string    `json:"name"`
	Role               string    `json:"role"`
	TeamID             *string   `json:"team_id"`
	TeamName           *string   `json:"team_name"`
	LeaveBalance       int       `json:"leave_balance"`
	SickLeaveBalance   int       `json:"sick_leave_balance"`
	CasualLeaveBalance int       `json:"casual_leave_balance"`
	Skills             []string  `json:"skills"`
	Phone              *string   `json:"phone"`
	CreatedAt          time.Time `json:"created_at"`
}
