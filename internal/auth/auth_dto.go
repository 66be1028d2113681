package auth

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type AuthUser struct {
	ID     string  `json:"id"`
	Email  string  `json:"email"`
	Name   string  `json:"name"`
	Role   string  `json:"role"`
	TeamID *string `json:"teamId"`
}

type LoginResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    AuthUser `json:"user"`
}

func toAuthUser(c *Credential) AuthUser {
	u := AuthUser{
		ID:    c.ID.String(),
		Email: c.Email,
		Name:  c.Name,
		Role:  c.Role,
	}
	if c.TeamID != nil {
		teamID := c.TeamID.String()
		u.TeamID = &teamID
	}
	return u
}
