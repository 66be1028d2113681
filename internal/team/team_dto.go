package team

type CreateTeamRequest struct {
	Name string `json:"name"`
}

type TeamResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
