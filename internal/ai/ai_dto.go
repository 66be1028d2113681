package ai

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type AutofillRequest struct {
	Input string `json:"input"`
}

type AutofillData struct {
	LeaveType   string `json:"leaveType"`
	FromDate    string `json:"fromDate"`
	ToDate      string `json:"toDate"`
	Description string `json:"description"`
}

type AutofillResponse struct {
	Success bool          `json:"success"`
	Error   string        `json:"error,omitempty"`
	Data    *AutofillData `json:"data"`
}

type Recommendation struct {
	Suggestion     string   `json:"suggestion"`
	RiskLevel      string   `json:"riskLevel"`
	Reason         string   `json:"reason"`
	Considerations []string `json:"considerations"`
}

type RecommendResponse struct {
	Success        bool           `json:"success"`
	Recommendation Recommendation `json:"recommendation"`
}

type ConflictRequest struct {
	FromDate  string `json:"fromDate"`
	ToDate    string `json:"toDate"`
	LeaveType string `json:"leaveType"`
}

type Warning struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

type Conflicts struct {
	HasConflicts bool      `json:"hasConflicts"`
	Warnings     []Warning `json:"warnings"`
}

type ConflictResponse struct {
	Success   bool      `json:"success"`
	Conflicts Conflicts `json:"conflicts"`
}

const (
	chatFallback     = "I apologize, but I'm having trouble processing your request. Please try again or contact HR directly."
	autofillFallback = "Could not parse leave request. Please fill in the form manually."
)

func fallbackRecommendation() Recommendation {
	return Recommendation{
		Suggestion:     "review",
		RiskLevel:      "medium",
		Reason:         "AI analysis unavailable. Please review manually.",
		Considerations: []string{},
	}
}
