package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var fencePattern = regexp.MustCompile("```(?:json)?\n?")

// stripFences removes markdown code fences around a model reply.
func stripFences(s string) string {
	return strings.TrimSpace(fencePattern.ReplaceAllString(strings.TrimSpace(s), ""))
}

// decodeReply strips fences and unmarshals the reply into out.
func decodeReply(reply string, out any) error {
	if err := json.Unmarshal([]byte(stripFences(reply)), out); err != nil {
		return fmt.Errorf("decode ai reply: %w", err)
	}
	return nil
}

func chatPrompt(c ChatContext, message string) string {
	return fmt.Sprintf(`You are a helpful Leave Management System assistant. Answer questions about leave policies, balances, and status.

CONTEXT (User's leave data):
- Annual Leave Balance: %d days
- Sick Leave Balance: %d days
- Casual Leave Balance: %d days
- Pending Leaves: %d
- Approved Leaves: %d

COMPANY POLICY:
- Annual leave: 20 days per year
- Sick leave: 10 days per year
- Casual leave: 5 days per year
- Leave requests need Team Lead + Admin approval
- Apply leaves at least 3 days in advance for planned leaves
- Sick leave can be applied on same day with medical certificate

USER MESSAGE: %s

Provide a helpful, concise response. If asked about specific dates or calculations, be accurate. If unsure, say so.`,
		c.Annual, c.Sick, c.Casual, c.Pending, c.Approved, message)
}

func autofillPrompt(today, input string) string {
	return fmt.Sprintf(`Parse the following leave request and extract structured data.

TODAY'S DATE: %s

USER INPUT: %q

Extract the following fields and respond ONLY with a valid JSON object (no markdown, no explanation):
{
    "leaveType": "annual" | "sick" | "casual" | "unpaid" | "maternity" | "paternity",
    "fromDate": "YYYY-MM-DD",
    "toDate": "YYYY-MM-DD",
    "description": "Brief description"
}

Rules:
- If "tomorrow" is mentioned, calculate the date
- If only one day mentioned, fromDate = toDate
- Default leave type is "casual" if unclear
- Sick leave for illness/fever/doctor
- Annual leave for vacation/holiday`, today, input)
}

func recommendPrompt(l map[string]any, team TeamContext) string {
	reason, _ := l["description"].(string)
	if reason == "" {
		reason = "Not provided"
	}
	balance := "Unknown"
	if team.Balance != nil {
		balance = fmt.Sprintf("%d", *team.Balance)
	}

	return fmt.Sprintf(`As an HR AI assistant, analyze this leave request and provide a recommendation.

LEAVE REQUEST:
- Type: %v
- From: %v
- To: %v
- Duration: %v days
- Reason: %s

TEAM CONTEXT:
- Team members on leave during this period: %d
- Total team size: %d
- Employee's remaining balance: %s

Analyze and respond ONLY with a valid JSON object:
{
    "suggestion": "approve" | "review" | "reject",
    "riskLevel": "low" | "medium" | "high",
    "reason": "Brief explanation",
    "considerations": ["List", "of", "factors"]
}

NOTE: This is advisory only. A human manager will make the final decision.`,
		l["leave_type"], l["from_date"], l["to_date"], l["total_days"], reason,
		team.Overlapping, team.TeamSize, balance)
}

func conflictPrompt(req ConflictRequest, existing []byte) string {
	return fmt.Sprintf(`Analyze potential conflicts for this leave request.

NEW LEAVE REQUEST:
- From: %s
- To: %s
- Type: %s

EXISTING TEAM LEAVES DURING THIS PERIOD:
%s

Identify conflicts and respond ONLY with valid JSON:
{
    "hasConflicts": true | false,
    "warnings": [
        {
            "type": "overlap" | "team_coverage" | "skill_gap",
            "severity": "low" | "medium" | "high",
            "message": "Description of the issue"
        }
    ]
}`, req.FromDate, req.ToDate, req.LeaveType, existing)
}
