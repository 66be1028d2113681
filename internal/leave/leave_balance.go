package leave

// BalanceColumn names a users balance column. Only the constants below are valid.
type BalanceColumn string

const (
	BalanceAnnual BalanceColumn = "leave_balance"
	BalanceSick   BalanceColumn = "sick_leave_balance"
	BalanceCasual BalanceColumn = "casual_leave_balance"
)

// BalanceColumnFor selects the balance charged by an approved leave.
// Unpaid leave charges nothing.
func BalanceColumnFor(leaveType string) (BalanceColumn, bool) {
	switch leaveType {
	case TypeUnpaid:
		return "", false
	case TypeSick:
		return BalanceSick, true
	case TypeCasual:
		return BalanceCasual, true
	default:
		return BalanceAnnual, true
	}
}

func (c BalanceColumn) Valid() bool {
	switch c {
	case BalanceAnnual, BalanceSick, BalanceCasual:
		return true
	}
	return false
}
