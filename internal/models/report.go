package models

// DailyReport is the structured self-report a user submits once a day.
// It is turned into a prompt for the advice provider.
type DailyReport struct {
	SpendingControl   string  `json:"spending_control"`
	SavingsAction     string  `json:"savings_action"`
	DebtAction        string  `json:"debt_action"`
	UserName          string  `json:"user_name"`
	PlannedInvestment float64 `json:"planned_investment"`
	SavedThisMonth    float64 `json:"saved_this_month"`
	PendingDebtTotal  float64 `json:"pending_debt_total"`
	Currency          string  `json:"currency"`
}

// SavingsGap returns how much is still missing to reach the monthly
// investment goal, never negative.
func (r DailyReport) SavingsGap() float64 {
	gap := r.PlannedInvestment - r.SavedThisMonth
	if gap < 0 {
		return 0
	}
	return gap
}
