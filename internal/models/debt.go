package models

// Cadence values accepted by the debt planner.
const (
	CadenceWeekly  = "semanal"
	CadenceMonthly = "mensual"
)

// DebtPlan is the result of the payoff arithmetic: fixed payment times the
// number of periods, plus a human-readable summary.
type DebtPlan struct {
	PaymentAmount float64 `json:"payment_amount"`
	Periods       int     `json:"periods"`
	Cadence       string  `json:"cadence"`
	TotalToPay    float64 `json:"total_to_pay"`
	Summary       string  `json:"summary"`
}
