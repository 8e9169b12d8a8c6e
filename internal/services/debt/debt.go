// Package services contains the payoff arithmetic for fixed-payment debt
// plans. There is no persisted state.
package services

import (
	"errors"
	"fmt"

	"github.com/ahorraplan/finance-backend/internal/models"
)

// Input validation errors.
var (
	ErrInvalidAmount  = errors.New("payment amount must be greater than zero")
	ErrInvalidPeriods = errors.New("periods must be greater than zero")
	ErrInvalidCadence = errors.New("cadence must be semanal or mensual")
)

// DebtService computes debt payoff plans.
type DebtService struct{}

// NewDebtService creates a new DebtService.
func NewDebtService() *DebtService {
	return &DebtService{}
}

// Plan returns the total to pay for a fixed payment over the given number
// of periods: total = payment_amount * periods. Cadence defaults to
// mensual when empty.
func (s *DebtService) Plan(paymentAmount float64, periods int, cadence string) (*models.DebtPlan, error) {
	if paymentAmount <= 0 {
		return nil, ErrInvalidAmount
	}
	if periods <= 0 {
		return nil, ErrInvalidPeriods
	}
	switch cadence {
	case "":
		cadence = models.CadenceMonthly
	case models.CadenceWeekly, models.CadenceMonthly:
	default:
		return nil, ErrInvalidCadence
	}

	total := paymentAmount * float64(periods)
	return &models.DebtPlan{
		PaymentAmount: paymentAmount,
		Periods:       periods,
		Cadence:       cadence,
		TotalToPay:    total,
		Summary:       fmt.Sprintf("A pagar para cancelar: %.2f", total),
	}, nil
}
