// Package plan implements the HTTP handler for the debt payoff calculation.
package plan

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/ahorraplan/finance-backend/internal/http/response"
	"github.com/ahorraplan/finance-backend/internal/lib/sl"
	"github.com/ahorraplan/finance-backend/internal/models"
	services "github.com/ahorraplan/finance-backend/internal/services/debt"
)

// Request carries the plan input: a positive fixed payment, a positive
// number of periods and an optional cadence (defaults to mensual).
type Request struct {
	PaymentAmount float64 `json:"payment_amount" validate:"required,gt=0"`
	Periods       int     `json:"periods" validate:"required,gt=0"`
	Cadence       string  `json:"cadence" validate:"omitempty,oneof=semanal mensual"`
}

// Service is the business-logic contract of this handler.
type Service interface {
	Plan(paymentAmount float64, periods int, cadence string) (*models.DebtPlan, error)
}

// Handler processes debt plan requests.
type Handler struct {
	log      *slog.Logger
	debt     Service
	validate *validator.Validate
}

// New creates a plan Handler.
func New(log *slog.Logger, debt Service) *Handler {
	return &Handler{
		log:      log,
		debt:     debt,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Compute a debt payoff plan
// @Description Returns total_to_pay = payment_amount * periods plus a summary string.
// @Tags Debts
// @Accept json
// @Produce json
// @Param request body Request true "Plan input"
// @Success 200 {object} map[string]any "Debt plan"
// @Failure 400 {object} response.ErrorResponse "Malformed JSON"
// @Failure 422 {object} response.ErrorResponse "Validation error"
// @Router /api/debts/plan [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.debt.plan"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	debtPlan, err := h.debt.Plan(req.PaymentAmount, req.Periods, req.Cadence)
	if err != nil {
		// The validator already rejects these, but the service guards too.
		if errors.Is(err, services.ErrInvalidAmount) ||
			errors.Is(err, services.ErrInvalidPeriods) ||
			errors.Is(err, services.ErrInvalidCadence) {
			log.Error("plan input rejected", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}
		log.Error("failed to compute plan", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to compute plan"))
		return
	}

	render.JSON(w, r, response.OKWithData(debtPlan))
}
