// Package daily implements the HTTP handler for the daily recommendation:
// a structured self-report turned into a prompt for the provider.
package daily

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/ahorraplan/finance-backend/internal/http/response"
	"github.com/ahorraplan/finance-backend/internal/lib/sl"
	"github.com/ahorraplan/finance-backend/internal/models"
)

// Request carries the daily report. The three action fields are required;
// name and currency fall back to "Usuario" and "COP".
type Request struct {
	SpendingControl   string  `json:"spending_control" validate:"required"`
	SavingsAction     string  `json:"savings_action" validate:"required"`
	DebtAction        string  `json:"debt_action" validate:"required"`
	UserName          string  `json:"user_name"`
	PlannedInvestment float64 `json:"planned_investment" validate:"omitempty,gte=0"`
	SavedThisMonth    float64 `json:"saved_this_month" validate:"omitempty,gte=0"`
	PendingDebtTotal  float64 `json:"pending_debt_total" validate:"omitempty,gte=0"`
	Currency          string  `json:"currency"`
}

// Service is the business-logic contract of this handler.
type Service interface {
	DailyRecommendation(ctx context.Context, report models.DailyReport) (string, error)
	Model() string
}

// Handler processes daily recommendation requests.
type Handler struct {
	log      *slog.Logger
	advice   Service
	validate *validator.Validate
}

// New creates a daily Handler.
func New(log *slog.Logger, advice Service) *Handler {
	return &Handler{
		log:      log,
		advice:   advice,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Generate the daily recommendation
// @Description Renders the structured report into a prompt and returns the provider's recommendation.
// @Tags AI
// @Accept json
// @Produce json
// @Param request body Request true "Daily report"
// @Success 200 {object} map[string]any "Recommendation"
// @Failure 400 {object} response.ErrorResponse "Malformed JSON"
// @Failure 422 {object} response.ErrorResponse "Validation error"
// @Failure 502 {object} response.ErrorResponse "Provider failure"
// @Router /api/ai/daily-recommendation [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ai.daily"

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

	report := models.DailyReport{
		SpendingControl:   req.SpendingControl,
		SavingsAction:     req.SavingsAction,
		DebtAction:        req.DebtAction,
		UserName:          req.UserName,
		PlannedInvestment: req.PlannedInvestment,
		SavedThisMonth:    req.SavedThisMonth,
		PendingDebtTotal:  req.PendingDebtTotal,
		Currency:          req.Currency,
	}

	recommendation, err := h.advice.DailyRecommendation(r.Context(), report)
	if err != nil {
		log.Error("provider call failed", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("failed to get advice from provider"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"provider":       "openai",
		"model":          h.advice.Model(),
		"recommendation": recommendation,
		"input":          report,
	}))
}
