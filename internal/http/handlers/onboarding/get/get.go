// Package get implements the HTTP handler that returns the onboarding
// answers of a user. Absence is an empty result, not an error.
package get

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ahorraplan/finance-backend/internal/http/response"
	"github.com/ahorraplan/finance-backend/internal/lib/sl"
	"github.com/ahorraplan/finance-backend/internal/models"
)

// Service is the business-logic contract of this handler.
type Service interface {
	GetOnboarding(ctx context.Context, userUID string) (*models.OnboardingAnswers, error)
}

// Handler processes onboarding read requests.
type Handler struct {
	log  *slog.Logger
	auth Service
}

// New creates a get Handler.
func New(log *slog.Logger, auth Service) *Handler {
	return &Handler{
		log:  log,
		auth: auth,
	}
}

// ServeHTTP godoc
// @Summary Read onboarding answers
// @Description Returns the stored onboarding record of a user, or an empty object when none exists.
// @Tags Onboarding
// @Produce json
// @Param user_id query string true "User id"
// @Success 200 {object} map[string]any "Onboarding answers or empty object"
// @Failure 422 {object} response.ErrorResponse "Missing user_id"
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Router /api/auth/onboarding [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.onboarding.get"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		log.Error("missing user_id query parameter")
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("field user_id is a required field"))
		return
	}

	answers, err := h.auth.GetOnboarding(r.Context(), userID)
	if err != nil {
		log.Error("failed to read onboarding", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read onboarding"))
		return
	}

	if answers == nil {
		render.JSON(w, r, response.OKWithData(map[string]any{}))
		return
	}
	render.JSON(w, r, response.OKWithData(answers))
}
