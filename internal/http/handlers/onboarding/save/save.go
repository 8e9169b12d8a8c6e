// Package save implements the HTTP handler that stores the onboarding
// answers of a user. Saving twice replaces the whole record.
package save

import (
	"context"
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
	"github.com/ahorraplan/finance-backend/internal/storage"
)

// Request carries the onboarding answers. The attribute fields are
// free-form strings.
type Request struct {
	UserID         string `json:"user_id" validate:"required,uuid"`
	Meta           string `json:"meta"`
	Ritmo          string `json:"ritmo"`
	Prioridad      string `json:"prioridad"`
	Acompanamiento string `json:"acompanamiento"`
	MonedaBase     string `json:"moneda_base"`
}

// Service is the business-logic contract of this handler.
type Service interface {
	SaveOnboarding(ctx context.Context, answers models.OnboardingAnswers) error
}

// Handler processes onboarding save requests.
type Handler struct {
	log      *slog.Logger
	auth     Service
	validate *validator.Validate
}

// New creates a save Handler.
func New(log *slog.Logger, auth Service) *Handler {
	return &Handler{
		log:      log,
		auth:     auth,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Save onboarding answers
// @Description Upserts the onboarding record of a user. The user must exist.
// @Tags Onboarding
// @Accept json
// @Produce json
// @Param request body Request true "Onboarding answers"
// @Success 200 {object} map[string]any "success flag"
// @Failure 400 {object} response.ErrorResponse "Malformed JSON"
// @Failure 404 {object} response.ErrorResponse "Unknown user"
// @Failure 422 {object} response.ErrorResponse "Validation error"
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Router /api/auth/onboarding [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.onboarding.save"

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

	err := h.auth.SaveOnboarding(r.Context(), models.OnboardingAnswers{
		UserUID:        req.UserID,
		Meta:           req.Meta,
		Ritmo:          req.Ritmo,
		Prioridad:      req.Prioridad,
		Acompanamiento: req.Acompanamiento,
		MonedaBase:     req.MonedaBase,
	})
	if errors.Is(err, storage.ErrUserNotFound) {
		log.Error("onboarding save for unknown user", sl.Err(err))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("user not found"))
		return
	}
	if err != nil {
		log.Error("failed to save onboarding", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to save onboarding"))
		return
	}

	log.Info("onboarding saved", slog.String("user_id", req.UserID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"success": true,
	}))
}
