// Package register implements the HTTP handler for account registration.
package register

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
	services "github.com/ahorraplan/finance-backend/internal/services/auth"
	"github.com/ahorraplan/finance-backend/internal/storage"
)

// Request carries the registration input. The password must be at least 6
// characters.
type Request struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Service is the business-logic contract of this handler.
type Service interface {
	Register(ctx context.Context, name, email, password string) (*models.PublicUser, error)
}

// Handler processes registration requests.
type Handler struct {
	log      *slog.Logger
	auth     Service
	validate *validator.Validate
}

// New creates a registration Handler.
func New(log *slog.Logger, auth Service) *Handler {
	return &Handler{
		log:      log,
		auth:     auth,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Register a new user
// @Description Creates an account with a hashed password credential. The email is normalized and must be unique.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body Request true "Registration data"
// @Success 200 {object} map[string]any "Public user view"
// @Failure 400 {object} response.ErrorResponse "Malformed JSON"
// @Failure 409 {object} response.ErrorResponse "Email already registered"
// @Failure 422 {object} response.ErrorResponse "Validation error"
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Router /api/auth/register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

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

	user, err := h.auth.Register(r.Context(), req.Name, req.Email, req.Password)
	switch {
	case errors.Is(err, storage.ErrEmailTaken):
		log.Error("registration conflict", sl.Err(err))
		w.WriteHeader(http.StatusConflict)
		render.JSON(w, r, response.Error("email already registered"))
		return
	case errors.Is(err, services.ErrEmptyName), errors.Is(err, services.ErrEmptyEmail):
		log.Error("registration rejected", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error(err.Error()))
		return
	case err != nil:
		log.Error("registration failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to register user"))
		return
	}

	log.Info("user registered", slog.String("id", user.ID))
	render.JSON(w, r, response.OKWithData(user))
}
