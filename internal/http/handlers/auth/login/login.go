// Package login implements the HTTP handler for authentication. The error
// message for an unknown email and for a wrong password is identical so the
// endpoint does not reveal whether an account exists.
package login

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
)

// Request carries the login input. Unlike registration, no length policy is
// applied to the password here: a short wrong password must still produce
// an authentication error, not a validation error.
type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Service is the business-logic contract of this handler.
type Service interface {
	Login(ctx context.Context, email, password string) (*models.PublicUser, string, error)
}

// Handler processes login requests.
type Handler struct {
	log      *slog.Logger
	auth     Service
	validate *validator.Validate
}

// New creates a login Handler.
func New(log *slog.Logger, auth Service) *Handler {
	return &Handler{
		log:      log,
		auth:     auth,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Authenticate a user
// @Description Verifies email and password and returns the public user view plus an access token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body Request true "Credentials"
// @Success 200 {object} map[string]any "Public user view with token"
// @Failure 400 {object} response.ErrorResponse "Malformed JSON"
// @Failure 401 {object} response.ErrorResponse "Invalid credentials"
// @Failure 422 {object} response.ErrorResponse "Validation error"
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Router /api/auth/login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

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

	user, token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		log.Error("login rejected", sl.Err(err))
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("invalid credentials"))
		return
	}
	if err != nil {
		log.Error("login failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to login"))
		return
	}

	log.Info("login success", slog.String("id", user.ID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"token": token,
	}))
}
