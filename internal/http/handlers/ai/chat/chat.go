// Package chat implements the HTTP handler that forwards a free-text
// message to the completion provider and returns its answer verbatim.
package chat

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
)

// Request carries the chat message.
type Request struct {
	Message string `json:"message" validate:"required"`
}

// Service is the business-logic contract of this handler.
type Service interface {
	Chat(ctx context.Context, message string) (string, error)
	Model() string
}

// Handler processes AI chat requests.
type Handler struct {
	log      *slog.Logger
	advice   Service
	validate *validator.Validate
}

// New creates a chat Handler.
func New(log *slog.Logger, advice Service) *Handler {
	return &Handler{
		log:      log,
		advice:   advice,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Chat with the financial assistant
// @Description Forwards the message to the completion provider under a fixed system prompt.
// @Tags AI
// @Accept json
// @Produce json
// @Param request body Request true "Chat message"
// @Success 200 {object} map[string]any "Provider response"
// @Failure 400 {object} response.ErrorResponse "Malformed JSON"
// @Failure 422 {object} response.ErrorResponse "Validation error"
// @Failure 502 {object} response.ErrorResponse "Provider failure"
// @Router /api/ai/chat [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ai.chat"

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

	answer, err := h.advice.Chat(r.Context(), req.Message)
	if err != nil {
		log.Error("provider call failed", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("failed to get advice from provider"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"provider": "openai",
		"model":    h.advice.Model(),
		"input":    req.Message,
		"response": answer,
	}))
}
