// Package services contains the AI guidance logic: it assembles the
// prompts and delegates text generation to the external completion
// provider. Responses are returned verbatim; there are no retries and no
// caching of completions.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ahorraplan/finance-backend/internal/models"
)

// SystemPrompt frames every completion request sent to the provider.
const SystemPrompt = "Eres un asistente financiero tranquilo, comprensivo y con tacto. " +
	"Responde dudas de cuentas y ahorro/deudas con lenguaje cercano. " +
	"Invita con delicadeza a conversar con un coach humano premium para un acompañamiento profundo. " +
	"Explica que ese coaching incluye ayuda financiera, archivos/documentación personalizada y seguimiento de cada usuario, \"como invitar a un café\"."

// CompletionProvider is the boundary to the external text-completion API.
type CompletionProvider interface {
	// Complete sends a system prompt plus one user message and returns the
	// generated text.
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
	// Model returns the configured model name.
	Model() string
}

// AdviceService generates financial guidance through the provider.
type AdviceService struct {
	provider CompletionProvider
	log      *slog.Logger
}

// NewAdviceService creates a new AdviceService.
func NewAdviceService(provider CompletionProvider, log *slog.Logger) *AdviceService {
	return &AdviceService{
		provider: provider,
		log:      log,
	}
}

// Model exposes the provider's model name for API responses.
func (s *AdviceService) Model() string {
	return s.provider.Model()
}

// Chat forwards a free-text message to the provider under the fixed system
// prompt and returns the response verbatim.
func (s *AdviceService) Chat(ctx context.Context, message string) (string, error) {
	return s.provider.Complete(ctx, SystemPrompt, message)
}

// DailyRecommendation renders the structured daily report into a
// deterministic prompt and returns the provider's recommendation.
func (s *AdviceService) DailyRecommendation(ctx context.Context, report models.DailyReport) (string, error) {
	return s.provider.Complete(ctx, SystemPrompt, BuildDailyPrompt(report))
}

// BuildDailyPrompt turns a daily report into the user message sent to the
// provider. Template substitution only; the savings gap is the one derived
// value.
func BuildDailyPrompt(report models.DailyReport) string {
	if report.UserName == "" {
		report.UserName = "Usuario"
	}
	if report.Currency == "" {
		report.Currency = "COP"
	}

	return fmt.Sprintf(
		"Usuario: %s. "+
			"Control de gasto hoy: %s. "+
			"Acción de ahorro hoy: %s. "+
			"Acción de deuda hoy: %s. "+
			"Inversión planificada del mes: %.2f %s. "+
			"Ahorrado este mes: %.2f %s. "+
			"Faltante estimado de ahorro: %.2f %s. "+
			"Deuda pendiente: %.2f %s. "+
			"Genera una recomendación breve, accionable y empática para hoy con 3 pasos concretos.",
		report.UserName,
		report.SpendingControl,
		report.SavingsAction,
		report.DebtAction,
		report.PlannedInvestment, report.Currency,
		report.SavedThisMonth, report.Currency,
		report.SavingsGap(), report.Currency,
		report.PendingDebtTotal, report.Currency,
	)
}
