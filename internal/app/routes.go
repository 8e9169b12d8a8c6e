package app

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	aichat "github.com/ahorraplan/finance-backend/internal/http/handlers/ai/chat"
	aidaily "github.com/ahorraplan/finance-backend/internal/http/handlers/ai/daily"
	"github.com/ahorraplan/finance-backend/internal/http/handlers/auth/login"
	"github.com/ahorraplan/finance-backend/internal/http/handlers/auth/register"
	debtplan "github.com/ahorraplan/finance-backend/internal/http/handlers/debt/plan"
	"github.com/ahorraplan/finance-backend/internal/http/handlers/health"
	onboardingget "github.com/ahorraplan/finance-backend/internal/http/handlers/onboarding/get"
	onboardingsave "github.com/ahorraplan/finance-backend/internal/http/handlers/onboarding/save"
	"github.com/ahorraplan/finance-backend/internal/http/middlewarectx"
	"github.com/ahorraplan/finance-backend/internal/lib/jwt"
	adviceservice "github.com/ahorraplan/finance-backend/internal/services/advice"
	authservice "github.com/ahorraplan/finance-backend/internal/services/auth"
	debtservice "github.com/ahorraplan/finance-backend/internal/services/debt"
)

// RegisterRoutes mounts all endpoints of the application.
func RegisterRoutes(r chi.Router, logger *slog.Logger, jwtMaker jwt.Maker, authService *authservice.AuthService, debtService *debtservice.DebtService, adviceService *adviceservice.AdviceService) {
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Get("/health", health.New(logger).ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", register.New(logger, authService).ServeHTTP)
			r.Post("/login", login.New(logger, authService).ServeHTTP)
			r.Post("/onboarding", onboardingsave.New(logger, authService).ServeHTTP)
			r.Get("/onboarding", onboardingget.New(logger, authService).ServeHTTP)
		})

		r.Post("/debts/plan", debtplan.New(logger, debtService).ServeHTTP)

		// AI endpoints require a login token and are rate limited: every
		// request costs provider money.
		r.Route("/ai", func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(rate.NewLimiter(1, 3), logger))
			r.Post("/chat", aichat.New(logger, adviceService).ServeHTTP)
			r.Post("/daily-recommendation", aidaily.New(logger, adviceService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
