package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fundlens/backoffice/internal/api/handlers"
	custommiddleware "github.com/fundlens/backoffice/internal/api/middleware"
	"github.com/fundlens/backoffice/internal/api/response"
	"github.com/fundlens/backoffice/internal/auth"
	"github.com/fundlens/backoffice/internal/config"
	"github.com/fundlens/backoffice/internal/model"
	"github.com/fundlens/backoffice/internal/service"
)

// Services bundles the service dependencies the router wires into handlers.
type Services struct {
	System      *service.SystemService
	Fund        *service.FundService
	Investment  *service.InvestmentService
	Transaction *service.TransactionService
	User        *service.UserService
	Auth        *service.AuthService
}

// NewRouter creates and configures the HTTP router.
//
// Route policy: /v1/system/health, /v1/auth/login, and POST /v1/users
// (self-registration) are open. Everything else requires a bearer token.
// Destructive operations and user management require an ADMIN or SUPERADMIN
// role.
func NewRouter(services Services, tokens *auth.TokenManager, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	r.NotFound(response.RespondNotFoundRoute)

	requireAuth := custommiddleware.RequireAuth(tokens)
	requireAdmin := custommiddleware.RequireRole(model.RoleAdmin, model.RoleSuperAdmin)

	// API routes
	r.Route("/v1", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(services.System)
			r.Get("/health", systemHandler.Health)
		})

		r.Route("/auth", func(r chi.Router) {
			authHandler := handlers.NewAuthHandler(services.Auth)
			r.Post("/login", authHandler.Login)
		})

		r.Route("/users", func(r chi.Router) {
			userHandler := handlers.NewUserHandler(services.User)

			// Self-registration stays open; management is admin only.
			r.Post("/", userHandler.CreateUser)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Use(requireAdmin)

				r.Get("/", userHandler.GetUsers)

				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Get("/", userHandler.GetUser)
					r.Put("/", userHandler.UpdateUser)
					r.Delete("/", userHandler.DeleteUser)
				})
			})
		})

		r.Route("/funds", func(r chi.Router) {
			fundHandler := handlers.NewFundHandler(services.Fund)

			r.Use(requireAuth)

			r.Get("/", fundHandler.GetFunds)
			r.Post("/", fundHandler.CreateFund)
			r.Get("/filter", fundHandler.FilterFunds)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", fundHandler.GetFund)
				r.Put("/", fundHandler.UpdateFund)
				r.With(requireAdmin).Delete("/", fundHandler.DeleteFund)
			})
		})

		r.Route("/investments", func(r chi.Router) {
			investmentHandler := handlers.NewInvestmentHandler(services.Investment)

			r.Use(requireAuth)

			r.Get("/", investmentHandler.GetInvestments)
			r.Post("/", investmentHandler.CreateInvestment)
			r.Get("/search", investmentHandler.SearchInvestments)
			r.Get("/filter", investmentHandler.FilterInvestments)

			r.Route("/fund/{fundId}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateFundIDMiddleware)
				r.Get("/", investmentHandler.InvestmentsPerFund)
				r.Get("/summary", investmentHandler.GetFundSummary)
			})

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", investmentHandler.GetInvestment)
				r.Get("/performance", investmentHandler.GetPerformance)
				r.Put("/", investmentHandler.UpdateInvestment)
				r.With(requireAdmin).Delete("/", investmentHandler.DeleteInvestment)
			})
		})

		r.Route("/transactions", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(services.Transaction)

			r.Use(requireAuth)

			r.Get("/", transactionHandler.AllTransactions)
			r.Post("/", transactionHandler.CreateTransaction)

			r.Route("/fund/{fundId}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateFundIDMiddleware)
				r.Get("/", transactionHandler.TransactionsPerFund)
				r.Get("/summary", transactionHandler.GetCashFlowSummary)
				r.Get("/date-range", transactionHandler.TransactionsByDateRange)
			})

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", transactionHandler.GetTransaction)
				r.Put("/", transactionHandler.UpdateTransaction)
				r.With(requireAdmin).Delete("/", transactionHandler.DeleteTransaction)
			})
		})
	})

	return r
}
