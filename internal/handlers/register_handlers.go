package handlers

import (
	"github.com/gin-gonic/gin"
	portssvc "github.com/hqasem/small-biz-erp/internal/core/ports/services"
	"github.com/hqasem/small-biz-erp/internal/middleware"
	"github.com/hqasem/small-biz-erp/internal/platform/config"
)

// Permission names gating the protected routes. These must match the
// permission catalog seeded by migrations.
const (
	PermUsersRead       = "users.read"
	PermAccountsRead    = "accounts.read"
	PermAccountsWrite   = "accounts.write"
	PermCurrenciesRead  = "currencies.read"
	PermCurrenciesWrite = "currencies.write"
	PermJournalRead     = "journal.read"
	PermJournalWrite    = "journal.write"
	PermReportsRead     = "reports.read"
)

// routeDef declares one protected route and the permission it requires.
// Gating is data, not nested handler wrapping: every route below passes
// through RequireAuth and then RequirePermission for its entry here.
type routeDef struct {
	method     string
	path       string
	permission string
	handler    gin.HandlerFunc
}

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Protected API routes
	registerProtectedRoutes(r, services)
}

// registerProtectedRoutes wires the route-to-permission table under the
// authenticated group.
func registerProtectedRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	userHandler := NewUserHandler(services.User)
	accountHandler := NewAccountHandler(services.Account)
	currencyHandler := NewCurrencyHandler(services.Currency)
	journalHandler := NewJournalHandler(services.Journal)
	reportingHandler := NewReportingHandler(services.Reporting)

	routes := []routeDef{
		{"GET", "/users", PermUsersRead, userHandler.ListUsers},
		{"GET", "/users/:userID", PermUsersRead, userHandler.GetUser},
		{"GET", "/accounts", PermAccountsRead, accountHandler.ListAccounts},
		{"GET", "/accounts/:accountID", PermAccountsRead, accountHandler.GetAccount},
		{"POST", "/accounts", PermAccountsWrite, accountHandler.CreateAccount},
		{"GET", "/currencies", PermCurrenciesRead, currencyHandler.ListCurrencies},
		{"POST", "/currencies", PermCurrenciesWrite, currencyHandler.CreateCurrency},
		{"GET", "/journal", PermJournalRead, journalHandler.ListEntries},
		{"GET", "/journal/:entryID", PermJournalRead, journalHandler.GetEntry},
		{"POST", "/journal", PermJournalWrite, journalHandler.PostEntry},
		{"GET", "/reports/pl", PermReportsRead, reportingHandler.ProfitAndLoss},
		{"GET", "/reports/balance_sheet", PermReportsRead, reportingHandler.BalanceSheet},
	}

	protected := r.Group("/api/v1", middleware.RequireAuth(services.Auth))
	for _, route := range routes {
		protected.Handle(route.method, route.path,
			middleware.RequirePermission(services.Auth, route.permission),
			route.handler)
	}
}
