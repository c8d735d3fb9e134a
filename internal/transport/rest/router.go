package rest

import (
	"net/http"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
	"github.com/heartmarshall/agrotiquiza-backend/internal/transport/middleware"
)

// Handlers groups every REST handler served by the router.
type Handlers struct {
	Probe        *ProbeHandler
	Auth         *AuthHandler
	Users        *UserHandler
	Farms        *FarmHandler
	Animals      *AnimalHandler
	Events       *EventHandler
	Sanitary     *SanitaryHandler
	Reproduction *ReproductionHandler
	Reports      *ReportHandler
}

// RouterOptions holds optional router pieces.
type RouterOptions struct {
	// LoginLimit throttles POST /auth/login. Nil disables throttling.
	LoginLimit middleware.Middleware
	// Metrics is mounted at MetricsPath when non-nil.
	Metrics     http.Handler
	MetricsPath string
}

// NewRouter registers all routes. Reads require an authenticated caller;
// writes require the permission of their area.
func NewRouter(h Handlers, opts RouterOptions) *http.ServeMux {
	mux := http.NewServeMux()

	read := middleware.RequireAuth
	can := func(p domain.Permission, fn http.HandlerFunc) http.Handler {
		return middleware.RequirePermission(p).ThenFunc(fn)
	}

	// Probes
	mux.HandleFunc("GET /live", h.Probe.Live)
	mux.HandleFunc("GET /ready", h.Probe.Ready)
	if opts.Metrics != nil {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		mux.Handle("GET "+path, opts.Metrics)
	}

	// Auth
	login := http.Handler(http.HandlerFunc(h.Auth.Login))
	if opts.LoginLimit != nil {
		login = opts.LoginLimit(login)
	}
	mux.Handle("POST /auth/login", login)
	mux.Handle("POST /auth/password", read(http.HandlerFunc(h.Auth.ChangePassword)))

	// Users
	mux.Handle("POST /users", can(domain.PermManageUsers, h.Users.Register))
	mux.Handle("GET /users", can(domain.PermManageUsers, h.Users.List))
	mux.Handle("POST /users/{id}/toggle-active", can(domain.PermManageUsers, h.Users.ToggleActive))
	mux.Handle("PUT /users/{id}/role", can(domain.PermManageUsers, h.Users.ChangeRole))

	// Farms
	mux.Handle("POST /farms", can(domain.PermManageFarms, h.Farms.Create))
	mux.Handle("GET /farms", read(http.HandlerFunc(h.Farms.List)))
	mux.Handle("GET /farms/{id}", read(http.HandlerFunc(h.Farms.Get)))
	mux.Handle("PATCH /farms/{id}", can(domain.PermManageFarms, h.Farms.Update))
	mux.Handle("DELETE /farms/{id}", can(domain.PermManageFarms, h.Farms.Delete))

	// Animals and weighings
	mux.Handle("POST /animals", can(domain.PermManageLivestock, h.Animals.Create))
	mux.Handle("GET /animals", read(http.HandlerFunc(h.Animals.Search)))
	mux.Handle("GET /animals/lookup", read(http.HandlerFunc(h.Animals.Lookup)))
	mux.Handle("GET /animals/{id}", read(http.HandlerFunc(h.Animals.Get)))
	mux.Handle("PUT /animals/{id}/mother", can(domain.PermManageLivestock, h.Animals.SetMother))
	mux.Handle("POST /weighings", can(domain.PermManageLivestock, h.Animals.RecordWeighing))
	mux.Handle("GET /weighings", read(http.HandlerFunc(h.Animals.ListWeighings)))

	// Events
	mux.Handle("POST /births", can(domain.PermManageReproduction, h.Events.RecordBirth))
	mux.Handle("GET /births", read(http.HandlerFunc(h.Events.ListBirths)))
	mux.Handle("PUT /production", can(domain.PermManageLivestock, h.Events.RecordProduction))
	mux.Handle("POST /exits", can(domain.PermManageLivestock, h.Events.RecordExit))
	mux.Handle("POST /transfers", can(domain.PermManageLivestock, h.Events.Transfer))
	mux.Handle("GET /transfers", read(http.HandlerFunc(h.Events.ListTransfers)))

	// Health
	mux.Handle("POST /sanitary-events", can(domain.PermManageHealth, h.Sanitary.Create))
	mux.Handle("GET /sanitary-events", read(http.HandlerFunc(h.Sanitary.List)))
	mux.Handle("GET /sanitary-events/{id}", read(http.HandlerFunc(h.Sanitary.Get)))
	mux.Handle("PATCH /sanitary-events/{id}", can(domain.PermManageHealth, h.Sanitary.Update))
	mux.Handle("DELETE /sanitary-events/{id}", can(domain.PermManageHealth, h.Sanitary.Delete))

	// Reproduction
	mux.Handle("POST /inseminations", can(domain.PermManageReproduction, h.Reproduction.RecordInsemination))
	mux.Handle("GET /inseminations", read(http.HandlerFunc(h.Reproduction.ListInseminations)))
	mux.Handle("GET /inseminations/pending", read(http.HandlerFunc(h.Reproduction.Pending)))
	mux.Handle("PATCH /inseminations/{id}", can(domain.PermManageReproduction, h.Reproduction.UpdateInsemination))
	mux.Handle("DELETE /inseminations/{id}", can(domain.PermManageReproduction, h.Reproduction.DeleteInsemination))
	mux.Handle("POST /inseminations/{id}/confirmation", can(domain.PermManageReproduction, h.Reproduction.Confirm))
	mux.Handle("GET /confirmations", read(http.HandlerFunc(h.Reproduction.ListConfirmations)))

	// Reports
	mux.Handle("GET /reports/dashboard", can(domain.PermViewReports, h.Reports.Dashboard))
	mux.Handle("GET /reports/births.xlsx", can(domain.PermViewReports, h.Reports.ExportBirths))
	mux.Handle("GET /reports/sanitary.xlsx", can(domain.PermViewReports, h.Reports.ExportSanitaryEvents))

	return mux
}
