package http

import (
	"log/slog"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/aussiebroadwan/campus/api/campus" // Swagger docs
	"github.com/aussiebroadwan/campus/internal/campus/catalog"
	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/pkg/httpx"
	"github.com/aussiebroadwan/campus/pkg/jwtx"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

// DefaultMaxUploadBytes caps multipart bodies when MaxUploadBytes is unset.
const DefaultMaxUploadBytes = 10 << 20

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	Catalog             *catalog.Catalog
	AuthService         *service.AuthService
	EventService        *service.EventService
	AchievementService  *service.AchievementService
	ResultService       *service.ResultService
	AnalyticsService    *service.AnalyticsService
	ReportService       *service.ReportService
	AnnualReportService *service.AnnualReportService

	ReportsDir       string
	AnnualReportsDir string
	MaxUploadBytes   int64
}

func NewRouter(verifier jwtx.Verifier, buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

// Use appends middleware that wraps every route, inside the request logger.
func (r *Router) Use(mws ...httpx.Middleware) {
	r.middlewares = append(r.middlewares, mws...)
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerDepartments()
	r.registerEvents()
	r.registerAchievements()
	r.registerResults()
	r.registerReports()
	r.registerAnnualReports()
	r.registerFiles()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Campus Administration API
//	@version		0.1.0
//	@description	College administration backend: registration and login, department events, achievements,
//	@description	uploaded result sheets with analytics, and generated event and annual reports.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/campus
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:5000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token from /api/login. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) maxUploadBytes() int64 {
	if r.MaxUploadBytes <= 0 {
		return DefaultMaxUploadBytes
	}
	return r.MaxUploadBytes
}

// secured requires a token carrying one of scopes, limited per user.
func (r *Router) secured(h http.Handler, limit httpx.RateLimitConfig, scopes ...string) http.Handler {
	mws := []httpx.Middleware{httpx.AuthnMiddleware(r.verifier)}
	if len(scopes) > 0 {
		mws = append(mws, httpx.RequireAnyScope(scopes...))
	}
	mws = append(mws, httpx.RateLimitByUser(limit))
	return httpx.Chain(h, mws...)
}

func public(h http.Handler) http.Handler {
	return httpx.Chain(h, httpx.RateLimitByIP(httpx.PublicLimit))
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// Credential endpoints share the strict login limit by IP.
	// A college admin's token lets register create admin accounts.
	r.Mux.Handle("POST /api/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.LoginLimit), httpx.OptionalAuthn(r.verifier)))
	r.Mux.Handle("POST /api/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin), httpx.RateLimitByIP(httpx.LoginLimit)))

	r.Mux.Handle("GET /api/me", r.secured(http.HandlerFunc(h.HandleMe), httpx.WriteLimit))
	r.Mux.Handle("GET /api/users",
		r.secured(http.HandlerFunc(h.HandleListUsers), httpx.WriteLimit, domain.ScopeUsersRead))
}

func (r *Router) registerDepartments() {
	r.Mux.Handle("GET /api/departments", public(DepartmentsHandler(r.Catalog)))
}

func (r *Router) registerEvents() {
	h := &EventsHandler{EventService: r.EventService}

	r.Mux.Handle("GET /api/events", public(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("GET /api/events.ics", public(http.HandlerFunc(h.HandleCalendar)))
	r.Mux.Handle("GET /api/events/{id}", public(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("POST /api/events",
		r.secured(http.HandlerFunc(h.HandleCreate), httpx.WriteLimit, domain.ScopeEventsWrite))
}

func (r *Router) registerAchievements() {
	h := &AchievementsHandler{AchievementService: r.AchievementService}

	r.Mux.Handle("GET /api/achievements", public(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("GET /api/achievements/{id}", public(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("POST /api/achievements",
		r.secured(http.HandlerFunc(h.HandleCreate), httpx.WriteLimit, domain.ScopeAchievementsWrite))
}

func (r *Router) registerResults() {
	h := &ResultsHandler{
		ResultService:    r.ResultService,
		AnalyticsService: r.AnalyticsService,
		MaxUploadBytes:   r.maxUploadBytes(),
	}

	r.Mux.Handle("POST /api/upload-result",
		r.secured(http.HandlerFunc(h.HandleUpload), httpx.UploadLimit, domain.ScopeResultsWrite))
	r.Mux.Handle("GET /api/results", public(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("GET /api/result-sheets", public(http.HandlerFunc(h.HandleListSheets)))
	r.Mux.Handle("GET /api/analytics", public(http.HandlerFunc(h.HandleAnalytics)))
	r.Mux.Handle("GET /api/batch-performance", public(http.HandlerFunc(h.HandleBatchPerformance)))
}

func (r *Router) registerReports() {
	h := &ReportsHandler{ReportService: r.ReportService, MaxUploadBytes: r.maxUploadBytes()}

	r.Mux.Handle("POST /api/generate-report",
		r.secured(http.HandlerFunc(h.HandleGenerate), httpx.UploadLimit, domain.ScopeReportsWrite))
}

func (r *Router) registerAnnualReports() {
	h := &AnnualReportsHandler{AnnualReportService: r.AnnualReportService}

	r.Mux.Handle("GET /api/data/by-academic-year", public(http.HandlerFunc(h.HandleYearData)))
	r.Mux.Handle("GET /api/annual-report", public(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("POST /api/generate-annual-report",
		r.secured(http.HandlerFunc(h.HandleGenerate), httpx.UploadLimit, domain.ScopeAnnualWrite))
}

func (r *Router) registerFiles() {
	r.Mux.Handle("GET /reports/{file}", public(FileHandler(r.ReportsDir)))
	r.Mux.Handle("GET /annual_reports/{file}", public(FileHandler(r.AnnualReportsDir)))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion), httpx.RateLimitByIP(httpx.PublicLimit)))
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store), httpx.RateLimitByIP(httpx.PublicLimit)))
}
