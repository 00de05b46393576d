package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/jobdesk/jobdesk/internal/domain/auth"
	"github.com/jobdesk/jobdesk/internal/service"
)

// RouterServices holds everything the HTTP router needs.
type RouterServices struct {
	Jobs         *service.JobService
	Requests     *service.PremiumRequestService
	Auth         *service.AuthService
	CookieDomain string
	PageSize     int
	Logger       *slog.Logger
}

// NewRouter creates and configures the HTTP router with browser middleware.
func NewRouter(services RouterServices) (http.Handler, error) {
	mux := http.NewServeMux()

	renderer, err := NewTemplateRenderer(services.Logger)
	if err != nil {
		return nil, err
	}

	uiHandlers := &UIHandlers{
		T:        renderer,
		Jobs:     services.Jobs,
		Requests: services.Requests,
		PageSize: services.PageSize,
		Logger:   services.Logger,
	}
	actionHandlers := &ActionHandlers{
		Jobs:     services.Jobs,
		Requests: services.Requests,
		Logger:   services.Logger,
	}

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	cfg := adminRouteConfig{CookieDomain: services.CookieDomain}
	if services.Auth != nil {
		cfg.Auth = services.Auth
		authHandlers := &AuthHandlers{
			Svc:          services.Auth,
			CookieDomain: services.CookieDomain,
			Logger:       services.Logger,
		}
		registerAuthRoutes(mux, authHandlers)
	}

	registerAdminRoutes(mux, adminRoutes{UI: uiHandlers, Actions: actionHandlers}, cfg)

	mux.Handle("GET /auth/signed-out", http.HandlerFunc(uiHandlers.SignedOut))
	mux.Handle("GET /", http.HandlerFunc(uiHandlers.Index))

	return BrowserDetection()(mux), nil
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("GET /auth/login", h.Login)
	mux.HandleFunc("GET /auth/callback", h.Callback)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/status", h.Status)
}

// adminRouteConfig holds configuration for admin route registration.
type adminRouteConfig struct {
	Auth         AuthServiceInterface
	CookieDomain string
}

// adminWrap applies CSRF protection inside the admin role requirement.
// With a nil auth service (tests, early bootstrap) routes are left open.
func (cfg adminRouteConfig) adminWrap() func(http.Handler) http.Handler {
	if cfg.Auth == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	csrf := CSRFProtection(CSRFConfig{CookieDomain: cfg.CookieDomain})
	roleCheck := RequireRoleBrowser(cfg.Auth, domainauth.RoleAdmin)
	return func(h http.Handler) http.Handler {
		return roleCheck(csrf(h))
	}
}

type adminRoutes struct {
	UI      *UIHandlers
	Actions *ActionHandlers
}

// registerAdminRoutes wires the admin console pages and the action endpoint,
// all of which require the admin role.
func registerAdminRoutes(mux *http.ServeMux, h adminRoutes, cfg adminRouteConfig) {
	wrapAdmin := cfg.adminWrap()
	mux.Handle("GET /admin", wrapAdmin(http.HandlerFunc(h.UI.Dashboard)))
	mux.Handle("GET /admin/jobs", wrapAdmin(http.HandlerFunc(h.UI.JobsList)))
	mux.Handle("GET /admin/premium-requests", wrapAdmin(http.HandlerFunc(h.UI.PremiumRequests)))
	mux.Handle("POST /admin/actions", wrapAdmin(http.HandlerFunc(h.Actions.Apply)))
}
