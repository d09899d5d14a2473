package adapthttp

import (
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/oauth2"

	"slimdown/internal/app"
	"slimdown/internal/metrics"
)

// OIDCConfig holds the optional SSO provider wiring. Enabled is false when
// no provider is configured.
type OIDCConfig struct {
	Enabled      bool
	Provider     *oidc.Provider
	OAuth2Config *oauth2.Config
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	roster *app.RosterService
	stats  *app.StatsService
	auth   *app.AuthService
	webDir string

	disableAuth bool
	oidcConfig  OIDCConfig
}

// New creates a Server wired to the given application services.
func New(rs *app.RosterService, ss *app.StatsService, as *app.AuthService, webDir string) *Server {
	metrics.Register()
	return &Server{roster: rs, stats: ss, auth: as, webDir: webDir}
}

// WithoutAuth disables session checks on the API. This is the default mode
// for a tracker run on a trusted network.
func (s *Server) WithoutAuth() *Server {
	s.disableAuth = true
	return s
}

// WithOIDC enables the SSO login flow.
func (s *Server) WithOIDC(cfg OIDCConfig) *Server {
	s.oidcConfig = cfg
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/auth/login", s.handleLogin)
	api.HandleFunc("/auth/logout", s.handleLogout)
	api.HandleFunc("/auth/setup", s.handleSetupUser)
	api.HandleFunc("/auth/config", s.handleConfig)
	api.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	api.HandleFunc("/auth/sso/callback", s.handleSSOCallback)

	api.Handle("/contestants", s.authMiddleware(http.HandlerFunc(s.handleContestants)))
	api.Handle("/contestants/", s.authMiddleware(http.HandlerFunc(s.handleContestant)))
	api.Handle("/rankings", s.authMiddleware(http.HandlerFunc(s.handleRankings)))
	api.Handle("/export", s.authMiddleware(http.HandlerFunc(s.handleExport)))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/metrics", promhttp.Handler())
	root.Handle("/", spaFromDisk(s.webDir))

	return s.loggingMiddleware(withNoCache(root))
}
