package cli

import (
	"context"
	"errors"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	adapthttp "slimdown/internal/adapter/http"
	"slimdown/internal/app"
	"slimdown/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and web UI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()

		authSvc := app.NewAuthService(a.users, a.sessions)

		srv := adapthttp.New(a.roster, a.stats, authSvc, a.cfg.Server.WebDir)
		if !a.cfg.Server.Auth.Enabled() {
			srv = srv.WithoutAuth()
		}
		if a.cfg.Server.Auth.SSO.Enabled {
			oidcCfg, err := buildOIDC(cmd.Context(), a.cfg.Server.Auth.SSO)
			if err != nil {
				return err
			}
			srv = srv.WithOIDC(oidcCfg)
		}

		log.WithFields(log.Fields{
			"addr":  a.cfg.Server.Addr,
			"store": a.cfg.Store.Driver,
			"auth":  a.cfg.Server.Auth.Enabled(),
		}).Info("listening")

		if err := http.ListenAndServe(a.cfg.Server.Addr, srv.Handler()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func buildOIDC(ctx context.Context, cfg config.SSOConfig) (adapthttp.OIDCConfig, error) {
	provider, err := oidc.NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return adapthttp.OIDCConfig{}, err
	}
	return adapthttp.OIDCConfig{
		Enabled:  true,
		Provider: provider,
		OAuth2Config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret(),
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
		},
	}, nil
}
