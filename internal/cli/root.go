// Package cli implements the slimdown command tree.
package cli

import (
	"fmt"
	"os/exec"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"slimdown/internal/adapter/calcproc"
	"slimdown/internal/adapter/file"
	"slimdown/internal/adapter/memory"
	"slimdown/internal/adapter/postgres"
	"slimdown/internal/app"
	"slimdown/internal/calc"
	"slimdown/internal/config"
	"slimdown/internal/domain"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "slimdown",
	Short: "Track a weight-loss challenge",
	Long: `slimdown keeps the roster for a weight-loss challenge: enroll
contestants, record weigh-ins, and rank everyone by percentage of
starting weight lost. The roster lives in a JSON file by default;
a postgres backend and an HTTP API are available for shared setups.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
	rootCmd.AddCommand(addCmd, weighCmd, editCmd, infoCmd, listCmd, removeCmd)
	rootCmd.AddCommand(rankingsCmd, exportCmd, serveCmd)
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

// application bundles the wired services for one command invocation.
type application struct {
	cfg      *config.Config
	roster   *app.RosterService
	stats    *app.StatsService
	users    domain.UserRepository
	sessions domain.SessionRepository
	close    func() error
}

func buildApp() (*application, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if lvl, err := log.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(lvl)
	}

	calculator := buildCalculator(cfg.Calculator)

	var (
		repo     domain.ContestantRepository
		users    domain.UserRepository
		sessions domain.SessionRepository
	)
	closeFn := func() error { return nil }

	switch cfg.Store.Driver {
	case "file":
		repo = file.NewStore(cfg.Store.Path)
		users = file.NewUserStore(cfg.Store.UsersPath)
		sessions = memory.New().NewSessionRepo()
	case "memory":
		db := memory.New()
		repo, users, sessions = db, db, db.NewSessionRepo()
	case "postgres":
		db, err := postgres.Open(cfg.Store.DSN())
		if err != nil {
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		repo, users, sessions = db, db, postgres.NewSessionRepo(db)
		closeFn = db.Close
	}

	return &application{
		cfg:      cfg,
		roster:   app.NewRosterService(repo, calculator),
		stats:    app.NewStatsService(repo, calculator),
		users:    users,
		sessions: sessions,
		close:    closeFn,
	}, nil
}

// buildCalculator picks the calculator implementation. auto prefers the
// external binary when it is on PATH and keeps the in-process fallback;
// exec surfaces process failures instead of falling back.
func buildCalculator(cfg config.CalculatorConfig) domain.Calculator {
	switch cfg.Mode {
	case "inprocess":
		return calc.NewInProcess()
	case "exec":
		return calcproc.New(cfg.Path, nil)
	default:
		if _, err := exec.LookPath(cfg.Path); err == nil {
			return calcproc.New(cfg.Path, calc.NewInProcess())
		}
		return calc.NewInProcess()
	}
}
