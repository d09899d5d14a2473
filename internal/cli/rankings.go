package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"slimdown/internal/adapter/file"
	"slimdown/internal/export"
)

var followFlag bool

var rankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "Show the standings ranked by percentage lost",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()

		render := func(ctx context.Context) error {
			standings, err := a.stats.Standings(ctx)
			if err != nil {
				return err
			}
			summary, err := a.stats.Summarize(ctx)
			if err != nil {
				return err
			}
			renderStandings(cmd.OutOrStdout(), standings, summary)
			return nil
		}

		if err := render(cmd.Context()); err != nil {
			return err
		}
		if !followFlag {
			return nil
		}
		if a.cfg.Store.Driver != "file" {
			return fmt.Errorf("--follow requires the file store, not %q", a.cfg.Store.Driver)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		err = file.Watch(ctx, a.cfg.Store.Path, func() {
			if err := render(ctx); err != nil {
				log.WithError(err).Warn("standings refresh failed")
			}
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the standings to CSV or XLSX",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()

		standings, err := a.stats.Standings(cmd.Context())
		if err != nil {
			return err
		}

		out := io.Writer(cmd.OutOrStdout())
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()
			out = f
		}

		switch exportFormat {
		case "csv":
			err = export.WriteCSV(out, standings)
		case "xlsx":
			err = export.WriteXLSX(out, standings)
		default:
			return fmt.Errorf("unknown export format %q", exportFormat)
		}
		if err != nil {
			return err
		}

		if exportOut != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d standings to %s\n", len(standings), exportOut)
		}
		return nil
	},
}

func init() {
	rankingsCmd.Flags().BoolVar(&followFlag, "follow", false, "keep watching the roster file and re-render on change")
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "export format: csv | xlsx")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (defaults to stdout)")
}
