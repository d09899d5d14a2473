package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"slimdown/internal/app"
)

var addCmd = &cobra.Command{
	Use:   "add <name> <date-of-birth> <starting-weight>",
	Short: "Enroll a contestant in the challenge",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()

		starting, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid starting weight %q", args[2])
		}

		ctx := cmd.Context()
		if _, err := a.roster.Enroll(ctx, args[0], args[1], starting); err != nil {
			return err
		}

		detail, err := a.stats.Describe(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Enrolled %s: age %d, starting weight %.1f lbs\n",
			detail.Name, detail.Age, detail.StartingWeight)
		return nil
	},
}

var weighCmd = &cobra.Command{
	Use:   "weigh <name> <weight>",
	Short: "Record a weigh-in",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()

		weight, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid weight %q", args[1])
		}

		ctx := cmd.Context()
		if _, err := a.roster.RecordWeight(ctx, args[0], weight); err != nil {
			return err
		}

		detail, err := a.stats.Describe(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %.1f lbs, lost %.2f lbs (%.2f%%)\n",
			detail.Name, detail.CurrentWeight, detail.WeightLost, detail.PercentageLost)
		return nil
	},
}

var (
	editDOB      string
	editStarting float64
	editCurrent  float64
)

var editCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Correct a contestant's stored fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var req app.EditRequest
		if cmd.Flags().Changed("date-of-birth") {
			req.DateOfBirth = &editDOB
		}
		if cmd.Flags().Changed("starting-weight") {
			req.StartingWeight = &editStarting
		}
		if cmd.Flags().Changed("current-weight") {
			req.CurrentWeight = &editCurrent
		}
		if req == (app.EditRequest{}) {
			return fmt.Errorf("nothing to edit: pass at least one of --date-of-birth, --starting-weight, --current-weight")
		}

		a, err := buildApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()

		ctx := cmd.Context()
		if _, err := a.roster.Edit(ctx, args[0], req); err != nil {
			return err
		}

		detail, err := a.stats.Describe(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: age %d, %.1f -> %.1f lbs, lost %.2f lbs (%.2f%%)\n",
			detail.Name, detail.Age, detail.StartingWeight, detail.CurrentWeight, detail.WeightLost, detail.PercentageLost)
		return nil
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <name>",
	Short: "Show one contestant with derived values",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()

		detail, err := a.stats.Describe(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Name:            %s\n", detail.Name)
		fmt.Fprintf(w, "Date of birth:   %s (age %d)\n", detail.DateOfBirth, detail.Age)
		fmt.Fprintf(w, "Starting weight: %.1f lbs\n", detail.StartingWeight)
		fmt.Fprintf(w, "Current weight:  %.1f lbs\n", detail.CurrentWeight)
		fmt.Fprintf(w, "Weight lost:     %.2f lbs (%.2f%%)\n", detail.WeightLost, detail.PercentageLost)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the roster in enrollment order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()

		details, err := a.stats.Roster(cmd.Context())
		if err != nil {
			return err
		}
		if len(details) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No contestants enrolled.")
			return nil
		}
		renderRoster(cmd.OutOrStdout(), details)
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a contestant from the challenge",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()

		if err := a.roster.Remove(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editDOB, "date-of-birth", "", "new date of birth (YYYY-MM-DD)")
	editCmd.Flags().Float64Var(&editStarting, "starting-weight", 0, "new starting weight in lbs")
	editCmd.Flags().Float64Var(&editCurrent, "current-weight", 0, "new current weight in lbs")
}
