package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"slimdown/internal/app"
)

func renderRoster(w io.Writer, details []app.Detail) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Age", "Starting", "Current", "Lost", "Lost %"})
	table.SetColumnSeparator("")
	for _, d := range details {
		table.Append([]string{
			d.Name,
			strconv.Itoa(d.Age),
			fmt.Sprintf("%.1f", d.StartingWeight),
			fmt.Sprintf("%.1f", d.CurrentWeight),
			fmt.Sprintf("%.2f", d.WeightLost),
			fmt.Sprintf("%.2f%%", d.PercentageLost),
		})
	}
	table.Render()
}

func renderStandings(w io.Writer, standings []app.Standing, summary *app.Summary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Rank", "Name", "Age", "Starting", "Current", "Lost", "Lost %"})
	table.SetColumnSeparator("")
	for _, s := range standings {
		table.Append([]string{
			strconv.Itoa(s.Rank),
			s.Name,
			strconv.Itoa(s.Age),
			fmt.Sprintf("%.1f", s.StartingWeight),
			fmt.Sprintf("%.1f", s.CurrentWeight),
			fmt.Sprintf("%.2f", s.WeightLost),
			fmt.Sprintf("%.2f%%", s.PercentageLost),
		})
	}
	table.Render()

	if summary.Contestants > 0 {
		fmt.Fprintf(w, "\n%d contestants, %.2f lbs lost in total\n", summary.Contestants, summary.TotalWeightLost)
		fmt.Fprintf(w, "percentage lost: mean %.2f%%, median %.2f%%, stddev %.2f\n",
			summary.MeanPctLost, summary.MedianPctLost, summary.StdDevPctLost)
	}
}
