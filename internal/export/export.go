// Package export renders the challenge standings to portable file formats.
package export

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"

	"slimdown/internal/app"
)

// Row is one standings line in an exported file.
type Row struct {
	Rank           int     `csv:"rank"`
	Name           string  `csv:"name"`
	Age            int     `csv:"age"`
	StartingWeight float64 `csv:"starting_weight"`
	CurrentWeight  float64 `csv:"current_weight"`
	WeightLost     float64 `csv:"weight_lost"`
	PercentageLost float64 `csv:"percentage_lost"`
}

func rows(standings []app.Standing) []Row {
	out := make([]Row, len(standings))
	for i, s := range standings {
		out[i] = Row{
			Rank:           s.Rank,
			Name:           s.Name,
			Age:            s.Age,
			StartingWeight: s.StartingWeight,
			CurrentWeight:  s.CurrentWeight,
			WeightLost:     s.WeightLost,
			PercentageLost: s.PercentageLost,
		}
	}
	return out
}

// WriteCSV writes the standings as CSV with a header line.
func WriteCSV(w io.Writer, standings []app.Standing) error {
	r := rows(standings)
	return gocsv.Marshal(&r, w)
}

const sheet = "Standings"

// WriteXLSX writes the standings as a workbook with a single Standings
// sheet.
func WriteXLSX(w io.Writer, standings []app.Standing) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	headers := []string{"Rank", "Name", "Age", "Starting (lbs)", "Current (lbs)", "Lost (lbs)", "Lost (%)"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "G1", bold); err != nil {
		return err
	}

	for i, row := range rows(standings) {
		values := []any{row.Rank, row.Name, row.Age, row.StartingWeight, row.CurrentWeight, row.WeightLost, row.PercentageLost}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(sheet, "B", "B", 24); err != nil {
		return err
	}
	return f.Write(w)
}

// Filename suggests a download name for the given format.
func Filename(format string) string {
	return fmt.Sprintf("standings.%s", format)
}
