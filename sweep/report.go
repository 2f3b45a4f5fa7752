package sweep

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/montanaflynn/stats"
)

// csvHeader is the fixed column order of the cell table.
var csvHeader = []string{
	"alpha_left", "alpha_right",
	"residence", "hitting",
	"retention", "growth", "combined", "ratio",
	"unstable",
}

// WriteCSV streams the row-major cell table of a run to w, one line per
// grid cell with a fixed header. Floats are emitted with full round-trip
// precision.
func WriteCSV(w io.Writer, res *Result) error {
	if res == nil || len(res.Cells) == 0 {
		return ErrEmptyResult
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	row := make([]string, len(csvHeader))
	for _, c := range res.Cells {
		row[0] = formatFloat(c.AlphaL)
		row[1] = formatFloat(c.AlphaR)
		row[2] = formatFloat(c.Residence)
		row[3] = formatFloat(c.Hitting)
		row[4] = formatFloat(c.Retention)
		row[5] = formatFloat(c.Growth)
		row[6] = formatFloat(c.Combined)
		row[7] = formatFloat(c.Ratio)
		row[8] = strconv.FormatBool(c.Unstable)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write cell: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Summarize condenses the run's advantage ratios into descriptive
// statistics for console reporting.
func Summarize(res *Result) (Summary, error) {
	if res == nil || len(res.Cells) == 0 {
		return Summary{}, ErrEmptyResult
	}

	ratios := make([]float64, 0, len(res.Cells))
	unstable := 0
	for _, c := range res.Cells {
		if c.Unstable {
			unstable++
		}
		ratios = append(ratios, c.Ratio)
	}

	minR, err := stats.Min(ratios)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}
	maxR, err := stats.Max(ratios)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}
	meanR, err := stats.Mean(ratios)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}
	medianR, err := stats.Median(ratios)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}

	return Summary{
		Cells:       len(res.Cells),
		Unstable:    unstable,
		MinRatio:    minR,
		MaxRatio:    maxR,
		MeanRatio:   meanR,
		MedianRatio: medianR,
	}, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
