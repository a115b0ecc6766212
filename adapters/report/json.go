package report

import (
	"encoding/json"
	"os"

	"sszqubits/app"
	"sszqubits/domain/experiment"
	"sszqubits/internal/referee"
	"sszqubits/internal/sweep"
)

// FigureData is the JSON payload the plotting pipeline reads: one file per
// run with every series it needs.
type FigureData struct {
	Predictions []app.Prediction            `json:"predictions,omitempty"`
	Validation  []experiment.ValidationCase `json:"validation,omitempty"`
	Sweep       []SweepRow                  `json:"sweep,omitempty"`
	Fit         *experiment.FitResult       `json:"fit,omitempty"`
	Gates       []referee.Result            `json:"gates,omitempty"`
	Confound    experiment.Confound         `json:"confound,omitempty"`
}

type SweepRow struct {
	Height    float64  `json:"height_m"`
	Frequency float64  `json:"frequency_hz"`
	Time      float64  `json:"time_s"`
	Drift     float64  `json:"drift_rad"`
	Warnings  []string `json:"warnings,omitempty"`
}

// WriteJSON marshals the figure data to path with stable, indented output.
func WriteJSON(fd FigureData, path string) error {
	data, err := json.MarshalIndent(fd, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// SweepRows converts engine output into the serialized form.
func SweepRows(points []sweep.Point) []SweepRow {
	rows := make([]SweepRow, 0, len(points))
	for _, p := range points {
		row := SweepRow{
			Height:    p.Height,
			Frequency: p.Frequency,
			Time:      p.Time,
			Drift:     p.Drift,
		}
		for _, w := range p.Warnings {
			row.Warnings = append(row.Warnings, string(w))
		}
		rows = append(rows, row)
	}
	return rows
}
