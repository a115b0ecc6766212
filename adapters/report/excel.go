// Package report renders run artifacts into the formats the paper assembly
// pipeline consumes: an Excel workbook for human review and JSON figure data
// for plotting.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"sszqubits/app"
	"sszqubits/domain/experiment"
	"sszqubits/internal/errors"
	"sszqubits/internal/sweep"
)

// Workbook collects everything one run produced.
type Workbook struct {
	Predictions []app.Prediction
	Validation  []experiment.ValidationCase
	Sweep       []sweep.Point
}

// WriteExcel renders the workbook to path. Sheets are only created for
// sections that carry data.
func WriteExcel(wb Workbook, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	first := true
	activate := func(sheet string) error {
		if first {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return err
			}
			first = false
			return nil
		}
		_, err := f.NewSheet(sheet)
		return err
	}

	if len(wb.Predictions) > 0 {
		if err := activate("Predictions"); err != nil {
			return errors.ReportError("predictions sheet", err)
		}
		if err := writePredictions(f, wb.Predictions); err != nil {
			return errors.ReportError("predictions sheet", err)
		}
	}
	if len(wb.Validation) > 0 {
		if err := activate("Validation"); err != nil {
			return errors.ReportError("validation sheet", err)
		}
		if err := writeValidation(f, wb.Validation); err != nil {
			return errors.ReportError("validation sheet", err)
		}
	}
	if len(wb.Sweep) > 0 {
		if err := activate("Sweep"); err != nil {
			return errors.ReportError("sweep sheet", err)
		}
		if err := writeSweep(f, wb.Sweep); err != nil {
			return errors.ReportError("sweep sheet", err)
		}
	}
	if first {
		return errors.InvalidInput("workbook has no sections")
	}

	if err := f.SaveAs(path); err != nil {
		return errors.ReportError(fmt.Sprintf("saving workbook to %s", path), err)
	}
	return nil
}

func writePredictions(f *excelize.File, preds []app.Prediction) error {
	if err := writeRow(f, "Predictions", 1, []interface{}{"name", "value", "unit", "description"}); err != nil {
		return err
	}
	for i, p := range preds {
		row := []interface{}{p.Name, p.Value, p.Unit, p.Description}
		if err := writeRow(f, "Predictions", i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeValidation(f *excelize.File, cases []experiment.ValidationCase) error {
	header := []interface{}{"name", "predicted", "measured", "uncertainty", "tolerance", "passed"}
	if err := writeRow(f, "Validation", 1, header); err != nil {
		return err
	}
	for i, vc := range cases {
		row := []interface{}{vc.Name, vc.Predicted, vc.Measured, vc.Uncertainty, vc.ToleranceFraction, vc.Passed}
		if err := writeRow(f, "Validation", i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeSweep(f *excelize.File, points []sweep.Point) error {
	header := []interface{}{"height_m", "frequency_hz", "time_s", "drift_rad", "warnings"}
	if err := writeRow(f, "Sweep", 1, header); err != nil {
		return err
	}
	for i, p := range points {
		warnings := ""
		for j, w := range p.Warnings {
			if j > 0 {
				warnings += ","
			}
			warnings += string(w)
		}
		row := []interface{}{p.Height, p.Frequency, p.Time, p.Drift, warnings}
		if err := writeRow(f, "Sweep", i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
