// Spreadsheet export: a three-sheet workbook with the run summary,
// per-month figures and column descriptions.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"solar-yield/internal/model"
	"solar-yield/internal/strategy"
)

const (
	sheetSummary = "Summary"
	sheetMonthly = "Monthly"
	sheetInfo    = "Info"
)

// WriteWorkbook renders a ComparisonReport to an xlsx file.
func WriteWorkbook(path string, locationName string, report *model.ComparisonReport) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return err
	}
	if err := writeSummary(f, locationName, report); err != nil {
		return err
	}

	if _, err := f.NewSheet(sheetMonthly); err != nil {
		return err
	}
	if err := writeMonthly(f, report); err != nil {
		return err
	}

	if _, err := f.NewSheet(sheetInfo); err != nil {
		return err
	}
	if err := writeInfo(f); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func writeSummary(f *excelize.File, locationName string, report *model.ComparisonReport) error {
	rows := [][]any{
		{"Location", locationName},
	}
	if report.OptimalTilt != nil {
		rows = append(rows,
			[]any{"Optimal east-west tilt (deg)", report.OptimalTilt.EastWestDeg},
			[]any{"Optimal north-south tilt (deg)", report.OptimalTilt.NorthSouthDeg},
		)
	} else {
		rows = append(rows, []any{"Optimal fixed strategy", "absent: " + report.OptimalFixedError})
	}
	for _, res := range report.Results {
		rows = append(rows, []any{fmt.Sprintf("Annual total - %s (kWh)", res.StrategyLabel), res.AnnualTotalKWh})
	}
	for _, label := range []string{strategy.LabelOptimalFixed, strategy.LabelCustomFixed} {
		if ratio, ok := report.EfficiencyRatios[label]; ok {
			rows = append(rows, []any{fmt.Sprintf("Efficiency vs tracking - %s", label), ratio})
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetSummary, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeMonthly(f *excelize.File, report *model.ComparisonReport) error {
	header := []any{"month"}
	for _, res := range report.Results {
		header = append(header, fmt.Sprintf("energy_kwh_%s", res.StrategyLabel))
	}
	if err := f.SetSheetRow(sheetMonthly, "A1", &header); err != nil {
		return err
	}

	for m := 0; m < 12; m++ {
		row := []any{m + 1}
		for _, res := range report.Results {
			row = append(row, res.Monthly[m].EnergyKWh)
		}
		cell, err := excelize.CoordinatesToCellName(1, m+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetMonthly, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeInfo(f *excelize.File) error {
	rows := [][]any{
		{"Column", "Description"},
		{"energy_kwh_" + strategy.LabelTracking, "Monthly yield of a panel kept normal to the sun (kWh)"},
		{"energy_kwh_" + strategy.LabelOptimalFixed, "Monthly yield at the best fixed east-west/north-south tilt pair (kWh)"},
		{"energy_kwh_" + strategy.LabelCustomFixed, "Monthly yield at the user-specified fixed tilt pair (kWh)"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetInfo, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
