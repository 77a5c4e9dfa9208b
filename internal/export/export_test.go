package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"solar-yield/internal/model"
	"solar-yield/internal/strategy"
)

func sampleReport() *model.ComparisonReport {
	tilt := model.Tilt{EastWestDeg: 0, NorthSouthDeg: 30}

	result := func(label string, o model.PanelOrientation, perMonth float64) model.AnnualResult {
		res := model.AnnualResult{StrategyLabel: label, OrientationUsed: o}
		for i := range res.Monthly {
			res.Monthly[i] = model.MonthlyEnergy{Month: i + 1, EnergyKWh: perMonth}
			res.AnnualTotalKWh += perMonth
		}
		return res
	}

	return &model.ComparisonReport{
		Results: []model.AnnualResult{
			result(strategy.LabelTracking, model.Tracking(), 40),
			result(strategy.LabelOptimalFixed, model.FixedTilt(tilt.EastWestDeg, tilt.NorthSouthDeg), 32),
		},
		OptimalTilt:      &tilt,
		EfficiencyRatios: map[string]float64{strategy.LabelOptimalFixed: 0.8},
	}
}

func TestWriteMonthlyCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monthly.csv")
	require.NoError(t, WriteMonthlyCSV(path, sampleReport()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	// Header plus 12 months for each of the two strategies.
	require.Len(t, rows, 1+2*12)
	assert.Equal(t, []string{"strategy", "month", "energy_kwh", "orientation_mode", "east_west_deg", "north_south_deg"}, rows[0])
	assert.Equal(t, strategy.LabelTracking, rows[1][0])
	assert.Equal(t, "1", rows[1][1])
	assert.Equal(t, string(model.OrientationFixed), rows[13][3])
}

func TestWriteWorkbookSheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteWorkbook(path, "Istanbul", sampleReport()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Summary", "Monthly", "Info"}, f.GetSheetList())

	got, err := f.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Istanbul", got)

	rows, err := f.GetRows("Monthly")
	require.NoError(t, err)
	require.Len(t, rows, 13)
	assert.Equal(t, "month", rows[0][0])
}

func TestWriteWorkbookMarksAbsentOptimal(t *testing.T) {
	report := sampleReport()
	report.Results = report.Results[:1]
	report.OptimalTilt = nil
	report.OptimalFixedError = "optimization failure: inverted bounds"
	report.EfficiencyRatios = map[string]float64{}

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteWorkbook(path, "Istanbul", report))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	assert.Contains(t, got, "absent")
}
