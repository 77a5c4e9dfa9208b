package export

import (
	"encoding/csv"
	"os"
	"strconv"

	"solar-yield/internal/model"
)

// WriteMonthlyCSV writes one row per month per strategy, the primary
// flat artifact for downstream tooling.
func WriteMonthlyCSV(path string, report *model.ComparisonReport) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"strategy",
		"month",
		"energy_kwh",
		"orientation_mode",
		"east_west_deg",
		"north_south_deg",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, res := range report.Results {
		for _, m := range res.Monthly {
			row := []string{
				res.StrategyLabel,
				strconv.Itoa(m.Month),
				fmtFloat(m.EnergyKWh),
				string(res.OrientationUsed.Mode),
				fmtFloat(res.OrientationUsed.Tilt.EastWestDeg),
				fmtFloat(res.OrientationUsed.Tilt.NorthSouthDeg),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
