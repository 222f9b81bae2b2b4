package snapshot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gridironlabs/cfbrank/internal/rankings"
	"github.com/tealeg/xlsx"
)

// ReadRatingsXLSX loads preseason ratings from a spreadsheet as an alternate
// prior source. The first sheet is scanned for a header row containing a team
// column and a rating column; rows with an unparseable rating are skipped the
// same way malformed JSON rating rows are.
func ReadRatingsXLSX(path string) ([]rankings.Record, error) {
	xl, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ratings spreadsheet: %w", err)
	}
	if len(xl.Sheets) == 0 {
		return nil, fmt.Errorf("ratings spreadsheet %s has no sheets", path)
	}
	sheet := xl.Sheets[0]
	if len(sheet.Rows) < 2 {
		return nil, fmt.Errorf("ratings spreadsheet %s has no data rows", path)
	}

	teamCol, ratingCol := -1, -1
	for i, cell := range sheet.Rows[0].Cells {
		switch strings.ToLower(strings.TrimSpace(cell.String())) {
		case "team", "school", "name":
			if teamCol < 0 {
				teamCol = i
			}
		case "rating", "sp", "overall":
			if ratingCol < 0 {
				ratingCol = i
			}
		}
	}
	if teamCol < 0 || ratingCol < 0 {
		return nil, fmt.Errorf("ratings spreadsheet %s is missing team or rating columns", path)
	}

	records := make([]rankings.Record, 0, len(sheet.Rows)-1)
	for _, row := range sheet.Rows[1:] {
		if len(row.Cells) <= teamCol || len(row.Cells) <= ratingCol {
			continue
		}
		team := strings.TrimSpace(row.Cells[teamCol].String())
		rating, err := strconv.ParseFloat(strings.TrimSpace(row.Cells[ratingCol].String()), 64)
		if team == "" || err != nil {
			continue
		}
		records = append(records, rankings.Record{"team": team, "rating": rating})
	}
	return records, nil
}
