// Package export writes a published ranking to an Excel workbook.
package export

import (
	"fmt"
	"strconv"

	excelize "github.com/xuri/excelize/v2"

	"github.com/gridironlabs/cfbrank/internal/rankings"
)

var headerRow = []string{
	"Rank", "Team", "Conference", "W", "L",
	"Score", "Results", "SOS", "SOS Rank", "Quality", "Recency",
	"Off %ile", "Def %ile", "PF", "PA", "Top-10 Wins", "Top-25 Wins", "Top-50 Wins",
}

// Export writes the ranking to fileName as a single-sheet workbook, one row
// per published team in rank order.
func Export(ranked []*rankings.Team, season int, fileName string) error {
	outExcel, err := makeExcelFile(ranked, season)
	if err != nil {
		return fmt.Errorf("Export: failed to build workbook: %w", err)
	}
	if err := outExcel.SaveAs(fileName); err != nil {
		return fmt.Errorf("Export: failed to write Excel file: %w", err)
	}
	return nil
}

func makeExcelFile(ranked []*rankings.Team, season int) (*excelize.File, error) {
	// Make an excel file in memory.
	outExcel := excelize.NewFile()
	sheetName := outExcel.GetSheetName(outExcel.GetActiveSheetIndex())
	outExcel.SetSheetName(sheetName, fmt.Sprintf("Rankings %d", season))
	sheetName = outExcel.GetSheetName(outExcel.GetActiveSheetIndex())

	for col, str := range headerRow {
		index, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		outExcel.SetCellStr(sheetName, index, str)
	}

	for i, tm := range ranked {
		if err := addRow(outExcel, sheetName, i+1, tm); err != nil {
			return nil, err
		}
	}
	return outExcel, nil
}

func addRow(outExcel *excelize.File, sheetName string, row int, tm *rankings.Team) error {
	out := []string{
		strconv.Itoa(tm.Rank),
		tm.Name,
		tm.Conference,
		strconv.Itoa(tm.Wins),
		strconv.Itoa(tm.Losses),
		fmt.Sprintf("%0.4f", tm.Score),
		fmt.Sprintf("%0.4f", tm.Results),
		fmt.Sprintf("%0.4f", tm.SOS),
		strconv.Itoa(tm.SOSRank),
		fmt.Sprintf("%0.4f", tm.Quality),
		fmt.Sprintf("%0.4f", tm.Recency),
		fmt.Sprintf("%0.3f", tm.OffPct),
		fmt.Sprintf("%0.3f", tm.DefPct),
		strconv.Itoa(tm.PF),
		strconv.Itoa(tm.PA),
		strconv.Itoa(tm.Top10Wins),
		strconv.Itoa(tm.Top25Wins),
		strconv.Itoa(tm.Top50Wins),
	}
	for col, str := range out {
		index, err := excelize.CoordinatesToCellName(col+1, row+1)
		if err != nil {
			return err
		}
		outExcel.SetCellStr(sheetName, index, str)
	}
	return nil
}
