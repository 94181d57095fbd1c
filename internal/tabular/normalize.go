// Package tabular turns uploaded spreadsheet or CSV bytes into a single
// logical table: an ordered header list plus ordered rows of raw string
// values.
package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// ErrFileParse marks malformed workbook or CSV input. It is fatal for
// the whole import call; no partial table is ever produced.
var ErrFileParse = errors.New("failed to parse file")

// NormalizeToCSV converts a raw upload into CSV text. Workbook formats
// are decoded from their first sheet, with cell values rendered as their
// display text; anything else is treated as already being CSV and passed
// through as UTF-8 text.
func NormalizeToCSV(data []byte, filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return workbookToCSV(data)
	case ".xls":
		return legacyWorkbookToCSV(data)
	default:
		return string(data), nil
	}
}

func workbookToCSV(data []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFileParse, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("%w: workbook has no sheets", ErrFileParse)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFileParse, err)
	}
	return rowsToCSV(rows)
}

func legacyWorkbookToCSV(data []byte) (string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFileParse, err)
	}
	if wb.NumSheets() == 0 {
		return "", fmt.Errorf("%w: workbook has no sheets", ErrFileParse)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return "", fmt.Errorf("%w: workbook has no sheets", ErrFileParse)
	}

	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, 0, row.LastCol()+1)
		for j := 0; j <= row.LastCol(); j++ {
			cells = append(cells, row.Col(j))
		}
		rows = append(rows, cells)
	}
	return rowsToCSV(rows)
}

func rowsToCSV(rows [][]string) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	for _, row := range rows {
		if row == nil {
			row = []string{""}
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("%w: %v", ErrFileParse, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFileParse, err)
	}
	return b.String(), nil
}
