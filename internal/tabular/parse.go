package tabular

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// Table is the normalized form of one uploaded file: the header row plus
// every non-empty data row, each row keyed by header. Rows shorter than
// the header line are padded with empty strings. When two columns carry
// the same header, the first column wins.
type Table struct {
	Headers []string
	Rows    []map[string]string
}

// Preview is a bounded view of a table: the first rows plus the total
// row count, which always equals len(Rows) of a full Parse of the same
// input so that preview and commit agree on row numbering.
type Preview struct {
	Headers   []string
	Rows      []map[string]string
	TotalRows int
}

// Parse reads CSV text into a Table. The first line defines column
// identity; rows whose cells are all empty are dropped before counting.
func Parse(text string) (*Table, error) {
	text = strings.TrimPrefix(text, "\ufeff")

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileParse, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no header row", ErrFileParse)
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		if allEmpty(rec) {
			continue
		}
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if _, taken := row[header]; taken {
				continue
			}
			if i < len(rec) {
				row[header] = rec[i]
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	return &Table{Headers: headers, Rows: rows}, nil
}

// PreviewTable parses text and returns at most limit rows along with the
// total row count.
func PreviewTable(text string, limit int) (*Preview, error) {
	table, err := Parse(text)
	if err != nil {
		return nil, err
	}

	rows := table.Rows
	if limit >= 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	return &Preview{
		Headers:   table.Headers,
		Rows:      rows,
		TotalRows: len(table.Rows),
	}, nil
}

func allEmpty(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
