// Package spreadsheet holds the xlsx codec for roster uploads and archive
// snapshots. Both directions share one column convention: the header row names
// the fields, one entity per row.
package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/acadreview/reviewhub/internal/core/ports"
)

// RosterParser reads roster uploads from their first sheet.
type RosterParser struct{}

func NewRosterParser() *RosterParser {
	return &RosterParser{}
}

// Parse maps the header row to columns and returns one RosterRow per data row.
// Headers match case-insensitively. A missing column yields empty strings for
// every row rather than an error; fully empty rows are skipped.
func (p *RosterParser) Parse(r io.Reader, codeColumn string) ([]ports.RosterRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return []ports.RosterRow{}, nil
	}

	cols := headerIndex(rows[0])
	out := make([]ports.RosterRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		parsed := ports.RosterRow{
			Code:        cell(row, cols, codeColumn),
			FullName:    cell(row, cols, "fullName"),
			FacultyCode: cell(row, cols, "facultyCode"),
			Email:       cell(row, cols, "email"),
		}
		if parsed == (ports.RosterRow{}) {
			continue
		}
		out = append(out, parsed)
	}
	return out, nil
}

func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return cols
}

// cell returns the named column's value for this row. Trailing cells omitted
// by the reader count as empty.
func cell(row []string, cols map[string]int, name string) string {
	i, ok := cols[strings.ToLower(name)]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
