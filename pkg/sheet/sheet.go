// Package sheet decodes uploaded xlsx workbooks into reminder rows.
package sheet

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kiransada/duebot/pkg/reminder"
)

// RequiredColumns must all be present in the header row; a workbook
// missing any of them is rejected as a whole.
var RequiredColumns = []string{
	reminder.ColMobile,
	reminder.ColOverdue,
	reminder.ColEDI,
	reminder.ColAdvance,
}

// Decode reads the first sheet of the workbook at path. The first row is
// the header; header cells are normalized (NBSP to space, trimmed,
// lower-cased) before becoming row keys. Data rows shorter than the
// header leave their trailing fields absent.
func Decode(path string) ([]reminder.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &FileError{Path: path, Err: ErrNoSheets}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	if len(rows) == 0 {
		return nil, &FileError{Path: path, Err: ErrNoHeader}
	}

	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = NormalizeHeader(cell)
	}
	for _, col := range RequiredColumns {
		if !contains(header, col) {
			return nil, &MissingColumnError{Column: col}
		}
	}

	out := make([]reminder.Row, 0, len(rows)-1)
	for _, raw := range rows[1:] {
		row := make(reminder.Row, len(header))
		for i, cell := range raw {
			if i >= len(header) || header[i] == "" {
				continue
			}
			row[header[i]] = cell
		}
		out = append(out, row)
	}
	return out, nil
}

// NormalizeHeader folds a header cell for lookup: non-breaking spaces
// become regular spaces, surrounding whitespace is trimmed and the result
// is lower-cased.
func NormalizeHeader(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.ToLower(strings.TrimSpace(s))
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
