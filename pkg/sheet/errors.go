package sheet

import (
	"errors"
	"fmt"
)

// ErrNoSheets indicates the workbook contains no sheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// ErrNoHeader indicates the first sheet has no header row.
var ErrNoHeader = errors.New("sheet has no header row")

// FileError wraps a file-level decode failure. These abort the whole
// batch, unlike row-level problems.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("cannot read workbook %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// MissingColumnError indicates a required header column is absent.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column %q not found in header", e.Column)
}
