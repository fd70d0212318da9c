package sheet

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/kiransada/duebot/pkg/reminder"
)

func writeWorkbook(t *testing.T, header []interface{}, data [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue("Sheet1", cell, h)
	}
	for r, row := range data {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue("Sheet1", cell, v)
		}
	}

	path := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save test workbook: %v", err)
	}
	return path
}

func TestDecode(t *testing.T) {
	// Header with mixed case, NBSP and padding: all must normalize away.
	path := writeWorkbook(t,
		[]interface{}{"Mobile No", " OVER DUE ", "EDI Amount", "Advance", "Customer Name", "Loan A/C No"},
		[][]interface{}{
			{"9876543210", 1000, 500, 200, "Ravi", "LN1234"},
			{"12345", "1,234.50", "", "", "Siva"},
		})

	rows, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	if rows[0][reminder.ColMobile] != "9876543210" {
		t.Errorf("mobile = %q", rows[0][reminder.ColMobile])
	}
	if rows[0][reminder.ColOverdue] != "1000" {
		t.Errorf("over due = %q", rows[0][reminder.ColOverdue])
	}
	if rows[0][reminder.ColCustomer] != "Ravi" {
		t.Errorf("customer = %q", rows[0][reminder.ColCustomer])
	}

	// Short second row: trailing loan a/c column absent, reads as empty.
	if got := rows[1][reminder.ColLoanNo]; got != "" {
		t.Errorf("loan a/c = %q, want empty", got)
	}
}

func TestDecodeMissingColumn(t *testing.T) {
	path := writeWorkbook(t,
		[]interface{}{"mobile no", "over due", "advance"},
		[][]interface{}{{"9876543210", 100, 0}})

	_, err := Decode(path)
	var mce *MissingColumnError
	if !errors.As(err, &mce) {
		t.Fatalf("expected MissingColumnError, got %v", err)
	}
	if mce.Column != reminder.ColEDI {
		t.Errorf("missing column = %q, want %q", mce.Column, reminder.ColEDI)
	}
}

func TestDecodeUnreadableFile(t *testing.T) {
	_, err := Decode(filepath.Join(t.TempDir(), "nope.xlsx"))
	var fe *FileError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FileError, got %v", err)
	}
}

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Mobile No", "mobile no"},
		{"Mobile No", "mobile no"},
		{"  OVER DUE  ", "over due"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeHeader(tt.input); got != tt.want {
			t.Errorf("NormalizeHeader(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
