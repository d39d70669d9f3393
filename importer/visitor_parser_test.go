package importer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"claritygate/normalization"
)

func buildWorkbook(t *testing.T, sheet string, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		t.Fatalf("failed to name sheet: %v", err)
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("failed to write row %d: %v", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("failed to serialize workbook: %v", err)
	}
	return buf
}

func headerRow() []interface{} {
	row := make([]interface{}, normalization.ColumnCount)
	for i, label := range normalization.ColumnHeaders {
		row[i] = label
	}
	return row
}

func TestParseVisitorWorkbook(t *testing.T) {
	buf := buildWorkbook(t, VisitorSheetName, [][]interface{}{
		headerRow(),
		{1, "SBA123", "Acme Pte Ltd", "John Tan", "", "", "NRIC", "567A", "", "Singapore", "", "M", "91234567"},
		{2, "", "Acme Pte Ltd", "Mary Lee", "", "", "FIN", "321B", "2025-11-30", "China", "PR", "F", "81234567"},
	})

	f, parsed, err := ParseVisitorWorkbook(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ParseVisitorWorkbook failed: %v", err)
	}
	defer f.Close()

	if parsed.CompanyName != "Acme Pte Ltd" {
		t.Errorf("CompanyName = %q, want Acme Pte Ltd", parsed.CompanyName)
	}
	if len(parsed.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(parsed.Rows))
	}
	if got := parsed.Rows[0].Cell(3); got != "John Tan" {
		t.Errorf("row 0 full name = %q, want John Tan", got)
	}
	if got := parsed.Rows[1].Cell(10); got != "PR" {
		t.Errorf("row 1 residency = %q, want PR", got)
	}
}

func TestParseVisitorWorkbookFallbackCompany(t *testing.T) {
	buf := buildWorkbook(t, VisitorSheetName, [][]interface{}{
		headerRow(),
		{1, "", "", "John Tan", "", "", "NRIC", "567A", "", "Singapore", "", "M", "91234567"},
	})

	f, parsed, err := ParseVisitorWorkbook(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ParseVisitorWorkbook failed: %v", err)
	}
	defer f.Close()

	if parsed.CompanyName != FallbackCompanyName {
		t.Errorf("CompanyName = %q, want %q", parsed.CompanyName, FallbackCompanyName)
	}
}

func TestParseVisitorWorkbookMissingSheet(t *testing.T) {
	buf := buildWorkbook(t, "Some Other Sheet", [][]interface{}{headerRow()})

	_, _, err := ParseVisitorWorkbook(bytes.NewReader(buf.Bytes()))
	if !errors.Is(err, ErrVisitorSheetNotFound) {
		t.Fatalf("err = %v, want ErrVisitorSheetNotFound", err)
	}
}

func TestParseVisitorWorkbookUnreadable(t *testing.T) {
	if _, _, err := ParseVisitorWorkbook(bytes.NewReader([]byte("not a workbook"))); err == nil {
		t.Fatal("expected error for unreadable input")
	}
}
