// Package importer reads an uploaded visitor-registration workbook into the
// raw rows the normalization pipeline consumes.
package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"claritygate/normalization"
)

// VisitorSheetName is the sheet carrying the visitor table.
const VisitorSheetName = "Visitor List"

// FallbackCompanyName names the output file when the company cell is blank.
const FallbackCompanyName = "VisitorList"

// ErrVisitorSheetNotFound is returned when the uploaded workbook has no
// "Visitor List" sheet. The whole run fails; no partial output is produced.
var ErrVisitorSheetNotFound = errors.New("'Visitor List' sheet not found in uploaded workbook")

// ParseResult is the raw table extracted from one uploaded workbook.
type ParseResult struct {
	// CompanyName is the display identifier for the output filename, read
	// from the company column of the first data row.
	CompanyName string
	// Rows are the data rows under the header, truncated to 13 cells each.
	// Blank-row removal happens later, in the pipeline.
	Rows []normalization.RawRow
}

// ParseVisitorWorkbook opens the workbook and extracts the visitor table.
// The returned file stays open so the renderer can rewrite the visitor sheet
// in place and pass every other sheet through untouched; the caller owns
// closing it.
func ParseVisitorWorkbook(r io.Reader) (*excelize.File, *ParseResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	idx, err := f.GetSheetIndex(VisitorSheetName)
	if err != nil || idx < 0 {
		f.Close()
		return nil, nil, ErrVisitorSheetNotFound
	}

	rows, err := f.GetRows(VisitorSheetName)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("failed to read rows from %q: %w", VisitorSheetName, err)
	}
	if len(rows) == 0 {
		f.Close()
		return nil, nil, fmt.Errorf("sheet %q is empty", VisitorSheetName)
	}

	// The header row is ignored for data purposes; data starts at row 2.
	result := &ParseResult{CompanyName: FallbackCompanyName}
	for _, row := range rows[1:] {
		raw := make(normalization.RawRow, normalization.ColumnCount)
		for i := 0; i < normalization.ColumnCount && i < len(row); i++ {
			raw[i] = row[i]
		}
		result.Rows = append(result.Rows, raw)
	}

	if len(result.Rows) > 0 {
		if company := strings.TrimSpace(result.Rows[0].Cell(2)); company != "" {
			result.CompanyName = company
		}
	}

	return f, result, nil
}
