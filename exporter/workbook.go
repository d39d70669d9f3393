// Package exporter renders a cleaned batch back into the uploaded workbook:
// the visitor sheet is rewritten in canonical order with issue highlights
// and trailing summary rows, every other sheet passes through untouched.
package exporter

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"claritygate/normalization"
	"claritygate/quality"
)

// SheetName is the sheet the renderer rewrites; it mirrors the importer's
// lookup so the cleaned table lands where the original was read.
const SheetName = "Visitor List"

// Summary row labels appended under the data rows.
const (
	VehiclesLabel      = "Vehicles"
	TotalVisitorsLabel = "Total Visitors"
)

// singapore is the fixed reference time zone for output naming. The offset
// fallback covers stripped-down containers without tzdata.
var singapore = loadSingapore()

func loadSingapore() *time.Location {
	loc, err := time.LoadLocation("Asia/Singapore")
	if err != nil {
		return time.FixedZone("SGT", 8*60*60)
	}
	return loc
}

// OutputFilename builds "{company}_{YYYYMMDD}.xlsx" with the date taken in
// Asia/Singapore regardless of server locale.
func OutputFilename(company string, now time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", company, now.In(singapore).Format("20060102"))
}

// RenderCleanedWorkbook rewrites the visitor sheet of the open workbook with
// the cleaned batch, applies one highlight per flagged cell and appends the
// summary rows. Sheets other than the visitor sheet are left as uploaded.
func RenderCleanedWorkbook(f *excelize.File, batch *normalization.Batch, issues []quality.Issue, sum normalization.Summary) error {
	sheet := SheetName

	if err := clearSheet(f, sheet); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	header := make([]interface{}, normalization.ColumnCount)
	for i, label := range normalization.ColumnHeaders {
		header[i] = label
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	lastHeaderCell, _ := excelize.CoordinatesToCellName(normalization.ColumnCount, 1)
	if err := f.SetCellStyle(sheet, "A1", lastHeaderCell, headerStyle); err != nil {
		return fmt.Errorf("failed to style header row: %w", err)
	}

	for i := range batch.Records {
		rec := &batch.Records[i]
		row := []interface{}{
			rec.SerialNumber,
			rec.VehiclePlates,
			rec.CompanyName,
			rec.FullName,
			rec.FirstName,
			rec.LastName,
			rec.IDType,
			rec.IDSuffix,
			rec.WorkPermitExpiry,
			rec.Nationality,
			rec.Residency,
			rec.Gender,
			rec.MobileNumber,
		}
		anchor, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, anchor, &row); err != nil {
			return fmt.Errorf("failed to write record row %d: %w", i+2, err)
		}
	}

	if err := applyHighlights(f, sheet, issues); err != nil {
		return err
	}
	if err := writeSummaryRows(f, sheet, len(batch.Records), sum); err != nil {
		return err
	}

	for i := 0; i < normalization.ColumnCount; i++ {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, 18); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	return nil
}

// applyHighlights marks every flagged (record, field) pair. Data rows start
// at sheet row 2, so record index i renders at row i+2.
func applyHighlights(f *excelize.File, sheet string, issues []quality.Issue) error {
	highlightStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FFF2A8"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create highlight style: %w", err)
	}

	for _, issue := range issues {
		for _, field := range issue.Fields {
			col := field.ColumnIndex()
			if col < 0 {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, issue.RecordIndex+2)
			if err != nil {
				return fmt.Errorf("failed to address issue cell: %w", err)
			}
			if err := f.SetCellStyle(sheet, cell, cell, highlightStyle); err != nil {
				return fmt.Errorf("failed to highlight cell %s: %w", cell, err)
			}
		}
	}
	return nil
}

// writeSummaryRows appends the vehicle roster (only when plates exist) and
// the mandatory visitor count under the data rows.
func writeSummaryRows(f *excelize.File, sheet string, recordCount int, sum normalization.Summary) error {
	row := recordCount + 2

	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create summary label style: %w", err)
	}

	if sum.Vehicles != "" {
		values := []interface{}{VehiclesLabel, sum.Vehicles}
		anchor, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheet, anchor, &values); err != nil {
			return fmt.Errorf("failed to write vehicles summary row: %w", err)
		}
		if err := f.SetCellStyle(sheet, anchor, anchor, labelStyle); err != nil {
			return fmt.Errorf("failed to style vehicles summary row: %w", err)
		}
		row++
	}

	values := []interface{}{TotalVisitorsLabel, sum.VisitorCount}
	anchor, _ := excelize.CoordinatesToCellName(1, row)
	if err := f.SetSheetRow(sheet, anchor, &values); err != nil {
		return fmt.Errorf("failed to write visitor count row: %w", err)
	}
	if err := f.SetCellStyle(sheet, anchor, anchor, labelStyle); err != nil {
		return fmt.Errorf("failed to style visitor count row: %w", err)
	}
	return nil
}

// clearSheet removes every existing row so dropped blank rows and stale
// trailing content cannot survive under the rewritten table.
func clearSheet(f *excelize.File, sheet string) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("failed to read sheet %q for clearing: %w", sheet, err)
	}
	for i := len(rows); i >= 1; i-- {
		if err := f.RemoveRow(sheet, i); err != nil {
			return fmt.Errorf("failed to clear row %d: %w", i, err)
		}
	}
	return nil
}
