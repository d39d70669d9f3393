package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"claritygate/normalization"
)

// TemplateFilename is the download name for the sample workbook.
const TemplateFilename = "sample_template.xlsx"

// exampleRow shows submitters one correctly filled visitor line.
var exampleRow = []interface{}{
	1,
	"SBA1234A",
	"Acme Logistics Pte Ltd",
	"Tan Wei Ming",
	"Tan",
	"Wei Ming",
	"NRIC",
	"123A",
	"",
	"Singapore",
	"",
	"Male",
	"91234567",
}

// BuildTemplate generates the 13-column sample workbook submitters download
// before filling in their visitor list. The caller owns closing the file.
func BuildTemplate() (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name template sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create template header style: %w", err)
	}

	header := make([]interface{}, normalization.ColumnCount)
	for i, label := range normalization.ColumnHeaders {
		header[i] = label
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write template header: %w", err)
	}
	lastHeaderCell, _ := excelize.CoordinatesToCellName(normalization.ColumnCount, 1)
	if err := f.SetCellStyle(SheetName, "A1", lastHeaderCell, headerStyle); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to style template header: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A2", &exampleRow); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write template example row: %w", err)
	}

	for i := 0; i < normalization.ColumnCount; i++ {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(SheetName, col, col, 18); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set template column width: %w", err)
		}
	}

	return f, nil
}
