package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet pairs a worksheet name with its tabular content.
type Sheet struct {
	Name string
	Data Dataset
}

// ExcelExporter renders one workbook with a sheet per dataset.
type ExcelExporter struct{}

// NewExcelExporter constructs an xlsx exporter.
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Render produces xlsx bytes. Sheets with no rows are skipped, matching the
// export contract of the consuming UI.
func (e *ExcelExporter) Render(sheets []Sheet) ([]byte, error) {
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx requires at least one sheet")
	}

	file := excelize.NewFile()
	defer file.Close()

	wrote := false
	for _, sheet := range sheets {
		if len(sheet.Data.Rows) == 0 {
			continue
		}
		index, err := file.NewSheet(sheet.Name)
		if err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", sheet.Name, err)
		}
		if !wrote {
			file.SetActiveSheet(index)
		}

		for col, header := range sheet.Data.Headers {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return nil, fmt.Errorf("address header cell: %w", err)
			}
			if err := file.SetCellValue(sheet.Name, cell, header); err != nil {
				return nil, fmt.Errorf("write header cell: %w", err)
			}
		}

		for rowIdx, row := range sheet.Data.Rows {
			for col, header := range sheet.Data.Headers {
				cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
				if err != nil {
					return nil, fmt.Errorf("address data cell: %w", err)
				}
				if err := file.SetCellValue(sheet.Name, cell, row[header]); err != nil {
					return nil, fmt.Errorf("write data cell: %w", err)
				}
			}
		}
		wrote = true
	}

	if !wrote {
		return nil, fmt.Errorf("xlsx export has no non-empty sheets")
	}

	// Drop the default sheet excelize creates alongside ours, unless a
	// dataset claimed the name.
	keepDefault := false
	for _, sheet := range sheets {
		if sheet.Name == "Sheet1" {
			keepDefault = true
			break
		}
	}
	if !keepDefault {
		if err := file.DeleteSheet("Sheet1"); err != nil {
			return nil, fmt.Errorf("remove default sheet: %w", err)
		}
	}

	buf := &bytes.Buffer{}
	if err := file.Write(buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
