// Package spreadsheet reads uploaded workbook files into the neutral
// headers-plus-rows shape the import reconciler consumes.
package spreadsheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// TableData is the parsed content of the first worksheet: row 1 as headers,
// the remaining rows as raw cell values.
type TableData struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Parse reads an xlsx workbook and extracts the first sheet.
func Parse(r io.Reader) (*TableData, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	data := &TableData{Headers: []string{}, Rows: [][]string{}}
	if len(rows) > 0 {
		data.Headers = rows[0]
		data.Rows = rows[1:]
	}
	return data, nil
}
