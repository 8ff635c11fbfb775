package datasource

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/odvcencio/gridkit/pkg/grid"
	"github.com/odvcencio/gridkit/pkg/logging"
)

// LoadXLSX loads the first sheet of a workbook into an in-memory Table.
// The first row supplies column titles; every later row becomes a data
// row. Short rows are padded with empty values. logger may be nil.
func LoadXLSX(path string, logger *logging.Logger) (*Table, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return NewTable(nil), nil
	}

	header := rows[0]
	cols := make([]grid.Column, 0, len(header))
	for i, title := range header {
		if title == "" {
			title = fmt.Sprintf("col%d", i+1)
		}
		cols = append(cols, grid.Column{ID: title, Title: title})
	}

	t := NewTable(cols)
	for _, row := range rows[1:] {
		values := make(map[string]string, len(cols))
		for i, col := range cols {
			if i < len(row) {
				values[col.ID] = row[i]
			}
		}
		t.AppendRow(values)
	}

	logger.Info(logging.CategoryDataSource, "xlsx_loaded", "", map[string]any{
		"sheet": sheet, "rows": t.RowCount(), "columns": len(cols),
	})
	return t, nil
}
