package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Row maps a column header to the cell value on one data row. Columns
// that are empty on the row are absent from the map.
type Row map[string]string

// Reader yields the data rows of a spreadsheet file.
type Reader interface {
	Rows(path string) ([]Row, error)
}

// XLSXReader reads the first sheet of an .xlsx workbook. The first row
// is the header; every following non-blank row becomes one Row keyed
// by those headers. Cells beyond the header width are ignored.
type XLSXReader struct{}

func (XLSXReader) Rows(path string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	headers := raw[0]
	rows := make([]Row, 0, len(raw)-1)

	for _, cells := range raw[1:] {
		if blank(cells) {
			continue
		}
		row := make(Row, len(headers))
		for i, header := range headers {
			if header == "" || i >= len(cells) || cells[i] == "" {
				continue
			}
			row[header] = cells[i]
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func blank(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
