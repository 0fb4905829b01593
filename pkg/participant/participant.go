package participant

import "contestboard/pkg/spreadsheet"

// NotAvailable is the sentinel for a column absent on a source row.
const NotAvailable = "N/A"

// Column headers expected in uploaded spreadsheets.
const (
	colName    = "Name"
	colRollNo  = "Roll No"
	colYear    = "Year"
	colSection = "Section"
)

// Record is the normalized participant shape the front-end renders.
type Record struct {
	Name    string `json:"name"`
	RollNo  string `json:"rollNo"`
	Year    string `json:"year"`
	Section string `json:"section"`
}

// FromRow maps one spreadsheet row onto a Record.
func FromRow(row spreadsheet.Row) Record {
	return Record{
		Name:    field(row, colName),
		RollNo:  field(row, colRollNo),
		Year:    field(row, colYear),
		Section: field(row, colSection),
	}
}

func field(row spreadsheet.Row, column string) string {
	if v, ok := row[column]; ok && v != "" {
		return v
	}
	return NotAvailable
}
