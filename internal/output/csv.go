package output

import (
	"encoding/csv"
	"io"
)

// PrintCSV writes headers and rows as standard CSV to w.
func PrintCSV(w io.Writer, headers []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// PrintRecordsCSV writes records as CSV with one column per field found in
// any record.
func PrintRecordsCSV(w io.Writer, records []map[string]any) error {
	fields := FieldNames(records)
	return PrintCSV(w, fields, Rows(records, ColumnsFor(fields)))
}
