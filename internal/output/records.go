package output

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Column maps a table header to a field of an API record. Field may be a
// dotted path into nested objects, e.g. "accountInfo.type".
type Column struct {
	Header string
	Field  string
}

// Headers returns the header row for cols.
func Headers(cols []Column) []string {
	h := make([]string, len(cols))
	for i, c := range cols {
		h[i] = c.Header
	}
	return h
}

// Records extracts the objects from a decoded JSON value. A single object
// yields one record; non-object array elements are skipped.
func Records(data any) []map[string]any {
	switch v := data.(type) {
	case map[string]any:
		return []map[string]any{v}
	case []any:
		records := make([]map[string]any, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				records = append(records, m)
			}
		}
		return records
	case []map[string]any:
		return v
	}
	return nil
}

// Rows renders records as table rows following cols.
func Rows(records []map[string]any, cols []Column) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = Cell(Lookup(r, c.Field))
		}
		rows = append(rows, row)
	}
	return rows
}

// Lookup resolves a dotted field path in a record.
func Lookup(record map[string]any, field string) any {
	var cur any = record
	for _, part := range strings.Split(field, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[part]
	}
	return cur
}

// Cell formats a decoded JSON value for a table or CSV cell. Numbers never
// use exponent notation so that entity IDs stay readable.
func Cell(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// FieldNames returns the sorted union of top-level keys across records.
func FieldNames(records []map[string]any) []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range records {
		for k := range r {
			if !seen[k] {
				seen[k] = true
				names = append(names, k)
			}
		}
	}
	sort.Strings(names)
	return names
}

// ColumnsFor builds one column per field, using the field name as header.
func ColumnsFor(fields []string) []Column {
	cols := make([]Column, len(fields))
	for i, f := range fields {
		cols[i] = Column{Header: f, Field: f}
	}
	return cols
}
