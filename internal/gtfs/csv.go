package gtfs

import (
	"encoding/csv"
	"strings"
)

// parseCSVLine implements the CSV parsing contract of SPEC_FULL.md §4.1: a
// raw line has its surrounding whitespace and trailing CR/LF trimmed, then
// one layer of outer double quotes is stripped if the whole line is wrapped
// in them, then the remainder is split on commas with standard double-quote
// escaping ("" inside a quoted field is a literal quote).
//
// Grounded on original_source/RoutingEngine's algo.cpp stripOuterQuotes /
// parseCSVLine, reimplemented on top of encoding/csv the way
// health-route-server/preprocessing/gtfs.go uses it for the rest of the
// field splitting.
func parseCSVLine(raw string) ([]string, error) {
	line := strings.TrimSpace(raw)
	if len(line) >= 2 && line[0] == '"' && line[len(line)-1] == '"' {
		line = line[1 : len(line)-1]
	}

	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	record, err := r.Read()
	if err != nil {
		return nil, err
	}
	for i, f := range record {
		record[i] = strings.TrimSpace(f)
	}
	return record, nil
}

// headerIndex maps column name to position, matching
// preprocessing/gtfs.go's headerIndex helper.
func headerIndex(header []string) map[string]int {
	m := make(map[string]int, len(header))
	for i, name := range header {
		m[strings.TrimSpace(name)] = i
	}
	return m
}

// rowGetter closes over a parsed row and its header index so callers can
// fetch a column by name; missing columns and out-of-range rows both
// resolve to "" rather than panicking, matching the loader's tolerance of
// short rows.
func rowGetter(header map[string]int, row []string) func(col string) string {
	return func(col string) string {
		i, ok := header[col]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}
}
