package convert

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"converter-service/internal/mapping"
)

// Table holds tabular data parsed from a CSV file: a header row and the data
// rows beneath it, in file order.
type Table struct {
	Headers []string
	Rows    [][]string
}

// RowCount returns the number of data rows in the table.
func (t Table) RowCount() int {
	return len(t.Rows)
}

// MissingColumnsError reports the mapping source keys that are absent from an
// uploaded file's header row. Conversion produces no output when the header
// check fails, so the caller can surface the full list to the user.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("the uploaded file does not contain the required columns: %s", strings.Join(e.Columns, ", "))
}

// ReadTable parses CSV content into a Table. The first record is treated as
// the header row and every following record as a data row. Rows may carry
// fewer fields than the header (exports are sometimes ragged); rows with more
// fields than the header are rejected as malformed.
func ReadTable(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return Table{}, fmt.Errorf("file is empty: no header row found")
		}
		return Table{}, fmt.Errorf("failed to read header row: %w", err)
	}

	table := Table{Headers: headers, Rows: make([][]string, 0)}
	rowNum := 1
	for {
		row, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return Table{}, fmt.Errorf("failed to read data row: %w", err)
		}
		rowNum++

		if len(row) > len(headers) {
			return Table{}, fmt.Errorf("row %d has %d fields, expected at most %d", rowNum, len(row), len(headers))
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// Convert projects an input table onto the given column mapping. The header
// row of the result carries the destination labels in mapping order, and each
// data row is restricted to the mapped source columns in the same order.
// Input columns not named by the mapping are dropped. Short rows read as
// empty cells for the columns they do not reach.
//
// If any mapping source key is missing from the input header row, Convert
// returns a MissingColumnsError listing every missing key in mapping order
// and produces no output.
func Convert(t Table, m mapping.Mapping) (Table, error) {
	index := make(map[string]int, len(t.Headers))
	for i, header := range t.Headers {
		// First occurrence wins if the input repeats a header.
		if _, ok := index[header]; !ok {
			index[header] = i
		}
	}

	var missing []string
	for _, cm := range m {
		if _, ok := index[cm.Source]; !ok {
			missing = append(missing, cm.Source)
		}
	}
	if len(missing) > 0 {
		return Table{}, &MissingColumnsError{Columns: missing}
	}

	converted := Table{
		Headers: m.Labels(),
		Rows:    make([][]string, len(t.Rows)),
	}
	for ri, row := range t.Rows {
		out := make([]string, len(m))
		for ci, cm := range m {
			if pos := index[cm.Source]; pos < len(row) {
				out[ci] = row[pos]
			}
		}
		converted.Rows[ri] = out
	}

	return converted, nil
}

// WriteCSV serializes a table as UTF-8 CSV, header row first, each row
// terminated by a newline.
func WriteCSV(t Table) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(t.Headers); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}
	for _, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write data row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV output: %w", err)
	}
	return buf.Bytes(), nil
}
