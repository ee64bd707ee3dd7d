package models

// ConversionPreview is returned by the preview endpoint so the UI can render
// the converted table inline before the user downloads it.
// @Description ConversionPreview carries the converted table for inline display: the destination column labels, every converted data row in input order, and the row count.
type ConversionPreview struct {
	ConversionID string     `json:"conversion_id"` // Identifier assigned to this conversion request
	FileName     string     `json:"file_name"`     // Name of the uploaded file
	Columns      []string   `json:"columns"`       // Destination column labels, in output order
	Rows         [][]string `json:"rows"`          // Converted data rows, in input order
	RowCount     int        `json:"row_count"`     // Number of converted data rows
}
