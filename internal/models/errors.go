package models

// APIError represents a standardized error response format for the API.
// @Description APIError represents a standardized error response format, including an application-specific error code, a human-readable message, and optional details.
type APIError struct {
	Code    string      `json:"code"`              // Application-specific error code (e.g., "MISSING_COLUMNS", "VALIDATION_ERROR")
	Message string      `json:"message"`           // Human-readable message describing the error
	Details interface{} `json:"details,omitempty"` // Optional field for additional error details (e.g., the list of missing columns)
}

// Predefined application-specific error codes
const (
	// Generic Errors
	ErrorCodeInternalServerError = "INTERNAL_SERVER_ERROR"
	ErrorCodeValidation          = "VALIDATION_ERROR" // General request validation failure (e.g., no file in the form)

	// Upload & Parsing Errors
	ErrorCodeInvalidFileType = "INVALID_FILE_TYPE" // Uploaded file does not carry a .csv extension
	ErrorCodeMalformedCSV    = "MALFORMED_CSV"     // Uploaded file could not be parsed as tabular CSV

	// Conversion Errors
	ErrorCodeMissingColumns = "MISSING_COLUMNS" // Required source columns are absent from the uploaded header row
)
