package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"converter-service/internal/mapping"
	"converter-service/internal/models"
)

var router *gin.Engine

const sampleExportCSV = `first_name,last_name,email_1,email_2,email_3,phone_1,phone_2,address,city,state,zip_code,household_income
Jane,Doe,jane@x.com,,,555-1000,,1 Main St,Springfield,IL,62704,85000
John,Smith,john@x.com,john.s@y.com,,555-2000,555-2001,2 Oak Ave,Portland,OR,97201,120000
`

const missingZipCSV = `first_name,last_name,email_1,email_2,email_3,phone_1,phone_2,address,city,state,household_income
Jane,Doe,jane@x.com,,,555-1000,,1 Main St,Springfield,IL,85000
`

// TestMain sets up the router with the default mapping and runs the tests.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	router = gin.Default()
	api := NewAPI(mapping.Default())
	api.RegisterRoutes(router)

	os.Exit(m.Run())
}

// uploadRequest builds a multipart POST request carrying the given file.
func uploadRequest(t *testing.T, url, fileName, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(uploadFieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest("POST", url, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeAPIError(t *testing.T, w *httptest.ResponseRecorder) models.APIError {
	t.Helper()

	var apiErr models.APIError
	err := json.Unmarshal(w.Body.Bytes(), &apiErr)
	require.NoError(t, err, "Error responses should decode as models.APIError")
	return apiErr
}

func TestUploadPage(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Real Intent to Pipedrive Converter")
	assert.Contains(t, w.Body.String(), `accept=".csv"`)
	assert.Contains(t, w.Body.String(), "household_income", "The mapping table should list the expected source columns")
}

func TestGetMapping(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/mapping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var m mapping.Mapping
	err := json.Unmarshal(w.Body.Bytes(), &m)
	require.NoError(t, err)
	require.Len(t, m, 12)
	assert.Equal(t, mapping.ColumnMapping{Source: "first_name", Label: "First name"}, m[0])
	assert.Equal(t, mapping.ColumnMapping{Source: "household_income", Label: "Household income"}, m[11])
}

func TestPreviewConversion(t *testing.T) {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "/api/v1/conversions/preview", "contacts.csv", sampleExportCSV))

	assert.Equal(t, http.StatusOK, w.Code)

	var preview models.ConversionPreview
	err := json.Unmarshal(w.Body.Bytes(), &preview)
	require.NoError(t, err)

	assert.Equal(t, "contacts.csv", preview.FileName)
	assert.Equal(t, mapping.Default().Labels(), preview.Columns)
	require.Equal(t, 2, preview.RowCount)
	require.Len(t, preview.Rows, 2)
	assert.Equal(t, []string{"Jane", "Doe", "jane@x.com", "", "", "555-1000", "", "1 Main St", "Springfield", "IL", "62704", "85000"}, preview.Rows[0])
	assert.Equal(t, []string{"John", "Smith", "john@x.com", "john.s@y.com", "", "555-2000", "555-2001", "2 Oak Ave", "Portland", "OR", "97201", "120000"}, preview.Rows[1])

	_, err = uuid.Parse(preview.ConversionID)
	assert.NoError(t, err, "ConversionID should be a UUID")
}

func TestPreviewConversion_ExtraColumnsDropped(t *testing.T) {
	input := `lead_score,first_name,last_name,email_1,email_2,email_3,phone_1,phone_2,address,city,state,zip_code,household_income
97,Jane,Doe,jane@x.com,,,555-1000,,1 Main St,Springfield,IL,62704,85000
`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "/api/v1/conversions/preview", "contacts.csv", input))

	assert.Equal(t, http.StatusOK, w.Code)

	var preview models.ConversionPreview
	err := json.Unmarshal(w.Body.Bytes(), &preview)
	require.NoError(t, err)

	assert.NotContains(t, preview.Columns, "lead_score")
	require.Len(t, preview.Rows, 1)
	assert.Equal(t, "Jane", preview.Rows[0][0], "Unmapped columns should be dropped without shifting values")
}

func TestPreviewConversion_MissingColumns(t *testing.T) {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "/api/v1/conversions/preview", "contacts.csv", missingZipCSV))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	apiErr := decodeAPIError(t, w)
	assert.Equal(t, models.ErrorCodeMissingColumns, apiErr.Code)
	assert.Contains(t, apiErr.Message, "zip_code")

	details, ok := apiErr.Details.(map[string]interface{})
	require.True(t, ok, "Details should carry the missing column list")
	assert.Equal(t, []interface{}{"zip_code"}, details["missing_columns"])
}

func TestPreviewConversion_NoFile(t *testing.T) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/conversions/preview", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.ErrorCodeValidation, decodeAPIError(t, w).Code)
}

func TestPreviewConversion_InvalidFileType(t *testing.T) {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "/api/v1/conversions/preview", "contacts.txt", sampleExportCSV))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.ErrorCodeInvalidFileType, decodeAPIError(t, w).Code)
}

func TestPreviewConversion_MalformedCSV(t *testing.T) {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "/api/v1/conversions/preview", "contacts.csv", "first_name,last_name\n\"oops,Doe\n"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.ErrorCodeMalformedCSV, decodeAPIError(t, w).Code)
}

func TestPreviewConversion_EmptyFile(t *testing.T) {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "/api/v1/conversions/preview", "contacts.csv", ""))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	apiErr := decodeAPIError(t, w)
	assert.Equal(t, models.ErrorCodeMalformedCSV, apiErr.Code)
}

func TestDownloadConversion(t *testing.T) {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "/api/v1/conversions/download", "contacts.csv", sampleExportCSV))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ConvertedFileName)

	expected := `First name,Last name,Email,Email 2,Email 3,Phone,Phone 2,Address,City,State,Postal code,Household income
Jane,Doe,jane@x.com,,,555-1000,,1 Main St,Springfield,IL,62704,85000
John,Smith,john@x.com,john.s@y.com,,555-2000,555-2001,2 Oak Ave,Portland,OR,97201,120000
`
	assert.Equal(t, expected, w.Body.String())
}

func TestDownloadConversion_MissingColumns(t *testing.T) {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "/api/v1/conversions/download", "contacts.csv", missingZipCSV))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json", "No CSV output should be produced on failure")

	apiErr := decodeAPIError(t, w)
	assert.Equal(t, models.ErrorCodeMissingColumns, apiErr.Code)
}

func TestDownloadConversion_HeaderOnlyFile(t *testing.T) {
	input := "first_name,last_name,email_1,email_2,email_3,phone_1,phone_2,address,city,state,zip_code,household_income\n"

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "/api/v1/conversions/download", "contacts.csv", input))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "First name,Last name,Email,Email 2,Email 3,Phone,Phone 2,Address,City,State,Postal code,Household income\n", w.Body.String())
}
