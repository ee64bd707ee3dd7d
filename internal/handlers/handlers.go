package handlers

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"converter-service/internal/convert"
	"converter-service/internal/mapping"
	"converter-service/internal/models"
)

// ConvertedFileName is the file name offered when downloading a converted
// export, ready to hand to the Pipedrive import wizard.
const ConvertedFileName = "converted_pipedrive_file.csv"

// uploadFieldName is the multipart form field carrying the uploaded file.
const uploadFieldName = "file"

// API provides handlers for the converter service.
type API struct {
	mapping mapping.Mapping
}

// NewAPI creates a new API handler with the given column mapping.
func NewAPI(m mapping.Mapping) *API {
	return &API{mapping: m}
}

// RegisterRoutes registers the converter routes with the given Gin router.
func (a *API) RegisterRoutes(router *gin.Engine) {
	router.SetHTMLTemplate(uploadPageTemplate)
	router.GET("/", a.uploadPageHandler)

	v1 := router.Group("/api/v1")

	v1.GET("/mapping", a.getMappingHandler)

	conversionRoutes := v1.Group("/conversions")
	{
		conversionRoutes.POST("/preview", a.previewConversionHandler)
		conversionRoutes.POST("/download", a.downloadConversionHandler)
	}
}

// convertUpload reads the uploaded CSV out of the request and converts it
// with the active mapping. On failure it writes the error response itself and
// reports ok=false; handlers only deal with the success path.
func (a *API) convertUpload(c *gin.Context) (convert.Table, string, bool) {
	fileHeader, err := c.FormFile(uploadFieldName)
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "No file was uploaded. Attach a CSV export as the 'file' form field.", nil)
		return convert.Table{}, "", false
	}

	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".csv") {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeInvalidFileType, "Only .csv files can be converted.", gin.H{"file_name": fileHeader.Filename})
		return convert.Table{}, "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file %s: %v", fileHeader.Filename, err)
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to open the uploaded file.", nil)
		return convert.Table{}, "", false
	}
	defer file.Close()

	table, err := convert.ReadTable(file)
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeMalformedCSV, "The uploaded file could not be parsed as CSV.", gin.H{"reason": err.Error()})
		return convert.Table{}, "", false
	}

	result, err := convert.Convert(table, a.mapping)
	if err != nil {
		var missingErr *convert.MissingColumnsError
		if errors.As(err, &missingErr) {
			RespondWithError(c, http.StatusUnprocessableEntity, models.ErrorCodeMissingColumns, missingErr.Error(), gin.H{"missing_columns": missingErr.Columns})
			return convert.Table{}, "", false
		}
		log.Printf("Error converting uploaded file %s: %v", fileHeader.Filename, err)
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to convert the uploaded file.", nil)
		return convert.Table{}, "", false
	}

	return result, fileHeader.Filename, true
}

// --- Conversion Handlers ---

// previewConversionHandler godoc
// @Summary Preview a converted export
// @Description Upload a Real Intent CSV export and receive the Pipedrive-ready table as JSON for inline display. Input columns not covered by the mapping are dropped from the output; re-create them in Pipedrive as custom fields if they are needed.
// @Tags conversions
// @Accept mpfd
// @Produce json
// @Param file formData file true "Real Intent CSV export"
// @Success 200 {object} models.ConversionPreview "Converted table"
// @Failure 400 {object} models.APIError "Bad Request (no file, wrong file type, or malformed CSV - see 'code' in response)"
// @Failure 422 {object} models.APIError "Unprocessable Entity (required columns missing - see 'details.missing_columns')"
// @Failure 500 {object} models.APIError "Internal Server Error"
// @Router /conversions/preview [post]
func (a *API) previewConversionHandler(c *gin.Context) {
	converted, fileName, ok := a.convertUpload(c)
	if !ok {
		return
	}

	preview := models.ConversionPreview{
		ConversionID: uuid.New().String(),
		FileName:     fileName,
		Columns:      converted.Headers,
		Rows:         converted.Rows,
		RowCount:     converted.RowCount(),
	}

	log.Printf("Successfully converted %d records from %s (conversion %s)", preview.RowCount, fileName, preview.ConversionID)
	RespondWithSuccess(c, http.StatusOK, preview)
}

// downloadConversionHandler godoc
// @Summary Download a converted export
// @Description Upload a Real Intent CSV export and receive the converted file as a UTF-8 CSV attachment named converted_pipedrive_file.csv.
// @Tags conversions
// @Accept mpfd
// @Produce text/csv
// @Param file formData file true "Real Intent CSV export"
// @Success 200 {string} string "Converted CSV content"
// @Failure 400 {object} models.APIError "Bad Request (no file, wrong file type, or malformed CSV - see 'code' in response)"
// @Failure 422 {object} models.APIError "Unprocessable Entity (required columns missing - see 'details.missing_columns')"
// @Failure 500 {object} models.APIError "Internal Server Error"
// @Router /conversions/download [post]
func (a *API) downloadConversionHandler(c *gin.Context) {
	converted, fileName, ok := a.convertUpload(c)
	if !ok {
		return
	}

	data, err := convert.WriteCSV(converted)
	if err != nil {
		log.Printf("Error serializing converted file for %s: %v", fileName, err)
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to serialize the converted file.", nil)
		return
	}

	log.Printf("Successfully converted %d records from %s for download", converted.RowCount(), fileName)
	c.Header("Content-Disposition", `attachment; filename="`+ConvertedFileName+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// --- Mapping Handlers ---

// getMappingHandler godoc
// @Summary Get the active column mapping
// @Description List the Real Intent source column keys and their Pipedrive destination labels, in output column order.
// @Tags mapping
// @Produce json
// @Success 200 {array} mapping.ColumnMapping "Active column mapping"
// @Router /mapping [get]
func (a *API) getMappingHandler(c *gin.Context) {
	RespondWithSuccess(c, http.StatusOK, a.mapping)
}
