package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"claritygate/clearance"
	"claritygate/importer"
	apperrors "claritygate/server/errors"
	"claritygate/server/services"
)

// CleanHandler serves the cleaning endpoint: one uploaded workbook in, one
// cleaned and annotated workbook out.
type CleanHandler struct {
	service        *services.CleaningService
	maxUploadBytes int64
}

// NewCleanHandler creates the cleaning handler.
func NewCleanHandler(service *services.CleaningService, maxUploadBytes int64) *CleanHandler {
	return &CleanHandler{service: service, maxUploadBytes: maxUploadBytes}
}

// HandleClean cleans an uploaded visitor list.
//
//	@Summary      Clean a visitor list workbook
//	@Description  Normalizes, orders and validates the Visitor List sheet and returns the annotated workbook. Other sheets pass through unchanged.
//	@Tags         cleaning
//	@Accept       multipart/form-data
//	@Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param        file  formData  file  true  "xlsx workbook with a 'Visitor List' sheet"
//	@Success      200  {file}  binary
//	@Failure      400  {object}  types.ErrorResponse
//	@Failure      413  {object}  types.ErrorResponse
//	@Failure      422  {object}  types.ErrorResponse
//	@Failure      500  {object}  types.ErrorResponse
//	@Router       /clean [post]
func (h *CleanHandler) HandleClean(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			respondError(c, apperrors.NewTooLargeError(
				fmt.Sprintf("upload exceeds the %d byte limit", h.maxUploadBytes), err))
			return
		}
		respondError(c, apperrors.NewValidationError("missing 'file' form field", err))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, apperrors.NewValidationError("failed to open uploaded file", err))
		return
	}
	defer file.Close()

	outcome, err := h.service.CleanWorkbook(file, clearance.Now())
	if err != nil {
		if errors.Is(err, importer.ErrVisitorSheetNotFound) {
			respondError(c, apperrors.NewUnprocessableError(importer.ErrVisitorSheetNotFound.Error(), err))
			return
		}
		respondError(c, apperrors.NewValidationError("failed to process workbook", err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", outcome.Filename))
	c.Header("X-Issue-Count", strconv.Itoa(outcome.IssueCount))
	c.Header("X-Visitor-Count", strconv.Itoa(outcome.VisitorCount))
	c.Data(http.StatusOK, xlsxContentType, outcome.Content)
}
