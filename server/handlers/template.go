package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"claritygate/exporter"
	apperrors "claritygate/server/errors"
)

// TemplateHandler serves the sample workbook submitters start from.
type TemplateHandler struct{}

// NewTemplateHandler creates the template handler.
func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

// HandleTemplate downloads the sample template.
//
//	@Summary      Download the sample visitor-list template
//	@Tags         cleaning
//	@Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Success      200  {file}  binary
//	@Failure      500  {object}  types.ErrorResponse
//	@Router       /template [get]
func (h *TemplateHandler) HandleTemplate(c *gin.Context) {
	f, err := exporter.BuildTemplate()
	if err != nil {
		respondError(c, apperrors.NewInternalError("failed to build template workbook", err))
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		respondError(c, apperrors.NewInternalError("failed to serialize template workbook", err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exporter.TemplateFilename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
