package handlers

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "claritygate/server/errors"
	"claritygate/server/middleware"
	"claritygate/server/types"
)

// xlsxContentType is the MIME type for rendered workbooks.
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// respondError maps any error to its AppError JSON response and logs the
// internal detail that the user does not see.
func respondError(c *gin.Context, err error) {
	appErr := apperrors.AsAppError(err)

	slog.Error("request failed",
		"error", appErr.Error(),
		"status", appErr.StatusCode(),
		"request_id", middleware.GetRequestID(c),
		"path", c.Request.URL.Path,
	)

	c.AbortWithStatusJSON(appErr.StatusCode(), types.ErrorResponse{
		Error:     appErr.UserMessage(),
		RequestID: middleware.GetRequestID(c),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
