package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"claritygate/server/types"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// HandleHealth reports liveness.
//
//	@Summary      Health check
//	@Tags         system
//	@Produce      json
//	@Success      200  {object}  types.HealthResponse
//	@Router       /health [get]
func HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{
		Status:  "ok",
		Version: Version,
	})
}
