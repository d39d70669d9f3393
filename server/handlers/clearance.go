package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"claritygate/clearance"
	"claritygate/server/types"
)

// Display formats shown to submitters.
const (
	todayDisplayLayout = "Monday 2 January, 3:04PM"
	dateDisplayLayout  = "Monday 2 January"
)

// ClearanceHandler serves the clearance-date estimate.
type ClearanceHandler struct{}

// NewClearanceHandler creates the clearance handler.
func NewClearanceHandler() *ClearanceHandler {
	return &ClearanceHandler{}
}

// HandleClearance estimates the earliest clearance date for a submission
// made now.
//
//	@Summary      Estimate the earliest clearance date
//	@Description  Applies the facility calendar: 15:00 cutoff, weekends excluded, two working days of processing.
//	@Tags         clearance
//	@Produce      json
//	@Success      200  {object}  types.ClearanceResponse
//	@Router       /clearance [get]
func (h *ClearanceHandler) HandleClearance(c *gin.Context) {
	est := clearance.EstimateClearance(clearance.Now())

	c.JSON(http.StatusOK, types.ClearanceResponse{
		Today:             est.SubmittedAt.Format(todayDisplayLayout),
		EffectiveDate:     est.EffectiveDate.Format(dateDisplayLayout),
		EarliestClearance: est.ClearanceDate.Format(dateDisplayLayout),
	})
}
