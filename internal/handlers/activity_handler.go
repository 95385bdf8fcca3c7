package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bucketwise/internal/services"
)

// ActivityHandler handles activity feed requests.
type ActivityHandler struct {
	activityService services.ActivityServicer
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(activityService services.ActivityServicer) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// GetActivity returns the team's recent activity.
// @Summary     Get team activity
// @Description Get the team's most recent audit entries, newest first
// @Tags        activity
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       limit query int false "Max entries (default 20, max 100)"
// @Success     200 {object} map[string][]services.ActivityEntry "Activity entries"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /activity [get]
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	teamID, err := getTeamID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	limit := 20
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	entries, err := h.activityService.GetTeamActivity(teamID, limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": entries})
}
