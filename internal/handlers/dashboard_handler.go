package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "bucketwise/internal/errors"
	"bucketwise/internal/services"
)

// DashboardHandler handles dashboard and summary requests.
type DashboardHandler struct {
	summaryService services.SummaryServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(summaryService services.SummaryServicer) *DashboardHandler {
	return &DashboardHandler{summaryService: summaryService}
}

// parseDateRange reads optional from/to query parameters. When absent, the
// range defaults to the current month so far. Everything is UTC, matching
// the zone explicit dates parse in and expense dates bind in.
func parseDateRange(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := now

	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return from, to, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid from date, expected YYYY-MM-DD")
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return from, to, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid to date, expected YYYY-MM-DD")
		}
		// Make the end date inclusive.
		to = t.AddDate(0, 0, 1).Add(-time.Second)
	}
	if to.Before(from) {
		return from, to, apperrors.WithMessage(apperrors.ErrInvalidInput, "to must not precede from")
	}
	return from, to, nil
}

// GetDashboard returns the team's dashboard view.
// @Summary     Get dashboard
// @Description Get the team's budget dashboard: active income, buckets with derived amounts, recent spending, and rollover hints
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       from query string false "Range start (YYYY-MM-DD, default first of month)"
// @Param       to   query string false "Range end (YYYY-MM-DD, default today)"
// @Success     200 {object} services.BudgetSummary "Dashboard summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	teamID, err := getTeamID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	from, to, err := parseDateRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.summaryService.GetDashboardSummary(teamID, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetSummary returns the budget summary for an arbitrary date range.
// @Summary     Get budget summary
// @Description Aggregate the team's plans, buckets, income, and spending over a date range
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       from query string false "Range start (YYYY-MM-DD, default first of month)"
// @Param       to   query string false "Range end (YYYY-MM-DD, default today)"
// @Success     200 {object} services.BudgetSummary "Budget summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	teamID, err := getTeamID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	from, to, err := parseDateRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.summaryService.GetRangeSummary(teamID, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
