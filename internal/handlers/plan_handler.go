package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "bucketwise/internal/errors"
	"bucketwise/internal/period"
	"bucketwise/internal/services"
)

// PlanHandler handles budget plan requests.
type PlanHandler struct {
	planService services.PlanServicer
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService services.PlanServicer) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// CreatePlanRequest represents the request payload for creating a plan.
type CreatePlanRequest struct {
	Period         string  `json:"period" binding:"required,period"`
	CopyFromPlanID *string `json:"copy_from_plan_id" binding:"omitempty,uuid"`
}

// RolloverRequest represents the request payload for rolling a plan over.
type RolloverRequest struct {
	Period string `json:"period" binding:"required,period"`
}

// CreatePlan handles explicit plan creation.
// @Summary     Create a budget plan
// @Description Create a plan for a month, optionally copying another plan's structure
// @Tags        plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreatePlanRequest true "Plan details"
// @Success     201 {object} models.BudgetPlan "Plan created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Plan already exists"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans [post]
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	teamID, err := getTeamID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	plan, err := h.planService.CreatePlan(userID, teamID, period.Key(req.Period), req.CopyFromPlanID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"plan": plan})
}

// ListPlans lists the team's plans.
// @Summary     List budget plans
// @Description List the team's budget plans with their buckets, newest month first
// @Tags        plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]models.BudgetPlan "Plans"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	teamID, err := getTeamID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	plans, err := h.planService.ListPlans(teamID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// Rollover copies the latest prior plan's structure into a new month.
// @Summary     Roll a plan over
// @Description Create the target month's plan from the most recent earlier plan's buckets and line items
// @Tags        plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body RolloverRequest true "Target month"
// @Success     201 {object} models.BudgetPlan "Plan created from prior structure"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Plan exists or nothing to copy"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans/rollover [post]
func (h *PlanHandler) Rollover(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	teamID, err := getTeamID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RolloverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	plan, err := h.planService.Rollover(userID, teamID, period.Key(req.Period))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"plan": plan})
}
