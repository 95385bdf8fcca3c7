package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "bucketwise/internal/errors"
	"bucketwise/internal/pagination"
	"bucketwise/internal/services"
)

// IncomeHandler handles income source requests.
type IncomeHandler struct {
	incomeService services.IncomeServicer
}

// NewIncomeHandler creates a new IncomeHandler.
func NewIncomeHandler(incomeService services.IncomeServicer) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

// CreateIncomeSourceRequest represents the request payload for creating an income source.
type CreateIncomeSourceRequest struct {
	Name      string    `json:"name" binding:"required,min=1,max=255"`
	Amount    float64   `json:"amount" binding:"required,gt=0"`
	MonthYear time.Time `json:"month_year" binding:"required"`
	IsActive  *bool     `json:"is_active"`
}

// UpdateIncomeSourceRequest represents the request payload for updating an income source.
type UpdateIncomeSourceRequest struct {
	Name     string   `json:"name" binding:"omitempty,min=1,max=255"`
	Amount   *float64 `json:"amount" binding:"omitempty,gt=0"`
	IsActive *bool    `json:"is_active"`
}

// toAmount converts a request amount to its canonical two-decimal form.
func toAmount(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// CreateIncomeSource handles income source creation.
// @Summary     Create an income source
// @Description Record an income source on the plan of the month its date falls in
// @Tags        income-sources
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateIncomeSourceRequest true "Income source details"
// @Success     201 {object} models.IncomeSource "Income source created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income-sources [post]
func (h *IncomeHandler) CreateIncomeSource(c *gin.Context) {
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

	var req CreateIncomeSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	source, err := h.incomeService.CreateIncomeSource(userID, teamID, req.Name, toAmount(req.Amount), req.MonthYear, isActive)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"income_source": source})
}

// ListIncomeSources lists the team's income sources.
// @Summary     List income sources
// @Description Get a paginated list of the team's income sources, newest month first
// @Tags        income-sources
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.IncomeSource] "Paginated income sources"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income-sources [get]
func (h *IncomeHandler) ListIncomeSources(c *gin.Context) {
	teamID, err := getTeamID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	resp, err := h.incomeService.ListIncomeSources(teamID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateIncomeSource handles income source updates.
// @Summary     Update an income source
// @Description Update an income source's name, amount, or active flag
// @Tags        income-sources
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                    true "Income source ID"
// @Param       request body UpdateIncomeSourceRequest true "Fields to update"
// @Success     200 {object} models.IncomeSource "Income source updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Income source not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income-sources/{id} [put]
func (h *IncomeHandler) UpdateIncomeSource(c *gin.Context) {
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

	var req UpdateIncomeSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var amount *decimal.Decimal
	if req.Amount != nil {
		a := toAmount(*req.Amount)
		amount = &a
	}

	source, err := h.incomeService.UpdateIncomeSource(userID, teamID, c.Param("id"), req.Name, amount, req.IsActive)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"income_source": source})
}

// DeleteIncomeSource handles income source deletion.
// @Summary     Delete an income source
// @Description Delete an income source
// @Tags        income-sources
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Income source ID"
// @Success     200 {object} map[string]string "Deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Income source not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income-sources/{id} [delete]
func (h *IncomeHandler) DeleteIncomeSource(c *gin.Context) {
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

	if err := h.incomeService.DeleteIncomeSource(userID, teamID, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Income source deleted"})
}
