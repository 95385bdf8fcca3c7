package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "bucketwise/internal/errors"
	"bucketwise/internal/services"
)

// LineItemHandler handles line item requests.
type LineItemHandler struct {
	lineItemService services.LineItemServicer
}

// NewLineItemHandler creates a new LineItemHandler.
func NewLineItemHandler(lineItemService services.LineItemServicer) *LineItemHandler {
	return &LineItemHandler{lineItemService: lineItemService}
}

// CreateLineItemRequest represents the request payload for creating a line item.
type CreateLineItemRequest struct {
	BucketID   string  `json:"bucket_id" binding:"required,uuid"`
	Title      string  `json:"title" binding:"required,min=1,max=255"`
	Percentage float64 `json:"percentage" binding:"gte=0,lte=100"`
}

// UpdateLineItemRequest represents the request payload for updating a line item.
type UpdateLineItemRequest struct {
	Title      string   `json:"title" binding:"omitempty,min=1,max=255"`
	Percentage *float64 `json:"percentage" binding:"omitempty,gte=0,lte=100"`
}

// CreateLineItem handles line item creation.
// @Summary     Create a line item
// @Description Create a line item under one of the team's buckets
// @Tags        line-items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateLineItemRequest true "Line item details"
// @Success     201 {object} models.LineItem "Line item created"
// @Failure     400 {object} ErrorResponse "Invalid input or percentage exceeded"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bucket not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /line-items [post]
func (h *LineItemHandler) CreateLineItem(c *gin.Context) {
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

	var req CreateLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.lineItemService.CreateLineItem(userID, teamID, req.BucketID, req.Title, toPercentage(req.Percentage))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"line_item": item})
}

// UpdateLineItem handles line item updates.
// @Summary     Update a line item
// @Description Update a line item's title and/or percentage
// @Tags        line-items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                true "Line item ID"
// @Param       request body UpdateLineItemRequest true "Fields to update"
// @Success     200 {object} models.LineItem "Line item updated"
// @Failure     400 {object} ErrorResponse "Invalid input or percentage exceeded"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Line item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /line-items/{id} [put]
func (h *LineItemHandler) UpdateLineItem(c *gin.Context) {
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

	var req UpdateLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var percentage *decimal.Decimal
	if req.Percentage != nil {
		p := toPercentage(*req.Percentage)
		percentage = &p
	}

	item, err := h.lineItemService.UpdateLineItem(userID, teamID, c.Param("id"), req.Title, percentage)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"line_item": item})
}

// DeleteLineItem handles line item deletion.
// @Summary     Delete a line item
// @Description Delete a line item; its expenses are kept for the audit trail
// @Tags        line-items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Line item ID"
// @Success     200 {object} map[string]string "Deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Line item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /line-items/{id} [delete]
func (h *LineItemHandler) DeleteLineItem(c *gin.Context) {
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

	if err := h.lineItemService.DeleteLineItem(userID, teamID, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Line item deleted"})
}
