package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "bucketwise/internal/errors"
	"bucketwise/internal/period"
	"bucketwise/internal/services"
)

// BucketHandler handles bucket requests.
type BucketHandler struct {
	bucketService  services.BucketServicer
	summaryService services.SummaryServicer
}

// NewBucketHandler creates a new BucketHandler.
func NewBucketHandler(bucketService services.BucketServicer, summaryService services.SummaryServicer) *BucketHandler {
	return &BucketHandler{bucketService: bucketService, summaryService: summaryService}
}

// LineItemPayload is a nested line item in a bucket creation request.
type LineItemPayload struct {
	Title      string  `json:"title" binding:"required,min=1,max=255"`
	Percentage float64 `json:"percentage" binding:"gte=0,lte=100"`
}

// CreateBucketRequest represents the request payload for creating a bucket.
type CreateBucketRequest struct {
	Period     string            `json:"period" binding:"required,period"`
	Title      string            `json:"title" binding:"required,min=1,max=255"`
	Percentage float64           `json:"percentage" binding:"gte=0,lte=100"`
	LineItems  []LineItemPayload `json:"line_items" binding:"omitempty,dive"`
}

// UpdateBucketRequest represents the request payload for updating a bucket.
type UpdateBucketRequest struct {
	Title      string   `json:"title" binding:"omitempty,min=1,max=255"`
	Percentage *float64 `json:"percentage" binding:"omitempty,gte=0,lte=100"`
}

// toPercentage converts a request percentage to its canonical two-decimal form.
func toPercentage(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// CreateBucket handles bucket creation.
// @Summary     Create a bucket
// @Description Create a bucket on a month's plan, creating the plan if needed
// @Tags        buckets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateBucketRequest true "Bucket details"
// @Success     201 {object} models.Bucket "Bucket created"
// @Failure     400 {object} ErrorResponse "Invalid input or percentage exceeded"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /buckets [post]
func (h *BucketHandler) CreateBucket(c *gin.Context) {
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

	var req CreateBucketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	items := make([]services.LineItemInput, len(req.LineItems))
	for i, li := range req.LineItems {
		items[i] = services.LineItemInput{
			Title:      li.Title,
			Percentage: toPercentage(li.Percentage),
		}
	}

	bucket, err := h.bucketService.CreateBucket(userID, teamID, period.Key(req.Period), req.Title, toPercentage(req.Percentage), items)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"bucket": bucket})
}

// GetBucket returns one bucket with its line items and completeness flag.
// @Summary     Get a bucket
// @Description Get a bucket with its line items and whether their percentages reach 100
// @Tags        buckets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Bucket ID"
// @Success     200 {object} models.Bucket "Bucket"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bucket not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /buckets/{id} [get]
func (h *BucketHandler) GetBucket(c *gin.Context) {
	teamID, err := getTeamID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	bucket, err := h.bucketService.GetBucketByID(teamID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	complete, err := h.summaryService.LineItemPercentagesComplete(teamID, bucket.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bucket":              bucket,
		"line_items_complete": complete,
	})
}

// UpdateBucket handles bucket updates.
// @Summary     Update a bucket
// @Description Update a bucket's title and/or percentage
// @Tags        buckets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string              true "Bucket ID"
// @Param       request body UpdateBucketRequest true "Fields to update"
// @Success     200 {object} models.Bucket "Bucket updated"
// @Failure     400 {object} ErrorResponse "Invalid input or percentage exceeded"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bucket not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /buckets/{id} [put]
func (h *BucketHandler) UpdateBucket(c *gin.Context) {
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

	var req UpdateBucketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var percentage *decimal.Decimal
	if req.Percentage != nil {
		p := toPercentage(*req.Percentage)
		percentage = &p
	}

	bucket, err := h.bucketService.UpdateBucket(userID, teamID, c.Param("id"), req.Title, percentage)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bucket": bucket})
}

// DeleteBucket handles bucket deletion.
// @Summary     Delete a bucket
// @Description Delete a bucket and its line items; recorded expenses are kept
// @Tags        buckets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Bucket ID"
// @Success     200 {object} map[string]string "Deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bucket not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /buckets/{id} [delete]
func (h *BucketHandler) DeleteBucket(c *gin.Context) {
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

	if err := h.bucketService.DeleteBucket(userID, teamID, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bucket deleted"})
}
