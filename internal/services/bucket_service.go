package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "bucketwise/internal/errors"
	"bucketwise/internal/models"
	"bucketwise/internal/period"
)

type bucketService struct {
	db       *gorm.DB
	activity ActivityServicer
}

// NewBucketService creates a new bucket service instance.
func NewBucketService(db *gorm.DB, activity ActivityServicer) BucketServicer {
	return &bucketService{db: db, activity: activity}
}

// lockPlanRow takes a row lock on the bucket's parent plan so that the
// sibling percentage sum and the subsequent write happen against a stable
// snapshot. Two concurrent creates against the same plan serialize here
// instead of both passing validation against the same stale sum.
func lockPlanRow(tx *gorm.DB, planID string) error {
	var plan models.BudgetPlan
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", planID).
		First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPlanNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// bucketForTeam fetches a bucket only if it belongs to one of the team's
// plans. A bucket owned by another team and a missing bucket are
// indistinguishable to the caller.
func bucketForTeam(tx *gorm.DB, teamID, bucketID string) (*models.Bucket, error) {
	var bucket models.Bucket
	err := tx.Joins("JOIN budget_plans ON budget_plans.id = buckets.budget_plan_id").
		Where("buckets.id = ? AND budget_plans.team_id = ? AND budget_plans.deleted_at IS NULL", bucketID, teamID).
		First(&bucket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBucketNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &bucket, nil
}

// CreateBucket adds a bucket to the team's plan for the given month,
// creating the plan first if the month has none. The bucket's percentage
// plus its future siblings' must stay at or under 100, and any nested
// line items are checked against the same rule within the bucket.
func (s *bucketService) CreateBucket(userID, teamID string, key period.Key, title string, percentage decimal.Decimal, lineItems []LineItemInput) (*models.Bucket, error) {
	itemSum := decimal.Zero
	for _, li := range lineItems {
		itemSum = itemSum.Add(li.Percentage)
	}
	if itemSum.GreaterThan(hundred) {
		return nil, apperrors.ErrPercentageExceeded
	}

	var bucket *models.Bucket
	err := s.db.Transaction(func(tx *gorm.DB) error {
		plan, err := resolvePlan(tx, teamID, key)
		if err != nil {
			return err
		}
		if err := lockPlanRow(tx, plan.ID); err != nil {
			return err
		}

		siblingSum, err := bucketSiblingSum(tx, plan.ID, nil)
		if err != nil {
			return err
		}
		if err := validateAllocation(siblingSum, percentage); err != nil {
			return err
		}

		bucket = &models.Bucket{
			BudgetPlanID: plan.ID,
			Title:        title,
			Percentage:   percentage,
		}
		if err := tx.Create(bucket).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for _, li := range lineItems {
			item := models.LineItem{
				BucketID:   bucket.ID,
				Title:      li.Title,
				Percentage: li.Percentage,
			}
			if err := tx.Create(&item).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			bucket.LineItems = append(bucket.LineItems, item)
		}
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}

	s.activity.Record(teamID, userID, models.EntityBucket, bucket.ID, models.ActionCreated, nil, map[string]any{
		"title":      bucket.Title,
		"percentage": bucket.Percentage.String(),
		"period":     string(key),
	})
	return bucket, nil
}

// GetBucketByID returns one of the team's buckets with its line items.
func (s *bucketService) GetBucketByID(teamID, bucketID string) (*models.Bucket, error) {
	bucket, err := bucketForTeam(s.db, teamID, bucketID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Preload("LineItems").First(bucket, "id = ?", bucket.ID).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return bucket, nil
}

// UpdateBucket changes a bucket's title and/or percentage. A percentage
// change is validated against the sum of the bucket's siblings with the
// bucket itself excluded, so lowering or keeping a percentage on a full
// plan still succeeds.
func (s *bucketService) UpdateBucket(userID, teamID, bucketID, title string, percentage *decimal.Decimal) (*models.Bucket, error) {
	var bucket *models.Bucket
	var oldValues map[string]any

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		bucket, err = bucketForTeam(tx, teamID, bucketID)
		if err != nil {
			return err
		}
		oldValues = map[string]any{
			"title":      bucket.Title,
			"percentage": bucket.Percentage.String(),
		}

		if percentage != nil {
			if err := lockPlanRow(tx, bucket.BudgetPlanID); err != nil {
				return err
			}
			siblingSum, err := bucketSiblingSum(tx, bucket.BudgetPlanID, &bucket.ID)
			if err != nil {
				return err
			}
			if err := validateAllocation(siblingSum, *percentage); err != nil {
				return err
			}
			bucket.Percentage = *percentage
		}
		if title != "" {
			bucket.Title = title
		}
		if err := tx.Save(bucket).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}

	s.activity.Record(teamID, userID, models.EntityBucket, bucket.ID, models.ActionUpdated, oldValues, map[string]any{
		"title":      bucket.Title,
		"percentage": bucket.Percentage.String(),
	})
	return bucket, nil
}

// DeleteBucket removes a bucket and its line items. Expenses recorded
// against those line items are kept for the audit trail.
func (s *bucketService) DeleteBucket(userID, teamID, bucketID string) error {
	var oldValues map[string]any

	err := s.db.Transaction(func(tx *gorm.DB) error {
		bucket, err := bucketForTeam(tx, teamID, bucketID)
		if err != nil {
			return err
		}
		oldValues = map[string]any{
			"title":      bucket.Title,
			"percentage": bucket.Percentage.String(),
		}

		if err := tx.Where("bucket_id = ?", bucket.ID).Delete(&models.LineItem{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(bucket).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return asAppError(err)
	}

	s.activity.Record(teamID, userID, models.EntityBucket, bucketID, models.ActionDeleted, oldValues, nil)
	return nil
}
