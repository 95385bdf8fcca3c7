package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "bucketwise/internal/errors"
	"bucketwise/internal/models"
)

type lineItemService struct {
	db       *gorm.DB
	activity ActivityServicer
}

// NewLineItemService creates a new line item service instance.
func NewLineItemService(db *gorm.DB, activity ActivityServicer) LineItemServicer {
	return &lineItemService{db: db, activity: activity}
}

// lineItemForTeam fetches a line item only if it belongs to one of the
// team's plans, walking line item -> bucket -> plan.
func lineItemForTeam(tx *gorm.DB, teamID, lineItemID string) (*models.LineItem, error) {
	var item models.LineItem
	err := tx.Joins("JOIN buckets ON buckets.id = line_items.bucket_id").
		Joins("JOIN budget_plans ON budget_plans.id = buckets.budget_plan_id").
		Where("line_items.id = ? AND budget_plans.team_id = ?", lineItemID, teamID).
		Where("buckets.deleted_at IS NULL AND budget_plans.deleted_at IS NULL").
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLineItemNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &item, nil
}

// lockBucketRow serializes percentage validation within one bucket the
// same way lockPlanRow does for buckets within a plan.
func lockBucketRow(tx *gorm.DB, bucketID string) error {
	var bucket models.Bucket
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", bucketID).
		First(&bucket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBucketNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// CreateLineItem adds a line item to one of the team's buckets. The item's
// percentage plus its siblings' must stay at or under 100 within the bucket.
func (s *lineItemService) CreateLineItem(userID, teamID, bucketID, title string, percentage decimal.Decimal) (*models.LineItem, error) {
	var item *models.LineItem

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := bucketForTeam(tx, teamID, bucketID); err != nil {
			return err
		}
		if err := lockBucketRow(tx, bucketID); err != nil {
			return err
		}

		siblingSum, err := lineItemSiblingSum(tx, bucketID, nil)
		if err != nil {
			return err
		}
		if err := validateAllocation(siblingSum, percentage); err != nil {
			return err
		}

		item = &models.LineItem{
			BucketID:   bucketID,
			Title:      title,
			Percentage: percentage,
		}
		if err := tx.Create(item).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}

	s.activity.Record(teamID, userID, models.EntityLineItem, item.ID, models.ActionCreated, nil, map[string]any{
		"title":      item.Title,
		"percentage": item.Percentage.String(),
	})
	return item, nil
}

// UpdateLineItem changes a line item's title and/or percentage, validating
// percentage changes against the bucket's other items only.
func (s *lineItemService) UpdateLineItem(userID, teamID, lineItemID, title string, percentage *decimal.Decimal) (*models.LineItem, error) {
	var item *models.LineItem
	var oldValues map[string]any

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		item, err = lineItemForTeam(tx, teamID, lineItemID)
		if err != nil {
			return err
		}
		oldValues = map[string]any{
			"title":      item.Title,
			"percentage": item.Percentage.String(),
		}

		if percentage != nil {
			if err := lockBucketRow(tx, item.BucketID); err != nil {
				return err
			}
			siblingSum, err := lineItemSiblingSum(tx, item.BucketID, &item.ID)
			if err != nil {
				return err
			}
			if err := validateAllocation(siblingSum, *percentage); err != nil {
				return err
			}
			item.Percentage = *percentage
		}
		if title != "" {
			item.Title = title
		}
		if err := tx.Save(item).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}

	s.activity.Record(teamID, userID, models.EntityLineItem, item.ID, models.ActionUpdated, oldValues, map[string]any{
		"title":      item.Title,
		"percentage": item.Percentage.String(),
	})
	return item, nil
}

// DeleteLineItem removes a line item. Its expenses are kept.
func (s *lineItemService) DeleteLineItem(userID, teamID, lineItemID string) error {
	item, err := lineItemForTeam(s.db, teamID, lineItemID)
	if err != nil {
		return err
	}
	oldValues := map[string]any{
		"title":      item.Title,
		"percentage": item.Percentage.String(),
	}

	if err := s.db.Delete(item).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.activity.Record(teamID, userID, models.EntityLineItem, lineItemID, models.ActionDeleted, oldValues, nil)
	return nil
}
