package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "bucketwise/internal/errors"
	"bucketwise/internal/models"
)

var hundred = decimal.NewFromInt(100)

// validateAllocation rejects a candidate percentage when adding it to the
// sum of its siblings would push the parent's total over 100. A total of
// exactly 100 is allowed.
func validateAllocation(siblingSum, candidate decimal.Decimal) error {
	if siblingSum.Add(candidate).GreaterThan(hundred) {
		return apperrors.ErrPercentageExceeded
	}
	return nil
}

// bucketSiblingSum returns the summed percentage of a plan's buckets,
// optionally excluding one bucket (the one being updated). Runs on the
// caller's transaction so it observes the same snapshot as the write.
func bucketSiblingSum(tx *gorm.DB, planID string, excludeID *string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	q := tx.Model(&models.Bucket{}).
		Select("COALESCE(SUM(percentage), 0)").
		Where("budget_plan_id = ?", planID)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}
	if err := q.Scan(&sum).Error; err != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return sum, nil
}

// lineItemSiblingSum returns the summed percentage of a bucket's line
// items, optionally excluding one line item.
func lineItemSiblingSum(tx *gorm.DB, bucketID string, excludeID *string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	q := tx.Model(&models.LineItem{}).
		Select("COALESCE(SUM(percentage), 0)").
		Where("bucket_id = ?", bucketID)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}
	if err := q.Scan(&sum).Error; err != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return sum, nil
}
