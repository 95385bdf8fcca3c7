package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "bucketwise/internal/errors"
	"bucketwise/internal/models"
	"bucketwise/internal/period"
)

type planService struct {
	db       *gorm.DB
	activity ActivityServicer
}

// NewPlanService creates a new budget plan service instance.
func NewPlanService(db *gorm.DB, activity ActivityServicer) PlanServicer {
	return &planService{db: db, activity: activity}
}

// ResolvePlan returns the team's plan for the given month, creating an
// empty one if none exists yet. Concurrent resolution of the same month is
// safe: a create that loses the race to the unique (team_id, period) index
// falls back to fetching the winner's row.
func (s *planService) ResolvePlan(teamID string, key period.Key) (*models.BudgetPlan, error) {
	return resolvePlan(s.db, teamID, key)
}

func resolvePlan(tx *gorm.DB, teamID string, key period.Key) (*models.BudgetPlan, error) {
	if !key.Valid() {
		return nil, apperrors.ErrInvalidPeriod
	}

	var plan models.BudgetPlan
	err := tx.Where("team_id = ? AND period = ?", teamID, key).First(&plan).Error
	if err == nil {
		return &plan, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	plan = models.BudgetPlan{TeamID: teamID, Period: key}
	if createErr := tx.Create(&plan).Error; createErr != nil {
		var existing models.BudgetPlan
		if fetchErr := tx.Where("team_id = ? AND period = ?", teamID, key).First(&existing).Error; fetchErr == nil {
			return &existing, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, createErr)
	}
	return &plan, nil
}

// FindLatestPriorPlan returns the team's most recent plan strictly before
// the given month, or nil when the team has no earlier plan.
func (s *planService) FindLatestPriorPlan(teamID string, before period.Key) (*models.BudgetPlan, error) {
	var plan models.BudgetPlan
	err := s.db.Where("team_id = ? AND period < ?", teamID, before).
		Order("period DESC").
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &plan, nil
}

// CreatePlan explicitly creates a plan for a month, optionally copying the
// bucket and line item structure of another of the team's plans. Creating
// a month that already has a plan is a conflict.
func (s *planService) CreatePlan(userID, teamID string, key period.Key, copyFromPlanID *string) (*models.BudgetPlan, error) {
	if !key.Valid() {
		return nil, apperrors.ErrInvalidPeriod
	}

	var source *models.BudgetPlan
	if copyFromPlanID != nil {
		var src models.BudgetPlan
		if err := s.db.Where("id = ? AND team_id = ?", *copyFromPlanID, teamID).First(&src).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrPlanNotFound
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		source = &src
	}

	plan := &models.BudgetPlan{TeamID: teamID, Period: key}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if createErr := tx.Create(plan).Error; createErr != nil {
			var existing models.BudgetPlan
			if fetchErr := tx.Where("team_id = ? AND period = ?", teamID, key).First(&existing).Error; fetchErr == nil {
				return apperrors.ErrPlanAlreadyExists
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, createErr)
		}
		if source != nil {
			return copyPlanStructure(tx, source.ID, plan.ID)
		}
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}

	newValues := map[string]any{"period": string(key)}
	if source != nil {
		newValues["copied_from"] = string(source.Period)
	}
	s.activity.Record(teamID, userID, models.EntityBudgetPlan, plan.ID, models.ActionCreated, nil, newValues)

	if source != nil {
		return s.reloadWithStructure(plan.ID)
	}
	return plan, nil
}

// Rollover creates the target month's plan as a structural copy of the
// team's latest prior plan: buckets and line items with their titles and
// percentages, fresh IDs, no expenses and no income sources. The whole
// copy is one transaction, so a failure leaves no partial plan behind.
func (s *planService) Rollover(userID, teamID string, target period.Key) (*models.BudgetPlan, error) {
	if !target.Valid() {
		return nil, apperrors.ErrInvalidPeriod
	}

	var existing models.BudgetPlan
	err := s.db.Where("team_id = ? AND period = ?", teamID, target).First(&existing).Error
	if err == nil {
		return nil, apperrors.ErrPlanAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	prior, err := s.FindLatestPriorPlan(teamID, target)
	if err != nil {
		return nil, err
	}
	if prior == nil {
		return nil, apperrors.ErrNoPriorPlan
	}

	plan := &models.BudgetPlan{TeamID: teamID, Period: target}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if createErr := tx.Create(plan).Error; createErr != nil {
			var winner models.BudgetPlan
			if fetchErr := tx.Where("team_id = ? AND period = ?", teamID, target).First(&winner).Error; fetchErr == nil {
				return apperrors.ErrPlanAlreadyExists
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, createErr)
		}
		return copyPlanStructure(tx, prior.ID, plan.ID)
	})
	if err != nil {
		return nil, asAppError(err)
	}

	s.activity.Record(teamID, userID, models.EntityBudgetPlan, plan.ID, models.ActionRolledOver, nil, map[string]any{
		"period":      string(target),
		"copied_from": string(prior.Period),
	})
	return s.reloadWithStructure(plan.ID)
}

// reloadWithStructure fetches a plan with its buckets and line items, so
// callers see the structure a copy just produced.
func (s *planService) reloadWithStructure(planID string) (*models.BudgetPlan, error) {
	var plan models.BudgetPlan
	if err := s.db.Preload("Buckets.LineItems").First(&plan, "id = ?", planID).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &plan, nil
}

// ListPlans returns all of a team's plans, newest month first.
func (s *planService) ListPlans(teamID string) ([]models.BudgetPlan, error) {
	var plans []models.BudgetPlan
	if err := s.db.Preload("Buckets.LineItems").
		Where("team_id = ?", teamID).
		Order("period DESC").
		Find(&plans).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return plans, nil
}

// copyPlanStructure duplicates the source plan's buckets and line items
// onto the destination plan. Only titles and percentages carry over.
func copyPlanStructure(tx *gorm.DB, srcPlanID, dstPlanID string) error {
	var buckets []models.Bucket
	if err := tx.Preload("LineItems").
		Where("budget_plan_id = ?", srcPlanID).
		Order("created_at").
		Find(&buckets).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for _, src := range buckets {
		bucket := models.Bucket{
			BudgetPlanID: dstPlanID,
			Title:        src.Title,
			Percentage:   src.Percentage,
		}
		if err := tx.Create(&bucket).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for _, li := range src.LineItems {
			item := models.LineItem{
				BucketID:   bucket.ID,
				Title:      li.Title,
				Percentage: li.Percentage,
			}
			if err := tx.Create(&item).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
	}
	return nil
}

// asAppError passes AppErrors through unchanged and wraps anything else
// as an internal error.
func asAppError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
