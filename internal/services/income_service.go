package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "bucketwise/internal/errors"
	"bucketwise/internal/models"
	"bucketwise/internal/pagination"
	"bucketwise/internal/period"
)

type incomeService struct {
	db       *gorm.DB
	activity ActivityServicer
}

// NewIncomeService creates a new income source service instance.
func NewIncomeService(db *gorm.DB, activity ActivityServicer) IncomeServicer {
	return &incomeService{db: db, activity: activity}
}

func incomeForTeam(tx *gorm.DB, teamID, incomeID string) (*models.IncomeSource, error) {
	var source models.IncomeSource
	err := tx.Where("id = ? AND team_id = ?", incomeID, teamID).First(&source).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIncomeSourceNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &source, nil
}

// CreateIncomeSource records an income source against the plan of the
// month the given date falls in, creating that plan if needed.
func (s *incomeService) CreateIncomeSource(userID, teamID, name string, amount decimal.Decimal, monthYear time.Time, isActive bool) (*models.IncomeSource, error) {
	var source *models.IncomeSource

	err := s.db.Transaction(func(tx *gorm.DB) error {
		plan, err := resolvePlan(tx, teamID, period.FromTime(monthYear))
		if err != nil {
			return err
		}

		source = &models.IncomeSource{
			BudgetPlanID: plan.ID,
			TeamID:       teamID,
			Name:         name,
			Amount:       amount,
			IsActive:     isActive,
			MonthYear:    monthYear,
		}
		if err := tx.Create(source).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}

	s.activity.Record(teamID, userID, models.EntityIncomeSource, source.ID, models.ActionCreated, nil, map[string]any{
		"name":   source.Name,
		"amount": source.Amount.String(),
	})
	return source, nil
}

// UpdateIncomeSource changes an income source's name, amount, or active
// flag. Ownership is checked before anything is written.
func (s *incomeService) UpdateIncomeSource(userID, teamID, incomeID, name string, amount *decimal.Decimal, isActive *bool) (*models.IncomeSource, error) {
	source, err := incomeForTeam(s.db, teamID, incomeID)
	if err != nil {
		return nil, err
	}
	oldValues := map[string]any{
		"name":      source.Name,
		"amount":    source.Amount.String(),
		"is_active": source.IsActive,
	}

	if name != "" {
		source.Name = name
	}
	if amount != nil {
		source.Amount = *amount
	}
	if isActive != nil {
		source.IsActive = *isActive
	}
	if err := s.db.Save(source).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.activity.Record(teamID, userID, models.EntityIncomeSource, source.ID, models.ActionUpdated, oldValues, map[string]any{
		"name":      source.Name,
		"amount":    source.Amount.String(),
		"is_active": source.IsActive,
	})
	return source, nil
}

// DeleteIncomeSource removes an income source.
func (s *incomeService) DeleteIncomeSource(userID, teamID, incomeID string) error {
	source, err := incomeForTeam(s.db, teamID, incomeID)
	if err != nil {
		return err
	}
	oldValues := map[string]any{
		"name":   source.Name,
		"amount": source.Amount.String(),
	}

	if err := s.db.Delete(source).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.activity.Record(teamID, userID, models.EntityIncomeSource, incomeID, models.ActionDeleted, oldValues, nil)
	return nil
}

// ListIncomeSources returns the team's income sources, newest month first.
func (s *incomeService) ListIncomeSources(teamID string, page pagination.PageRequest) (*pagination.PageResponse[models.IncomeSource], error) {
	page.Defaults()

	query := s.db.Model(&models.IncomeSource{}).Where("team_id = ?", teamID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var sources []models.IncomeSource
	if err := query.Order("month_year DESC, created_at DESC").
		Scopes(pagination.Paginate(page)).
		Find(&sources).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(sources, page.Page, page.PageSize, total)
	return &resp, nil
}
