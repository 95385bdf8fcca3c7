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

type expenseService struct {
	db       *gorm.DB
	activity ActivityServicer
}

// NewExpenseService creates a new expense service instance.
func NewExpenseService(db *gorm.DB, activity ActivityServicer) ExpenseServicer {
	return &expenseService{db: db, activity: activity}
}

func expenseForTeam(tx *gorm.DB, teamID, expenseID string) (*models.Expense, error) {
	var expense models.Expense
	err := tx.Where("id = ? AND team_id = ?", expenseID, teamID).First(&expense).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// CreateExpense records spending against one of the team's line items.
// The expense attaches to the plan of the month its date falls in, which
// is created on the fly when missing.
func (s *expenseService) CreateExpense(userID, teamID, lineItemID string, date time.Time, amount decimal.Decimal, description string) (*models.Expense, error) {
	var expense *models.Expense

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := lineItemForTeam(tx, teamID, lineItemID); err != nil {
			return err
		}
		plan, err := resolvePlan(tx, teamID, period.FromTime(date))
		if err != nil {
			return err
		}

		expense = &models.Expense{
			BudgetPlanID: plan.ID,
			TeamID:       teamID,
			LineItemID:   lineItemID,
			Date:         date,
			Amount:       amount,
			Description:  description,
		}
		if err := tx.Create(expense).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}

	s.activity.Record(teamID, userID, models.EntityExpense, expense.ID, models.ActionCreated, nil, map[string]any{
		"amount":      expense.Amount.String(),
		"description": expense.Description,
		"date":        expense.Date.Format("2006-01-02"),
	})
	return expense, nil
}

// UpdateExpense changes an expense's date, amount, or description. A date
// change that moves the expense into a different month re-homes it on that
// month's plan.
func (s *expenseService) UpdateExpense(userID, teamID, expenseID string, date *time.Time, amount *decimal.Decimal, description string) (*models.Expense, error) {
	var expense *models.Expense
	var oldValues map[string]any

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		expense, err = expenseForTeam(tx, teamID, expenseID)
		if err != nil {
			return err
		}
		oldValues = map[string]any{
			"amount":      expense.Amount.String(),
			"description": expense.Description,
			"date":        expense.Date.Format("2006-01-02"),
		}

		if date != nil {
			if period.FromTime(*date) != period.FromTime(expense.Date) {
				plan, err := resolvePlan(tx, teamID, period.FromTime(*date))
				if err != nil {
					return err
				}
				expense.BudgetPlanID = plan.ID
			}
			expense.Date = *date
		}
		if amount != nil {
			expense.Amount = *amount
		}
		if description != "" {
			expense.Description = description
		}
		if err := tx.Save(expense).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}

	s.activity.Record(teamID, userID, models.EntityExpense, expense.ID, models.ActionUpdated, oldValues, map[string]any{
		"amount":      expense.Amount.String(),
		"description": expense.Description,
		"date":        expense.Date.Format("2006-01-02"),
	})
	return expense, nil
}

// DeleteExpense removes an expense.
func (s *expenseService) DeleteExpense(userID, teamID, expenseID string) error {
	expense, err := expenseForTeam(s.db, teamID, expenseID)
	if err != nil {
		return err
	}
	oldValues := map[string]any{
		"amount":      expense.Amount.String(),
		"description": expense.Description,
		"date":        expense.Date.Format("2006-01-02"),
	}

	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.activity.Record(teamID, userID, models.EntityExpense, expenseID, models.ActionDeleted, oldValues, nil)
	return nil
}

// ListExpenses returns the team's expenses, newest first, optionally
// filtered by date range and line item.
func (s *expenseService) ListExpenses(teamID string, page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	query := s.db.Model(&models.Expense{}).Where("team_id = ?", teamID)
	if filter.FromDate != nil {
		query = query.Where("date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("date <= ?", *filter.ToDate)
	}
	if filter.LineItemID != nil {
		query = query.Where("line_item_id = ?", *filter.LineItemID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := query.Preload("LineItem").
		Order("date DESC, created_at DESC").
		Scopes(pagination.Paginate(page)).
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(expenses, page.Page, page.PageSize, total)
	return &resp, nil
}
