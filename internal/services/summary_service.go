package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "bucketwise/internal/errors"
	"bucketwise/internal/models"
	"bucketwise/internal/period"
)

type summaryService struct {
	db *gorm.DB
}

// NewSummaryService creates a new summary service instance.
func NewSummaryService(db *gorm.DB) SummaryServicer {
	return &summaryService{db: db}
}

func emptySummary() *BudgetSummary {
	return &BudgetSummary{
		TotalIncome:      decimal.Zero,
		TotalExpenses:    decimal.Zero,
		RemainingBalance: decimal.Zero,
		Buckets:          []BucketSummary{},
		RecentExpenses:   []ExpenseEntry{},
		Expenses:         []ExpenseEntry{},
		MonthlyData:      []MonthlyPoint{},
		IncomeSources:    []models.IncomeSource{},
	}
}

// GetRangeSummary aggregates the team's plans whose months fall inside
// [from, to]: summed income over those plans, buckets merged across plans
// by percentage-derived amounts, and spending scoped to the range.
func (s *summaryService) GetRangeSummary(teamID string, from, to time.Time) (*BudgetSummary, error) {
	fromKey, toKey := period.FromTime(from), period.FromTime(to)

	var plans []models.BudgetPlan
	if err := s.db.Preload("Buckets.LineItems.Expenses").
		Where("team_id = ? AND period >= ? AND period <= ?", teamID, fromKey, toKey).
		Order("period").
		Find(&plans).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := emptySummary()
	if err := s.attachRolloverHints(summary, teamID, fromKey, plans); err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return summary, nil
	}

	planIDs := make([]string, len(plans))
	for i, p := range plans {
		planIDs[i] = p.ID
	}

	totalIncome, err := s.sumIncomeForPlans(planIDs)
	if err != nil {
		return nil, err
	}
	totalExpenses, err := s.sumExpensesForPlans(planIDs)
	if err != nil {
		return nil, err
	}

	summary.TotalIncome = totalIncome
	summary.TotalExpenses = totalExpenses
	summary.RemainingBalance = totalIncome.Sub(totalExpenses)
	summary.Buckets = buildBucketSummaries(plans, totalIncome, from, to)

	expenses, err := s.rangeExpenses(teamID, from, to)
	if err != nil {
		return nil, err
	}
	summary.Expenses = expenses
	summary.RecentExpenses = headExpenses(expenses, 5)

	monthly, err := s.monthlySeries(plans)
	if err != nil {
		return nil, err
	}
	summary.MonthlyData = monthly

	var sources []models.IncomeSource
	if err := s.db.Where("budget_plan_id IN ?", planIDs).
		Order("month_year, created_at").
		Find(&sources).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	summary.IncomeSources = sources

	return summary, nil
}

// GetDashboardSummary builds the landing-page view. It anchors on the
// month from falls in: that month's plan supplies the buckets. Income is
// counted differently from the range summary: only active income sources
// whose month falls inside [from, to], regardless of which plan they
// were recorded on.
func (s *summaryService) GetDashboardSummary(teamID string, from, to time.Time) (*BudgetSummary, error) {
	fromKey := period.FromTime(from)

	var plans []models.BudgetPlan
	if err := s.db.Preload("Buckets.LineItems.Expenses").
		Where("team_id = ? AND period = ?", teamID, fromKey).
		Find(&plans).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := emptySummary()
	if err := s.attachRolloverHints(summary, teamID, fromKey, plans); err != nil {
		return nil, err
	}

	var sources []models.IncomeSource
	if err := s.db.Where("team_id = ? AND is_active = ? AND month_year >= ? AND month_year <= ?", teamID, true, from, to).
		Order("month_year, created_at").
		Find(&sources).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	summary.IncomeSources = sources

	totalIncome := decimal.Zero
	for _, src := range sources {
		totalIncome = totalIncome.Add(src.Amount)
	}
	summary.TotalIncome = totalIncome

	expenses, err := s.rangeExpenses(teamID, from, to)
	if err != nil {
		return nil, err
	}
	summary.Expenses = expenses
	summary.RecentExpenses = headExpenses(expenses, 5)

	totalExpenses := decimal.Zero
	for _, e := range expenses {
		totalExpenses = totalExpenses.Add(e.Amount)
	}
	summary.TotalExpenses = totalExpenses
	summary.RemainingBalance = totalIncome.Sub(totalExpenses)

	if len(plans) > 0 {
		summary.Buckets = buildBucketSummaries(plans, totalIncome, from, to)
		monthly, err := s.monthlySeries(plans)
		if err != nil {
			return nil, err
		}
		summary.MonthlyData = monthly
	}

	complete, err := s.BucketPercentagesComplete(teamID, fromKey)
	if err != nil {
		return nil, err
	}
	summary.BucketsComplete = complete

	return summary, nil
}

// BucketPercentagesComplete reports whether the plan for the given month
// has buckets summing to exactly 100. A missing plan reads as incomplete.
func (s *summaryService) BucketPercentagesComplete(teamID string, key period.Key) (bool, error) {
	var plan models.BudgetPlan
	err := s.db.Where("team_id = ? AND period = ?", teamID, key).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	sum, err := bucketSiblingSum(s.db, plan.ID, nil)
	if err != nil {
		return false, err
	}
	return sum.Equal(hundred), nil
}

// LineItemPercentagesComplete reports whether a bucket's line items sum to
// exactly 100.
func (s *summaryService) LineItemPercentagesComplete(teamID, bucketID string) (bool, error) {
	bucket, err := bucketForTeam(s.db, teamID, bucketID)
	if err != nil {
		return false, err
	}
	sum, err := lineItemSiblingSum(s.db, bucket.ID, nil)
	if err != nil {
		return false, err
	}
	return sum.Equal(hundred), nil
}

// attachRolloverHints sets HasBudgetPlan, SuggestRollover, and
// PreviousPlanID. A rollover is suggested when the range has no plan but
// an earlier month does.
func (s *summaryService) attachRolloverHints(summary *BudgetSummary, teamID string, fromKey period.Key, plans []models.BudgetPlan) error {
	summary.HasBudgetPlan = len(plans) > 0
	if summary.HasBudgetPlan {
		return nil
	}

	var prior models.BudgetPlan
	err := s.db.Where("team_id = ? AND period < ?", teamID, fromKey).
		Order("period DESC").
		First(&prior).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	summary.SuggestRollover = true
	id := prior.ID
	summary.PreviousPlanID = &id
	return nil
}

func (s *summaryService) sumIncomeForPlans(planIDs []string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	if err := s.db.Model(&models.IncomeSource{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("budget_plan_id IN ?", planIDs).
		Scan(&sum).Error; err != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return sum, nil
}

func (s *summaryService) sumExpensesForPlans(planIDs []string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	if err := s.db.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("budget_plan_id IN ?", planIDs).
		Scan(&sum).Error; err != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return sum, nil
}

// buildBucketSummaries derives monetary figures for every bucket across
// the given plans. Buckets are keyed by ID, so the same conceptual bucket
// appearing on several plans (after rollovers) stays distinct; the income
// pool is shared, so each bucket's amount is its percentage of the whole
// range's income. Zero income means zero amounts, never a division step.
func buildBucketSummaries(plans []models.BudgetPlan, totalIncome decimal.Decimal, from, to time.Time) []BucketSummary {
	summaries := []BucketSummary{}
	for _, plan := range plans {
		for _, b := range plan.Buckets {
			bucketAmount := decimal.Zero
			if !totalIncome.IsZero() {
				bucketAmount = totalIncome.Mul(b.Percentage).Div(hundred).Round(2)
			}

			items := make([]LineItemSummary, 0, len(b.LineItems))
			bucketSpent := decimal.Zero
			for _, li := range b.LineItems {
				spent := decimal.Zero
				for _, e := range li.Expenses {
					if inRange(e.Date, from, to) {
						spent = spent.Add(e.Amount)
					}
				}
				itemAmount := decimal.Zero
				if !bucketAmount.IsZero() {
					itemAmount = bucketAmount.Mul(li.Percentage).Div(hundred).Round(2)
				}
				items = append(items, LineItemSummary{
					ID:         li.ID,
					Title:      li.Title,
					Percentage: li.Percentage,
					Amount:     itemAmount,
					Spent:      spent,
					Remaining:  itemAmount.Sub(spent),
				})
				bucketSpent = bucketSpent.Add(spent)
			}

			summaries = append(summaries, BucketSummary{
				ID:         b.ID,
				Title:      b.Title,
				Percentage: b.Percentage,
				Amount:     bucketAmount,
				Spent:      bucketSpent,
				Remaining:  bucketAmount.Sub(bucketSpent),
				LineItems:  items,
			})
		}
	}
	return summaries
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

// rangeExpenses lists the team's expenses within [from, to], newest first,
// annotated with their bucket and line item titles.
func (s *summaryService) rangeExpenses(teamID string, from, to time.Time) ([]ExpenseEntry, error) {
	var expenses []models.Expense
	if err := s.db.Preload("LineItem.Bucket").
		Where("team_id = ? AND date >= ? AND date <= ?", teamID, from, to).
		Order("date DESC, created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	entries := make([]ExpenseEntry, 0, len(expenses))
	for _, e := range expenses {
		entry := ExpenseEntry{
			ID:          e.ID,
			Date:        e.Date.Format("2006-01-02"),
			Description: e.Description,
			Amount:      e.Amount,
		}
		if e.LineItem != nil {
			entry.LineItem = e.LineItem.Title
			if e.LineItem.Bucket != nil {
				entry.Bucket = e.LineItem.Bucket.Title
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func headExpenses(entries []ExpenseEntry, n int) []ExpenseEntry {
	if len(entries) <= n {
		return entries
	}
	return entries[:n]
}

// monthlySeries returns one income/expense point per plan, ordered by month.
func (s *summaryService) monthlySeries(plans []models.BudgetPlan) ([]MonthlyPoint, error) {
	points := make([]MonthlyPoint, 0, len(plans))
	for _, plan := range plans {
		income, err := s.sumIncomeForPlans([]string{plan.ID})
		if err != nil {
			return nil, err
		}
		spent, err := s.sumExpensesForPlans([]string{plan.ID})
		if err != nil {
			return nil, err
		}
		points = append(points, MonthlyPoint{
			Period:   plan.Period,
			Label:    plan.Period.Label(),
			Income:   income,
			Expenses: spent,
		})
	}
	return points, nil
}
