package services

import (
	"time"

	"github.com/shopspring/decimal"

	"bucketwise/internal/models"
	"bucketwise/internal/pagination"
	"bucketwise/internal/period"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	TouchLastLogin(userID string) error
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
	TeamIDForUser(userID string) (string, error)
}

// TeamServicer defines the contract for team management.
type TeamServicer interface {
	CreateTeam(userID, name string) (*models.Team, error)
	GetTeam(userID, teamID string) (*models.Team, error)
	UpdateTeam(userID, teamID, name string) (*models.Team, error)
}

// PlanServicer defines the contract for budget plan resolution and rollover.
type PlanServicer interface {
	ResolvePlan(teamID string, key period.Key) (*models.BudgetPlan, error)
	FindLatestPriorPlan(teamID string, before period.Key) (*models.BudgetPlan, error)
	CreatePlan(userID, teamID string, key period.Key, copyFromPlanID *string) (*models.BudgetPlan, error)
	Rollover(userID, teamID string, target period.Key) (*models.BudgetPlan, error)
	ListPlans(teamID string) ([]models.BudgetPlan, error)
}

// LineItemInput carries a nested line item supplied at bucket creation.
type LineItemInput struct {
	Title      string
	Percentage decimal.Decimal
}

// BucketServicer defines the contract for bucket mutations.
type BucketServicer interface {
	CreateBucket(userID, teamID string, key period.Key, title string, percentage decimal.Decimal, lineItems []LineItemInput) (*models.Bucket, error)
	GetBucketByID(teamID, bucketID string) (*models.Bucket, error)
	UpdateBucket(userID, teamID, bucketID, title string, percentage *decimal.Decimal) (*models.Bucket, error)
	DeleteBucket(userID, teamID, bucketID string) error
}

// LineItemServicer defines the contract for line item mutations.
type LineItemServicer interface {
	CreateLineItem(userID, teamID, bucketID, title string, percentage decimal.Decimal) (*models.LineItem, error)
	UpdateLineItem(userID, teamID, lineItemID, title string, percentage *decimal.Decimal) (*models.LineItem, error)
	DeleteLineItem(userID, teamID, lineItemID string) error
}

// IncomeServicer defines the contract for income source mutations.
type IncomeServicer interface {
	CreateIncomeSource(userID, teamID, name string, amount decimal.Decimal, monthYear time.Time, isActive bool) (*models.IncomeSource, error)
	UpdateIncomeSource(userID, teamID, incomeID, name string, amount *decimal.Decimal, isActive *bool) (*models.IncomeSource, error)
	DeleteIncomeSource(userID, teamID, incomeID string) error
	ListIncomeSources(teamID string, page pagination.PageRequest) (*pagination.PageResponse[models.IncomeSource], error)
}

// ExpenseFilter holds optional filter parameters for listing expenses.
type ExpenseFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	LineItemID *string
}

// ExpenseServicer defines the contract for expense mutations.
type ExpenseServicer interface {
	CreateExpense(userID, teamID, lineItemID string, date time.Time, amount decimal.Decimal, description string) (*models.Expense, error)
	UpdateExpense(userID, teamID, expenseID string, date *time.Time, amount *decimal.Decimal, description string) (*models.Expense, error)
	DeleteExpense(userID, teamID, expenseID string) error
	ListExpenses(teamID string, page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error)
}

// LineItemSummary is a line item with its derived monetary figures.
type LineItemSummary struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Percentage decimal.Decimal `json:"percentage"`
	Amount     decimal.Decimal `json:"amount"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
}

// BucketSummary is a bucket with its derived monetary figures and line items.
type BucketSummary struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Percentage decimal.Decimal   `json:"percentage"`
	Amount     decimal.Decimal   `json:"amount"`
	Spent      decimal.Decimal   `json:"spent"`
	Remaining  decimal.Decimal   `json:"remaining"`
	LineItems  []LineItemSummary `json:"line_items"`
}

// ExpenseEntry is an expense annotated with its bucket and line item titles.
type ExpenseEntry struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Bucket      string          `json:"bucket"`
	LineItem    string          `json:"line_item"`
}

// MonthlyPoint is one per-plan entry of the income-vs-expense series.
type MonthlyPoint struct {
	Period   period.Key      `json:"period"`
	Label    string          `json:"label"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// BudgetSummary is the full budget picture for a team over a date range.
type BudgetSummary struct {
	TotalIncome      decimal.Decimal       `json:"total_income"`
	TotalExpenses    decimal.Decimal       `json:"total_expenses"`
	RemainingBalance decimal.Decimal       `json:"remaining_balance"`
	Buckets          []BucketSummary       `json:"buckets"`
	RecentExpenses   []ExpenseEntry        `json:"recent_expenses"`
	Expenses         []ExpenseEntry        `json:"expenses"`
	MonthlyData      []MonthlyPoint        `json:"monthly_data"`
	IncomeSources    []models.IncomeSource `json:"income_sources"`
	HasBudgetPlan    bool                  `json:"has_budget_plan"`
	// BucketsComplete reports whether the anchor month's buckets allocate
	// exactly 100%. Set by the dashboard path only.
	BucketsComplete bool    `json:"buckets_complete"`
	SuggestRollover bool    `json:"suggest_rollover"`
	PreviousPlanID  *string `json:"previous_plan_id,omitempty"`
}

// SummaryServicer defines the contract for budget aggregation.
type SummaryServicer interface {
	GetRangeSummary(teamID string, from, to time.Time) (*BudgetSummary, error)
	GetDashboardSummary(teamID string, from, to time.Time) (*BudgetSummary, error)
	BucketPercentagesComplete(teamID string, key period.Key) (bool, error)
	LineItemPercentagesComplete(teamID, bucketID string) (bool, error)
}

// ActivityEntry is a rendered activity feed item.
type ActivityEntry struct {
	ID          string                `json:"id"`
	Description string                `json:"description"`
	Action      models.ActivityAction `json:"action"`
	EntityKind  models.EntityKind     `json:"entity_kind"`
	Timestamp   time.Time             `json:"timestamp"`
	Details     map[string]any        `json:"details,omitempty"`
}

// ActivityServicer defines the contract for activity recording.
type ActivityServicer interface {
	Record(teamID, userID string, kind models.EntityKind, entityID string, action models.ActivityAction, oldValues, newValues map[string]any)
	GetTeamActivity(teamID string, limit int) ([]ActivityEntry, error)
}
