package models

import "bucketwise/internal/period"

// BudgetPlan is a team's budget structure for a single calendar month.
// At most one plan exists per (team, period); the unique index is the
// backing invariant for idempotent plan resolution.
type BudgetPlan struct {
	Base
	TeamID string     `gorm:"type:uuid;not null;uniqueIndex:idx_team_period" json:"team_id"`
	Period period.Key `gorm:"size:7;not null;uniqueIndex:idx_team_period" json:"period"`

	// Relationships
	Buckets       []Bucket       `gorm:"foreignKey:BudgetPlanID" json:"buckets,omitempty"`
	IncomeSources []IncomeSource `gorm:"foreignKey:BudgetPlanID" json:"income_sources,omitempty"`
	Expenses      []Expense      `gorm:"foreignKey:BudgetPlanID" json:"expenses,omitempty"`
}
