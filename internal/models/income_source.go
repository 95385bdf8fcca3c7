package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncomeSource is a recurring or one-off income entry for a plan's period.
// Only active sources count toward the dashboard income total.
type IncomeSource struct {
	Base
	BudgetPlanID string          `gorm:"type:uuid;not null;index" json:"budget_plan_id"`
	TeamID       string          `gorm:"type:uuid;not null;index" json:"team_id"`
	Name         string          `gorm:"size:255;not null" json:"name"`
	Amount       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	IsActive     bool            `gorm:"default:true" json:"is_active"`
	MonthYear    time.Time       `gorm:"not null" json:"month_year"`

	// Relationships
	Plan *BudgetPlan `gorm:"foreignKey:BudgetPlanID" json:"plan,omitempty"`
}
