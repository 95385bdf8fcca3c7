package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is spending recorded against a line item. TeamID is denormalized
// so team-wide date-range queries avoid joining through plans.
type Expense struct {
	Base
	BudgetPlanID string          `gorm:"type:uuid;not null;index" json:"budget_plan_id"`
	TeamID       string          `gorm:"type:uuid;not null;index" json:"team_id"`
	LineItemID   string          `gorm:"type:uuid;not null;index" json:"line_item_id"`
	Date         time.Time       `gorm:"not null;index" json:"date"`
	Amount       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Description  string          `gorm:"size:255" json:"description"`

	// Relationships
	Plan     *BudgetPlan `gorm:"foreignKey:BudgetPlanID" json:"plan,omitempty"`
	LineItem *LineItem   `gorm:"foreignKey:LineItemID" json:"line_item,omitempty"`
}
