package models

import "github.com/shopspring/decimal"

// Bucket is a named percentage-of-income allocation category within a plan.
// Sibling percentages under the same plan may never sum above 100.
type Bucket struct {
	Base
	BudgetPlanID string          `gorm:"type:uuid;not null;index" json:"budget_plan_id"`
	Title        string          `gorm:"size:255;not null" json:"title"`
	Percentage   decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"percentage"`

	// Relationships
	Plan      *BudgetPlan `gorm:"foreignKey:BudgetPlanID" json:"plan,omitempty"`
	LineItems []LineItem  `gorm:"foreignKey:BucketID" json:"line_items,omitempty"`
}
