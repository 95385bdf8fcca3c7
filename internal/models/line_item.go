package models

import "github.com/shopspring/decimal"

// LineItem is a percentage-of-bucket allocation; expenses are recorded
// against line items. Sibling percentages under the same bucket may never
// sum above 100.
type LineItem struct {
	Base
	BucketID   string          `gorm:"type:uuid;not null;index" json:"bucket_id"`
	Title      string          `gorm:"size:255;not null" json:"title"`
	Percentage decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"percentage"`

	// Relationships
	Bucket   *Bucket   `gorm:"foreignKey:BucketID" json:"bucket,omitempty"`
	Expenses []Expense `gorm:"foreignKey:LineItemID" json:"expenses,omitempty"`
}
