package models

// Team is the tenancy boundary: every budgeting entity belongs to exactly
// one team, directly or through its budget plan.
type Team struct {
	Base
	Name    string `gorm:"not null" json:"name"`
	OwnerID string `gorm:"type:uuid;not null" json:"owner_id"`

	// Relationships
	Members []User       `gorm:"foreignKey:TeamID" json:"members,omitempty"`
	Plans   []BudgetPlan `gorm:"foreignKey:TeamID" json:"plans,omitempty"`
}
