package models

// EntityKind tags the entity an activity entry refers to. The set is
// closed; the recorder rejects nothing else at the type level because
// callers construct entries only through the activity service.
type EntityKind string

const (
	EntityTeam         EntityKind = "team"
	EntityBudgetPlan   EntityKind = "budget_plan"
	EntityBucket       EntityKind = "bucket"
	EntityLineItem     EntityKind = "line_item"
	EntityIncomeSource EntityKind = "income_source"
	EntityExpense      EntityKind = "expense"
)

// ActivityAction is the kind of mutation recorded.
type ActivityAction string

const (
	ActionCreated    ActivityAction = "created"
	ActionUpdated    ActivityAction = "updated"
	ActionDeleted    ActivityAction = "deleted"
	ActionRolledOver ActivityAction = "rolled_over"
)

// ActivityLog is an append-only audit record with before/after snapshots
// of the mutated entity. Rows are created by mutations and never changed.
type ActivityLog struct {
	Base
	TeamID     string         `gorm:"type:uuid;not null;index" json:"team_id"`
	UserID     string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Action     ActivityAction `gorm:"size:32;not null" json:"action"`
	EntityKind EntityKind     `gorm:"size:32;not null" json:"entity_kind"`
	EntityID   string         `gorm:"type:uuid;not null" json:"entity_id"`
	OldValues  string         `json:"old_values,omitempty"`
	NewValues  string         `json:"new_values,omitempty"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
