package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"bucketwise/internal/models"
	"bucketwise/internal/period"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:     email,
		Password:  string(hash),
		FirstName: fmt.Sprintf("Test%d", counter.Load()),
		IsActive:  true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTeam creates a team owned by the user and assigns them to it.
func CreateTestTeam(t *testing.T, db *gorm.DB, owner *models.User) *models.Team {
	t.Helper()

	team := &models.Team{
		Name:    fmt.Sprintf("Test Team %d", nextID()),
		OwnerID: owner.ID,
	}
	if err := db.Create(team).Error; err != nil {
		t.Fatalf("failed to create test team: %v", err)
	}
	if err := db.Model(owner).Update("team_id", team.ID).Error; err != nil {
		t.Fatalf("failed to assign user to test team: %v", err)
	}
	owner.TeamID = &team.ID
	return team
}

// CreateTestUserWithTeam creates a user plus a team they own.
func CreateTestUserWithTeam(t *testing.T, db *gorm.DB) (*models.User, *models.Team) {
	t.Helper()
	user := CreateTestUser(t, db)
	team := CreateTestTeam(t, db, user)
	return user, team
}

// CreateTestPlan creates a budget plan for the team and month.
func CreateTestPlan(t *testing.T, db *gorm.DB, teamID string, key period.Key) *models.BudgetPlan {
	t.Helper()

	plan := &models.BudgetPlan{TeamID: teamID, Period: key}
	if err := db.Create(plan).Error; err != nil {
		t.Fatalf("failed to create test plan: %v", err)
	}
	return plan
}

// CreateTestBucket creates a bucket on the plan with the given percentage.
func CreateTestBucket(t *testing.T, db *gorm.DB, planID string, percentage float64) *models.Bucket {
	t.Helper()

	bucket := &models.Bucket{
		BudgetPlanID: planID,
		Title:        fmt.Sprintf("Test Bucket %d", nextID()),
		Percentage:   decimal.NewFromFloat(percentage),
	}
	if err := db.Create(bucket).Error; err != nil {
		t.Fatalf("failed to create test bucket: %v", err)
	}
	return bucket
}

// CreateTestLineItem creates a line item on the bucket with the given percentage.
func CreateTestLineItem(t *testing.T, db *gorm.DB, bucketID string, percentage float64) *models.LineItem {
	t.Helper()

	item := &models.LineItem{
		BucketID:   bucketID,
		Title:      fmt.Sprintf("Test Line Item %d", nextID()),
		Percentage: decimal.NewFromFloat(percentage),
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test line item: %v", err)
	}
	return item
}

// CreateTestIncomeSource creates an active income source on the plan for
// the given month.
func CreateTestIncomeSource(t *testing.T, db *gorm.DB, planID, teamID string, amount float64, monthYear time.Time) *models.IncomeSource {
	t.Helper()

	source := &models.IncomeSource{
		BudgetPlanID: planID,
		TeamID:       teamID,
		Name:         fmt.Sprintf("Test Income %d", nextID()),
		Amount:       decimal.NewFromFloat(amount),
		IsActive:     true,
		MonthYear:    monthYear,
	}
	if err := db.Create(source).Error; err != nil {
		t.Fatalf("failed to create test income source: %v", err)
	}
	return source
}

// CreateTestExpense creates an expense against the line item on the given date.
func CreateTestExpense(t *testing.T, db *gorm.DB, planID, teamID, lineItemID string, amount float64, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		BudgetPlanID: planID,
		TeamID:       teamID,
		LineItemID:   lineItemID,
		Date:         date,
		Amount:       decimal.NewFromFloat(amount),
		Description:  fmt.Sprintf("Test Expense %d", nextID()),
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}
