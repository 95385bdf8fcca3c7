package services

import (
	"testing"

	"bucketwise/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("jane@example.com", "secret123", "Jane", "Doe")
		testutil.AssertNoError(t, err)

		if user.ID == "" {
			t.Fatal("expected non-empty user ID")
		}
		if user.Password == "secret123" {
			t.Error("password must be stored hashed")
		}
		if !svc.VerifyPassword(user, "secret123") {
			t.Error("expected password to verify")
		}
		if svc.VerifyPassword(user, "wrong") {
			t.Error("wrong password must not verify")
		}
	})

	t.Run("email_normalized", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("  Jane@Example.COM ", "secret123", "Jane", "Doe")
		testutil.AssertNoError(t, err)
		if user.Email != "jane@example.com" {
			t.Errorf("expected normalized email, got %s", user.Email)
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("jane@example.com", "secret123", "Jane", "Doe")
		testutil.AssertNoError(t, err)
		_, err = svc.CreateUser("JANE@example.com", "other456", "Janet", "Doe")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})
}

func TestTeamIDForUser(t *testing.T) {
	t.Run("with_team", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user, team := testutil.CreateTestUserWithTeam(t, db)

		teamID, err := svc.TeamIDForUser(user.ID)
		testutil.AssertNoError(t, err)
		if teamID != team.ID {
			t.Errorf("expected %s, got %s", team.ID, teamID)
		}
	})

	t.Run("without_team", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		teamID, err := svc.TeamIDForUser(user.ID)
		testutil.AssertNoError(t, err)
		if teamID != "" {
			t.Errorf("expected empty team ID, got %s", teamID)
		}
	})
}

func TestRefreshTokenHash(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.AssertNoError(t, svc.StoreRefreshTokenHash(user.ID, "abc123"))
		hash, err := svc.GetRefreshTokenHash(user.ID)
		testutil.AssertNoError(t, err)
		if hash != "abc123" {
			t.Errorf("expected abc123, got %s", hash)
		}
	})

	t.Run("unknown_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		err := svc.StoreRefreshTokenHash("no-such-user", "abc123")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}
