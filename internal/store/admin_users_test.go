package store

import (
	"strings"
	"testing"
)

func TestAdminUserCreateAndAuthenticate(t *testing.T) {
	repo := NewAdminUsers(openTestDB(t))

	if err := repo.Create("admin", "s3cret-pass"); err != nil {
		t.Fatalf("create: %v", err)
	}

	user, err := repo.Authenticate("admin", "s3cret-pass")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user == nil {
		t.Fatal("correct credentials rejected")
	}
	if user.Username != "admin" || !user.IsActive {
		t.Errorf("unexpected user: %+v", user)
	}
	if user.PasswordHash == "s3cret-pass" || !strings.HasPrefix(user.PasswordHash, "$2") {
		t.Error("password not stored as a bcrypt hash")
	}
}

func TestAdminUserAuthenticateRejectsWrongPassword(t *testing.T) {
	repo := NewAdminUsers(openTestDB(t))
	if err := repo.Create("admin", "s3cret-pass"); err != nil {
		t.Fatalf("create: %v", err)
	}

	if user, _ := repo.Authenticate("admin", "wrong"); user != nil {
		t.Error("wrong password accepted")
	}
	if user, _ := repo.Authenticate("nobody", "s3cret-pass"); user != nil {
		t.Error("unknown username accepted")
	}
}

func TestAdminUserAuthenticateRequiresActive(t *testing.T) {
	db := openTestDB(t)
	repo := NewAdminUsers(db)
	if err := repo.Create("admin", "s3cret-pass"); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := db.Exec("UPDATE admin_users SET is_active = ?", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if user, _ := repo.Authenticate("admin", "s3cret-pass"); user != nil {
		t.Error("inactive account authenticated")
	}
}

func TestAdminUserActiveCount(t *testing.T) {
	db := openTestDB(t)
	repo := NewAdminUsers(db)

	count, err := repo.ActiveCount()
	if err != nil || count != 0 {
		t.Fatalf("empty count = %d, %v", count, err)
	}

	if err := repo.Create("admin", "s3cret-pass"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if count, _ := repo.ActiveCount(); count != 1 {
		t.Errorf("count = %d, want 1", count)
	}

	_ = db.Exec("UPDATE admin_users SET is_active = ?", false).Error
	if count, _ := repo.ActiveCount(); count != 0 {
		t.Errorf("count after deactivation = %d, want 0", count)
	}
}

func TestAdminUserUpdatePassword(t *testing.T) {
	repo := NewAdminUsers(openTestDB(t))
	if err := repo.Create("admin", "old-password"); err != nil {
		t.Fatalf("create: %v", err)
	}
	user, _ := repo.Authenticate("admin", "old-password")
	if user == nil {
		t.Fatal("setup login failed")
	}

	updated, err := repo.UpdatePassword(user.ID, "new-password")
	if err != nil || !updated {
		t.Fatalf("update password: %v, %v", updated, err)
	}

	if u, _ := repo.Authenticate("admin", "old-password"); u != nil {
		t.Error("old password still valid")
	}
	if u, _ := repo.Authenticate("admin", "new-password"); u == nil {
		t.Error("new password rejected")
	}

	if updated, _ := repo.UpdatePassword("no-such-id", "whatever-pass"); updated {
		t.Error("updating unknown id reported success")
	}
}
