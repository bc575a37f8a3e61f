package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/01moynul/review-seller-golang/internal/database"
	"github.com/01moynul/review-seller-golang/internal/store"
)

func newUser(email, phone string) store.NewUser {
	return store.NewUser{
		FirstName:    "Grace",
		LastName:     "Hopper",
		Email:        email,
		Phone:        phone,
		Country:      "USA",
		Gender:       "female",
		PasswordHash: "$2a$10$notarealhashbutlongenough1234567890abcdef",
	}
}

func TestCreateUserDefaults(t *testing.T) {
	db := database.NewTestDB(t)

	user, err := store.CreateUser(context.Background(), db, newUser("grace@gmail.com", "+8801712222222"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.Role != "user" || user.Status != "pending" {
		t.Fatalf("expected role user and status pending, got %q/%q", user.Role, user.Status)
	}
	if user.FullName != "Grace Hopper" {
		t.Fatalf("expected derived full name, got %q", user.FullName)
	}
}

func TestCreateUserDuplicateEmailAndPhone(t *testing.T) {
	db := database.NewTestDB(t)
	ctx := context.Background()

	if _, err := store.CreateUser(ctx, db, newUser("grace@gmail.com", "+8801712222222")); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := store.CreateUser(ctx, db, newUser("GRACE@GMAIL.COM", "+8801713333333"))
	if !errors.Is(err, store.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	_, err = store.CreateUser(ctx, db, newUser("other@gmail.com", "+8801712222222"))
	if !errors.Is(err, store.ErrPhoneTaken) {
		t.Fatalf("expected ErrPhoneTaken, got %v", err)
	}
}

func TestGetUserByEmailCaseInsensitive(t *testing.T) {
	db := database.NewTestDB(t)
	ctx := context.Background()

	created, err := store.CreateUser(ctx, db, newUser("grace@gmail.com", "+8801712222222"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := store.GetUserByEmail(ctx, db, "Grace@Gmail.Com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("expected user %s, got %s", created.ID, got.ID)
	}

	if _, err := store.GetUserByEmail(ctx, db, "nobody@gmail.com"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateUserRederivesFullName(t *testing.T) {
	db := database.NewTestDB(t)
	ctx := context.Background()

	user, err := store.CreateUser(ctx, db, newUser("grace@gmail.com", "+8801712222222"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	last := "Murray"
	role := "admin"
	updated, err := store.UpdateUser(ctx, db, user.ID, store.UserFields{
		LastName: &last,
		Role:     &role,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.FullName != "Grace Murray" {
		t.Fatalf("expected re-derived full name, got %q", updated.FullName)
	}
	if updated.Role != "admin" {
		t.Fatalf("expected role admin, got %q", updated.Role)
	}
}
