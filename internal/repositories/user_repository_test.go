package repositories_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Hellga-Olga/MyBubble/internal/models"
	"github.com/Hellga-Olga/MyBubble/internal/repositories"
	"gorm.io/gorm"
)

func TestUserRepositoryLookups(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewPostgresUserRepository(db)

	alice := createUser(t, db, "alice")

	byID, err := repo.GetUserByID(alice.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byID.Username != "alice" {
		t.Errorf("username = %q, want alice", byID.Username)
	}

	byEmail, err := repo.GetUserByEmail("alice@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if byEmail.ID != alice.ID {
		t.Errorf("id = %d, want %d", byEmail.ID, alice.ID)
	}

	if _, err := repo.GetUserByUsername("nobody"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("unknown username err = %v, want record not found", err)
	}

	// username and email are unique columns
	dup := &models.User{Username: "alice", Email: "fresh@example.com"}
	if err := repo.CreateUser(dup); err == nil {
		t.Error("duplicate username must fail")
	}
}

func TestUserRepositoryReadMarker(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewPostgresUserRepository(db)

	alice := createUser(t, db, "alice")
	if got := alice.LastReadOrSentinel(); !got.Equal(models.SentinelReadTime) {
		t.Errorf("fresh user read marker = %v, want sentinel %v", got, models.SentinelReadTime)
	}

	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	if err := repo.AdvanceMessageReadTime(alice.ID, at); err != nil {
		t.Fatalf("advance read time: %v", err)
	}
	reloaded, err := repo.GetUserByID(alice.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := reloaded.LastReadOrSentinel(); !got.Equal(at) {
		t.Errorf("read marker = %v, want %v", got, at)
	}
}

func TestUserRepositoryTouchLastSeen(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewPostgresUserRepository(db)

	alice := createUser(t, db, "alice")
	at := time.Date(2024, 6, 2, 9, 30, 0, 0, time.UTC)
	if err := repo.TouchLastSeen(alice.ID, at); err != nil {
		t.Fatalf("touch last seen: %v", err)
	}

	reloaded, err := repo.GetUserByID(alice.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reloaded.LastSeen.Equal(at) {
		t.Errorf("last seen = %v, want %v", reloaded.LastSeen, at)
	}
}

func TestUserRepositorySearch(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewPostgresUserRepository(db)

	createUser(t, db, "alice")
	createUser(t, db, "alicia")
	createUser(t, db, "bob")

	users, err := repo.SearchUsers("ALI")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("search ALI returned %d users, want 2", len(users))
	}
	for _, u := range users {
		if u.Username == "bob" {
			t.Error("bob must not match ALI")
		}
	}

	users, err = repo.SearchUsers("zzz")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("search zzz returned %d users, want 0", len(users))
	}
}
