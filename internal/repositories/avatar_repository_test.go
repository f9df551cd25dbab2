package repositories_test

import (
	"errors"
	"testing"

	"github.com/Hellga-Olga/MyBubble/internal/models"
	"github.com/Hellga-Olga/MyBubble/internal/repositories"
	"gorm.io/gorm"
)

func TestAvatarRepository(t *testing.T) {
	t.Run("first upload has no displaced avatar", func(t *testing.T) {
		t.Parallel()
		db := newTestDB(t)
		repo := repositories.NewPostgresAvatarRepository(db)
		alice := createUser(t, db, "alice")

		old, err := repo.Replace(&models.Avatar{
			UserID:        alice.ID,
			OriginalPath:  "avatars/a.png",
			ThumbnailPath: "avatars/a_thumbnail.png",
		})
		if err != nil {
			t.Fatalf("Replace() error = %v", err)
		}
		if old != nil {
			t.Errorf("displaced avatar = %v, want nil", old)
		}
	})

	t.Run("second upload leaves exactly one row and reports the old one", func(t *testing.T) {
		t.Parallel()
		db := newTestDB(t)
		repo := repositories.NewPostgresAvatarRepository(db)
		alice := createUser(t, db, "alice")

		repo.Replace(&models.Avatar{
			UserID:        alice.ID,
			OriginalPath:  "avatars/a.png",
			ThumbnailPath: "avatars/a_thumbnail.png",
		})
		old, err := repo.Replace(&models.Avatar{
			UserID:        alice.ID,
			OriginalPath:  "avatars/b.png",
			ThumbnailPath: "avatars/b_thumbnail.png",
		})
		if err != nil {
			t.Fatalf("Replace() error = %v", err)
		}
		if old == nil || old.OriginalPath != "avatars/a.png" {
			t.Fatalf("displaced avatar = %v, want the first upload", old)
		}

		var count int64
		db.Model(&models.Avatar{}).Where("user_id = ?", alice.ID).Count(&count)
		if count != 1 {
			t.Errorf("avatar rows = %d, want 1", count)
		}

		current, err := repo.GetByUserID(alice.ID)
		if err != nil {
			t.Fatalf("GetByUserID() error = %v", err)
		}
		if current.OriginalPath != "avatars/b.png" {
			t.Errorf("current avatar = %q, want the newest upload", current.OriginalPath)
		}
	})

	t.Run("missing avatar is record-not-found", func(t *testing.T) {
		t.Parallel()
		db := newTestDB(t)
		repo := repositories.NewPostgresAvatarRepository(db)
		alice := createUser(t, db, "alice")

		if _, err := repo.GetByUserID(alice.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Errorf("GetByUserID() error = %v, want record not found", err)
		}
	})
}

func TestBoardRepositorySeed(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewPostgresBoardRepository(db)

	if err := repo.Seed(models.DefaultBoards); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	// seeding again creates nothing new
	if err := repo.Seed(models.DefaultBoards); err != nil {
		t.Fatalf("repeated Seed() error = %v", err)
	}

	boards, err := repo.ListBoards()
	if err != nil {
		t.Fatalf("ListBoards() error = %v", err)
	}
	if len(boards) != len(models.DefaultBoards) {
		t.Fatalf("got %d boards, want %d", len(boards), len(models.DefaultBoards))
	}

	board, err := repo.GetBoardByName("Casual")
	if err != nil {
		t.Fatalf("GetBoardByName() error = %v", err)
	}
	if board.Name != "Casual" {
		t.Errorf("board name = %q, want Casual", board.Name)
	}

	if _, err := repo.GetBoardByName("Nonexistent"); err == nil {
		t.Error("missing board lookup should fail")
	}
}
