package repositories_test

import (
	"testing"

	"github.com/Hellga-Olga/MyBubble/internal/repositories"
)

func TestFollowRepository(t *testing.T) {
	t.Run("follow then is_following and counts", func(t *testing.T) {
		t.Parallel()
		db := newTestDB(t)
		repo := repositories.NewPostgresFollowRepository(db)
		alice := createUser(t, db, "alice")
		bob := createUser(t, db, "bob")

		following, err := repo.IsFollowing(alice.ID, bob.ID)
		if err != nil {
			t.Fatalf("IsFollowing() error = %v", err)
		}
		if following {
			t.Fatal("alice should not follow bob yet")
		}

		if err := repo.Follow(alice.ID, bob.ID); err != nil {
			t.Fatalf("Follow() error = %v", err)
		}

		following, err = repo.IsFollowing(alice.ID, bob.ID)
		if err != nil {
			t.Fatalf("IsFollowing() error = %v", err)
		}
		if !following {
			t.Error("alice should follow bob")
		}

		// the edge is directed
		reverse, err := repo.IsFollowing(bob.ID, alice.ID)
		if err != nil {
			t.Fatalf("IsFollowing() error = %v", err)
		}
		if reverse {
			t.Error("bob should not follow alice")
		}

		followers, _ := repo.GetFollowersCount(bob.ID)
		if followers != 1 {
			t.Errorf("bob followers = %d, want 1", followers)
		}
		followingCount, _ := repo.GetFollowingCount(alice.ID)
		if followingCount != 1 {
			t.Errorf("alice following = %d, want 1", followingCount)
		}
	})

	t.Run("double follow is a no-op", func(t *testing.T) {
		t.Parallel()
		db := newTestDB(t)
		repo := repositories.NewPostgresFollowRepository(db)
		alice := createUser(t, db, "alice")
		bob := createUser(t, db, "bob")

		if err := repo.Follow(alice.ID, bob.ID); err != nil {
			t.Fatalf("Follow() error = %v", err)
		}
		if err := repo.Follow(alice.ID, bob.ID); err != nil {
			t.Fatalf("repeated Follow() error = %v", err)
		}

		followers, _ := repo.GetFollowersCount(bob.ID)
		if followers != 1 {
			t.Errorf("bob followers = %d after double follow, want 1", followers)
		}
	})

	t.Run("unfollow restores prior counts", func(t *testing.T) {
		t.Parallel()
		db := newTestDB(t)
		repo := repositories.NewPostgresFollowRepository(db)
		alice := createUser(t, db, "alice")
		bob := createUser(t, db, "bob")

		if err := repo.Follow(alice.ID, bob.ID); err != nil {
			t.Fatalf("Follow() error = %v", err)
		}
		if err := repo.Unfollow(alice.ID, bob.ID); err != nil {
			t.Fatalf("Unfollow() error = %v", err)
		}

		followers, _ := repo.GetFollowersCount(bob.ID)
		if followers != 0 {
			t.Errorf("bob followers = %d after unfollow, want 0", followers)
		}
		following, _ := repo.IsFollowing(alice.ID, bob.ID)
		if following {
			t.Error("alice should no longer follow bob")
		}

		// unfollowing again is a no-op
		if err := repo.Unfollow(alice.ID, bob.ID); err != nil {
			t.Fatalf("repeated Unfollow() error = %v", err)
		}
	})

	t.Run("follower and following listings resolve the same edge", func(t *testing.T) {
		t.Parallel()
		db := newTestDB(t)
		repo := repositories.NewPostgresFollowRepository(db)
		alice := createUser(t, db, "alice")
		bob := createUser(t, db, "bob")
		carol := createUser(t, db, "carol")

		repo.Follow(alice.ID, bob.ID)
		repo.Follow(carol.ID, bob.ID)

		followers, err := repo.GetFollowers(bob.ID)
		if err != nil {
			t.Fatalf("GetFollowers() error = %v", err)
		}
		if len(followers) != 2 {
			t.Fatalf("bob has %d followers, want 2", len(followers))
		}

		following, err := repo.GetFollowing(alice.ID)
		if err != nil {
			t.Fatalf("GetFollowing() error = %v", err)
		}
		if len(following) != 1 || following[0].Username != "bob" {
			t.Fatalf("alice following = %v, want [bob]", following)
		}
	})
}
