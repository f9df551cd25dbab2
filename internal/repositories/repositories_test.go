package repositories_test

import (
	"testing"
	"time"

	"github.com/Hellga-Olga/MyBubble/internal/models"
	"github.com/Hellga-Olga/MyBubble/internal/repositories"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Board{},
		&models.Post{},
		&models.Image{},
		&models.Avatar{},
		&models.Message{},
		&models.Notification{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		LastSeen: time.Now().UTC(),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func createBoard(t *testing.T, db *gorm.DB, name string) *models.Board {
	t.Helper()
	board := &models.Board{Name: name}
	if err := db.Create(board).Error; err != nil {
		t.Fatalf("create board %s: %v", name, err)
	}
	return board
}

func createPost(t *testing.T, db *gorm.DB, author *models.User, board *models.Board, body string, at time.Time) *models.Post {
	t.Helper()
	post := &models.Post{
		Body:      body,
		Timestamp: at,
		UserID:    author.ID,
		BoardID:   board.ID,
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("create post %q: %v", body, err)
	}
	return post
}

func sendMessage(t *testing.T, repo repositories.MessageRepository, sender, recipient *models.User, body string) *models.Message {
	t.Helper()
	msg, err := repo.Send(sender.ID, recipient.ID, body)
	if err != nil {
		t.Fatalf("send message: %v", err)
	}
	return msg
}
