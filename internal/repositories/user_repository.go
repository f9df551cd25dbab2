package repositories

import (
	"time"

	"github.com/Hellga-Olga/MyBubble/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(user *models.User) error
	TouchLastSeen(id uint, at time.Time) error
	AdvanceMessageReadTime(id uint, at time.Time) error
	SearchUsers(query string) ([]models.User, error)
}

// PostgresUserRepository implements UserRepository for the relational store
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *PostgresUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresUserRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresUserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresUserRepository) UpdateUser(user *models.User) error {
	return r.db.Save(user).Error
}

// TouchLastSeen records request activity for the user. Called from the
// last-seen middleware on every authenticated request.
func (r *PostgresUserRepository) TouchLastSeen(id uint, at time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("last_seen", at).Error
}

// AdvanceMessageReadTime moves the unread marker forward. Opening the
// messages view resets the unread count to zero through this marker.
func (r *PostgresUserRepository) AdvanceMessageReadTime(id uint, at time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("last_message_read_time", at).Error
}

// SearchUsers searches for users by username (case-insensitive)
func (r *PostgresUserRepository) SearchUsers(query string) ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("LOWER(username) LIKE LOWER(?)", "%"+query+"%").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
