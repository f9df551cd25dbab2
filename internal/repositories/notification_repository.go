package repositories

import (
	"encoding/json"
	"time"

	"github.com/Hellga-Olga/MyBubble/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for the per-user notification
// queue. Upsert is last-write-wins replace-by-key: the (user, name) pair is a
// single slot, never an accumulating list.
type NotificationRepository interface {
	Upsert(userID uint, name string, payload any) (*models.Notification, error)
	ListSince(userID uint, since float64) ([]models.Notification, error)
}

type postgresNotificationRepository struct {
	db *gorm.DB
}

// NewPostgresNotificationRepository creates a notification repository backed
// by the relational store
func NewPostgresNotificationRepository(db *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: db}
}

// Upsert deletes any live notifications under (userID, name) and inserts a
// fresh row holding payload, atomically within one transaction.
func (r *postgresNotificationRepository) Upsert(userID uint, name string, payload any) (*models.Notification, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	n := &models.Notification{
		Name:      name,
		UserID:    userID,
		Timestamp: float64(time.Now().UnixNano()) / 1e9,
		Payload:   datatypes.JSON(data),
	}
	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND name = ?", userID, name).
			Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		return tx.Create(n).Error
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

// ListSince returns the user's notifications with timestamp strictly greater
// than since, oldest first, for incremental client polling.
func (r *postgresNotificationRepository) ListSince(userID uint, since float64) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("user_id = ? AND timestamp > ?", userID, since).
		Order("timestamp ASC").
		Find(&notifications).Error
	return notifications, err
}
