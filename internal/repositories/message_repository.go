package repositories

import (
	"encoding/json"
	"time"

	"github.com/Hellga-Olga/MyBubble/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MessageRepository defines the interface for the private-message ledger.
type MessageRepository interface {
	Send(senderID, recipientID uint, body string) (*models.Message, error)
	UnreadCount(user *models.User) (int64, error)
	ReceivedPage(userID uint, page, perPage int) (*models.MessagePage, error)
	SentPage(userID uint, page, perPage int) (*models.MessagePage, error)
}

type postgresMessageRepository struct {
	db *gorm.DB
}

// NewPostgresMessageRepository creates a message repository backed by the
// relational store
func NewPostgresMessageRepository(db *gorm.DB) MessageRepository {
	return &postgresMessageRepository{db: db}
}

// Send inserts the message and refreshes the recipient's unread-count
// notification slot in the same transaction, so the counter never lags the
// ledger.
func (r *postgresMessageRepository) Send(senderID, recipientID uint, body string) (*models.Message, error) {
	msg := &models.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Body:        body,
		Timestamp:   time.Now().UTC(),
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		var recipient models.User
		if err := tx.First(&recipient, recipientID).Error; err != nil {
			return err
		}
		unread, err := unreadCount(tx, &recipient)
		if err != nil {
			return err
		}
		return replaceNotification(tx, recipientID, models.UnreadMessageCountNotification, unread)
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// UnreadCount counts messages received after the user's read marker.
func (r *postgresMessageRepository) UnreadCount(user *models.User) (int64, error) {
	return unreadCount(r.db, user)
}

func (r *postgresMessageRepository) ReceivedPage(userID uint, page, perPage int) (*models.MessagePage, error) {
	return r.page(r.db.Model(&models.Message{}).Where("recipient_id = ?", userID), page, perPage)
}

func (r *postgresMessageRepository) SentPage(userID uint, page, perPage int) (*models.MessagePage, error) {
	return r.page(r.db.Model(&models.Message{}).Where("sender_id = ?", userID), page, perPage)
}

func (r *postgresMessageRepository) page(scope *gorm.DB, page, perPage int) (*models.MessagePage, error) {
	if page < 1 {
		page = 1
	}
	var total int64
	if err := scope.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}
	var messages []models.Message
	err := scope.Session(&gorm.Session{}).
		Order("timestamp DESC, id DESC").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return &models.MessagePage{Messages: messages, Page: page, PerPage: perPage, TotalItems: total}, nil
}

func unreadCount(db *gorm.DB, user *models.User) (int64, error) {
	var count int64
	err := db.Model(&models.Message{}).
		Where("recipient_id = ? AND timestamp > ?", user.ID, user.LastReadOrSentinel()).
		Count(&count).Error
	return count, err
}

// replaceNotification is the in-transaction form of the notification upsert,
// shared with NotificationRepository semantics.
func replaceNotification(tx *gorm.DB, userID uint, name string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if err := tx.Where("user_id = ? AND name = ?", userID, name).
		Delete(&models.Notification{}).Error; err != nil {
		return err
	}
	return tx.Create(&models.Notification{
		Name:      name,
		UserID:    userID,
		Timestamp: float64(time.Now().UnixNano()) / 1e9,
		Payload:   datatypes.JSON(data),
	}).Error
}
