package models

import "time"

// Message represents a private message between two users
type Message struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	SenderID    uint      `json:"sender_id" gorm:"index"`
	RecipientID uint      `json:"recipient_id" gorm:"index"`
	Body        string    `json:"body" gorm:"size:140"`
	Timestamp   time.Time `json:"timestamp" gorm:"index"`
}

// SendMessageRequest defines the request body for sending a private message
type SendMessageRequest struct {
	Body string `json:"body" validate:"required,min=1,max=140"`
}

// MessagePage is a paginated slice of messages
type MessagePage struct {
	Messages   []Message `json:"messages"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
	TotalItems int64     `json:"total_items"`
}
