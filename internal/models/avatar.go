package models

import "time"

// Avatar is a user's uploaded avatar. A user has at most one; uploading a
// new one replaces the previous row and removes its files.
type Avatar struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"user_id" gorm:"index"`
	ThumbnailPath string    `json:"thumbnail_path"`
	OriginalPath  string    `json:"original_path"`
	CreatedAt     time.Time `json:"created_at"`
}
