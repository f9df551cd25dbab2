package models

import "time"

// Image is an upload attached to a post. Rows are removed together with the
// parent post; the stored paths are relative to the static upload root.
type Image struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	PostID        uint      `json:"post_id" gorm:"index"`
	UserID        uint      `json:"user_id" gorm:"index"`
	ThumbnailPath string    `json:"thumbnail_path"`
	OriginalPath  string    `json:"original_path"`
	CreatedAt     time.Time `json:"created_at"`
}
