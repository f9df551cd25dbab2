package models

import "time"

// Follow represents a directed follow edge between two users. The composite
// unique index makes duplicate edges impossible at the storage layer, so a
// racing double-follow degrades to a no-op.
type Follow struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_followed"`
	FollowedID uint      `json:"followed_id" gorm:"index;uniqueIndex:idx_follower_followed"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Follow) TableName() string {
	return "followers"
}
