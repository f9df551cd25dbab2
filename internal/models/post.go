package models

import "time"

// Post represents a post on a board, optionally replying to a parent post.
// ParentPostID is a single-level reference only; thread chains are never
// walked.
type Post struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Body         string    `json:"body" gorm:"size:140"`
	Timestamp    time.Time `json:"timestamp" gorm:"index"`
	UserID       uint      `json:"user_id" gorm:"index"`
	BoardID      uint      `json:"board_id" gorm:"index"`
	ParentPostID *uint     `json:"parent_post_id,omitempty" gorm:"index"`
	Language     string    `json:"language" gorm:"size:5"`
	Images       []Image   `json:"images,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// CreatePostRequest defines the request body for posting to a board or
// replying to a post
type CreatePostRequest struct {
	Body string `json:"body" validate:"required,min=1,max=140"`
}

// PostPage is a paginated slice of posts
type PostPage struct {
	Posts      []Post `json:"posts"`
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	TotalItems int64  `json:"total_items"`
}

func (p PostPage) HasNext() bool {
	return int64(p.Page*p.PerPage) < p.TotalItems
}

func (p PostPage) HasPrev() bool {
	return p.Page > 1
}
