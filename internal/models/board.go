package models

// Board is a named topic container for posts
type Board struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:64;uniqueIndex"`
}

// DefaultBoards are seeded at startup when absent
var DefaultBoards = []string{"Casual", "Movies", "Music", "Video Games", "Books"}
