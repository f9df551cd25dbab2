package models

import (
	"crypto/md5"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// SentinelReadTime is the read marker used before a user ever opens their
// messages view. Messages are unread iff newer than this.
var SentinelReadTime = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

// User represents a registered forum user
type User struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	Username            string    `json:"username" gorm:"size:64;uniqueIndex"`
	Email               string    `json:"email" gorm:"size:120;uniqueIndex"`
	PasswordHash        string    `json:"-" gorm:"size:256"`
	AboutMe             string    `json:"about_me" gorm:"size:140"`
	LastSeen            time.Time `json:"last_seen"`
	LastMessageReadTime time.Time `json:"-"`
	CreatedAt           time.Time `json:"created_at"`
}

// AvatarURL returns a gravatar identicon for users without an uploaded avatar.
func (u *User) AvatarURL(size int) string {
	digest := md5.Sum([]byte(strings.ToLower(u.Email)))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?d=identicon&s=%d", digest, size)
}

// LastReadOrSentinel returns the user's read marker, falling back to the
// far-past sentinel when the messages view was never opened.
func (u *User) LastReadOrSentinel() time.Time {
	if u.LastMessageReadTime.IsZero() {
		return SentinelReadTime
	}
	return u.LastMessageReadTime
}

// UserProfile is the public projection of a user returned by the API
type UserProfile struct {
	ID             uint      `json:"id"`
	Username       string    `json:"username"`
	AboutMe        string    `json:"about_me"`
	LastSeen       time.Time `json:"last_seen"`
	AvatarURL      string    `json:"avatar_url"`
	FollowersCount int64     `json:"followers_count"`
	FollowingCount int64     `json:"following_count"`
	IsFollowing    bool      `json:"is_following"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=2,max=64"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordSubmit struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type UpdateProfileRequest struct {
	Username string `json:"username,omitempty" validate:"omitempty,min=2,max=64"`
	AboutMe  string `json:"about_me,omitempty" validate:"omitempty,max=140"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
