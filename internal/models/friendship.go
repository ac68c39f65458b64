package models

import (
	"time"
)

// Friendship is one directed edge in a user's friends list. Adding a friend
// creates the edge for the owning user only, matching the list-per-user
// semantics of the API; the combination of UserID and FriendID is unique.
type Friendship struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_friend" json:"user_id"`
	FriendID  uint      `gorm:"not null;uniqueIndex:idx_user_friend" json:"friend_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Friendship) TableName() string {
	return "friendships"
}
