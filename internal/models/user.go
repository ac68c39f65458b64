// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents an account that authors thoughts and keeps a friends list.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Email     string    `gorm:"unique;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Thoughts is the back-reference to thoughts authored by this user,
	// resolved from thoughts.user_id at read time.
	Thoughts []Thought `gorm:"foreignKey:UserID" json:"thoughts"`

	// Friends is resolved through friendship rows; it is not a stored column.
	Friends []User `gorm:"-" json:"friends"`

	// FriendCount is computed at read time, never persisted.
	FriendCount int `gorm:"-" json:"friendCount"`
}

// Normalize fills computed fields and replaces nil slices so the JSON shape
// is stable ("thoughts": [] rather than null).
func (u *User) Normalize() {
	if u.Thoughts == nil {
		u.Thoughts = []Thought{}
	}
	for i := range u.Thoughts {
		u.Thoughts[i].Normalize()
	}
	if u.Friends == nil {
		u.Friends = []User{}
	}
	for i := range u.Friends {
		if u.Friends[i].Thoughts == nil {
			u.Friends[i].Thoughts = []Thought{}
		}
		if u.Friends[i].Friends == nil {
			u.Friends[i].Friends = []User{}
		}
	}
	u.FriendCount = len(u.Friends)
}
