package models

import (
	"time"

	"gorm.io/gorm"
)

// MaxThoughtTextLen is the upper bound on thought text length.
const MaxThoughtTextLen = 280

// Thought is a short text post. Username is the author's display name,
// denormalized at creation time; UserID is the optional owning-user link and
// stays NULL when the caller supplied no user or the linkage failed.
type Thought struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	ThoughtText string      `gorm:"not null" json:"thoughtText"`
	Username    string      `gorm:"not null" json:"username"`
	UserID      *uint       `gorm:"index" json:"userId,omitempty"`
	CreatedAt   DisplayTime `json:"createdAt"`

	Reactions []Reaction `gorm:"foreignKey:ThoughtID;constraint:OnDelete:CASCADE" json:"reactions"`

	// ReactionCount is computed at read time, never persisted.
	ReactionCount int `gorm:"-" json:"reactionCount"`
}

// BeforeCreate stamps the creation time server-side.
func (t *Thought) BeforeCreate(_ *gorm.DB) error {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = NewDisplayTime(time.Now())
	}
	return nil
}

// Normalize fills computed fields and replaces a nil reactions slice so the
// JSON shape is stable.
func (t *Thought) Normalize() {
	if t.Reactions == nil {
		t.Reactions = []Reaction{}
	}
	t.ReactionCount = len(t.Reactions)
}
