package models

import (
	"time"

	"gorm.io/gorm"
)

// MaxReactionBodyLen is the upper bound on reaction body length.
const MaxReactionBodyLen = 280

// Reaction is a short comment attached to exactly one thought.
// The composite unique index gives add-to-set semantics: inserting a
// reaction that matches an existing one on (thought, body, username) is a
// silent no-op rather than a duplicate.
type Reaction struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	ThoughtID    uint        `gorm:"not null;uniqueIndex:idx_reaction_dedup" json:"-"`
	ReactionBody string      `gorm:"not null;uniqueIndex:idx_reaction_dedup" json:"reactionBody"`
	Username     string      `gorm:"not null;uniqueIndex:idx_reaction_dedup" json:"username"`
	CreatedAt    DisplayTime `json:"createdAt"`
}

// BeforeCreate stamps the creation time server-side.
func (r *Reaction) BeforeCreate(_ *gorm.DB) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = NewDisplayTime(time.Now())
	}
	return nil
}
