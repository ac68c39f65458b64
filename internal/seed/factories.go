// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, opts: opts, nextID: 1000}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
	}

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %+v", user)
		return user, nil
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildThought constructs a thought struct for the given user with a
// realistic created_at spread but does not persist it. Useful for batching.
func (f *Factory) BuildThought(user *models.User, overrides ...func(*models.Thought)) *models.Thought {
	thought := &models.Thought{
		ThoughtText: randomThoughtText(),
		Username:    user.Username,
		UserID:      &user.ID,
	}

	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	daysBack := r.Intn(maxDays)
	hoursBack := r.Intn(24)
	minsBack := r.Intn(60)
	created := time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)
	thought.CreatedAt = models.NewDisplayTime(created)

	for _, override := range overrides {
		override(thought)
	}
	return thought
}

// CreateThoughtsBatch persists multiple thoughts in a single DB call when possible.
func (f *Factory) CreateThoughtsBatch(thoughts []*models.Thought) error {
	if len(thoughts) == 0 {
		return nil
	}
	if f.opts.DryRun {
		for _, th := range thoughts {
			f.nextID++
			th.ID = f.nextID
		}
		log.Printf("[dry-run] CreateThoughtsBatch: %d thoughts (no DB write)", len(thoughts))
		return nil
	}
	return f.db.Create(&thoughts).Error
}

// CreateReaction attaches a generated reaction to the given thought.
// Duplicate reactions (same body and username) are silently skipped, matching
// the API's add semantics.
func (f *Factory) CreateReaction(thought *models.Thought, username string, overrides ...func(*models.Reaction)) (*models.Reaction, error) {
	reaction := &models.Reaction{
		ThoughtID:    thought.ID,
		ReactionBody: randomReactionBody(),
		Username:     username,
	}

	for _, override := range overrides {
		override(reaction)
	}

	if f.opts.DryRun {
		f.nextID++
		reaction.ID = f.nextID
		log.Printf("[dry-run] CreateReaction: %+v", reaction)
		return reaction, nil
	}

	err := f.db.Create(reaction).Error
	if err != nil {
		if isDuplicate(err) {
			return nil, nil
		}
		return nil, err
	}
	return reaction, nil
}

// CreateFriendship records a directed friendship edge. An existing edge is
// left untouched.
func (f *Factory) CreateFriendship(userID, friendID uint) error {
	if userID == friendID {
		return nil
	}
	if f.opts.DryRun {
		log.Printf("[dry-run] CreateFriendship: %d -> %d", userID, friendID)
		return nil
	}
	edge := &models.Friendship{UserID: userID, FriendID: friendID}
	err := f.db.Create(edge).Error
	if err != nil && isDuplicate(err) {
		return nil
	}
	return err
}
