// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumThoughts int
	ShouldClean bool
	// MaxDays bounds the backdating of generated thoughts.
	MaxDays int
	// DryRun skips all database writes and logs what would happen.
	DryRun bool
}

var (
	adjectives = []string{
		"amazing", "incredible", "fascinating", "challenging", "excited", "happy", "proud",
		"grateful", "inspired", "motivated", "curious", "passionate", "creative", "innovative",
		"collaborative", "productive", "powerful", "simple", "beautiful", "elegant",
		"intense", "focused", "driven", "ambitious", "humble", "thoughtful", "kind",
	}

	nouns = []string{
		"project", "team", "community", "code", "design", "idea", "concept",
		"challenge", "opportunity", "goal", "dream", "journey", "experience", "lesson",
		"technology", "future", "world", "life", "work", "passion", "hobby",
	}

	verbs = []string{
		"built", "created", "designed", "launched", "shipped",
		"fixed", "solved", "learned", "discovered", "explored", "shared",
		"wrote", "read", "watched", "played", "enjoyed", "loved",
	}

	reactionBodies = []string{
		"Love this!", "So true", "Couldn't agree more", "Interesting take",
		"This made my day", "Well said", "Big mood", "Thanks for sharing",
		"Needed to hear this", "Same here", "Absolutely", "Nice one",
	}
)

func randomThoughtText() string {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	switch r.Intn(3) {
	case 0:
		return fmt.Sprintf("Just %s an %s %s. Feeling %s!",
			verbs[r.Intn(len(verbs))], adjectives[r.Intn(len(adjectives))],
			nouns[r.Intn(len(nouns))], adjectives[r.Intn(len(adjectives))])
	case 1:
		return fmt.Sprintf("Today I %s something about my %s that I want to share.",
			verbs[r.Intn(len(verbs))], nouns[r.Intn(len(nouns))])
	default:
		return gofakeit.Sentence(r.Intn(12) + 4)
	}
}

func randomReactionBody() string {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return reactionBodies[r.Intn(len(reactionBodies))]
}

// Seeder drives seeding runs against a database.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder with default options.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db, opts)}
}

// ClearAll removes all seeded data. Reactions and friendships go first to
// keep foreign keys satisfied on stores without cascade support.
func (s *Seeder) ClearAll() error {
	log.Println("🗑️  Clearing existing data...")
	tables := []string{"reactions", "friendships", "thoughts", "users"}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

// Presets seeds the fixed demo accounts the frontend expects: three users
// who are mutual friends, each with a couple of thoughts and reactions.
func (s *Seeder) Presets() error {
	presets := []struct {
		username string
		email    string
		thoughts []string
	}{
		{"alice", "alice@example.com", []string{
			"Hello world, this is my first thought!",
			"Thinking about what to build next.",
		}},
		{"bob", "bob@example.com", []string{
			"Anyone else love coding at 2am?",
		}},
		{"charlie", "charlie@example.com", []string{
			"Just finished a great book on distributed systems.",
			"Coffee count today: 4. Send help.",
		}},
	}

	users := make([]*models.User, 0, len(presets))
	for _, p := range presets {
		var user models.User
		err := s.db.Where("username = ?", p.username).First(&user).Error
		if err == nil {
			users = append(users, &user)
			continue
		}

		created, err := s.factory.CreateUser(func(u *models.User) {
			u.Username = p.username
			u.Email = p.email
		})
		if err != nil {
			return fmt.Errorf("failed to create preset user %s: %w", p.username, err)
		}
		for _, text := range p.thoughts {
			thought := s.factory.BuildThought(created, func(th *models.Thought) {
				th.ThoughtText = text
			})
			if err := s.factory.CreateThoughtsBatch([]*models.Thought{thought}); err != nil {
				return fmt.Errorf("failed to create preset thought: %w", err)
			}
		}
		users = append(users, created)
	}

	// Mutual friendships between all preset users.
	for i, a := range users {
		for j, b := range users {
			if i == j {
				continue
			}
			if err := s.factory.CreateFriendship(a.ID, b.ID); err != nil {
				return fmt.Errorf("failed to create preset friendship: %w", err)
			}
		}
	}

	log.Printf("✓ %d preset users seeded", len(users))
	return nil
}

// SeedSocialMesh creates numUsers random users wired into a friendship mesh.
func (s *Seeder) SeedSocialMesh(numUsers int) ([]*models.User, error) {
	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			// Username/email collisions from the generator; retry once.
			if isDuplicate(err) {
				user, err = s.factory.CreateUser()
			}
			if err != nil {
				return nil, fmt.Errorf("failed to create user: %w", err)
			}
		}
		users = append(users, user)
	}
	log.Printf("✓ %d test users created", len(users))

	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	edges := 0
	for _, user := range users {
		numFriends := r.Intn(4) + 1
		for j := 0; j < numFriends; j++ {
			friend := users[r.Intn(len(users))]
			if friend.ID == user.ID {
				continue
			}
			if err := s.factory.CreateFriendship(user.ID, friend.ID); err != nil {
				return nil, fmt.Errorf("failed to create friendship: %w", err)
			}
			edges++
		}
	}
	log.Printf("✓ %d friendship edges created", edges)

	return users, nil
}

// SeedEngagement creates numThoughts thoughts across the given users and
// sprinkles reactions on them.
func (s *Seeder) SeedEngagement(users []*models.User, numThoughts int) ([]*models.Thought, error) {
	if len(users) == 0 {
		return nil, nil
	}

	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	thoughts := make([]*models.Thought, 0, numThoughts)
	for i := 0; i < numThoughts; i++ {
		user := users[r.Intn(len(users))]
		thoughts = append(thoughts, s.factory.BuildThought(user))
	}
	if err := s.factory.CreateThoughtsBatch(thoughts); err != nil {
		return nil, fmt.Errorf("failed to create thoughts: %w", err)
	}
	log.Printf("✓ %d thoughts created", len(thoughts))

	reactions := 0
	for _, thought := range thoughts {
		numReactions := r.Intn(4)
		for j := 0; j < numReactions; j++ {
			reactor := users[r.Intn(len(users))]
			if _, err := s.factory.CreateReaction(thought, reactor.Username); err != nil {
				return nil, fmt.Errorf("failed to create reaction: %w", err)
			}
			reactions++
		}
	}
	log.Printf("✓ %d reactions created", reactions)

	return thoughts, nil
}

func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}
