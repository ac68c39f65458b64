// Command main runs the database seeder for Ripple.
package main

import (
	"flag"
	"log"

	"ripple/internal/config"
	"ripple/internal/database"
	"ripple/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 25, "Number of users to create")
	numThoughts := flag.Int("thoughts", 100, "Number of thoughts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	presetsOnly := flag.Bool("presets-only", false, "Only seed the fixed demo accounts")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d thoughts, clean=%v\n", *numUsers, *numThoughts, *shouldClean)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run seeder
	s := seed.NewSeeder(db, seed.Options{
		NumUsers:    *numUsers,
		NumThoughts: *numThoughts,
		ShouldClean: *shouldClean,
	})

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("❌ Cleanup failed: %v", err)
		}
	}

	if err := s.Presets(); err != nil {
		log.Fatalf("❌ Preset seeding failed: %v", err)
	}

	if !*presetsOnly {
		users, err := s.SeedSocialMesh(*numUsers)
		if err != nil {
			log.Fatalf("❌ User seeding failed: %v", err)
		}
		if _, err := s.SeedEngagement(users, *numThoughts); err != nil {
			log.Fatalf("❌ Engagement seeding failed: %v", err)
		}
	}

	log.Println("✨ All done! Your database is now populated with test data.")
}
