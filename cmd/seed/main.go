// Command main runs the database seeder for Budget Survival Skills.
package main

import (
	"flag"
	"log"

	"survivalskills/internal/config"
	"survivalskills/internal/database"
	"survivalskills/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	numPosts := flag.Int("posts", 0, "Number of generated demo articles on top of the baseline catalog")
	numSubscribers := flag.Int("subscribers", 0, "Number of generated demo subscribers")
	shouldClean := flag.Bool("clean", false, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: baseline catalog + %d posts, %d subscribers, clean=%v\n",
		*numPosts, *numSubscribers, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, seed.Options{
		NumPosts:       *numPosts,
		NumSubscribers: *numSubscribers,
		ShouldClean:    *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
