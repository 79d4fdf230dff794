// Command main seeds a development database with fake data.
package main

import (
	"context"
	"flag"
	"log"

	"ideaboard/internal/config"
	"ideaboard/internal/database"
	"ideaboard/internal/seed"
)

func main() {
	opts := seed.DefaultOptions()
	flag.IntVar(&opts.Users, "users", opts.Users, "number of users to seed")
	flag.IntVar(&opts.PostsPerUser, "posts", opts.PostsPerUser, "ideas per user")
	flag.IntVar(&opts.CommentsPerPost, "comments", opts.CommentsPerPost, "comments per idea")
	flag.Float64Var(&opts.LikeProbability, "like-prob", opts.LikeProbability, "probability a user likes an idea")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(context.Background(), db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding complete")
}
