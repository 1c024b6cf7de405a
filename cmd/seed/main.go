// Command main populates the blog file with fake posts for development.
package main

import (
	"context"
	"flag"
	"log"

	"inkwell/config"
	"inkwell/seed"
	"inkwell/store"

	"github.com/spf13/afero"
)

func main() {
	// Parse command line flags
	numPosts := flag.Int("posts", 20, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clear the blog file before seeding")
	flag.Parse()

	log.Println("🌱 Blog Seeder")
	log.Println("==============")
	log.Printf("Target: %d posts, clean=%v\n", *numPosts, *shouldClean)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	posts := store.NewFileStore(afero.NewOsFs(), cfg.BlogFile)

	if *shouldClean {
		if err := posts.Save(ctx, nil); err != nil {
			log.Fatalf("❌ Cleanup failed: %v", err)
		}
	}

	factory := seed.NewFactory(posts)
	created, err := factory.CreatePosts(ctx, *numPosts)
	if err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Printf("✅ Seeded %d posts into %s", len(created), cfg.BlogFile)
}
