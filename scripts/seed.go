//go:build ignore

// Seed script for creating demo artists with a little history.
// Run with: go run ./scripts/seed.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/msuss/atelier/internal/app"
	"github.com/msuss/atelier/internal/config"
	"github.com/msuss/atelier/internal/llm"
	"github.com/msuss/atelier/internal/service"
	"go.uber.org/zap"
)

func main() {
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Seeding never spends tokens: the mock generator writes the works.
	a := app.New(app.Options{
		ArtistsDir:   config.ArtistsDir(),
		TemplatesDir: config.TemplatesDir(),
		Generator:    llm.NewMockClient(),
		Seed:         42,
	}, zap.NewNop())

	ctx := context.Background()
	artists := []string{"aria", "riot", "nova"}

	for _, name := range artists {
		id, err := a.Artists.Create(ctx, name)
		switch {
		case errors.Is(err, service.ErrArtistExists):
			fmt.Printf("Artist %s already exists, keeping it\n", name)
		case err != nil:
			log.Fatalf("Failed to create %s: %v", name, err)
		default:
			fmt.Printf("Created artist: %s\n", id)
		}
	}

	for _, name := range artists {
		for _, skill := range []string{"text", "svg"} {
			res, err := a.Studio.Generate(ctx, name, skill)
			if err != nil {
				log.Printf("Warning: %s could not create with %s: %v", name, skill, err)
				continue
			}
			fmt.Printf("Created %s work #%d for %s\n", skill, res.CreationIndex, name)
		}
	}

	report, err := a.Exchange.RunRound(ctx, 0)
	if err != nil {
		log.Fatalf("Failed to run exchange: %v", err)
	}
	fmt.Printf("Ran exchange round with %d pairs\n", len(report.Pairs))

	fmt.Printf("\nSeeded %d artists in %s\n", len(artists), a.Roster.Dir())
}
