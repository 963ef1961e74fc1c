// Package app assembles the stores, generators and services shared by the
// server and the command line tool.
package app

import (
	"time"

	"github.com/msuss/atelier/internal/domain"
	"github.com/msuss/atelier/internal/events"
	"github.com/msuss/atelier/internal/llm"
	"github.com/msuss/atelier/internal/service"
	"github.com/msuss/atelier/internal/skill"
	"github.com/msuss/atelier/internal/store"
	"go.uber.org/zap"
)

type Options struct {
	ArtistsDir   string
	TemplatesDir string

	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration

	// Generator overrides the provider settings when set.
	Generator domain.TextGenerator

	Seed       int64
	GalleryTTL time.Duration

	// Publishers receive every event after the gallery cache is invalidated.
	Publishers []domain.EventPublisher
}

type Atelier struct {
	Roster    *store.Roster
	Templates *store.TemplateRegistry
	Generator domain.TextGenerator
	Events    events.Multi

	Artists  *service.ArtistService
	Studio   *service.StudioService
	Exchange *service.ExchangeService
	Gallery  *service.GalleryService
}

// New wires an Atelier. A generator that cannot be built falls back to the
// mock so artists keep working offline.
func New(opts Options, logger *zap.Logger) *Atelier {
	gen := opts.Generator
	if gen == nil {
		gen = newGenerator(opts, logger)
	}

	ttl := opts.GalleryTTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	roster := store.NewRoster(opts.ArtistsDir)
	templates := store.NewTemplateRegistry(opts.TemplatesDir)
	rng := service.NewRand(opts.Seed)
	locks := service.NewKeyedMutex()

	gallery := service.NewGalleryService(roster, ttl, logger)
	pub := append(events.Multi{gallery}, opts.Publishers...)

	skills := skill.NewRegistry(
		skill.NewTextSkill(gen, logger),
		skill.NewSVGSkill(gen, logger),
	)
	evolver := service.NewEvolver(rng, logger)
	engine := service.NewCritiqueEngine(gen, logger)

	return &Atelier{
		Roster:    roster,
		Templates: templates,
		Generator: gen,
		Events:    pub,
		Artists:   service.NewArtistService(roster, templates, locks, pub, logger),
		Studio:    service.NewStudioService(roster, skills, evolver, locks, pub, logger),
		Exchange:  service.NewExchangeService(roster, engine, rng, locks, pub, logger),
		Gallery:   gallery,
	}
}

func newGenerator(opts Options, logger *zap.Logger) domain.TextGenerator {
	var llmOpts []llm.Option
	if opts.Model != "" {
		llmOpts = append(llmOpts, llm.WithModel(opts.Model))
	}
	if opts.BaseURL != "" {
		llmOpts = append(llmOpts, llm.WithBaseURL(opts.BaseURL))
	}
	if opts.Timeout > 0 {
		llmOpts = append(llmOpts, llm.WithTimeout(opts.Timeout))
	}

	gen, err := llm.NewClient(opts.Provider, opts.APIKey, llmOpts...)
	if err != nil {
		logger.Warn("LLM client initialization failed, using mock", zap.String("provider", opts.Provider), zap.Error(err))
		return llm.NewMockClient()
	}
	logger.Info("LLM client initialized", zap.String("provider", opts.Provider))
	return gen
}
