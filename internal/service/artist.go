package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msuss/atelier/internal/domain"
	"github.com/msuss/atelier/internal/store"
	"go.uber.org/zap"
)

// Profile is the full view of one artist.
type Profile struct {
	ID          string              `json:"id"`
	Personality *domain.Personality `json:"personality"`
	Mood        domain.Emotion      `json:"mood"`
	Reflection  string              `json:"reflection"`
	Goal        string              `json:"goal"`
	Creations   int                 `json:"creations"`
	Experiences int                 `json:"experiences"`
}

type ArtistService struct {
	roster    *store.Roster
	templates *store.TemplateRegistry
	locks     *KeyedMutex
	events    domain.EventPublisher
	logger    *zap.Logger
}

func NewArtistService(roster *store.Roster, templates *store.TemplateRegistry, locks *KeyedMutex, events domain.EventPublisher, logger *zap.Logger) *ArtistService {
	return &ArtistService{
		roster:    roster,
		templates: templates,
		locks:     locks,
		events:    events,
		logger:    logger,
	}
}

// Templates lists the names Create accepts.
func (s *ArtistService) Templates() ([]string, error) {
	return s.templates.List()
}

// Create brings a new artist to life from a named template.
func (s *ArtistService) Create(ctx context.Context, template string) (string, error) {
	t, err := s.templates.Get(template)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, template)
		}
		return "", err
	}
	return s.CreateFromTemplate(ctx, t)
}

func (s *ArtistService) CreateFromTemplate(ctx context.Context, t *domain.ArtistTemplate) (string, error) {
	unlock := s.locks.Lock(domain.ArtistID(t.Name))
	defer unlock()

	id, err := s.roster.Create(t)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return "", fmt.Errorf("%w: %s", ErrArtistExists, domain.ArtistID(t.Name))
		}
		return "", err
	}

	s.logger.Info("artist created", zap.String("artist", id), zap.String("name", t.Name))
	publish(ctx, s.events, domain.NewEvent(domain.EventArtistCreated, id, map[string]string{"name": t.Name}))
	return id, nil
}

// List returns the ids of every artist.
func (s *ArtistService) List() ([]string, error) {
	return s.roster.Discover()
}

func (s *ArtistService) Get(id string) (*Profile, error) {
	a, err := loadAgent(s.roster, id)
	if err != nil {
		return nil, err
	}
	goal, err := s.roster.Goal(id)
	if err != nil {
		return nil, err
	}
	return &Profile{
		ID:          id,
		Personality: a.Personality,
		Mood:        a.Personality.Mood(),
		Reflection:  a.Personality.Reflect(),
		Goal:        goal,
		Creations:   a.Memory.Len(),
		Experiences: len(a.Memory.Experiences()),
	}, nil
}

// Memory returns the artist's most recent memories, newest first.
func (s *ArtistService) Memory(id string, limit int) ([]domain.ContextItem, error) {
	mem, err := s.roster.OpenMemory(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrArtistNotFound, id)
		}
		return nil, err
	}
	return mem.RecentContext(limit), nil
}
