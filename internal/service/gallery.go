package service

import (
	"context"
	"time"

	"github.com/msuss/atelier/internal/domain"
	"github.com/msuss/atelier/internal/store"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const galleryKey = "gallery"

type GalleryItem struct {
	ID        string    `json:"id"`
	Index     int       `json:"index"`
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Critique  string    `json:"critique,omitempty"`
	Score     *float64  `json:"score,omitempty"`
	Critiques int       `json:"critiques"`
}

type ArtistGallery struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Mood       domain.Emotion `json:"mood"`
	Confidence float64        `json:"confidence"`
	Concepts   []string       `json:"concepts"`
	Creations  []GalleryItem  `json:"creations"`
}

// GalleryService is the read side for viewers. Results are cached until the
// TTL passes or any event is published through it.
type GalleryService struct {
	roster *store.Roster
	cache  *gocache.Cache
	logger *zap.Logger
}

func NewGalleryService(roster *store.Roster, ttl time.Duration, logger *zap.Logger) *GalleryService {
	return &GalleryService{
		roster: roster,
		cache:  gocache.New(ttl, 2*ttl),
		logger: logger,
	}
}

// Artworks returns every artist with its creations, newest first.
func (g *GalleryService) Artworks() ([]ArtistGallery, error) {
	if v, ok := g.cache.Get(galleryKey); ok {
		return v.([]ArtistGallery), nil
	}

	ids, err := g.roster.Discover()
	if err != nil {
		return nil, err
	}

	out := make([]ArtistGallery, 0, len(ids))
	for _, id := range ids {
		a, err := loadAgent(g.roster, id)
		if err != nil {
			g.logger.Warn("skipping unreadable artist", zap.String("artist", id), zap.Error(err))
			continue
		}
		out = append(out, galleryFor(a))
	}

	g.cache.SetDefault(galleryKey, out)
	return out, nil
}

// Publish drops the cached gallery. It lets the gallery sit in the event
// fan-out next to the live publishers.
func (g *GalleryService) Publish(_ context.Context, _ domain.Event) {
	g.cache.Delete(galleryKey)
}

func galleryFor(a *Agent) ArtistGallery {
	creations := a.Memory.Creations()
	items := make([]GalleryItem, 0, len(creations))
	for i := len(creations) - 1; i >= 0; i-- {
		c := creations[i]
		kind, body := resolveArtwork(a.Dir, c.Content)
		item := GalleryItem{
			ID:        c.ID,
			Index:     i,
			Timestamp: c.Timestamp,
			Type:      kind,
			Content:   body,
			Critiques: len(c.Critiques),
		}
		if latest, ok := c.LatestCritique(); ok {
			score := latest.Score
			item.Critique = latest.Critique
			item.Score = &score
		}
		items = append(items, item)
	}

	return ArtistGallery{
		ID:         a.ID,
		Name:       a.Personality.Name,
		Mood:       a.Personality.Mood(),
		Confidence: a.Personality.Confidence,
		Concepts:   a.Personality.Concepts,
		Creations:  items,
	}
}
