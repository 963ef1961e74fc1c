package service

import (
	"context"
	"sync"
	"testing"

	"github.com/msuss/atelier/internal/domain"
	"github.com/msuss/atelier/internal/store"
	"github.com/stretchr/testify/require"
)

// scriptedRand replays fixed values. Once a script runs dry Float64 returns
// 0.99 (no drift) and Intn returns 0. Shuffle leaves the order alone.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

func (r *scriptedRand) Shuffle(n int, swap func(i, j int)) {}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e domain.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) types() []domain.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.EventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func testTemplate(name string, neuroticism, confidence float64) *domain.ArtistTemplate {
	return &domain.ArtistTemplate{
		Name:        name,
		Traits:      map[string]float64{"neuroticism": neuroticism},
		Preferences: map[string]any{"aesthetic": "test"},
		Emotions:    domain.DefaultEmotions(),
		Concepts:    []string{"entropy"},
		Confidence:  confidence,
		Goal:        "make " + name,
	}
}

// newRoster creates one artist per name, each with the given number of
// text creations.
func newRoster(t *testing.T, creations int, names ...string) *store.Roster {
	t.Helper()
	r := store.NewRoster(t.TempDir())
	for _, name := range names {
		id, err := r.Create(testTemplate(name, 0.5, 0.7))
		require.NoError(t, err)
		mem, err := r.OpenMemory(id)
		require.NoError(t, err)
		for i := 0; i < creations; i++ {
			require.NoError(t, mem.AddCreation("work of "+name, nil))
		}
	}
	return r
}

func mustLoad(t *testing.T, r *store.Roster, id string) (*domain.Personality, *store.Memory) {
	t.Helper()
	p, mem, _, err := r.Load(id)
	require.NoError(t, err)
	return p, mem
}
