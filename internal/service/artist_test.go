package service

import (
	"context"
	"testing"

	"github.com/msuss/atelier/internal/domain"
	"github.com/msuss/atelier/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newArtists(t *testing.T, pub domain.EventPublisher) (*ArtistService, *store.Roster) {
	r := store.NewRoster(t.TempDir())
	return NewArtistService(r, store.NewTemplateRegistry(t.TempDir()), NewKeyedMutex(), pub, zap.NewNop()), r
}

func TestArtistService_Create(t *testing.T) {
	pub := &recordingPublisher{}
	s, _ := newArtists(t, pub)
	ctx := context.Background()

	id, err := s.Create(ctx, "riot")
	require.NoError(t, err)
	assert.Equal(t, "riot", id)

	_, err = s.Create(ctx, "riot")
	assert.ErrorIs(t, err, ErrArtistExists)

	_, err = s.Create(ctx, "ghost")
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	assert.Equal(t, []domain.EventType{domain.EventArtistCreated}, pub.types())
}

func TestArtistService_GetAndMemory(t *testing.T) {
	s, r := newArtists(t, nil)
	_, err := s.Create(context.Background(), "nova")
	require.NoError(t, err)
	mem, err := r.OpenMemory("nova")
	require.NoError(t, err)
	require.NoError(t, mem.AddCreation("light", nil))
	require.NoError(t, mem.AddExperience("quiet day", nil, 0))

	prof, err := s.Get("nova")
	require.NoError(t, err)
	assert.Equal(t, domain.EmotionAwe, prof.Mood)
	assert.Equal(t, 1, prof.Creations)
	assert.Equal(t, 1, prof.Experiences)
	assert.Contains(t, prof.Reflection, "I am Nova.")
	assert.Equal(t, "Render the ineffable beauty of mathematical perfection", prof.Goal)

	items, err := s.Memory("nova", 1)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = s.Get("ghost")
	assert.ErrorIs(t, err, ErrArtistNotFound)
	_, err = s.Memory("ghost", 5)
	assert.ErrorIs(t, err, ErrArtistNotFound)

	ids, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"nova"}, ids)
}
