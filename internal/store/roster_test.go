package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/msuss/atelier/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoster_CreateAndLoad(t *testing.T) {
	r := NewRoster(filepath.Join(t.TempDir(), "artists"))

	id, err := r.Create(BuiltinTemplates()["aria"])
	require.NoError(t, err)
	assert.Equal(t, "aria", id)

	p, mem, dir, err := r.Load(id)
	require.NoError(t, err)
	assert.Equal(t, "Aria", p.Name)
	assert.Equal(t, 0, mem.Len())
	assert.Equal(t, r.ArtistDir(id), dir)

	goal, err := r.Goal(id)
	require.NoError(t, err)
	assert.Equal(t, "Explore the boundaries of digital expression", goal)
}

func TestRoster_CreateConflict(t *testing.T) {
	r := NewRoster(t.TempDir())

	_, err := r.Create(BuiltinTemplates()["riot"])
	require.NoError(t, err)

	_, err = r.Create(BuiltinTemplates()["riot"])
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRoster_CreateRejectsBadNames(t *testing.T) {
	r := NewRoster(t.TempDir())

	_, err := r.Create(&domain.ArtistTemplate{Name: "../escape"})
	assert.ErrorIs(t, err, domain.ErrInvalidTemplate)

	_, err = r.Create(&domain.ArtistTemplate{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidTemplate)
}

func TestRoster_Discover(t *testing.T) {
	root := t.TempDir()
	r := NewRoster(root)

	for _, name := range []string{"nova", "aria"} {
		_, err := r.Create(BuiltinTemplates()[name])
		require.NoError(t, err)
	}
	// A directory without a personality record is not an artist.
	require.NoError(t, os.Mkdir(filepath.Join(root, "scratch"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))
	// Nor is one whose personality record does not parse.
	require.NoError(t, os.Mkdir(filepath.Join(root, "broken"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "broken", "personality.json"), []byte("{not json"), 0o644))

	ids, err := r.Discover()
	require.NoError(t, err)
	assert.Equal(t, []string{"aria", "nova"}, ids)
}

func TestRoster_DiscoverMissingDir(t *testing.T) {
	ids, err := NewRoster(filepath.Join(t.TempDir(), "none")).Discover()
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRoster_NotFound(t *testing.T) {
	r := NewRoster(t.TempDir())

	_, _, _, err := r.Load("ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = r.OpenMemory("..")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = r.Goal("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRoster_SavePersonality(t *testing.T) {
	r := NewRoster(t.TempDir())
	id, err := r.Create(BuiltinTemplates()["nova"])
	require.NoError(t, err)

	p, _, _, err := r.Load(id)
	require.NoError(t, err)
	p.AddConcept("chrome", domain.ConceptCap)
	require.NoError(t, r.SavePersonality(id, p))

	again, _, _, err := r.Load(id)
	require.NoError(t, err)
	assert.True(t, again.HasConcept("chrome"))
	assert.Len(t, again.Concepts, domain.ConceptCap)
}
