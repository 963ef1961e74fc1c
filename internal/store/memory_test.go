package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/msuss/atelier/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stepClock(start time.Time) func() time.Time {
	now := start
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func TestMemory_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.json")
	m := OpenMemory(path)

	require.NoError(t, m.AddExperience("Received critique", []string{"critique"}, 0.9))
	require.NoError(t, m.AddCreation("a poem", map[string]any{"skill": "text"}))
	require.NoError(t, m.AddCritique(0, "Haunting.", 0.85, "riot"))

	reopened := OpenMemory(path)
	require.Equal(t, 1, reopened.Len())

	c, ok := reopened.Creation(0)
	require.True(t, ok)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "a poem", c.Content)
	assert.Equal(t, domain.RecordCreation, c.Type)
	require.Len(t, c.Critiques, 1)
	assert.Equal(t, "Haunting.", c.Critiques[0].Critique)
	assert.Equal(t, 0.85, c.Critiques[0].Score)
	assert.Equal(t, "riot", c.Critiques[0].Critic)

	exps := reopened.Experiences()
	require.Len(t, exps, 1)
	assert.Equal(t, []string{"critique"}, exps[0].Tags)
}

func TestMemory_AddCritiqueOutOfRangeIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.json")
	m := OpenMemory(path)
	require.NoError(t, m.AddCreation("only work", nil))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.NoError(t, m.AddCritique(5, "ghost", 0.1, ""))
	assert.NoError(t, m.AddCritique(-1, "ghost", 0.1, ""))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestMemory_MissingOrMalformedIsEmpty(t *testing.T) {
	dir := t.TempDir()

	missing := OpenMemory(filepath.Join(dir, "nope.json"))
	assert.Equal(t, 0, missing.Len())
	assert.Empty(t, missing.RecentContext(10))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	m := OpenMemory(bad)
	assert.Equal(t, 0, m.Len())

	require.NoError(t, m.AddCreation("fresh start", nil))
	assert.Equal(t, 1, OpenMemory(bad).Len())
}

func TestMemory_RecentContextNewestFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.json")
	m := OpenMemory(path, WithClock(stepClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))))

	require.NoError(t, m.AddExperience("first", nil, 0.5))
	require.NoError(t, m.AddCreation("second", nil))
	require.NoError(t, m.AddExperience("third", nil, 0.2))
	require.NoError(t, m.AddCritique(0, "nice", 0.9, ""))

	ctx := m.RecentContext(10)
	require.Len(t, ctx, 3)
	assert.Equal(t, "third", ctx[0].Text)
	assert.Equal(t, "second", ctx[1].Text)
	assert.Equal(t, 1, ctx[1].Critiques)
	assert.Equal(t, "first", ctx[2].Text)

	top := m.RecentContext(1)
	require.Len(t, top, 1)
	assert.Equal(t, "third", top[0].Text)
}

func TestMemory_CreationOutOfRange(t *testing.T) {
	m := OpenMemory(filepath.Join(t.TempDir(), "memory.json"))
	_, ok := m.Creation(0)
	assert.False(t, ok)
}
