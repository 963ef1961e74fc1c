package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/msuss/atelier/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlTemplate = `name: Echo
traits:
  openness: 0.7
  neuroticism: 0.9
preferences:
  aesthetic: brutalist
flaws:
  - sensitive to criticism
emotions:
  fear: 0.6
concepts: [concrete, echo]
confidence: 0.4
goal: Repeat until meaning erodes
`

func TestTemplateRegistry_Get(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "echo.yaml"), []byte(yamlTemplate), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mono.json"), []byte(`{"name":"Mono","confidence":0.5}`), 0o644))
	reg := NewTemplateRegistry(dir)

	echo, err := reg.Get("echo")
	require.NoError(t, err)
	assert.Equal(t, "Echo", echo.Name)
	assert.Equal(t, 0.9, echo.Traits["neuroticism"])
	assert.Equal(t, "brutalist", echo.Preferences["aesthetic"])
	assert.Equal(t, 0.6, echo.Emotions[domain.EmotionFear])
	assert.Equal(t, []string{"concrete", "echo"}, echo.Concepts)

	mono, err := reg.Get("mono")
	require.NoError(t, err)
	assert.Equal(t, "Mono", mono.Name)

	aria, err := reg.Get("Aria")
	require.NoError(t, err)
	assert.Equal(t, "Aria", aria.Name)

	_, err = reg.Get("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTemplateRegistry_List(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "echo.yml"), []byte(yamlTemplate), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nova.json"), []byte(`{"name":"Nova II"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("#"), 0o644))

	names, err := NewTemplateRegistry(dir).List()
	require.NoError(t, err)
	assert.Equal(t, []string{"echo", "nova", "aria", "riot"}, names)
}

func TestLoadTemplate_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"Bad","confidence":3}`), 0o644))

	_, err := LoadTemplate(path)
	assert.ErrorIs(t, err, domain.ErrInvalidTemplate)
}

func TestBuiltinTemplates_Valid(t *testing.T) {
	for name, tmpl := range BuiltinTemplates() {
		assert.NoError(t, tmpl.Validate(), name)
	}
}
