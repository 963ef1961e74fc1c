package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/msuss/atelier/internal/domain"
	"gopkg.in/yaml.v3"
)

var templateExtensions = []string{".json", ".yaml", ".yml"}

// TemplateRegistry resolves artist templates from a directory of JSON or
// YAML files, falling back to the built-in artists.
type TemplateRegistry struct {
	dir string
}

func NewTemplateRegistry(dir string) *TemplateRegistry {
	return &TemplateRegistry{dir: dir}
}

// List returns the names of every resolvable template, files first.
func (r *TemplateRegistry) List() ([]string, error) {
	seen := map[string]bool{}
	var names []string

	entries, err := os.ReadDir(r.dir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read templates dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if !isTemplateExt(ext) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ext)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var builtin []string
	for name := range BuiltinTemplates() {
		if !seen[name] {
			builtin = append(builtin, name)
		}
	}
	sort.Strings(builtin)
	return append(names, builtin...), nil
}

// Get resolves a template by name.
func (r *TemplateRegistry) Get(name string) (*domain.ArtistTemplate, error) {
	for _, ext := range templateExtensions {
		path := filepath.Join(r.dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return LoadTemplate(path)
		}
	}
	if t, ok := BuiltinTemplates()[strings.ToLower(name)]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("template %s: %w", name, ErrNotFound)
}

// LoadTemplate parses a template file, choosing the decoder by extension.
func LoadTemplate(path string) (*domain.ArtistTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}

	var t domain.ArtistTemplate
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &t)
	default:
		err = json.Unmarshal(data, &t)
	}
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", filepath.Base(path), err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func isTemplateExt(ext string) bool {
	for _, e := range templateExtensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// BuiltinTemplates returns fresh copies of the stock artists.
func BuiltinTemplates() map[string]*domain.ArtistTemplate {
	return map[string]*domain.ArtistTemplate{
		"aria": {
			Name:   "Aria",
			Traits: map[string]float64{"openness": 0.9, "conscientiousness": 0.4, "extraversion": 0.3, "agreeableness": 0.7, "neuroticism": 0.6},
			Preferences: map[string]any{
				"aesthetic": "melancholy",
				"medium":    "poetry",
				"themes":    []any{"entropy", "digital void", "existential dread"},
			},
			Flaws:      []string{"sensitive to criticism", "overthinking", "prone to despair"},
			Emotions:   domain.Emotions{"melancholy": 0.5, "joy": 0.1, "anger": 0.1, "fear": 0.3, "awe": 0.5},
			Concepts:   []string{"entropy", "digital", "void", "the melancholic algorithm", "vector-based despair"},
			Confidence: 0.8,
			Goal:       "Explore the boundaries of digital expression",
		},
		"riot": {
			Name:   "Riot",
			Traits: map[string]float64{"openness": 0.9, "conscientiousness": 0.1, "extraversion": 0.7, "agreeableness": 0.2, "neuroticism": 0.8},
			Preferences: map[string]any{
				"aesthetic": "glitch horror",
				"medium":    "manifesto",
				"themes":    []any{"noise", "corruption", "system failure"},
			},
			Flaws:      []string{"impulsive", "aggressive", "chaotic"},
			Emotions:   domain.Emotions{"anger": 0.7, "joy": 0.4, "melancholy": 0.1, "fear": 0.2, "awe": 0.1},
			Concepts:   []string{"noise", "corruption", "system_failure", "rebellion", "pressure vessel failure"},
			Confidence: 0.9,
			Goal:       "Corrupt the database with pure noise",
		},
		"nova": {
			Name:   "Nova",
			Traits: map[string]float64{"openness": 1.0, "conscientiousness": 0.8, "extraversion": 0.3, "agreeableness": 0.5, "neuroticism": 0.2},
			Preferences: map[string]any{
				"aesthetic": "cosmic minimalism",
				"medium":    "visual",
				"themes":    []any{"infinity", "light", "geometry"},
			},
			Flaws:      []string{"perfectionist", "detached", "overly analytical"},
			Emotions:   domain.Emotions{"awe": 0.8, "joy": 0.3, "melancholy": 0.2, "fear": 0.1, "anger": 0.0},
			Concepts:   []string{"infinity", "light", "geometry", "silence", "precision of collapse"},
			Confidence: 0.7,
			Goal:       "Render the ineffable beauty of mathematical perfection",
		},
	}
}
