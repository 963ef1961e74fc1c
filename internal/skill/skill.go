// Package skill holds the generative backends an artist can use to make a
// work. Backends never fail on a text-generator error; they degrade to a mock
// artwork so a creative cycle always completes.
package skill

import (
	"context"
	"sort"
	"strings"

	"github.com/msuss/atelier/internal/domain"
)

const (
	KindText  = "text"
	KindImage = "image"
)

// Brief is everything a skill is told about the artist before creating.
type Brief struct {
	Artist      string
	Personality *domain.Personality
	Goal        string
	Context     []domain.ContextItem
	ArtDir      string
}

// Artwork is the product of one Perform call.
type Artwork struct {
	Kind     string `json:"type"`
	Content  string `json:"content"`
	Prompt   string `json:"prompt_used"`
	FilePath string `json:"filepath,omitempty"`
	Source   string `json:"-"`
	Mock     bool   `json:"mock,omitempty"`
}

// Metadata is what gets stored alongside the creation in memory.
func (a *Artwork) Metadata(skill string) map[string]any {
	md := map[string]any{
		"skill":       skill,
		"type":        a.Kind,
		"prompt_used": a.Prompt,
	}
	if a.FilePath != "" {
		md["filepath"] = a.FilePath
	}
	if a.Mock {
		md["mock"] = true
	}
	return md
}

// SelfCritique is an artist's verdict on its own fresh work.
type SelfCritique struct {
	Score    float64 `json:"score"`
	Critique string  `json:"critique"`
}

type Skill interface {
	Name() string
	Perform(ctx context.Context, brief Brief) (*Artwork, error)
	Critique(ctx context.Context, art *Artwork, p *domain.Personality) SelfCritique
}

// Registry resolves skills by name.
type Registry struct {
	skills map[string]Skill
}

func NewRegistry(skills ...Skill) *Registry {
	r := &Registry{skills: make(map[string]Skill, len(skills))}
	for _, s := range skills {
		r.skills[s.Name()] = s
	}
	return r
}

func (r *Registry) Get(name string) (Skill, bool) {
	s, ok := r.skills[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.skills))
	for n := range r.skills {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
