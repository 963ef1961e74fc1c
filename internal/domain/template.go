package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidTemplate = errors.New("invalid artist template")

// ArtistTemplate describes a new artist before it exists on disk.
type ArtistTemplate struct {
	Name        string             `json:"name" yaml:"name"`
	Traits      map[string]float64 `json:"traits" yaml:"traits"`
	Preferences map[string]any     `json:"preferences" yaml:"preferences"`
	Flaws       []string           `json:"flaws" yaml:"flaws"`
	Emotions    Emotions           `json:"emotions" yaml:"emotions"`
	Concepts    []string           `json:"concepts" yaml:"concepts"`
	// Confidence of zero means unset and takes the default.
	Confidence  float64            `json:"confidence" yaml:"confidence"`
	Goal        string             `json:"goal" yaml:"goal"`
}

func (t *ArtistTemplate) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTemplate)
	}
	if t.Confidence < 0 || t.Confidence > 1 {
		return fmt.Errorf("%w: confidence %.2f outside [0,1]", ErrInvalidTemplate, t.Confidence)
	}
	for e, v := range t.Emotions {
		if !ValidEmotion(string(e)) {
			return fmt.Errorf("%w: unknown emotion %q", ErrInvalidTemplate, e)
		}
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: emotion %s=%.2f outside [0,1]", ErrInvalidTemplate, e, v)
		}
	}
	if len(t.Concepts) > ConceptCap {
		return fmt.Errorf("%w: %d concepts exceeds cap of %d", ErrInvalidTemplate, len(t.Concepts), ConceptCap)
	}
	return nil
}

// Personality builds the initial personality described by the template.
func (t *ArtistTemplate) Personality() *Personality {
	p := NewPersonality(t.Name, t.Traits, t.Preferences, t.Flaws)
	if len(t.Emotions) > 0 {
		p.Emotions = t.Emotions.Clone()
	}
	if t.Concepts != nil {
		p.Concepts = append([]string(nil), t.Concepts...)
	}
	if t.Confidence > 0 {
		p.Confidence = t.Confidence
	}
	p.Normalize()
	return p
}

// ArtistID is the directory name an artist with this display name lives in.
func ArtistID(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
