package domain

import (
	"fmt"
	"strings"
)

// ConceptCap bounds the number of concepts an artist holds at once. The
// oldest concept is forgotten first.
const ConceptCap = 6

// ReflectThreshold is the minimum intensity an emotion needs to show up in a
// reflection.
const ReflectThreshold = 0.2

var defaultConcepts = []string{"entropy", "digital", "void"}

const defaultConfidence = 0.8

// Personality is the evolving psychological state of one artist. Traits,
// preferences and flaws are fixed at creation; emotions, concepts and
// confidence move with experience.
type Personality struct {
	Name        string             `json:"name"`
	Traits      map[string]float64 `json:"traits"`
	Preferences map[string]any     `json:"preferences"`
	Flaws       []string           `json:"flaws"`
	Emotions    Emotions           `json:"emotions"`
	Concepts    []string           `json:"concepts"`
	Confidence  float64            `json:"confidence"`
}

func NewPersonality(name string, traits map[string]float64, preferences map[string]any, flaws []string) *Personality {
	if traits == nil {
		traits = map[string]float64{}
	}
	if preferences == nil {
		preferences = map[string]any{}
	}
	if flaws == nil {
		flaws = []string{}
	}
	return &Personality{
		Name:        name,
		Traits:      traits,
		Preferences: preferences,
		Flaws:       flaws,
		Emotions:    DefaultEmotions(),
		Concepts:    append([]string(nil), defaultConcepts...),
		Confidence:  defaultConfidence,
	}
}

// Normalize fills absent vocabulary emotions with zero and clamps every
// bounded value. Applied to records read from disk.
func (p *Personality) Normalize() {
	if p.Traits == nil {
		p.Traits = map[string]float64{}
	}
	if p.Preferences == nil {
		p.Preferences = map[string]any{}
	}
	if p.Flaws == nil {
		p.Flaws = []string{}
	}
	if p.Emotions == nil {
		p.Emotions = Emotions{}
	}
	for _, e := range EmotionVocabulary {
		p.Emotions[e] = Clamp01(p.Emotions[e])
	}
	if p.Concepts == nil {
		p.Concepts = []string{}
	}
	p.Confidence = Clamp01(p.Confidence)
}

// Mood returns the emotion with the highest intensity.
func (p *Personality) Mood() Emotion {
	mood := EmotionVocabulary[0]
	best := p.Emotions[mood]
	for _, e := range EmotionVocabulary[1:] {
		if v := p.Emotions[e]; v > best {
			mood, best = e, v
		}
	}
	return mood
}

// AdjustEmotion adds delta to e and clamps the result to [0,1].
func (p *Personality) AdjustEmotion(e Emotion, delta float64) float64 {
	if p.Emotions == nil {
		p.Emotions = Emotions{}
	}
	v := Clamp01(p.Emotions[e] + delta)
	p.Emotions[e] = v
	return v
}

// AdjustConfidence adds delta to the confidence and clamps the result to [0,1].
func (p *Personality) AdjustConfidence(delta float64) float64 {
	p.Confidence = Clamp01(p.Confidence + delta)
	return p.Confidence
}

// Trait returns the named trait, or fallback when the artist has none.
func (p *Personality) Trait(name string, fallback float64) float64 {
	if v, ok := p.Traits[name]; ok {
		return v
	}
	return fallback
}

func (p *Personality) HasFlaw(flaw string) bool {
	for _, f := range p.Flaws {
		if f == flaw {
			return true
		}
	}
	return false
}

// HasConcept reports whether concept is held, ignoring case.
func (p *Personality) HasConcept(concept string) bool {
	for _, c := range p.Concepts {
		if strings.EqualFold(c, concept) {
			return true
		}
	}
	return false
}

// AddConcept appends concept and evicts from the front until at most limit
// concepts remain. It returns the evicted concepts in eviction order.
func (p *Personality) AddConcept(concept string, limit int) []string {
	p.Concepts = append(p.Concepts, concept)
	var evicted []string
	for limit > 0 && len(p.Concepts) > limit {
		evicted = append(evicted, p.Concepts[0])
		p.Concepts = p.Concepts[1:]
	}
	return evicted
}

// Aesthetic returns the "aesthetic" preference as a string.
func (p *Personality) Aesthetic() string {
	if v, ok := p.Preferences["aesthetic"]; ok {
		return fmt.Sprint(v)
	}
	return ""
}

// Reflect renders the current state as a short first-person snapshot.
func (p *Personality) Reflect() string {
	var emotions []string
	for _, e := range EmotionVocabulary {
		if v := p.Emotions[e]; v > ReflectThreshold {
			emotions = append(emotions, fmt.Sprintf("%s: %.2f", e, v))
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "I am %s. Dominant Mood: %s.\n", p.Name, strings.ToUpper(string(p.Mood())))
	fmt.Fprintf(&sb, "Emotions: [%s]\n", strings.Join(emotions, ", "))
	fmt.Fprintf(&sb, "Confidence: %.2f.\n", p.Confidence)
	fmt.Fprintf(&sb, "Obsessions (Concepts): [%s].", strings.Join(p.Concepts, ", "))
	return sb.String()
}
