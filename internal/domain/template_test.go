package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArtistTemplate_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    ArtistTemplate
		wantErr bool
	}{
		{"valid", ArtistTemplate{Name: "Aria", Confidence: 0.8}, false},
		{"missing name", ArtistTemplate{Name: "  "}, true},
		{"confidence too high", ArtistTemplate{Name: "Aria", Confidence: 1.2}, true},
		{"unknown emotion", ArtistTemplate{Name: "Aria", Emotions: Emotions{"boredom": 0.2}}, true},
		{"emotion out of range", ArtistTemplate{Name: "Aria", Emotions: Emotions{EmotionJoy: 2}}, true},
		{"too many concepts", ArtistTemplate{Name: "Aria", Concepts: []string{"a", "b", "c", "d", "e", "f", "g"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tmpl.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTemplate)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestArtistTemplate_Personality(t *testing.T) {
	tmpl := ArtistTemplate{
		Name:       "Nova",
		Emotions:   Emotions{EmotionAwe: 0.8},
		Concepts:   []string{"infinity"},
		Confidence: 0.7,
	}

	p := tmpl.Personality()

	assert.Equal(t, "Nova", p.Name)
	assert.Equal(t, 0.8, p.Emotions[EmotionAwe])
	assert.Equal(t, 0.0, p.Emotions[EmotionJoy])
	assert.Equal(t, []string{"infinity"}, p.Concepts)
	assert.Equal(t, 0.7, p.Confidence)

	p.Concepts[0] = "mutated"
	assert.Equal(t, "infinity", tmpl.Concepts[0])
}

func TestArtistTemplate_PersonalityDefaults(t *testing.T) {
	p := (&ArtistTemplate{Name: "Blank"}).Personality()

	assert.Equal(t, DefaultEmotions(), p.Emotions)
	assert.Equal(t, 0.8, p.Confidence)
}

func TestArtistID(t *testing.T) {
	assert.Equal(t, "aria", ArtistID("  Aria "))
}
