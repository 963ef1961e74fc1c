package domain

// Neutral values used when a critique cannot be produced or parsed.
const (
	FallbackScore        = 0.5
	FallbackCritiqueText = "Unable to generate critique."
	ImpactDelta          = 0.1
)

// CritiqueResult is the parsed outcome of one critic looking at one work.
type CritiqueResult struct {
	Score           float64             `json:"score"`
	Critique        string              `json:"critique"`
	NewConcepts     []string            `json:"new_concepts"`
	EmotionalImpact map[Emotion]float64 `json:"emotional_impact"`
}

// FallbackCritique is returned when the text generator fails.
func FallbackCritique() CritiqueResult {
	return CritiqueResult{
		Score:           FallbackScore,
		Critique:        FallbackCritiqueText,
		NewConcepts:     []string{},
		EmotionalImpact: map[Emotion]float64{},
	}
}
