package domain

type Emotion string

const (
	EmotionMelancholy Emotion = "melancholy"
	EmotionJoy        Emotion = "joy"
	EmotionAnger      Emotion = "anger"
	EmotionFear       Emotion = "fear"
	EmotionAwe        Emotion = "awe"
)

// EmotionVocabulary is the fixed emotion set in iteration order. Mood ties
// resolve to the earliest entry.
var EmotionVocabulary = []Emotion{
	EmotionMelancholy,
	EmotionJoy,
	EmotionAnger,
	EmotionFear,
	EmotionAwe,
}

func ValidEmotion(e string) bool {
	switch Emotion(e) {
	case EmotionMelancholy, EmotionJoy, EmotionAnger, EmotionFear, EmotionAwe:
		return true
	}
	return false
}

// Emotions maps each vocabulary emotion to an intensity in [0,1].
type Emotions map[Emotion]float64

// DefaultEmotions is the resting state of a newly created artist.
func DefaultEmotions() Emotions {
	return Emotions{
		EmotionMelancholy: 0.5,
		EmotionJoy:        0.1,
		EmotionAnger:      0.1,
		EmotionFear:       0.3,
		EmotionAwe:        0.5,
	}
}

func (e Emotions) Clone() Emotions {
	out := make(Emotions, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Clamp01 bounds v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
