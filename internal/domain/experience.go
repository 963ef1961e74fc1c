package domain

type ExperienceKind string

const (
	ExperienceCritique ExperienceKind = "critique"
	ExperienceFeedback ExperienceKind = "feedback"
)

// Experience is an event that can move a personality. Unknown kinds are
// accepted and ignored by the evolver.
type Experience interface {
	Kind() ExperienceKind
}

// CritiqueEvent is a scored judgement of the artist's own work.
type CritiqueEvent struct {
	Score float64
}

func (CritiqueEvent) Kind() ExperienceKind { return ExperienceCritique }

// FeedbackEvent is a like/dislike from the audience.
type FeedbackEvent struct {
	Liked bool
	Notes string
}

func (FeedbackEvent) Kind() ExperienceKind { return ExperienceFeedback }
