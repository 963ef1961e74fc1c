package domain

import "time"

type RecordType string

const (
	RecordExperience RecordType = "experience"
	RecordCreation   RecordType = "creation"
)

// ExperienceRecord is something that happened to an artist.
type ExperienceRecord struct {
	Timestamp   time.Time  `json:"timestamp"`
	Type        RecordType `json:"type"`
	Description string     `json:"description"`
	Tags        []string   `json:"tags"`
	Sentiment   float64    `json:"sentiment"`
}

// CritiqueRecord is one judgement attached to a creation.
type CritiqueRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Critique  string    `json:"critique"`
	Score     float64   `json:"score"`
	Critic    string    `json:"critic,omitempty"`
}

// Creation is one persisted artifact. Its position in the log is its index.
type Creation struct {
	ID        string           `json:"id"`
	Timestamp time.Time        `json:"timestamp"`
	Type      RecordType       `json:"type"`
	Content   string           `json:"content"`
	Metadata  map[string]any   `json:"metadata"`
	Critiques []CritiqueRecord `json:"critiques"`
}

// LatestCritique returns the most recently attached critique, if any.
func (c *Creation) LatestCritique() (CritiqueRecord, bool) {
	if len(c.Critiques) == 0 {
		return CritiqueRecord{}, false
	}
	return c.Critiques[len(c.Critiques)-1], true
}

// MemoryRecord is the on-disk shape of an artist's memory.
type MemoryRecord struct {
	Experiences []ExperienceRecord `json:"experiences"`
	Creations   []Creation         `json:"creations"`
}

// ContextItem is a read-only view over either an experience or a creation,
// used to give generation backends situational context.
type ContextItem struct {
	Type      RecordType `json:"type"`
	Timestamp time.Time  `json:"timestamp"`
	Text      string     `json:"text"`
	Tags      []string   `json:"tags,omitempty"`
	Sentiment float64    `json:"sentiment,omitempty"`
	Critiques int        `json:"critiques,omitempty"`
}
