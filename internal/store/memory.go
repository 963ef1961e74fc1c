package store

import (
	"cmp"
	"encoding/json"
	"os"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/msuss/atelier/internal/domain"
)

// Memory is an artist's append-only log of experiences and creations, backed
// by a single JSON document. Every mutation rewrites the whole document.
//
// A Memory is owned by one caller at a time; it does no locking of its own.
type Memory struct {
	path   string
	now    func() time.Time
	newID  func() string
	record domain.MemoryRecord
}

type MemoryOption func(*Memory)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *Memory) { m.now = now }
}

// OpenMemory loads the log at path. A missing or malformed file yields an
// empty log so a fresh artist can bootstrap on first write.
func OpenMemory(path string, opts ...MemoryOption) *Memory {
	m := &Memory{
		path:  path,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}

	if data, err := os.ReadFile(path); err == nil {
		var rec domain.MemoryRecord
		if json.Unmarshal(data, &rec) == nil {
			m.record = rec
		}
	}
	if m.record.Experiences == nil {
		m.record.Experiences = []domain.ExperienceRecord{}
	}
	if m.record.Creations == nil {
		m.record.Creations = []domain.Creation{}
	}
	return m
}

func (m *Memory) Path() string { return m.path }

// Len returns the number of creations. The newest creation is at Len()-1.
func (m *Memory) Len() int { return len(m.record.Creations) }

func (m *Memory) Creations() []domain.Creation {
	return slices.Clone(m.record.Creations)
}

func (m *Memory) Creation(index int) (domain.Creation, bool) {
	if index < 0 || index >= len(m.record.Creations) {
		return domain.Creation{}, false
	}
	return m.record.Creations[index], true
}

func (m *Memory) Experiences() []domain.ExperienceRecord {
	return slices.Clone(m.record.Experiences)
}

func (m *Memory) AddExperience(description string, tags []string, sentiment float64) error {
	if tags == nil {
		tags = []string{}
	}
	m.record.Experiences = append(m.record.Experiences, domain.ExperienceRecord{
		Timestamp:   m.now().UTC(),
		Type:        domain.RecordExperience,
		Description: description,
		Tags:        tags,
		Sentiment:   sentiment,
	})
	return m.save()
}

func (m *Memory) AddCreation(content string, metadata map[string]any) error {
	if metadata == nil {
		metadata = map[string]any{}
	}
	m.record.Creations = append(m.record.Creations, domain.Creation{
		ID:        m.newID(),
		Timestamp: m.now().UTC(),
		Type:      domain.RecordCreation,
		Content:   content,
		Metadata:  metadata,
		Critiques: []domain.CritiqueRecord{},
	})
	return m.save()
}

// AddCritique attaches a critique to the creation at index. An index outside
// [0, Len()) is ignored and nothing is written: the creation list can shift
// under callers that picked the index earlier.
func (m *Memory) AddCritique(index int, critique string, score float64, critic string) error {
	if index < 0 || index >= len(m.record.Creations) {
		return nil
	}
	c := &m.record.Creations[index]
	c.Critiques = append(c.Critiques, domain.CritiqueRecord{
		Timestamp: m.now().UTC(),
		Critique:  critique,
		Score:     score,
		Critic:    critic,
	})
	return m.save()
}

// RecentContext merges experiences and creations newest first, truncated to
// limit entries.
func (m *Memory) RecentContext(limit int) []domain.ContextItem {
	items := make([]domain.ContextItem, 0, len(m.record.Experiences)+len(m.record.Creations))
	for _, e := range m.record.Experiences {
		items = append(items, domain.ContextItem{
			Type:      domain.RecordExperience,
			Timestamp: e.Timestamp,
			Text:      e.Description,
			Tags:      e.Tags,
			Sentiment: e.Sentiment,
		})
	}
	for _, c := range m.record.Creations {
		items = append(items, domain.ContextItem{
			Type:      domain.RecordCreation,
			Timestamp: c.Timestamp,
			Text:      c.Content,
			Critiques: len(c.Critiques),
		})
	}

	slices.SortStableFunc(items, func(a, b domain.ContextItem) int {
		return cmp.Compare(b.Timestamp.UnixNano(), a.Timestamp.UnixNano())
	})

	if limit >= 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

func (m *Memory) save() error {
	return writeJSONFile(m.path, m.record)
}
