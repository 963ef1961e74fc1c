package service

import (
	"context"
	"fmt"

	"github.com/msuss/atelier/internal/domain"
	"github.com/msuss/atelier/internal/skill"
	"github.com/msuss/atelier/internal/store"
	"go.uber.org/zap"
)

// ContextWindow is how many recent memories a skill sees.
const ContextWindow = 5

type GenerateResult struct {
	Artist        string              `json:"artist"`
	Skill         string              `json:"skill"`
	Artwork       *skill.Artwork      `json:"artwork"`
	SelfCritique  skill.SelfCritique  `json:"self_critique"`
	CreationIndex int                 `json:"creation_index"`
	Personality   *domain.Personality `json:"personality"`
	Mood          domain.Emotion      `json:"mood"`
}

type FeedbackResult struct {
	Artist      string              `json:"artist"`
	Liked       bool                `json:"liked"`
	Personality *domain.Personality `json:"personality"`
	Mood        domain.Emotion      `json:"mood"`
	Reflection  string              `json:"reflection"`
}

// StudioService runs creative cycles and takes audience feedback.
type StudioService struct {
	roster  *store.Roster
	skills  *skill.Registry
	evolver *Evolver
	locks   *KeyedMutex
	events  domain.EventPublisher
	logger  *zap.Logger
}

func NewStudioService(roster *store.Roster, skills *skill.Registry, evolver *Evolver, locks *KeyedMutex, events domain.EventPublisher, logger *zap.Logger) *StudioService {
	return &StudioService{
		roster:  roster,
		skills:  skills,
		evolver: evolver,
		locks:   locks,
		events:  events,
		logger:  logger,
	}
}

// Generate has the artist make one work with the named skill, judge it and
// evolve from its own verdict.
func (s *StudioService) Generate(ctx context.Context, artist, skillName string) (*GenerateResult, error) {
	sk, ok := s.skills.Get(skillName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSkill, skillName)
	}

	unlock := s.locks.Lock(artist)
	defer unlock()

	a, err := loadAgent(s.roster, artist)
	if err != nil {
		return nil, err
	}
	goal, err := s.roster.Goal(artist)
	if err != nil {
		return nil, err
	}

	art, err := sk.Perform(ctx, skill.Brief{
		Artist:      artist,
		Personality: a.Personality,
		Goal:        goal,
		Context:     a.Memory.RecentContext(ContextWindow),
		ArtDir:      s.roster.ArtDir(artist),
	})
	if err != nil {
		return nil, fmt.Errorf("perform %s: %w", sk.Name(), err)
	}
	verdict := sk.Critique(ctx, art, a.Personality)

	if err := a.Memory.AddCreation(art.Content, art.Metadata(sk.Name())); err != nil {
		return nil, fmt.Errorf("record creation: %w", err)
	}
	idx := a.Memory.Len() - 1
	if err := a.Memory.AddCritique(idx, verdict.Critique, verdict.Score, artist); err != nil {
		return nil, fmt.Errorf("record self critique: %w", err)
	}

	s.evolver.Evolve(a.Personality, domain.CritiqueEvent{Score: verdict.Score})
	if err := s.roster.SavePersonality(artist, a.Personality); err != nil {
		return nil, err
	}

	s.logger.Info("creation generated",
		zap.String("artist", artist),
		zap.String("skill", sk.Name()),
		zap.Int("creation", idx),
		zap.Float64("self_score", verdict.Score),
		zap.String("mood", string(a.Personality.Mood())),
	)

	res := &GenerateResult{
		Artist:        artist,
		Skill:         sk.Name(),
		Artwork:       art,
		SelfCritique:  verdict,
		CreationIndex: idx,
		Personality:   a.Personality,
		Mood:          a.Personality.Mood(),
	}
	publish(ctx, s.events, domain.NewEvent(domain.EventCreationGenerated, artist, res))
	return res, nil
}

// Feedback applies an audience reaction to the artist and remembers it.
func (s *StudioService) Feedback(ctx context.Context, artist string, liked bool, notes string) (*FeedbackResult, error) {
	unlock := s.locks.Lock(artist)
	defer unlock()

	a, err := loadAgent(s.roster, artist)
	if err != nil {
		return nil, err
	}

	s.evolver.Evolve(a.Personality, domain.FeedbackEvent{Liked: liked, Notes: notes})

	sentiment := -1.0
	if liked {
		sentiment = 1.0
	}
	if err := a.Memory.AddExperience("User feedback: "+notes, []string{"feedback"}, sentiment); err != nil {
		return nil, fmt.Errorf("record feedback: %w", err)
	}
	if err := s.roster.SavePersonality(artist, a.Personality); err != nil {
		return nil, err
	}

	res := &FeedbackResult{
		Artist:      artist,
		Liked:       liked,
		Personality: a.Personality,
		Mood:        a.Personality.Mood(),
		Reflection:  a.Personality.Reflect(),
	}
	publish(ctx, s.events, domain.NewEvent(domain.EventFeedbackReceived, artist, res))
	return res, nil
}

// Skills lists the available skill names.
func (s *StudioService) Skills() []string {
	return s.skills.Names()
}
