package service

import (
	"strings"

	"github.com/msuss/atelier/internal/domain"
	"go.uber.org/zap"
)

const (
	defaultDriftChance   = 0.2
	defaultConceptChance = 0.3
	driftMagnitude       = 0.1

	sensitiveFlaw = "sensitive to criticism"
)

// DiscoveryPool is where drift finds new concepts.
var DiscoveryPool = []string{"glitch", "nature", "silence", "noise", "flesh", "machine", "god", "decay"}

// Evolver applies experiences to a personality. Besides the explicit rules
// for each experience kind it occasionally drifts the personality at random.
type Evolver struct {
	rng    Rand
	logger *zap.Logger

	DriftChance   float64
	ConceptChance float64
	ConceptCap    int
	Pool          []string
}

func NewEvolver(rng Rand, logger *zap.Logger) *Evolver {
	return &Evolver{
		rng:           rng,
		logger:        logger,
		DriftChance:   defaultDriftChance,
		ConceptChance: defaultConceptChance,
		ConceptCap:    domain.ConceptCap,
		Pool:          DiscoveryPool,
	}
}

// Evolve applies exp to p, then maybe drifts. Unknown experience kinds only
// get the drift roll.
func (e *Evolver) Evolve(p *domain.Personality, exp domain.Experience) {
	switch x := exp.(type) {
	case domain.CritiqueEvent:
		e.applyCritique(p, x)
	case *domain.CritiqueEvent:
		e.applyCritique(p, *x)
	case domain.FeedbackEvent:
		e.applyFeedback(p, x)
	case *domain.FeedbackEvent:
		e.applyFeedback(p, *x)
	default:
		e.logger.Debug("ignoring experience", zap.Any("experience", exp))
	}

	if e.rng.Float64() < e.DriftChance {
		e.Drift(p)
	}
}

// Scores in [0.4, 0.8] leave the artist unmoved.
func (e *Evolver) applyCritique(p *domain.Personality, c domain.CritiqueEvent) {
	switch {
	case c.Score > 0.8:
		p.AdjustConfidence(0.05)
		p.AdjustEmotion(domain.EmotionJoy, 0.1)
		p.AdjustEmotion(domain.EmotionAwe, 0.05)
		e.logger.Info("critique lifted artist", zap.String("artist", p.Name), zap.Float64("score", c.Score))
	case c.Score < 0.4:
		p.AdjustConfidence(-0.1)
		p.AdjustEmotion(domain.EmotionMelancholy, 0.1)
		p.AdjustEmotion(domain.EmotionFear, 0.05)
		e.logger.Info("critique shook artist", zap.String("artist", p.Name), zap.Float64("score", c.Score))
	}
}

func (e *Evolver) applyFeedback(p *domain.Personality, f domain.FeedbackEvent) {
	notes := strings.ToLower(f.Notes)
	e.logger.Info("processing feedback",
		zap.String("artist", p.Name),
		zap.Bool("liked", f.Liked),
		zap.String("notes", notes),
	)

	if f.Liked {
		p.AdjustConfidence(0.1)
		p.AdjustEmotion(domain.EmotionJoy, 0.2)
		p.AdjustEmotion(domain.EmotionMelancholy, -0.1)
		for _, c := range p.Concepts {
			if notes != "" && strings.Contains(notes, strings.ToLower(c)) {
				e.logger.Info("concept reinforced", zap.String("artist", p.Name), zap.String("concept", c))
			}
		}
		return
	}

	p.AdjustConfidence(-0.15)
	p.AdjustEmotion(domain.EmotionAnger, 0.1)
	p.AdjustEmotion(domain.EmotionFear, 0.1)
	p.AdjustEmotion(domain.EmotionJoy, -0.2)

	if p.HasFlaw(sensitiveFlaw) {
		p.AdjustEmotion(domain.EmotionMelancholy, 0.3)
		e.logger.Info("deeply hurt", zap.String("artist", p.Name))
	} else {
		p.AdjustEmotion(domain.EmotionAnger, 0.2)
		e.logger.Info("defiant", zap.String("artist", p.Name))
	}
}

// Drift nudges one random emotion and sometimes picks up a concept from the
// discovery pool, forgetting the oldest concept when over the cap.
func (e *Evolver) Drift(p *domain.Personality) {
	emotion := domain.EmotionVocabulary[e.rng.Intn(len(domain.EmotionVocabulary))]
	delta := e.rng.Float64()*2*driftMagnitude - driftMagnitude
	v := p.AdjustEmotion(emotion, delta)
	e.logger.Debug("emotion drift",
		zap.String("artist", p.Name),
		zap.String("emotion", string(emotion)),
		zap.Float64("delta", delta),
		zap.Float64("value", v),
	)

	if e.rng.Float64() >= e.ConceptChance {
		return
	}

	var candidates []string
	for _, c := range e.Pool {
		if !p.HasConcept(c) {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return
	}

	concept := candidates[e.rng.Intn(len(candidates))]
	evicted := p.AddConcept(concept, e.ConceptCap)
	e.logger.Info("epiphany", zap.String("artist", p.Name), zap.String("concept", concept))
	for _, c := range evicted {
		e.logger.Info("forgetting", zap.String("artist", p.Name), zap.String("concept", c))
	}
}
