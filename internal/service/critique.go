package service

import (
	"context"
	"strings"

	"github.com/msuss/atelier/internal/critique"
	"github.com/msuss/atelier/internal/domain"
	"github.com/msuss/atelier/internal/llm"
	"github.com/msuss/atelier/internal/store"
	"go.uber.org/zap"
)

const (
	validatedScore   = 0.8
	woundableScore   = 0.5
	neuroticismLimit = 0.6
)

// CritiqueEngine has one artist judge another's work and applies the
// outcome to both personalities.
type CritiqueEngine struct {
	gen        domain.TextGenerator
	parser     *critique.Parser
	logger     *zap.Logger
	conceptCap int
}

func NewCritiqueEngine(gen domain.TextGenerator, logger *zap.Logger) *CritiqueEngine {
	return &CritiqueEngine{
		gen:        gen,
		parser:     critique.DefaultParser(),
		logger:     logger,
		conceptCap: domain.ConceptCap,
	}
}

// GenerateCritique asks critic for its opinion of artwork. It never fails:
// a generator error yields the neutral fallback critique.
func (e *CritiqueEngine) GenerateCritique(ctx context.Context, critic *domain.Personality, artwork string) domain.CritiqueResult {
	resp, err := e.gen.Complete(ctx, llm.CritiquePrompt(critic, artwork))
	if err != nil {
		e.logger.Warn("critique generation failed, using fallback",
			zap.String("critic", critic.Name),
			zap.Error(err),
		)
		return domain.FallbackCritique()
	}
	return e.parser.Parse(resp)
}

// ProcessCritiqueResult applies res to the critic and the subject and reports
// which of the two changed.
//
// The critic absorbs new concepts and emotional impact. The subject reacts to
// the score: at or above 0.8 it is validated, at or below 0.5 it is wounded or
// defensive depending on neuroticism, and in between nothing happens.
func (e *CritiqueEngine) ProcessCritiqueResult(critic, subject *domain.Personality, res domain.CritiqueResult) (criticChanged, subjectChanged bool) {
	for _, c := range res.NewConcepts {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" || critic.HasConcept(c) {
			continue
		}
		evicted := critic.AddConcept(c, e.conceptCap)
		criticChanged = true
		e.logger.Info("critic discovered concept", zap.String("critic", critic.Name), zap.String("concept", c))
		for _, old := range evicted {
			e.logger.Info("critic forgot concept", zap.String("critic", critic.Name), zap.String("concept", old))
		}
	}

	for _, emotion := range domain.EmotionVocabulary {
		delta, ok := res.EmotionalImpact[emotion]
		if !ok {
			continue
		}
		critic.AdjustEmotion(emotion, delta)
		criticChanged = true
	}

	switch {
	case res.Score >= validatedScore:
		subject.AdjustConfidence(0.05)
		subject.AdjustEmotion(domain.EmotionJoy, 0.1)
		subject.AdjustEmotion(domain.EmotionMelancholy, -0.05)
		subjectChanged = true
		e.logger.Info("validated", zap.String("subject", subject.Name), zap.Float64("score", res.Score))
	case res.Score <= woundableScore:
		subject.AdjustConfidence(-0.05)
		if subject.Trait("neuroticism", 0.5) > neuroticismLimit {
			subject.AdjustEmotion(domain.EmotionMelancholy, 0.1)
			subject.AdjustEmotion(domain.EmotionAnger, 0.05)
			e.logger.Info("wounded", zap.String("subject", subject.Name), zap.Float64("score", res.Score))
		} else {
			subject.AdjustEmotion(domain.EmotionAnger, 0.05)
			e.logger.Info("defensive", zap.String("subject", subject.Name), zap.Float64("score", res.Score))
		}
		subjectChanged = true
	}

	return criticChanged, subjectChanged
}

// SaveCritiqueToMemory attaches a critique to the creation at index, or to
// the newest creation when index is nil or out of range. It does nothing
// when the subject has no creations.
func (e *CritiqueEngine) SaveCritiqueToMemory(subject *store.Memory, critic, text string, score float64, index *int) error {
	n := subject.Len()
	if n == 0 {
		return nil
	}
	target := n - 1
	if index != nil && *index >= 0 && *index < n {
		target = *index
	}
	return subject.AddCritique(target, text, score, critic)
}
