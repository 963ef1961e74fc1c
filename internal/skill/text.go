package skill

import (
	"context"

	"github.com/msuss/atelier/internal/critique"
	"github.com/msuss/atelier/internal/domain"
	"github.com/msuss/atelier/internal/llm"
	"go.uber.org/zap"
)

const (
	mockText = "[Mock Generated Text based on prompt] \n\n" +
		"The shadows lengthen, \n" +
		"My heart beats slow, \n" +
		"A digital echo, \n" +
		"Of a soul I'll never know."

	mockSelfScore    = 0.7
	mockSelfCritique = "It captures the mood, but the rhythm is a bit clunky."
)

// TextSkill writes short poems and prose.
type TextSkill struct {
	gen    domain.TextGenerator
	parser *critique.Parser
	logger *zap.Logger
}

func NewTextSkill(gen domain.TextGenerator, logger *zap.Logger) *TextSkill {
	return &TextSkill{gen: gen, parser: critique.DefaultParser(), logger: logger}
}

func (s *TextSkill) Name() string { return KindText }

func (s *TextSkill) Perform(ctx context.Context, brief Brief) (*Artwork, error) {
	prompt := llm.TextPrompt(brief.Personality, brief.Goal, brief.Context)

	content, err := s.gen.Complete(ctx, prompt)
	if err != nil {
		s.logger.Warn("text generation failed, using mock",
			zap.String("artist", brief.Artist),
			zap.Error(err),
		)
		return &Artwork{Kind: KindText, Content: mockText, Prompt: prompt, Mock: true}, nil
	}
	return &Artwork{Kind: KindText, Content: content, Prompt: prompt}, nil
}

func (s *TextSkill) Critique(ctx context.Context, art *Artwork, p *domain.Personality) SelfCritique {
	resp, err := s.gen.Complete(ctx, llm.SelfCritiquePrompt(p, art.Content))
	if err != nil {
		s.logger.Warn("self critique failed", zap.String("artist", p.Name), zap.Error(err))
		return SelfCritique{Score: mockSelfScore, Critique: mockSelfCritique}
	}
	return selfCritiqueFrom(s.parser, resp, domain.FallbackScore)
}

func selfCritiqueFrom(p *critique.Parser, resp string, fallback float64) SelfCritique {
	score, ok := p.ParseScore(resp)
	if !ok {
		score = fallback
	}
	return SelfCritique{Score: domain.Clamp01(score), Critique: resp}
}
