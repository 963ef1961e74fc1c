package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/msuss/atelier/internal/domain"
	"github.com/msuss/atelier/internal/llm"
	"github.com/msuss/atelier/internal/skill"
	"github.com/msuss/atelier/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newStudio(r *store.Roster, gen *llm.MockClient, pub domain.EventPublisher) *StudioService {
	skills := skill.NewRegistry(skill.NewTextSkill(gen, zap.NewNop()), skill.NewSVGSkill(gen, zap.NewNop()))
	return NewStudioService(r, skills, NewEvolver(&scriptedRand{}, zap.NewNop()), NewKeyedMutex(), pub, zap.NewNop())
}

func TestStudio_Generate(t *testing.T) {
	r := newRoster(t, 0, "Aria")
	gen := llm.NewMockClient()
	gen.CompleteFunc = func(prompt string) (string, error) {
		if strings.HasPrefix(prompt, "You are Aria.") {
			return "Score: 0.95\nCritique: my best yet", nil
		}
		return "static in the rain", nil
	}
	pub := &recordingPublisher{}
	s := newStudio(r, gen, pub)

	res, err := s.Generate(context.Background(), "aria", "text")
	require.NoError(t, err)
	assert.Equal(t, 0, res.CreationIndex)
	assert.Equal(t, "static in the rain", res.Artwork.Content)
	assert.InDelta(t, 0.95, res.SelfCritique.Score, 1e-9)

	p, mem := mustLoad(t, r, "aria")
	assert.InDelta(t, 0.75, p.Confidence, 1e-9)

	c, ok := mem.Creation(0)
	require.True(t, ok)
	assert.Equal(t, "text", c.Metadata["skill"])
	require.Len(t, c.Critiques, 1)
	assert.Equal(t, "aria", c.Critiques[0].Critic)

	calls := gen.Calls()
	require.Len(t, calls, 2)
	assert.Contains(t, calls[0], "Your current goal is: make Aria.")

	assert.Equal(t, []domain.EventType{domain.EventCreationGenerated}, pub.types())
}

func TestStudio_GenerateUsesRecentContext(t *testing.T) {
	r := newRoster(t, 1, "Aria")
	gen := llm.NewMockClient()
	s := newStudio(r, gen, nil)

	_, err := s.Generate(context.Background(), "aria", "text")
	require.NoError(t, err)
	assert.Contains(t, gen.Calls()[0], "- [creation] work of Aria")
}

func TestStudio_GenerateErrors(t *testing.T) {
	r := newRoster(t, 0, "Aria")
	s := newStudio(r, llm.NewMockClient(), nil)
	ctx := context.Background()

	_, err := s.Generate(ctx, "aria", "sculpture")
	assert.ErrorIs(t, err, ErrUnknownSkill)

	_, err = s.Generate(ctx, "ghost", "text")
	assert.ErrorIs(t, err, ErrArtistNotFound)
}

func TestStudio_GenerateSurvivesGeneratorOutage(t *testing.T) {
	r := newRoster(t, 0, "Aria")
	gen := llm.NewMockClient()
	gen.CompleteError = errors.New("offline")
	s := newStudio(r, gen, nil)

	res, err := s.Generate(context.Background(), "aria", "svg")
	require.NoError(t, err)
	assert.True(t, res.Artwork.Mock)

	_, mem := mustLoad(t, r, "aria")
	assert.Equal(t, 1, mem.Len())
}

func TestStudio_Feedback(t *testing.T) {
	r := newRoster(t, 0, "Aria")
	pub := &recordingPublisher{}
	s := newStudio(r, llm.NewMockClient(), pub)

	res, err := s.Feedback(context.Background(), "aria", false, "too dark")
	require.NoError(t, err)
	assert.False(t, res.Liked)

	p, mem := mustLoad(t, r, "aria")
	assert.InDelta(t, 0.55, p.Confidence, 1e-9)

	exps := mem.Experiences()
	require.Len(t, exps, 1)
	assert.Equal(t, "User feedback: too dark", exps[0].Description)
	assert.Equal(t, []string{"feedback"}, exps[0].Tags)
	assert.Equal(t, -1.0, exps[0].Sentiment)

	_, err = s.Feedback(context.Background(), "ghost", true, "")
	assert.ErrorIs(t, err, ErrArtistNotFound)

	assert.Equal(t, []domain.EventType{domain.EventFeedbackReceived}, pub.types())
}
