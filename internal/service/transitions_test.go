package service

import (
	"testing"

	"github.com/msuss/atelier/internal/domain"
	"github.com/msuss/atelier/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.InfoLevel)
	return zap.New(core), logs
}

func TestEvolver_LogsFeedbackBranch(t *testing.T) {
	tests := []struct {
		name    string
		flaws   []string
		want    string
		notWant string
	}{
		{"sensitive artist is deeply hurt", []string{"sensitive to criticism"}, "deeply hurt", "defiant"},
		{"other artists turn defiant", []string{"impulsive"}, "defiant", "deeply hurt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, logs := observedLogger()
			NewEvolver(&scriptedRand{}, logger).Evolve(newPersonality(tt.flaws...), domain.FeedbackEvent{Liked: false})

			entries := logs.FilterMessage(tt.want).All()
			require.Len(t, entries, 1)
			assert.Equal(t, "Aria", entries[0].ContextMap()["artist"])
			assert.Zero(t, logs.FilterMessage(tt.notWant).Len())
		})
	}
}

func TestEvolver_LogsCritiqueBranch(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.9, "critique lifted artist"},
		{0.2, "critique shook artist"},
	}
	for _, tt := range tests {
		logger, logs := observedLogger()
		NewEvolver(&scriptedRand{}, logger).Evolve(newPersonality(), domain.CritiqueEvent{Score: tt.score})
		assert.Equal(t, 1, logs.FilterMessage(tt.want).Len(), tt.want)
	}

	logger, logs := observedLogger()
	NewEvolver(&scriptedRand{}, logger).Evolve(newPersonality(), domain.CritiqueEvent{Score: 0.6})
	assert.Zero(t, logs.FilterMessage("critique lifted artist").Len())
	assert.Zero(t, logs.FilterMessage("critique shook artist").Len())
}

func TestEvolver_LogsEpiphanyAndForgetting(t *testing.T) {
	logger, logs := observedLogger()
	p := newPersonality()
	p.Concepts = []string{"a", "b", "c", "d", "e", "glitch"}

	// Emotion index 4, delta +0.1, concept roll 0.0, first pool candidate.
	rng := &scriptedRand{floats: []float64{1.0, 0.0}, ints: []int{4, 0}}
	NewEvolver(rng, logger).Drift(p)

	epiphany := logs.FilterMessage("epiphany").All()
	require.Len(t, epiphany, 1)
	assert.Equal(t, "nature", epiphany[0].ContextMap()["concept"])

	forgetting := logs.FilterMessage("forgetting").All()
	require.Len(t, forgetting, 1)
	assert.Equal(t, "a", forgetting[0].ContextMap()["concept"])
}

func TestEvolver_NoForgettingUnderCap(t *testing.T) {
	logger, logs := observedLogger()
	p := newPersonality()
	p.Concepts = []string{"glitch"}

	NewEvolver(&scriptedRand{floats: []float64{1.0, 0.0}}, logger).Drift(p)

	assert.Equal(t, 1, logs.FilterMessage("epiphany").Len())
	assert.Zero(t, logs.FilterMessage("forgetting").Len())
}

func TestProcessCritiqueResult_LogsSubjectBranch(t *testing.T) {
	tests := []struct {
		name        string
		neuroticism float64
		score       float64
		want        string
	}{
		{"validated", 0.5, 0.9, "validated"},
		{"wounded", 0.8, 0.3, "wounded"},
		{"defensive", 0.6, 0.5, "defensive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, logs := observedLogger()
			subject := domain.NewPersonality("B", map[string]float64{"neuroticism": tt.neuroticism}, nil, nil)

			NewCritiqueEngine(llm.NewMockClient(), logger).ProcessCritiqueResult(
				domain.NewPersonality("A", nil, nil, nil), subject, domain.CritiqueResult{Score: tt.score})

			entries := logs.FilterMessage(tt.want).All()
			require.Len(t, entries, 1)
			assert.Equal(t, "B", entries[0].ContextMap()["subject"])
			assert.InDelta(t, tt.score, entries[0].ContextMap()["score"], 1e-9)
			for _, other := range []string{"validated", "wounded", "defensive"} {
				if other != tt.want {
					assert.Zero(t, logs.FilterMessage(other).Len(), other)
				}
			}
		})
	}
}

func TestProcessCritiqueResult_DeadZoneLogsNoTransition(t *testing.T) {
	logger, logs := observedLogger()
	NewCritiqueEngine(llm.NewMockClient(), logger).ProcessCritiqueResult(
		domain.NewPersonality("A", nil, nil, nil), domain.NewPersonality("B", nil, nil, nil), domain.CritiqueResult{Score: 0.65})

	for _, msg := range []string{"validated", "wounded", "defensive"} {
		assert.Zero(t, logs.FilterMessage(msg).Len(), msg)
	}
}

func TestProcessCritiqueResult_LogsCriticConcepts(t *testing.T) {
	logger, logs := observedLogger()
	critic := domain.NewPersonality("A", nil, nil, nil)
	critic.Concepts = []string{"one", "two", "three", "four", "five", "six"}

	NewCritiqueEngine(llm.NewMockClient(), logger).ProcessCritiqueResult(
		critic, domain.NewPersonality("B", nil, nil, nil), domain.CritiqueResult{Score: 0.6, NewConcepts: []string{"Neon"}})

	discovered := logs.FilterMessage("critic discovered concept").All()
	require.Len(t, discovered, 1)
	assert.Equal(t, "neon", discovered[0].ContextMap()["concept"])

	forgot := logs.FilterMessage("critic forgot concept").All()
	require.Len(t, forgot, 1)
	assert.Equal(t, "one", forgot[0].ContextMap()["concept"])
}
