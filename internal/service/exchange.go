package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/msuss/atelier/internal/domain"
	"github.com/msuss/atelier/internal/store"
	"go.uber.org/zap"
)

// Agent is one artist loaded for the duration of an exchange.
type Agent struct {
	ID          string
	Personality *domain.Personality
	Memory      *store.Memory
	Dir         string
}

// Pair assigns one critic to one subject.
type Pair struct {
	Critic  string `json:"critic"`
	Subject string `json:"subject"`
}

// PairOutcome records what happened to one pair in a round.
type PairOutcome struct {
	Critic         string                 `json:"critic"`
	Subject        string                 `json:"subject"`
	CreationIndex  int                    `json:"creation_index"`
	Skipped        bool                   `json:"skipped,omitempty"`
	Result         *domain.CritiqueResult `json:"result,omitempty"`
	CriticChanged  bool                   `json:"critic_changed"`
	SubjectChanged bool                   `json:"subject_changed"`
	Error          string                 `json:"error,omitempty"`
}

type RoundReport struct {
	Pairs      []PairOutcome `json:"pairs"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
}

// ExchangeService runs critique exchanges between artists.
type ExchangeService struct {
	roster *store.Roster
	engine *CritiqueEngine
	rng    Rand
	locks  *KeyedMutex
	events domain.EventPublisher
	logger *zap.Logger
}

func NewExchangeService(roster *store.Roster, engine *CritiqueEngine, rng Rand, locks *KeyedMutex, events domain.EventPublisher, logger *zap.Logger) *ExchangeService {
	return &ExchangeService{
		roster: roster,
		engine: engine,
		rng:    rng,
		locks:  locks,
		events: events,
		logger: logger,
	}
}

func (s *ExchangeService) DiscoverAgents() ([]string, error) {
	return s.roster.Discover()
}

func (s *ExchangeService) LoadAgent(id string) (*Agent, error) {
	return loadAgent(s.roster, id)
}

func loadAgent(roster *store.Roster, id string) (*Agent, error) {
	p, mem, dir, err := roster.Load(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrArtistNotFound, id)
		}
		return nil, err
	}
	return &Agent{ID: id, Personality: p, Memory: mem, Dir: dir}, nil
}

// CircularPairs shuffles ids once and has each artist critique the next one,
// wrapping around. Every artist critiques and is critiqued exactly once.
func CircularPairs(ids []string, rng Rand) []Pair {
	if len(ids) < 2 {
		return nil
	}
	order := append([]string(nil), ids...)
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	pairs := make([]Pair, 0, len(order))
	for i, critic := range order {
		pairs = append(pairs, Pair{Critic: critic, Subject: order[(i+1)%len(order)]})
	}
	return pairs
}

// RandomPairs draws k pairs. Critics come from a pool drawn without
// replacement that refills once fewer than two remain; subjects are any
// artist other than the critic.
func RandomPairs(ids []string, k int, rng Rand) []Pair {
	if len(ids) < 2 || k <= 0 {
		return nil
	}

	var pool []string
	pairs := make([]Pair, 0, k)
	for len(pairs) < k {
		if len(pool) < 2 {
			pool = append(pool[:0], ids...)
		}
		i := rng.Intn(len(pool))
		critic := pool[i]
		pool = append(pool[:i], pool[i+1:]...)

		others := make([]string, 0, len(ids)-1)
		for _, id := range ids {
			if id != critic {
				others = append(others, id)
			}
		}
		pairs = append(pairs, Pair{Critic: critic, Subject: others[rng.Intn(len(others))]})
	}
	return pairs
}

// RunRound runs one exchange round over every discovered artist. A count of
// zero pairs the artists in a circle; a positive count draws that many random
// pairs. A failing pair is logged and recorded without stopping the round.
func (s *ExchangeService) RunRound(ctx context.Context, count int) (*RoundReport, error) {
	if count < 0 {
		return nil, ErrInvalidPairCount
	}
	found, err := s.roster.Discover()
	if err != nil {
		return nil, err
	}
	if len(found) < 2 {
		return nil, ErrNotEnoughArtists
	}

	unlock := s.locks.Lock(found...)
	defer unlock()

	// Only artists that load are paired, so every paired artist can be
	// critiqued.
	agents := make(map[string]*Agent, len(found))
	ids := make([]string, 0, len(found))
	for _, id := range found {
		a, err := loadAgent(s.roster, id)
		if err != nil {
			s.logger.Warn("skipping unloadable artist", zap.String("artist", id), zap.Error(err))
			continue
		}
		agents[id] = a
		ids = append(ids, id)
	}
	if len(ids) < 2 {
		return nil, ErrNotEnoughArtists
	}

	var pairs []Pair
	if count == 0 {
		pairs = CircularPairs(ids, s.rng)
	} else {
		pairs = RandomPairs(ids, count, s.rng)
	}

	report := &RoundReport{StartedAt: time.Now().UTC()}
	for _, pair := range pairs {
		if ctx.Err() != nil {
			break
		}
		report.Pairs = append(report.Pairs, s.runPair(ctx, agents, pair))
	}
	report.FinishedAt = time.Now().UTC()

	s.logger.Info("exchange round complete", zap.Int("pairs", len(report.Pairs)))
	publish(ctx, s.events, domain.NewEvent(domain.EventRoundCompleted, "", report))
	return report, ctx.Err()
}

// CritiquePair has critic critique one of subject's creations. A nil index
// picks a random creation.
func (s *ExchangeService) CritiquePair(ctx context.Context, critic, subject string, index *int) (*PairOutcome, error) {
	if critic == subject {
		return nil, ErrSelfCritique
	}
	unlock := s.locks.Lock(critic, subject)
	defer unlock()

	c, err := loadAgent(s.roster, critic)
	if err != nil {
		return nil, err
	}
	sub, err := loadAgent(s.roster, subject)
	if err != nil {
		return nil, err
	}
	if sub.Memory.Len() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoCreations, subject)
	}

	return s.exchange(ctx, c, sub, index)
}

func (s *ExchangeService) runPair(ctx context.Context, agents map[string]*Agent, pair Pair) (out PairOutcome) {
	out = PairOutcome{Critic: pair.Critic, Subject: pair.Subject, CreationIndex: -1}
	log := s.logger.With(zap.String("critic", pair.Critic), zap.String("subject", pair.Subject))

	defer func() {
		if r := recover(); r != nil {
			log.Error("critique pair panicked", zap.Any("panic", r))
			out.Error = fmt.Sprint(r)
		}
		// A failed pair may leave unsaved changes on the cached agents.
		// Later pairs reload them from disk.
		if out.Error != "" {
			delete(agents, pair.Critic)
			delete(agents, pair.Subject)
		}
	}()

	critic, err := s.cachedAgent(agents, pair.Critic)
	if err == nil {
		var subject *Agent
		subject, err = s.cachedAgent(agents, pair.Subject)
		if err == nil {
			var res *PairOutcome
			res, err = s.exchange(ctx, critic, subject, nil)
			if res != nil {
				out = *res
			}
		}
	}
	if err != nil {
		log.Error("critique pair failed", zap.Error(err))
		out.Error = err.Error()
	}
	return out
}

func (s *ExchangeService) cachedAgent(agents map[string]*Agent, id string) (*Agent, error) {
	if a, ok := agents[id]; ok {
		return a, nil
	}
	a, err := loadAgent(s.roster, id)
	if err != nil {
		return nil, err
	}
	agents[id] = a
	return a, nil
}

// exchange runs one critique. Callers hold the locks of both artists.
func (s *ExchangeService) exchange(ctx context.Context, critic, subject *Agent, index *int) (*PairOutcome, error) {
	out := &PairOutcome{Critic: critic.ID, Subject: subject.ID, CreationIndex: -1}

	n := subject.Memory.Len()
	if n == 0 {
		s.logger.Info("subject has no creations, skipping",
			zap.String("critic", critic.ID),
			zap.String("subject", subject.ID),
		)
		out.Skipped = true
		return out, nil
	}

	var idx int
	if index != nil && *index >= 0 && *index < n {
		idx = *index
	} else {
		idx = s.rng.Intn(n)
	}
	creation, _ := subject.Memory.Creation(idx)
	_, body := resolveArtwork(subject.Dir, creation.Content)

	res := s.engine.GenerateCritique(ctx, critic.Personality, body)
	criticChanged, subjectChanged := s.engine.ProcessCritiqueResult(critic.Personality, subject.Personality, res)

	if err := s.engine.SaveCritiqueToMemory(subject.Memory, critic.ID, res.Critique, res.Score, &idx); err != nil {
		return nil, fmt.Errorf("record critique: %w", err)
	}
	if criticChanged {
		if err := s.roster.SavePersonality(critic.ID, critic.Personality); err != nil {
			return nil, fmt.Errorf("save critic: %w", err)
		}
	}
	if subjectChanged {
		if err := s.roster.SavePersonality(subject.ID, subject.Personality); err != nil {
			return nil, fmt.Errorf("save subject: %w", err)
		}
	}

	out.CreationIndex = idx
	out.Result = &res
	out.CriticChanged = criticChanged
	out.SubjectChanged = subjectChanged

	s.logger.Info("critique exchanged",
		zap.String("critic", critic.ID),
		zap.String("subject", subject.ID),
		zap.Int("creation", idx),
		zap.Float64("score", res.Score),
	)
	publish(ctx, s.events, domain.NewEvent(domain.EventCritiqueExchanged, subject.ID, out))
	return out, nil
}

func publish(ctx context.Context, p domain.EventPublisher, e domain.Event) {
	if p != nil {
		p.Publish(ctx, e)
	}
}
