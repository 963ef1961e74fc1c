package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ExchangeScheduler runs an exchange round on a fixed interval so the
// artists keep critiquing each other while the server is up.
type ExchangeScheduler struct {
	exchange *ExchangeService
	logger   *zap.Logger

	interval time.Duration
	timeout  time.Duration
	count    int
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewExchangeScheduler(exchange *ExchangeService, interval time.Duration, logger *zap.Logger) *ExchangeScheduler {
	return &ExchangeScheduler{
		exchange: exchange,
		logger:   logger,
		interval: interval,
		timeout:  5 * time.Minute,
		stopCh:   make(chan struct{}),
	}
}

// SetCount switches scheduled rounds to count random pairs. Zero means a
// circular round.
func (s *ExchangeScheduler) SetCount(count int) {
	s.count = count
}

// Start runs rounds on a periodic schedule in a background goroutine.
func (s *ExchangeScheduler) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.logger.Info("exchange scheduler started", zap.Duration("interval", s.interval))

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
				s.run(ctx)
				cancel()
			case <-s.stopCh:
				s.logger.Info("exchange scheduler stopped")
				return
			}
		}
	}()
}

// Stop signals the scheduler to stop and waits for the current round.
func (s *ExchangeScheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

func (s *ExchangeScheduler) run(ctx context.Context) {
	report, err := s.exchange.RunRound(ctx, s.count)
	if err != nil {
		if errors.Is(err, ErrNotEnoughArtists) {
			s.logger.Debug("scheduled exchange skipped", zap.Error(err))
			return
		}
		s.logger.Error("scheduled exchange failed", zap.Error(err))
		return
	}
	s.logger.Info("scheduled exchange done", zap.Int("pairs", len(report.Pairs)))
}
