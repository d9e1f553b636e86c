package app

import (
	"context"
	"sync"
	"time"

	"github.com/niveshapp/nivesh/internal/common"
	"github.com/niveshapp/nivesh/internal/interfaces"
)

// Scheduler drives the refresh engine on a fixed interval. Stop is
// prospective only: it prevents further cycles from starting, but a cycle
// already in flight runs to completion and its result is persisted.
type Scheduler struct {
	engine   interfaces.RefreshEngine
	logger   *common.Logger
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewScheduler creates a stopped scheduler. A non-positive interval falls
// back to 5 seconds.
func NewScheduler(engine interfaces.RefreshEngine, logger *common.Logger, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Scheduler{
		engine:   engine,
		logger:   logger,
		interval: interval,
	}
}

// Start begins periodic refresh cycles. The first cycle runs immediately,
// subsequent ones on the interval. Calling Start on a running scheduler is
// a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx, s.done)

	s.logger.Info().Dur("interval", s.interval).Msg("Refresh scheduler: started")
}

// Stop prevents further cycles from starting and waits for any in-flight
// cycle to complete. Calling Stop on a stopped scheduler is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	s.logger.Info().Msg("Refresh scheduler: stopped")
}

func (s *Scheduler) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	// Cycles run against the background context so a Stop mid-cycle lets
	// the cycle finish instead of tearing its writes.
	s.refresh()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			s.refresh()
		}
	}
}

func (s *Scheduler) refresh() {
	if _, err := s.engine.Refresh(context.Background()); err != nil {
		s.logger.Warn().Err(err).Msg("Refresh scheduler: cycle failed")
	}
}
