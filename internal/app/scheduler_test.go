package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/niveshapp/nivesh/internal/common"
	"github.com/niveshapp/nivesh/internal/models"
)

type countingEngine struct {
	mu      sync.Mutex
	cycles  int
	block   chan struct{} // if non-nil, Refresh blocks until closed
	started chan struct{} // signalled when a Refresh begins
}

func (e *countingEngine) Refresh(_ context.Context) ([]models.Holding, error) {
	if e.started != nil {
		e.started <- struct{}{}
	}
	if e.block != nil {
		<-e.block
	}
	e.mu.Lock()
	e.cycles++
	e.mu.Unlock()
	return nil, nil
}

func (e *countingEngine) Summary(_ context.Context) models.PortfolioSummary {
	return models.PortfolioSummary{}
}

func (e *countingEngine) count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cycles
}

func TestScheduler_RunsOnInterval(t *testing.T) {
	engine := &countingEngine{}
	s := NewScheduler(engine, common.NewSilentLogger(), 10*time.Millisecond)

	s.Start()
	time.Sleep(55 * time.Millisecond)
	s.Stop()

	// Immediate first cycle plus several ticks.
	if c := engine.count(); c < 3 {
		t.Errorf("cycles = %d, want at least 3", c)
	}
}

func TestScheduler_StopPreventsFurtherCycles(t *testing.T) {
	engine := &countingEngine{}
	s := NewScheduler(engine, common.NewSilentLogger(), 10*time.Millisecond)

	s.Start()
	time.Sleep(25 * time.Millisecond)
	s.Stop()

	after := engine.count()
	time.Sleep(50 * time.Millisecond)
	if c := engine.count(); c != after {
		t.Errorf("cycles after Stop: %d, want unchanged %d", c, after)
	}
}

func TestScheduler_StopWaitsForInFlightCycle(t *testing.T) {
	engine := &countingEngine{
		block:   make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	s := NewScheduler(engine, common.NewSilentLogger(), time.Hour)

	s.Start()
	<-engine.started // the immediate first cycle is now in flight

	stopped := make(chan struct{})
	go func() {
		s.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("Stop returned while a cycle was in flight")
	case <-time.After(20 * time.Millisecond):
	}

	close(engine.block)
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after the in-flight cycle completed")
	}
	if engine.count() != 1 {
		t.Errorf("cycles = %d, want the in-flight cycle to have completed exactly once", engine.count())
	}
}

func TestScheduler_StartAndStopAreIdempotent(t *testing.T) {
	engine := &countingEngine{}
	s := NewScheduler(engine, common.NewSilentLogger(), time.Hour)

	s.Start()
	s.Start()
	s.Stop()
	s.Stop() // second Stop must not panic or block
}

func TestScheduler_DefaultInterval(t *testing.T) {
	s := NewScheduler(&countingEngine{}, common.NewSilentLogger(), 0)
	if s.interval != 5*time.Second {
		t.Errorf("interval = %v, want 5s default", s.interval)
	}
}
