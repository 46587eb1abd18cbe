package jobs

import (
	"sync"
	"time"

	"github.com/venturelink/venturelink-api/internal/logger"
	"github.com/venturelink/venturelink-api/internal/services"
)

// CommitmentSweeper periodically expires soft commitments whose expiry date
// has passed without a response.
type CommitmentSweeper struct {
	commitments services.CommitmentService
	interval    time.Duration
	log         logger.Logger

	mu        sync.Mutex
	isRunning bool
	stopChan  chan struct{}
	wg        sync.WaitGroup
}

// NewCommitmentSweeper creates a new sweeper
func NewCommitmentSweeper(commitments services.CommitmentService, interval time.Duration, log logger.Logger) *CommitmentSweeper {
	return &CommitmentSweeper{
		commitments: commitments,
		interval:    interval,
		log:         log,
		stopChan:    make(chan struct{}),
	}
}

// Start begins the background sweep loop
func (s *CommitmentSweeper) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return
	}
	s.isRunning = true

	s.wg.Add(1)
	go s.run()

	s.log.Info("commitment sweeper started", "interval", s.interval)
}

// Stop gracefully stops the sweep loop
func (s *CommitmentSweeper) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	close(s.stopChan)
	s.wg.Wait()
	s.isRunning = false

	s.log.Info("commitment sweeper stopped")
}

// run is the main sweep loop
func (s *CommitmentSweeper) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// Run immediately on start
	s.sweep()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

// sweep runs a single expiry pass
func (s *CommitmentSweeper) sweep() {
	expired, err := s.commitments.ExpireDue(time.Now())
	if err != nil {
		s.log.Error("commitment expiry sweep failed", err)
		return
	}
	if expired > 0 {
		s.log.Info("expired stale commitments", "count", expired)
	}
}
