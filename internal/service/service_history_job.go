package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/device-provision/internal/logger"
	"github.com/MKhiriev/device-provision/internal/store"
)

type historyJob struct {
	history store.HistoryRepository
	policy  RetentionPolicy
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewHistoryJob creates a historyJob that prunes aged history entries on a
// ticker. The job is idle until Run is called. Zero or negative policy
// values default to a daily pass keeping 90 days of history.
func NewHistoryJob(history store.HistoryRepository, policy RetentionPolicy, logger *logger.Logger) HistoryJob {
	if policy.Interval <= 0 {
		policy.Interval = 24 * time.Hour
	}
	if policy.Retention <= 0 {
		policy.Retention = 90 * 24 * time.Hour
	}

	return &historyJob{history: history, policy: policy, logger: logger}
}

// Run implements HistoryJob. It stops any previously running loop, then
// launches a background goroutine that prunes entries older than the
// retention window every interval. The goroutine exits when ctx is cancelled
// or Stop is called.
func (j *historyJob) Run(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.policy.Interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.prune(jobCtx)
			}
		}
	}()
}

// Stop implements HistoryJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *historyJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *historyJob) prune(ctx context.Context) {
	cutoff := time.Now().Add(-j.policy.Retention)
	pruned, err := j.history.PruneBefore(ctx, cutoff)
	if err != nil {
		j.logger.Warn().Err(err).Msg("error pruning provisioning history")
		return
	}
	if pruned > 0 {
		j.logger.Info().Int64("pruned", pruned).Time("cutoff", cutoff).Msg("pruned provisioning history")
	}
}
