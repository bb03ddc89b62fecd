// Package job runs background work on a cron schedule.
package job

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Syncer reloads a local copy from its source. Background reloads keep
// errors a user has not dismissed yet.
type Syncer interface {
	Resync(ctx context.Context) error
}

// Resync periodically refreshes the booking store so edits made directly in
// the bookings table show up, and a failed startup load is retried.
type Resync struct {
	cron    *cron.Cron
	target  Syncer
	timeout time.Duration
	log     *zap.Logger
}

// NewResync schedules target.Resync on spec, e.g. "@every 1m".
// Overlapping runs are skipped.
func NewResync(target Syncer, spec string, timeout time.Duration, log *zap.Logger) (*Resync, error) {
	j := &Resync{
		target:  target,
		timeout: timeout,
		log:     log.With(zap.String("job", "resync")),
	}

	j.cron = cron.New(cron.WithChain(
		cron.Recover(cron.DefaultLogger),
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))
	if _, err := j.cron.AddFunc(spec, j.Run); err != nil {
		return nil, fmt.Errorf("schedule resync %q: %w", spec, err)
	}

	return j, nil
}

func (j *Resync) Start() {
	j.log.Info("Resync job started")
	j.cron.Start()
}

// Stop waits for a running refresh to finish or ctx to expire.
func (j *Resync) Stop(ctx context.Context) {
	select {
	case <-j.cron.Stop().Done():
		j.log.Info("Resync job stopped")
	case <-ctx.Done():
		j.log.Warn("Resync job stop timed out")
	}
}

// Run performs one refresh with the configured timeout.
func (j *Resync) Run() {
	ctx := context.Background()
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	start := time.Now()
	if err := j.target.Resync(ctx); err != nil {
		j.log.Warn("Booking resync failed", zap.Error(err))
		return
	}
	j.log.Debug("Booking resync finished", zap.Duration("duration", time.Since(start)))
}
