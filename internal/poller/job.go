package poller

import (
	"context"
	"time"

	"github.com/jimpyjack/stream-donations/internal/logger"
	"github.com/jimpyjack/stream-donations/internal/service"
)

// PollJob runs the mailbox poll cycle on an interval. Manual /api/poll
// triggers can overlap with it freely; the ledger's insert-if-absent is the
// only dedup mechanism either path relies on.
type PollJob struct {
	pollService service.PollService
	logger      *logger.Logger
	interval    time.Duration

	ctx    context.Context
	cancel context.CancelFunc
}

func NewPollJob(pollService service.PollService, interval time.Duration, logger *logger.Logger) *PollJob {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &PollJob{
		pollService: pollService,
		logger:      logger,
		interval:    interval,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// RunPoll executes one poll cycle - exported for testing.
func (j *PollJob) RunPoll() {
	result, err := j.pollService.PollOnce(j.ctx)
	if err != nil {
		// Ledger unavailable; retry on the next tick.
		j.logger.Error("Scheduled poll cycle failed:", err)
		return
	}

	if len(result.NewIDs) > 0 {
		j.logger.Info("Scheduled poll recorded", len(result.NewIDs), "new donations, total now", result.Total)
	}
}

// Start blocks until Stop is called; run it in its own goroutine.
func (j *PollJob) Start() {
	j.logger.Info("Starting poll job with interval", j.interval)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-j.ctx.Done():
			j.logger.Info("Poll job stopped")
			return
		case <-ticker.C:
			j.RunPoll()
		}
	}
}

func (j *PollJob) Stop() {
	j.cancel()
}
