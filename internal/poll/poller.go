package poll

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"jobwatch/internal/scheduler"
)

// RunLogged wraps RunOnce with a run id so cron logs can be grepped per run.
func RunLogged(ctx context.Context, r *Runner) error {
	id := uuid.NewString()
	start := time.Now()
	log.Printf("[i] run=%s started", id)

	res, err := r.RunOnce(ctx)
	if err != nil {
		log.Printf("[!] run=%s error: %v", id, err)
		return err
	}

	log.Printf("[i] run=%s done checked=%d candidates=%d new=%d notified=%v persisted=%v dur=%s",
		id, res.Checked, res.Candidates, len(res.New), res.Notified, res.Persisted,
		time.Since(start).Round(time.Millisecond))
	return nil
}

// StartPoller repeats RunLogged every interval until ctx is cancelled.
// Runs never overlap.
func StartPoller(ctx context.Context, r *Runner, every time.Duration) error {
	return scheduler.Every(ctx, every, "poll", func(ctx context.Context) error {
		return RunLogged(ctx, r)
	})
}
