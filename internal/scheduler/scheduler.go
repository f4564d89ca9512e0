package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"
)

type Task func(ctx context.Context) error

// Every runs task immediately and then on each tick, one run at a time.
// Ticks that fire while a run is in progress are dropped. It returns nil
// when ctx is cancelled and the task's error if a run fails.
func Every(ctx context.Context, interval time.Duration, name string, task Task) error {
	if interval <= 0 {
		return fmt.Errorf("[%s] interval must be > 0, got %s", name, interval)
	}

	if err := task(ctx); err != nil {
		return err
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[%s] stopped", name)
			return nil
		case <-t.C:
			err := task(ctx)
			// Drop the tick buffered while the run was in progress.
			select {
			case <-t.C:
			default:
			}
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
		}
	}
}
