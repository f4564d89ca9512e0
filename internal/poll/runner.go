package poll

import (
	"context"
	"fmt"
	"log"
	"time"

	"jobwatch/internal/dedup"
	"jobwatch/internal/domain"
	"jobwatch/internal/store"
)

type PageFetcher interface {
	Fetch(ctx context.Context, url string) string
}

type Extractor interface {
	Extract(company, url, page string) []domain.Job
}

type Notifier interface {
	Notify(ctx context.Context, jobs []domain.Job) bool
}

// Runner drives one sequential pass over the tracked companies.
type Runner struct {
	Companies func() ([]domain.Company, error)
	Seen      store.SeenStore
	Fetcher   PageFetcher
	Extractor Extractor
	Notifier  Notifier

	// Delay is the courtesy pause after each company whose page was fetched.
	Delay time.Duration
	Sleep func(ctx context.Context, d time.Duration) error
}

type Result struct {
	Checked    int
	Candidates int
	New        []domain.Job
	Notified   bool
	Persisted  bool
}

// RunOnce fetches, extracts and deduplicates every company, then sends one
// digest. New fingerprints are persisted only when there was nothing to
// send or the send succeeded, so a failed email is retried next run.
func (r *Runner) RunOnce(ctx context.Context) (Result, error) {
	var res Result

	companies, err := r.Companies()
	if err != nil {
		return res, fmt.Errorf("load companies: %w", err)
	}
	prior, err := r.Seen.Load(ctx)
	if err != nil {
		return res, fmt.Errorf("load seen: %w", err)
	}
	seen := dedup.NewSet(prior)

	sleep := r.Sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	for _, c := range companies {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if !c.Valid() {
			continue
		}
		log.Printf("[i] Checking %s -> %s", c.Name, c.URL)
		res.Checked++

		page := r.Fetcher.Fetch(ctx, c.URL)
		if page == "" {
			continue
		}

		cands := r.Extractor.Extract(c.Name, c.URL, page)
		res.Candidates += len(cands)
		res.New = append(res.New, seen.Filter(cands)...)

		if err := sleep(ctx, r.Delay); err != nil {
			return res, err
		}
	}

	if len(res.New) == 0 {
		log.Printf("[i] No new jobs found.")
		if err := r.commit(ctx, seen); err != nil {
			return res, err
		}
		res.Persisted = true
		return res, nil
	}

	log.Printf("[i] Sending email with %d items", len(res.New))
	res.Notified = r.Notifier.Notify(ctx, res.New)
	if !res.Notified {
		log.Printf("[!] Notification failed; %d new fingerprints not saved", len(seen.Pending()))
		return res, nil
	}

	if err := r.commit(ctx, seen); err != nil {
		return res, err
	}
	res.Persisted = true
	return res, nil
}

func (r *Runner) commit(ctx context.Context, seen *dedup.Set) error {
	seen.Commit()
	if err := r.Seen.Save(ctx, seen.Snapshot()); err != nil {
		return fmt.Errorf("save seen: %w", err)
	}
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
