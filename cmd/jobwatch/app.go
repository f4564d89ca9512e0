package main

import (
	"fmt"

	"jobwatch/internal/config"
	"jobwatch/internal/domain"
	"jobwatch/internal/notify"
	"jobwatch/internal/poll"
	"jobwatch/internal/scrape"
	"jobwatch/internal/scrape/util"
	"jobwatch/internal/secrets"
	"jobwatch/internal/store"
)

var exampleCompanies = []domain.Company{
	{Name: "Example Co", URL: "https://example.com/careers"},
}

// buildRunner wires the pipeline from an already validated config. The
// returned close func releases the seen store.
func buildRunner(cfg config.Config, creds config.Credentials) (*poll.Runner, func() error, error) {
	closeFn := func() error { return nil }

	var seen store.SeenStore
	switch cfg.State.Backend {
	case config.BackendSQLite:
		db, err := store.OpenSeenDB(cfg.State.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("open seen db %s: %w", cfg.State.DB, err)
		}
		seen = db
		closeFn = db.Close
	default:
		seen = store.SeenFile{Path: cfg.Paths.Seen}
	}

	ext, err := scrape.NewExtractor(cfg.Keywords)
	if err != nil {
		_ = closeFn()
		return nil, nil, err
	}

	fetcher := scrape.NewFetcher(scrape.FetchConfig{
		UserAgent: cfg.Fetch.UserAgent,
		Timeout:   cfg.FetchTimeout(),
	}, util.NewHostLimiter(cfg.Fetch.PerHostRPS, 1))

	notifier := notify.New(notify.Config{
		APIKey:   secrets.ResolveAPIKey(creds.APIKey),
		From:     creds.Sender,
		To:       creds.Recipient,
		Endpoint: cfg.Email.Endpoint,
		Timeout:  cfg.EmailTimeout(),
	})

	companiesPath := cfg.Paths.Companies
	return &poll.Runner{
		Companies: func() ([]domain.Company, error) { return store.LoadCompanies(companiesPath) },
		Seen:      seen,
		Fetcher:   fetcher,
		Extractor: ext,
		Notifier:  notifier,
		Delay:     cfg.Delay(),
	}, closeFn, nil
}
