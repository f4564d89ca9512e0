package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"jobwatch/internal/notify"
	"jobwatch/internal/scrape"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

type Config struct {
	Paths struct {
		Companies string `yaml:"companies" toml:"companies"`
		Seen      string `yaml:"seen" toml:"seen"`
		Lock      string `yaml:"lock" toml:"lock"` // empty: beside the state file
	} `yaml:"paths" toml:"paths"`

	State struct {
		Backend string `yaml:"backend" toml:"backend"` // json | sqlite
		DB      string `yaml:"db" toml:"db"`
	} `yaml:"state" toml:"state"`

	Fetch struct {
		UserAgent      string  `yaml:"user_agent" toml:"user_agent"`
		TimeoutSeconds int     `yaml:"timeout_seconds" toml:"timeout_seconds"`
		PerHostRPS     float64 `yaml:"per_host_rps" toml:"per_host_rps"`
	} `yaml:"fetch" toml:"fetch"`

	Run struct {
		DelaySeconds int `yaml:"delay_seconds" toml:"delay_seconds"`
	} `yaml:"run" toml:"run"`

	Keywords []string `yaml:"keywords" toml:"keywords"`

	Email struct {
		Endpoint       string `yaml:"endpoint" toml:"endpoint"`
		TimeoutSeconds int    `yaml:"timeout_seconds" toml:"timeout_seconds"`
	} `yaml:"email" toml:"email"`
}

// Default mirrors the behaviour of a run with no config file at all.
func Default() Config {
	var cfg Config
	cfg.Paths.Companies = "companies.json"
	cfg.Paths.Seen = "seen.json"
	cfg.State.Backend = BackendJSON
	cfg.State.DB = "seen.db"
	cfg.Fetch.UserAgent = scrape.DefaultUserAgent
	cfg.Fetch.TimeoutSeconds = 20
	cfg.Fetch.PerHostRPS = 1
	cfg.Run.DelaySeconds = 2
	cfg.Keywords = append([]string(nil), scrape.DefaultKeywords...)
	cfg.Email.Endpoint = notify.DefaultEndpoint
	cfg.Email.TimeoutSeconds = 20
	return cfg
}

// Load decodes path over the defaults. A missing file yields Default().
// Files ending in .toml are TOML, everything else YAML.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if isTOML(path) {
		err = toml.Unmarshal(b, &cfg)
	} else {
		err = yaml.Unmarshal(b, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultLockName is the run lock file created beside the active state file
// when paths.lock is not set.
const DefaultLockName = ".jobwatch.lock"

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// StatePath is the file holding the seen set for the selected backend.
func (c Config) StatePath() string {
	if c.State.Backend == BackendSQLite {
		return c.State.DB
	}
	return c.Paths.Seen
}

func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.Fetch.TimeoutSeconds) * time.Second
}

func (c Config) Delay() time.Duration {
	return time.Duration(c.Run.DelaySeconds) * time.Second
}

func (c Config) EmailTimeout() time.Duration {
	return time.Duration(c.Email.TimeoutSeconds) * time.Second
}
