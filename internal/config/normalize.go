package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a cleaned copy of cfg plus any errors and warnings.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	// Keywords keep their order; exact duplicates are dropped.
	seen := map[string]bool{}
	var kws []string
	for _, k := range out.Keywords {
		k = strings.TrimSpace(k)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		kws = append(kws, k)
	}
	out.Keywords = kws

	out.Paths.Companies = strings.TrimSpace(out.Paths.Companies)
	out.Paths.Seen = strings.TrimSpace(out.Paths.Seen)
	out.Paths.Lock = strings.TrimSpace(out.Paths.Lock)
	out.State.Backend = strings.ToLower(strings.TrimSpace(out.State.Backend))
	if out.State.Backend == "" {
		out.State.Backend = BackendJSON
	}

	// ---- Validation rules ----

	if out.Paths.Companies == "" {
		res.addErr("paths.companies is required")
	}

	switch out.State.Backend {
	case BackendJSON:
		if out.Paths.Seen == "" {
			res.addErr("paths.seen is required when state.backend=json")
		}
	case BackendSQLite:
		if strings.TrimSpace(out.State.DB) == "" {
			res.addErr("state.db is required when state.backend=sqlite")
		}
	default:
		res.addErr("state.backend must be %q or %q, got %q", BackendJSON, BackendSQLite, out.State.Backend)
	}

	if out.Paths.Lock == "" {
		out.Paths.Lock = filepath.Join(filepath.Dir(out.StatePath()), DefaultLockName)
	}

	if out.Fetch.TimeoutSeconds <= 0 {
		res.addErr("fetch.timeout_seconds must be > 0")
	}
	if out.Fetch.PerHostRPS < 0 {
		res.addErr("fetch.per_host_rps must be >= 0")
	}
	if strings.TrimSpace(out.Fetch.UserAgent) == "" {
		res.addWarn("fetch.user_agent is empty; the built-in user agent will be sent.")
	}

	if out.Run.DelaySeconds < 0 {
		res.addErr("run.delay_seconds must be >= 0")
	} else if out.Run.DelaySeconds == 0 {
		res.addWarn("run.delay_seconds is 0; career pages will be fetched back to back.")
	}

	if len(out.Keywords) == 0 {
		res.addWarn("keywords is empty; the built-in intern/SDE patterns will be used.")
	}
	for i, k := range out.Keywords {
		if _, err := regexp.Compile(`(?i)` + k); err != nil {
			res.addErr("keywords[%d] %q does not compile: %v", i, k, err)
		}
	}

	if out.Email.TimeoutSeconds <= 0 {
		res.addErr("email.timeout_seconds must be > 0")
	}
	if u, err := url.Parse(out.Email.Endpoint); err != nil || u.Scheme == "" || u.Host == "" {
		res.addErr("email.endpoint must be an absolute URL")
	}

	return out, res
}
