package store

import (
	"context"
	"sort"
)

// SeenStore persists the set of fingerprints already reported.
type SeenStore interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, fingerprints []string) error
}

// SeenFile keeps the seen set as a JSON array of strings.
type SeenFile struct {
	Path string
}

var _ SeenStore = SeenFile{}

func (f SeenFile) Load(_ context.Context) ([]string, error) {
	return LoadJSON(f.Path, []string{})
}

func (f SeenFile) Save(_ context.Context, fingerprints []string) error {
	out := append([]string(nil), fingerprints...)
	sort.Strings(out)
	if out == nil {
		out = []string{}
	}
	return SaveJSON(f.Path, out)
}
