// Package dedup classifies candidate jobs against the fingerprints already
// reported. New fingerprints are staged and only become part of the
// persisted set after Commit.
package dedup

import (
	"sort"

	"jobwatch/internal/domain"
)

type Set struct {
	committed map[string]struct{}
	pending   map[string]struct{}
}

// NewSet seeds the committed set with previously persisted fingerprints.
func NewSet(prior []string) *Set {
	s := &Set{
		committed: make(map[string]struct{}, len(prior)),
		pending:   make(map[string]struct{}),
	}
	for _, fp := range prior {
		s.committed[fp] = struct{}{}
	}
	return s
}

// Contains reports whether fp is committed or staged in this run.
func (s *Set) Contains(fp string) bool {
	if _, ok := s.committed[fp]; ok {
		return true
	}
	_, ok := s.pending[fp]
	return ok
}

// Filter returns the candidates not seen before, in input order. Each new
// fingerprint is staged as soon as it is classified, so a repeat later in
// the same run is not reported again.
func (s *Set) Filter(cands []domain.Job) []domain.Job {
	var fresh []domain.Job
	for _, c := range cands {
		if s.Contains(c.ID) {
			continue
		}
		s.pending[c.ID] = struct{}{}
		fresh = append(fresh, c)
	}
	return fresh
}

// Pending returns the staged fingerprints, sorted.
func (s *Set) Pending() []string {
	return sortedKeys(s.pending)
}

// Commit merges staged fingerprints into the committed set.
func (s *Set) Commit() {
	for fp := range s.pending {
		s.committed[fp] = struct{}{}
	}
	s.pending = make(map[string]struct{})
}

// Snapshot returns the committed fingerprints, sorted. Staged ones are
// never included.
func (s *Set) Snapshot() []string {
	return sortedKeys(s.committed)
}

func (s *Set) Len() int { return len(s.committed) }

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
