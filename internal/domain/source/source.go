// Package source describes where question banks come from and which of
// them an exam draws on.
package source

import (
	"errors"
	"fmt"
)

// ErrUnknownKind rejects a source kind the registry has no bank for.
var ErrUnknownKind = errors.New("unknown source kind")

// Kind selects the pool an exam is configured against: a single bank or
// every bank combined.
type Kind string

const (
	KindGeneral   Kind = "general"
	KindSecondary Kind = "secondary"
	KindTertiary  Kind = "tertiary"
	KindAll       Kind = "all"
)

// Source is one question file: a stable key, a display label, and the
// location (filesystem path or http(s) URL) of its CSV.
type Source struct {
	Key      string
	Label    string
	Location string
}

// Registry holds the configured sources in their fixed order. The order
// matters: "all" pools concatenate banks in registry order, so exam
// selections stay reproducible across runs given the same seed.
type Registry struct {
	sources []Source
}

// NewRegistry creates a registry from the configured sources, keeping the
// given order.
func NewRegistry(sources []Source) *Registry {
	return &Registry{sources: sources}
}

// All returns every source in registry order.
func (r *Registry) All() []Source {
	return r.sources
}

// ByKey finds a source by its key.
func (r *Registry) ByKey(key string) (Source, bool) {
	for _, s := range r.sources {
		if s.Key == key {
			return s, true
		}
	}
	return Source{}, false
}

// Resolve maps an exam source kind to the ordered bank keys in its pool.
func (r *Registry) Resolve(kind Kind) ([]string, error) {
	if kind == KindAll {
		keys := make([]string, len(r.sources))
		for i, s := range r.sources {
			keys[i] = s.Key
		}
		return keys, nil
	}
	if _, ok := r.ByKey(string(kind)); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return []string{string(kind)}, nil
}
