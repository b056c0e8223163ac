// Package store builds the per-response entity index and resolves dangling
// references into it. A Store is scoped to one RawResponse; it must never be
// reused across responses.
package store

import (
	"strings"

	"github.com/jonathan/voyager-parser/internal/types"
)

// RefKind classifies the shape of a candidate reference value.
type RefKind int

// Reference shapes. Classification is structural, never key-name based.
const (
	// RefNone marks a value that is not a reference at all.
	RefNone RefKind = iota
	// RefSingle marks a scalar identifier string.
	RefSingle
	// RefList marks a {"*field": [ids...]} style container.
	RefList
)

// Resolution is the outcome of resolving one reference value. Missing holds
// identifiers that pointed at nothing in the index; absence is never an
// error here, the caller decides what it costs.
type Resolution struct {
	Kind     RefKind
	Entities []types.Entity
	Missing  []string
}

// Store is the resolution index over one response's included list.
type Store struct {
	byUrn map[string]types.Entity
	order []types.Entity
}

// Build indexes the included entities by identifier. Later duplicates win,
// matching the way normalized payloads re-send updated entities.
func Build(included []types.Entity) *Store {
	s := &Store{byUrn: make(map[string]types.Entity, len(included)), order: included}
	for _, e := range included {
		if urn := e.EntityUrn(); urn != "" {
			s.byUrn[urn] = e
		}
	}
	return s
}

// FromResponse builds a Store over a response's included list.
func FromResponse(raw *types.RawResponse) *Store {
	if raw == nil {
		return Build(nil)
	}
	return Build(raw.Included)
}

// Get looks up one entity by identifier.
func (s *Store) Get(urn string) (types.Entity, bool) {
	e, ok := s.byUrn[urn]
	return e, ok
}

// Len reports the number of indexed entities.
func (s *Store) Len() int { return len(s.byUrn) }

// All returns the indexed entities in included order.
func (s *Store) All() []types.Entity { return s.order }

// OfKind returns, in included order, every entity with the given kind tag.
func (s *Store) OfKind(kind string) []types.Entity {
	var out []types.Entity
	for _, e := range s.order {
		if e.EntityKind() == kind {
			out = append(out, e)
		}
	}
	return out
}

// Resolve follows one reference value a single hop into the index.
// Non-reference values resolve to an empty RefNone resolution; callers chain
// further hops explicitly so missing entities stay visible.
func (s *Store) Resolve(value any) Resolution {
	kind, ids := Classify(value)
	res := Resolution{Kind: kind}
	for _, id := range ids {
		if e, ok := s.byUrn[id]; ok {
			res.Entities = append(res.Entities, e)
		} else {
			res.Missing = append(res.Missing, id)
		}
	}
	return res
}

// Classify inspects a value's shape and returns the identifiers it carries.
// A string with a URN prefix is a single reference; a map holding a
// "*"-prefixed key over a string list is a list container; anything else is
// a literal.
func Classify(value any) (RefKind, []string) {
	switch v := value.(type) {
	case string:
		if IsURN(v) {
			return RefSingle, []string{v}
		}
	case map[string]any:
		for key, inner := range v {
			if !strings.HasPrefix(key, "*") {
				continue
			}
			list, ok := inner.([]any)
			if !ok {
				continue
			}
			ids := make([]string, 0, len(list))
			for _, item := range list {
				if id, ok := item.(string); ok && IsURN(id) {
					ids = append(ids, id)
				}
			}
			return RefList, ids
		}
	}
	return RefNone, nil
}

// IsURN reports whether a string is shaped like an entity identifier.
func IsURN(s string) bool {
	return strings.HasPrefix(s, "urn:")
}
