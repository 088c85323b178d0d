// Package query is the list filtering engine shared by the directory, events,
// and jobs listings.
//
// THE PROBLEM IT SOLVES:
// Every listing page answers the same question: "given a free-text query and
// some filter selections, which records match?" Writing that loop three times
// (once per dataset) means three copies of the same bugs. This package writes
// it once, as a set of predicate combinators, and lets each dataset supply
// only the parts that differ — which fields the text search looks at, which
// field a dropdown compares against, and so on.
//
// THE CONTRACT:
//   - Everything here is a pure function: same inputs, same output, no state
//     held between calls. Safe to call from any handler.
//   - Filter preserves the original relative order of the input. It filters,
//     it never sorts.
//   - A filter in its sentinel state ("All", "All Companies", ...) matches
//     every record. An empty query matches every record. So the degenerate
//     call — everything at its sentinel — returns the input unchanged.
//   - Zero matches is a valid result (an empty slice), not an error.
//
// GENERICS:
// Predicate[T] is generic over the record type, so the same combinators serve
// model.AlumniProfile, model.Event, and model.JobPosting without reflection
// or interface{} casts. The per-dataset knowledge lives in small selector
// functions (func(T) string etc.) passed in by each dataset package.
package query

import "strings"

// Predicate reports whether a single record matches one criterion.
type Predicate[T any] func(T) bool

// And combines predicates: a record matches only if every predicate matches.
// With no predicates it matches everything (the neutral element of AND).
func And[T any](preds ...Predicate[T]) Predicate[T] {
	return func(rec T) bool {
		for _, p := range preds {
			if !p(rec) {
				return false
			}
		}
		return true
	}
}

// Or combines predicates: a record matches if any predicate matches.
// With no predicates it matches nothing. The jobs location rule needs this:
// "Remote" matches a literal location OR the remote flag.
func Or[T any](preds ...Predicate[T]) Predicate[T] {
	return func(rec T) bool {
		for _, p := range preds {
			if p(rec) {
				return true
			}
		}
		return false
	}
}

// Filter returns the records matching pred, in their original order.
// The input slice is never mutated; the result is always a fresh slice, so an
// empty result is an empty (non-nil) slice rather than nil.
func Filter[T any](records []T, pred Predicate[T]) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Text is the free-text search predicate: a case-insensitive substring match
// against every string the fields selector yields for a record. A record
// matches if ANY of its designated fields contains the query. The empty query
// (or all-whitespace) matches everything.
//
// Tag collections (like a skills list) are handled by the selector returning
// each element as its own string.
func Text[T any](q string, fields func(T) []string) Predicate[T] {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return matchAll[T]
	}
	return func(rec T) bool {
		for _, f := range fields(rec) {
			if strings.Contains(strings.ToLower(f), q) {
				return true
			}
		}
		return false
	}
}

// Equals is the exact-match categorical predicate. When selected equals the
// sentinel ("All Companies" etc.) every record matches; otherwise the
// record's field must equal the selection exactly.
func Equals[T any](selected, sentinel string, field func(T) string) Predicate[T] {
	if selected == sentinel || selected == "" {
		return matchAll[T]
	}
	return func(rec T) bool {
		return field(rec) == selected
	}
}

// Contains is the substring categorical predicate — like Equals but the
// record's field only has to contain the selection. The jobs location filter
// uses this so "Seattle" matches "Seattle, WA".
func Contains[T any](selected, sentinel string, field func(T) string) Predicate[T] {
	if selected == sentinel || selected == "" {
		return matchAll[T]
	}
	return func(rec T) bool {
		return strings.Contains(field(rec), selected)
	}
}

// Range is a named numeric bucket. Max == 0 means open-ended ("2022+").
type Range struct {
	Min int
	Max int
}

// contains reports whether v falls inside the bucket.
func (r Range) contains(v int) bool {
	if v < r.Min {
		return false
	}
	return r.Max == 0 || v <= r.Max
}

// InRange is the bucketed categorical predicate for range-like filters, e.g.
// graduation batches grouped into "2012-2015", "2016-2018", ... A selection
// that names no known bucket matches nothing (a stale dropdown value should
// produce an empty list, not everything).
func InRange[T any](selected, sentinel string, buckets map[string]Range, value func(T) int) Predicate[T] {
	if selected == sentinel || selected == "" {
		return matchAll[T]
	}
	bucket, ok := buckets[selected]
	if !ok {
		return matchNone[T]
	}
	return func(rec T) bool {
		return bucket.contains(value(rec))
	}
}

// Toggle is the boolean filter predicate ("Mentors Only", "Remote Only").
// Inactive toggles match everything; an active toggle requires the record's
// flag to be true.
func Toggle[T any](active bool, flag func(T) bool) Predicate[T] {
	if !active {
		return matchAll[T]
	}
	return flag
}

func matchAll[T any](T) bool  { return true }
func matchNone[T any](T) bool { return false }
