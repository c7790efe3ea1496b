// Package puzzle dispatches a day number and part to the solver for that day.
package puzzle

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUnknownDay is returned when no solver is registered for a day.
var ErrUnknownDay = errors.New("puzzle: day not implemented")

// Part selects which of a day's two answers to compute.
type Part int

const (
	PartOne Part = 1
	PartTwo Part = 2
)

// ParsePart parses "1" or "2".
//
// Postcondition: Returns PartOne or PartTwo, or a non-nil error.
func ParsePart(s string) (Part, error) {
	switch s {
	case "1":
		return PartOne, nil
	case "2":
		return PartTwo, nil
	default:
		return 0, fmt.Errorf("part must be 1 or 2, got %q", s)
	}
}

// Solver computes one day's answers from the raw puzzle input.
type Solver interface {
	Solve(part Part, input string) (string, error)
}

// SolverFunc adapts a function to the Solver interface.
type SolverFunc func(part Part, input string) (string, error)

// Solve calls f.
func (f SolverFunc) Solve(part Part, input string) (string, error) { return f(part, input) }

// Entry binds a solver to its day.
type Entry struct {
	Day    int
	Title  string
	Solver Solver
}

// Registry maps day numbers to solvers.
type Registry struct {
	entries map[int]Entry
}

// NewRegistry creates a Registry populated with the given entries.
//
// Precondition: No two entries may share a day; every day is >= 1.
// Postcondition: Returns a Registry or an error on invalid or duplicate days.
func NewRegistry(entries []Entry) (*Registry, error) {
	r := &Registry{entries: make(map[int]Entry, len(entries))}
	for _, e := range entries {
		if e.Day < 1 {
			return nil, fmt.Errorf("invalid day %d for %q", e.Day, e.Title)
		}
		if e.Solver == nil {
			return nil, fmt.Errorf("day %d has no solver", e.Day)
		}
		if existing, ok := r.entries[e.Day]; ok {
			return nil, fmt.Errorf("duplicate day %d: %q and %q", e.Day, existing.Title, e.Title)
		}
		r.entries[e.Day] = e
	}
	return r, nil
}

// Resolve returns the entry registered for day.
//
// Postcondition: Returns (entry, true) if found, or (Entry{}, false).
func (r *Registry) Resolve(day int) (Entry, bool) {
	e, ok := r.entries[day]
	return e, ok
}

// Solve runs the solver registered for day.
//
// Postcondition: Returns the answer, an error wrapping ErrUnknownDay, or the solver's error.
func (r *Registry) Solve(day int, part Part, input string) (string, error) {
	e, ok := r.entries[day]
	if !ok {
		return "", fmt.Errorf("%w: day %d", ErrUnknownDay, day)
	}
	answer, err := e.Solver.Solve(part, input)
	if err != nil {
		return "", fmt.Errorf("day %d part %d: %w", day, part, err)
	}
	return answer, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	return slices.Sorted(maps.Keys(r.entries))
}
