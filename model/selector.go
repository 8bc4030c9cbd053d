// Package model implements the per-context Rice-parameter selector: it
// tracks, for every context and every candidate k, the cumulative Rice
// code length that parameter would have produced so far, and reports
// whichever k is currently cheapest.
package model

import (
	"fmt"

	"github.com/visanalexandru/felics/codes"
)

// Selector estimates the best Rice parameter k for each context by
// keeping running totals of what each candidate k would have cost.
//
// Totals are halved whenever the smallest of them exceeds halveAt, so
// the estimator adapts to local statistics instead of averaging over
// the whole image. A halveAt of 0 disables periodic scaling.
type Selector struct {
	kValues    []uint8
	contextMap [][]uint32
	halveAt    uint32
}

// NewSelector creates a Selector over numContexts contexts, choosing
// among kValues on each call to K. halveAt enables periodic count
// scaling (see Selector); pass 0 to disable it.
//
// It panics if kValues is empty: a selector with no candidates has
// nothing to select.
func NewSelector(numContexts uint32, kValues []uint8, halveAt uint32) *Selector {
	if len(kValues) == 0 {
		panic("model: selector requires at least one candidate k value")
	}

	contextMap := make([][]uint32, numContexts)
	for i := range contextMap {
		contextMap[i] = make([]uint32, len(kValues))
	}

	return &Selector{
		kValues:    kValues,
		contextMap: contextMap,
		halveAt:    halveAt,
	}
}

// Update records that encoded was Rice-coded in context, updating the
// cumulative cost of every candidate k for that context.
//
// It panics if context is out of range: contexts are derived from
// predictor output and are never attacker-controlled.
func (s *Selector) Update(context uint32, encoded uint32) {
	totals := s.contextMap[context]

	for i, k := range s.kValues {
		totals[i] += codes.RiceLength(encoded, k)
	}

	if s.halveAt != 0 {
		smallest := totals[0]
		for _, t := range totals[1:] {
			if t < smallest {
				smallest = t
			}
		}
		if smallest > s.halveAt {
			for i := range totals {
				totals[i] /= 2
			}
		}
	}
}

// K returns the cheapest candidate k for context. On a tie between two
// candidates, the larger k wins: a larger parameter degrades more
// gracefully when the true distribution is wider than the running
// totals suggest.
func (s *Selector) K(context uint32) uint8 {
	totals := s.contextMap[context]

	smallest := totals[0]
	best := 0
	for i, t := range totals[1:] {
		if t <= smallest {
			smallest = t
			best = i + 1
		}
	}
	return s.kValues[best]
}

// String renders the selector's configuration for diagnostics.
func (s *Selector) String() string {
	return fmt.Sprintf("model.Selector{contexts: %d, k: %v, halveAt: %d}", len(s.contextMap), s.kValues, s.halveAt)
}
