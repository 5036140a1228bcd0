// Package matcher resolves free-text stop queries against the stop index
// using a local token-sort similarity measure.
package matcher

import (
	"sort"

	"github.com/ovplanner/ovplanner/pkg/transit"
	"github.com/ovplanner/ovplanner/pkg/util"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/iter"
)

const (
	DefaultThreshold = 80
	DefaultLimit     = 5
)

type Matcher struct {
	index  *transit.Index
	logger zerolog.Logger
}

func NewMatcher(index *transit.Index, logger zerolog.Logger) *Matcher {
	return &Matcher{
		index:  index,
		logger: logger,
	}
}

type nameCandidate struct {
	name  string
	score int
}

// Search returns the stops whose display name scores at or above threshold
// against the query, best score first, ties kept in table order. The limit
// caps the number of distinct names considered; every stop sharing a matched
// name is emitted, common for multi-platform stations.
func (m *Matcher) Search(query string, threshold int, limit int) []transit.StopMatch {
	stops := m.index.Stops()

	var names []string
	seenNames := map[string]bool{}
	for _, stop := range stops {
		if !seenNames[stop.Name] {
			seenNames[stop.Name] = true
			names = append(names, stop.Name)
		}
	}

	// Scoring each distinct name is independent, so fan it out.
	scores := iter.Map(names, func(name *string) int {
		return TokenSortRatio(query, *name)
	})

	candidates := make([]nameCandidate, len(names))
	for i, name := range names {
		candidates[i] = nameCandidate{name: name, score: scores[i]}
	}

	util.InPlaceFilter(&candidates, func(candidate nameCandidate) bool {
		return candidate.score >= threshold
	})

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if limit >= 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	var matches []transit.StopMatch
	for _, candidate := range candidates {
		for _, stop := range stops {
			if stop.Name == candidate.name {
				matches = append(matches, transit.StopMatch{
					Stop:  stop,
					Score: candidate.score,
				})
			}
		}
	}

	m.logger.Debug().
		Str("query", query).
		Int("threshold", threshold).
		Int("matches", len(matches)).
		Msg("Resolved stop query")

	return matches
}
