package fuzzy

import (
	"context"
	"sort"
	"strings"
	"unicode"
)

// Candidate is a searchable string with a caller-assigned id. The id is
// carried through to the Match so results can be resolved back to the
// caller's collection regardless of result ordering.
type Candidate struct {
	// ID is the candidate's position in the caller's collection.
	ID int

	// Text is the string to match against.
	Text string
}

// Match is a scored match against a single candidate.
type Match struct {
	// CandidateID is the id of the matched candidate.
	CandidateID int

	// Text is the candidate's display string.
	Text string

	// Positions contains the rune indices of matched characters.
	Positions []int

	// Score is the match score (higher is better).
	Score int
}

// Options configures matcher behavior.
type Options struct {
	// SmartCase matches case-insensitively unless the query contains an
	// uppercase rune.
	SmartCase bool

	// CaseSensitive forces case-sensitive matching regardless of SmartCase.
	CaseSensitive bool

	// MinScore is the minimum score for a match to be included.
	MinScore int

	// Weights configures the scorer. Zero value means DefaultWeights.
	Weights Weights

	// Workers is the number of matching goroutines. Zero means GOMAXPROCS.
	Workers int
}

// DefaultOptions returns the options used by the command palette:
// smart case on, default weights, no score floor.
func DefaultOptions() Options {
	return Options{
		SmartCase: true,
		Weights:   DefaultWeights(),
	}
}

// Matcher performs fuzzy subsequence matching with position tracking.
// It is safe for concurrent use.
type Matcher struct {
	opts Options
}

// NewMatcher creates a matcher with the given options.
func NewMatcher(opts Options) *Matcher {
	if opts.Weights == (Weights{}) {
		opts.Weights = DefaultWeights()
	}
	return &Matcher{opts: opts}
}

// Match finds candidates matching the query, best first. Equal scores order
// by ascending candidate id, so callers that pre-sort their candidates keep
// that ordering among ties. An empty query matches every candidate with
// score zero and no positions, in candidate order.
//
// The context cancels in-flight work; a cancelled call returns whatever was
// collected so far, which callers are expected to discard.
func (m *Matcher) Match(ctx context.Context, query string, candidates []Candidate, limit int) []Match {
	query = strings.TrimSpace(query)
	if query == "" {
		return emptyQueryMatches(candidates, limit)
	}

	caseSensitive := m.caseSensitive(query)
	if !caseSensitive {
		query = strings.ToLower(query)
	}
	queryRunes := []rune(query)

	results := m.matchAll(ctx, queryRunes, caseSensitive, candidates)

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].CandidateID < results[j].CandidateID
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// caseSensitive resolves the effective case mode for a query.
func (m *Matcher) caseSensitive(query string) bool {
	if m.opts.CaseSensitive {
		return true
	}
	if !m.opts.SmartCase {
		return false
	}
	return strings.IndexFunc(query, unicode.IsUpper) >= 0
}

// matchCandidate scores a single candidate against the query.
// Returns zero score and nil positions when the query does not match.
func (m *Matcher) matchCandidate(queryRunes []rune, caseSensitive bool, text string) (int, []int) {
	if text == "" || len(queryRunes) == 0 {
		return 0, nil
	}

	originalRunes := []rune(text)
	textRunes := originalRunes
	if !caseSensitive {
		textRunes = []rune(strings.ToLower(text))
	}

	// Greedy left-to-right subsequence scan.
	positions := make([]int, 0, len(queryRunes))
	queryIdx := 0
	for i := 0; i < len(textRunes) && queryIdx < len(queryRunes); i++ {
		if textRunes[i] == queryRunes[queryIdx] {
			positions = append(positions, i)
			queryIdx++
		}
	}
	if queryIdx != len(queryRunes) {
		return 0, nil
	}

	score := m.opts.Weights.score(queryRunes, originalRunes, textRunes, positions)
	return score, positions
}

// emptyQueryMatches returns zero-score matches in candidate order.
func emptyQueryMatches(candidates []Candidate, limit int) []Match {
	count := len(candidates)
	if limit > 0 && limit < count {
		count = limit
	}
	results := make([]Match, count)
	for i := 0; i < count; i++ {
		results[i] = Match{
			CandidateID: candidates[i].ID,
			Text:        candidates[i].Text,
		}
	}
	return results
}
