package palette

import (
	"context"
	"sort"

	"github.com/palettekit/palettekit/internal/action"
	"github.com/palettekit/palettekit/internal/fuzzy"
	"github.com/palettekit/palettekit/internal/release"
)

// maxMatches caps the fuzzy result count. Effectively unbounded for any
// realistic action catalog.
const maxMatches = 10000

// Rank produces the palette's ordered match list for a query.
//
// The returned command slice is the candidate set the matches index into via
// Match.CandidateID; it is the input commands re-sorted by usage frequency,
// plus at most one synthetic command appended by interception. Ranking never
// mutates hits and never fails: no match is an empty, valid result.
//
// The context cancels in-flight fuzzy matching; callers discard results of a
// cancelled pass.
func Rank(ctx context.Context, matcher *fuzzy.Matcher, query string, commands []Command, hits *HitCounts) ([]Command, []fuzzy.Match) {
	cmds := make([]Command, len(commands))
	copy(cmds, commands)

	// Usage-frequency sort runs before fuzzy filtering so equally scored
	// fuzzy matches keep frequency order (the matcher breaks score ties by
	// ascending candidate id).
	sort.SliceStable(cmds, func(i, j int) bool {
		hi, hj := hits.Count(cmds[i].Name), hits.Count(cmds[j].Name)
		if hi != hj {
			return hi > hj
		}
		return cmds[i].Name < cmds[j].Name
	})

	var matches []fuzzy.Match
	if query == "" {
		// Browse-all: every command in catalog order, no fuzzy pass.
		matches = make([]fuzzy.Match, len(cmds))
		for i, cmd := range cmds {
			matches[i] = fuzzy.Match{CandidateID: i, Text: cmd.Name}
		}
	} else {
		candidates := make([]fuzzy.Candidate, len(cmds))
		for i, cmd := range cmds {
			candidates[i] = fuzzy.Candidate{ID: i, Text: cmd.Name}
		}
		matches = matcher.Match(ctx, query, candidates, maxMatches)
	}

	result := intercept(query)
	if release.Current() == release.Dev {
		if _, ok := release.ParseAppLink(query); ok {
			// Dev-channel link handling overrides the interceptor.
			result = &InterceptResult{
				Action: &action.OpenURL{URL: query},
				String: query,
			}
		}
	}

	if result != nil {
		for i, m := range matches {
			if cmds[m.CandidateID].Action.Kind() == result.Action.Kind() {
				matches = append(matches[:i], matches[i+1:]...)
				break
			}
		}
		cmds = append(cmds, Command{Name: result.String, Action: result.Action})
		synthetic := fuzzy.Match{
			CandidateID: len(cmds) - 1,
			Text:        result.String,
			Positions:   result.Positions,
		}
		matches = append([]fuzzy.Match{synthetic}, matches...)
	}

	return cmds, matches
}
