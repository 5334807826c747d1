package palette

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palettekit/palettekit/internal/action"
	"github.com/palettekit/palettekit/internal/fuzzy"
	"github.com/palettekit/palettekit/internal/release"
)

func testCommands(names ...string) []Command {
	commands := make([]Command, len(names))
	for i, name := range names {
		commands[i] = Command{
			Name:   HumanizeActionName(name),
			Action: action.NewFunc(name, nil),
		}
	}
	return commands
}

func testMatcher() *fuzzy.Matcher {
	return fuzzy.NewMatcher(fuzzy.DefaultOptions())
}

func TestRankEmptyQueryFollowsHistoryOrder(t *testing.T) {
	release.Set("stable")
	defer release.Set("dev")

	commands := testCommands("editor::Backspace", "editor::Copy", "editor::GoToDefinition")
	hits := NewHitCounts()
	hits.Increment("editor: go to definition")
	hits.Increment("editor: go to definition")
	hits.Increment("editor: copy")

	ranked, matches := Rank(context.Background(), testMatcher(), "", commands, hits)
	require.Len(t, matches, 3)

	got := make([]string, len(matches))
	for i, m := range matches {
		got[i] = ranked[m.CandidateID].Name
	}
	assert.Equal(t, []string{
		"editor: go to definition",
		"editor: copy",
		"editor: backspace",
	}, got)

	for _, m := range matches {
		assert.Zero(t, m.Score)
		assert.Empty(t, m.Positions)
	}
}

func TestRankEmptyQueryTiesSortByName(t *testing.T) {
	release.Set("stable")
	defer release.Set("dev")

	commands := testCommands("editor::Paste", "editor::Backspace", "editor::Copy")
	_, matches := Rank(context.Background(), testMatcher(), "", commands, NewHitCounts())
	require.Len(t, matches, 3)
	assert.Equal(t, "editor: backspace", matches[0].Text)
	assert.Equal(t, "editor: copy", matches[1].Text)
	assert.Equal(t, "editor: paste", matches[2].Text)
}

func TestRankFuzzyScenario(t *testing.T) {
	release.Set("stable")
	defer release.Set("dev")

	commands := testCommands("editor::Backspace", "editor::GoToDefinition")
	ranked, matches := Rank(context.Background(), testMatcher(), "bcksp", commands, NewHitCounts())
	require.NotEmpty(t, matches)
	assert.Equal(t, "editor: backspace", ranked[matches[0].CandidateID].Name)
	assert.NotEmpty(t, matches[0].Positions)
}

func TestRankHistoryBreaksFuzzyTies(t *testing.T) {
	release.Set("stable")
	defer release.Set("dev")

	// Identical name shapes match with identical scores; history must
	// decide the order via the pre-sort.
	commands := testCommands("pane_one::Activate", "pane_two::Activate")
	hits := NewHitCounts()
	hits.Increment("pane two: activate")

	ranked, matches := Rank(context.Background(), testMatcher(), "activate", commands, hits)
	require.Len(t, matches, 2)
	assert.Equal(t, "pane two: activate", ranked[matches[0].CandidateID].Name)
}

func TestRankIdempotent(t *testing.T) {
	release.Set("stable")
	defer release.Set("dev")

	commands := testCommands("editor::Backspace", "editor::Copy", "workspace::Save")
	hits := NewHitCounts()
	hits.Increment("workspace: save")

	_, first := Rank(context.Background(), testMatcher(), "s", commands, hits)
	_, second := Rank(context.Background(), testMatcher(), "s", commands, hits)
	assert.Equal(t, first, second)
}

func TestRankOutputBoundedByCatalog(t *testing.T) {
	release.Set("stable")
	defer release.Set("dev")

	commands := testCommands("editor::Backspace", "editor::Copy")
	for _, query := range []string{"", "e", "copy", "zzzz"} {
		_, matches := Rank(context.Background(), testMatcher(), query, commands, NewHitCounts())
		assert.LessOrEqual(t, len(matches), len(commands), "query %q", query)
	}
}

func TestRankNoMatchesIsNotAnError(t *testing.T) {
	release.Set("stable")
	defer release.Set("dev")

	commands := testCommands("editor::Backspace")
	_, matches := Rank(context.Background(), testMatcher(), "qqqq", commands, NewHitCounts())
	assert.Empty(t, matches)
}

func TestRankInterceptorResultComesFirstAndDeduplicates(t *testing.T) {
	release.Set("stable")
	defer release.Set("dev")

	openDocs := action.NewFunc("help::OpenDocs", nil)
	RegisterInterceptor(func(query string) *InterceptResult {
		if query != "docs" {
			return nil
		}
		return &InterceptResult{
			Action:    openDocs,
			String:    "help: open docs",
			Positions: []int{0, 1},
		}
	})
	defer UnregisterInterceptor()

	// The catalog already contains an action of the intercepted kind; its
	// fuzzy match must be dropped.
	commands := testCommands("help::OpenDocs", "editor::OpenDatabase")
	ranked, matches := Rank(context.Background(), testMatcher(), "docs", commands, NewHitCounts())

	require.NotEmpty(t, matches)
	assert.Equal(t, "help: open docs", matches[0].Text)
	assert.Equal(t, []int{0, 1}, matches[0].Positions)
	assert.Zero(t, matches[0].Score)

	sameKind := 0
	for _, m := range matches {
		if ranked[m.CandidateID].Action.Kind() == openDocs.Kind() {
			sameKind++
		}
	}
	assert.Equal(t, 1, sameKind)
	assert.LessOrEqual(t, len(matches), len(commands)+1)
}

func TestRankDevLinkOverridesInterceptor(t *testing.T) {
	release.Set("dev")

	RegisterInterceptor(func(query string) *InterceptResult {
		return &InterceptResult{
			Action: action.NewFunc("help::OpenDocs", nil),
			String: "help: open docs",
		}
	})
	defer UnregisterInterceptor()

	query := "palettekit://releases/latest"
	commands := testCommands("editor::Backspace")
	ranked, matches := Rank(context.Background(), testMatcher(), query, commands, NewHitCounts())

	require.NotEmpty(t, matches)
	assert.Equal(t, query, matches[0].Text)
	got := ranked[matches[0].CandidateID].Action
	require.Equal(t, action.KindOpenURL, got.Kind())
	assert.Equal(t, query, got.(*action.OpenURL).URL)
}

func TestRankLinkIgnoredOutsideDevChannel(t *testing.T) {
	release.Set("stable")
	defer release.Set("dev")

	commands := testCommands("editor::Backspace")
	ranked, matches := Rank(context.Background(), testMatcher(), "palettekit://releases", commands, NewHitCounts())
	for _, m := range matches {
		assert.NotEqual(t, action.KindOpenURL, ranked[m.CandidateID].Action.Kind())
	}
}

func TestRankDeniedNamespaceNeverMatches(t *testing.T) {
	release.Set("stable")
	defer release.Set("dev")

	reg := action.NewRegistry()
	require.NoError(t, reg.RegisterAll([]action.Action{
		action.NewFunc("editor::Backspace", nil),
		action.NewFunc("workspace::Save", nil),
	}))
	filter := action.NewFilter()
	filter.HideNamespace("editor")
	commands := BuildCommands(reg, filter)

	for _, query := range []string{"", "backspace", "editor"} {
		ranked, matches := Rank(context.Background(), testMatcher(), query, commands, NewHitCounts())
		for _, m := range matches {
			assert.NotContains(t, ranked[m.CandidateID].Name, "editor", "query %q", query)
		}
	}
}
