package palette

import (
	"strings"
	"unicode"

	"github.com/palettekit/palettekit/internal/action"
)

// Command pairs a humanized display name with the action it invokes.
// Commands are built fresh from the catalog each time the palette activates
// and discarded when it closes.
type Command struct {
	// Name is the humanized display name, e.g. "editor: backspace".
	Name string

	// Action is the invocable behind the command.
	Action action.Action
}

// BuildCommands reads a snapshot of the catalog and pairs each visible
// action with its humanized display name. A nil filter hides nothing.
func BuildCommands(src action.Source, filter *action.Filter) []Command {
	available := src.Available()
	commands := make([]Command, 0, len(available))
	for _, a := range available {
		if filter.Hidden(a) {
			continue
		}
		commands = append(commands, Command{
			Name:   HumanizeActionName(a.Name()),
			Action: a,
		})
	}
	return commands
}

// HumanizeActionName converts a raw namespaced action name into the display
// form shown in the palette: "editor::GoToDefinition" becomes
// "editor: go to definition". Input is expected to be a raw action name;
// re-humanizing an already humanized string is undefined.
func HumanizeActionName(name string) string {
	result := make([]rune, 0, len(name)+strings.Count(name, "::"))
	for _, ch := range name {
		switch {
		case ch == ':':
			if len(result) > 0 && result[len(result)-1] == ':' {
				result = append(result, ' ')
			} else {
				result = append(result, ':')
			}
		case ch == '_':
			result = append(result, ' ')
		case unicode.IsUpper(ch):
			if len(result) == 0 || result[len(result)-1] != ' ' {
				result = append(result, ' ')
			}
			result = append(result, unicode.ToLower(ch))
		default:
			result = append(result, ch)
		}
	}
	return string(result)
}
