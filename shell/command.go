package shell

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var cmdTable = make(map[string]*command)

type command struct {
	executor ExecFunc
}

// ExecFunc is the behavior bound to a command word. argv[0] is the command
// word itself; every executor validates its own argument count.
type ExecFunc func(sh *Shell, argv []string)

// RegisterCommand binds a command word to its executor. Names are folded to
// lower case. The table is filled by init functions at startup and never
// mutated afterwards.
func RegisterCommand(name string, executor ExecFunc) {
	name = strings.ToLower(name)
	cmdTable[name] = &command{
		executor: executor,
	}
}

// lookupCommand is an exact match on the lower-cased command word. No prefix
// or fuzzy matching here; see suggestCommand.
func lookupCommand(name string) (*command, bool) {
	cmd, ok := cmdTable[name]
	return cmd, ok
}

// commandNames returns every registered command word in sorted order.
func commandNames() []string {
	names := maps.Keys(cmdTable)
	slices.Sort(names)
	return names
}

const maxSuggestDistance = 2

// suggestCommand returns the registered command word closest to name, if any
// is within edit distance maxSuggestDistance of it.
func suggestCommand(name string) (string, bool) {
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, candidate := range commandNames() {
		if d := levenshtein.ComputeDistance(name, candidate); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best, bestDist <= maxSuggestDistance
}
