package shell

import "fmt"

// execQuit prints the farewell and ends the dispatch loop. Arguments are
// ignored and no confirmation is asked; the process exits with status 0.
func execQuit(sh *Shell, argv []string) {
	fmt.Fprintln(sh.out, "Thanks for choosing smash!")
	sh.done = true
}

func init() {
	RegisterCommand("quit", execQuit)
}
