package shell

import "fmt"

const helpText = "\tThe following is a list of valid commands:\n" +
	"\n" +
	"\trun <executable-file>\n" +
	"\tlist\n" +
	"\tlist <directory>\n" +
	"\tcopy <old-filename> <new-filename>\n" +
	"\thelp\n" +
	"\tquit\n" +
	"\n" +
	"\tNote: All commands are case insensitive (arguments are not).\n"

// execHelp prints the usage summary. Arguments are ignored.
func execHelp(sh *Shell, argv []string) {
	fmt.Fprintf(sh.out, "\tWelcome to smash v%s!\n\n", Version)
	fmt.Fprint(sh.out, helpText)
}

func init() {
	RegisterCommand("help", execHelp)
}
