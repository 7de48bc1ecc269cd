package shell

import (
	"bufio"
	"fmt"
	"io"
)

// Shell is the interactive interpreter: one prompt, one line, one dispatch.
// It owns its input reader exclusively; handlers that need extra input (the
// copy overwrite confirmation) read through it, never around it.
type Shell struct {
	in   *bufio.Reader
	out  io.Writer
	opts Options
	done bool
}

func NewShell(opts Options) *Shell {
	def := DefaultOptions()
	if opts.Prompt == "" {
		opts.Prompt = def.Prompt
	}
	if opts.In == nil {
		opts.In = def.In
	}
	if opts.Out == nil {
		opts.Out = def.Out
	}
	return &Shell{
		in:   bufio.NewReader(opts.In),
		out:  opts.Out,
		opts: opts,
	}
}

// Run drives the prompt/parse/dispatch loop. It returns nil when the quit
// command runs or the input stream ends; every failure inside a line is
// reported to the user and the loop continues.
func (s *Shell) Run() error {
	for !s.done {
		fmt.Fprint(s.out, s.opts.Prompt)
		argv, err := s.parse()
		if err != nil {
			if tooLong, ok := err.(*ParamTooLongError); ok {
				fmt.Fprintln(s.out, tooLong.Error())
				continue
			}
			if err == io.EOF {
				fmt.Fprintln(s.out)
				return nil
			}
			return err
		}
		// A blank line is a silent re-prompt.
		if len(argv) == 0 {
			continue
		}
		s.dispatch(argv)
	}
	return nil
}

func (s *Shell) dispatch(argv []string) {
	cmd, ok := lookupCommand(argv[0])
	if !ok {
		fmt.Fprintf(s.out, "Unrecognized command: %q.\n", argv[0])
		if near, ok := suggestCommand(argv[0]); ok {
			fmt.Fprintf(s.out, "Did you mean %q?\n", near)
		}
		fmt.Fprintln(s.out, "Type \"help\" to view a list of valid commands.")
		return
	}
	cmd.executor(s, argv)
}

// invalidArgs reports a handler-specific argument count mismatch.
func (s *Shell) invalidArgs(usage string) {
	fmt.Fprintln(s.out, "Invalid number of arguments.")
	fmt.Fprintln(s.out, "Usage: "+usage)
}
