package shell

import (
	"io"
	"os"
)

const (
	// MaxParams is the most parameters one input line may carry, the command
	// word included. Tokens past the cap are dropped without complaint.
	MaxParams = 4
	// MaxParamLength is the most characters a single parameter may hold.
	MaxParamLength = 100

	// DefaultPrompt is shown before every line of input.
	DefaultPrompt = "user@smash $ "

	// Version is printed by the help command.
	Version = "1.0"
)

type Options struct {
	// Prompt displayed before each line of input.
	Prompt string
	// In is the stream commands are read from.
	In io.Reader
	// Out receives everything the shell prints, errors included.
	Out io.Writer
}

func DefaultOptions() Options {
	return Options{
		Prompt: DefaultPrompt,
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}
