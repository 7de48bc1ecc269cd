package shell

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

// execRun spawns the given file as a child process and blocks until it
// exits. A spawn failure is reported and the shell carries on.
func execRun(sh *Shell, argv []string) {
	if len(argv) != 2 {
		sh.invalidArgs("run <executable-file>")
		return
	}
	path := argv[1]

	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(sh.out, "Unable to find executable file %q.\n", path)
		return
	}

	if err := runAndWait(sh, path); err != nil {
		fmt.Fprintf(sh.out, "Unable to run %q: %v.\n", path, err)
	}
}

// runAndWait starts path with no arguments and an empty program name in
// argv[0], then waits for it. The child's exit status is not inspected.
func runAndWait(sh *Shell, path string) error {
	cmd := &exec.Cmd{
		Path:   path,
		Args:   []string{""},
		Stdin:  os.Stdin,
		Stdout: sh.out,
		Stderr: sh.out,
	}
	if err := cmd.Start(); err != nil {
		return errors.Wrap(err, "start child")
	}
	_ = cmd.Wait()
	return nil
}

func init() {
	RegisterCommand("run", execRun)
}
