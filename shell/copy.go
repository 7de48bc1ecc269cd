package shell

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// execCopy copies a file byte for byte. It refuses to copy a file onto
// itself, and asks before overwriting an existing destination.
func execCopy(sh *Shell, argv []string) {
	if len(argv) != 3 {
		sh.invalidArgs("copy <old-filename> <new-filename>")
		return
	}
	src, dst := argv[1], argv[2]

	// Copying a file onto itself would clobber it.
	if src == dst {
		fmt.Fprintln(sh.out, "Cannot copy same file!")
		return
	}

	in, err := os.Open(src)
	if err != nil {
		fmt.Fprintf(sh.out, "File %q doesn't exist or has invalid permissions.\n", src)
		fmt.Fprintln(sh.out, "Cannot continue requested operation.")
		return
	}
	defer in.Close()

	if !sh.confirmOverwrite(dst) {
		return
	}

	out, err := os.Create(dst)
	if err != nil {
		fmt.Fprintf(sh.out, "Unknown error creating output file %q.\n", dst)
		fmt.Fprintln(sh.out, "Cannot continue requested operation.")
		return
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		fmt.Fprintf(sh.out, "Copy failed: %v.\n", errors.Wrapf(err, "write %s", dst))
	}
}

// confirmOverwrite returns true when dst may be written. A missing dst always
// may; an existing one only after the user answers y.
func (s *Shell) confirmOverwrite(dst string) bool {
	if _, err := os.Stat(dst); err != nil {
		return true
	}
	fmt.Fprintf(s.out, "File %q already exists.\n", dst)
	fmt.Fprintln(s.out, "If you continue, this file will be overwritten.")
	fmt.Fprint(s.out, "Do you wish to continue (y/n)? ")
	answer, err := s.readToken()
	if err != nil || answer != "y" {
		fmt.Fprintln(s.out, "Operation aborted.")
		return false
	}
	return true
}

func init() {
	RegisterCommand("copy", execCopy)
}
