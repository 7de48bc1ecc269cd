package shell

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// execList lists the entries of the given directory, or of the current
// directory when called without an argument.
func execList(sh *Shell, argv []string) {
	if len(argv) > 2 {
		fmt.Fprintln(sh.out, "Too many arguments.")
		fmt.Fprintln(sh.out, "Usage: list [<directory>]")
		return
	}
	dir := "./"
	if len(argv) == 2 {
		dir = argv[1]
	}

	names, err := readDirNames(dir)
	if err != nil {
		fmt.Fprintln(sh.out, "Unable to open the directory.")
		return
	}
	for _, name := range names {
		fmt.Fprintln(sh.out, name)
	}
}

// readDirNames returns the entries of dir in directory order, with the "."
// and ".." entries the platform readdir no longer reports put back in front.
func readDirNames(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", dir)
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", dir)
	}
	return append([]string{".", ".."}, names...), nil
}

func init() {
	RegisterCommand("list", execList)
}
