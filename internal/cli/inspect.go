package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/scigolib/h5table"
)

// RunInspect prints the shape and labels of a table, or with -keys the
// datasets of a container.
func RunInspect(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("h5inspect", "[flags] <path.csv|path.h5>", stderr)
	keys := fs.Bool("keys", false, "list the container's datasets instead of loading a table")
	input, code, ok := positional(fs, args)
	if !ok {
		return code
	}

	e, code := startEnv(fs.Name(), stdout, stderr)
	if e == nil {
		return code
	}

	if *keys {
		if err := listArrays(stdout, input); err != nil {
			return e.fail(err)
		}
		return ExitOK
	}

	t, err := h5table.LoadTable(input)
	if err != nil {
		return e.fail(err)
	}
	_, _ = fmt.Fprintf(stdout, "rows: %d\ncolumns: %d\nlabels: %s\n",
		t.Rows(), t.Cols(), strings.Join(t.Columns, ", "))
	return ExitOK
}

func listArrays(w io.Writer, path string) error {
	c, err := h5table.OpenContainer(path)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	return c.Each(func(key string, a *h5table.Array) error {
		_, err := fmt.Fprintf(w, "%s\t%s\t%v\n", key, a.Class, a.Dims)
		return err
	})
}
