// Command h5inspect prints the shape of a tabular dataset or the datasets of a container.
package main

import (
	"os"

	"github.com/scigolib/h5table/internal/cli"
)

func main() {
	os.Exit(cli.RunInspect(os.Args[1:], os.Stdout, os.Stderr))
}
