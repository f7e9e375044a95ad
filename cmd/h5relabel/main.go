// Command h5relabel labels a correlation matrix with the column names of its dataset and writes both as CSV.
package main

import (
	"os"

	"github.com/scigolib/h5table/internal/cli"
)

func main() {
	os.Exit(cli.RunRelabel(os.Args[1:], os.Stdout, os.Stderr))
}
