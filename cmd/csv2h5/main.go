// Command csv2h5 converts a CSV table into an HDF5 container holding "names" and "values".
package main

import (
	"os"

	"github.com/scigolib/h5table/internal/cli"
)

func main() {
	os.Exit(cli.RunCSV2H5(os.Args[1:], os.Stdout, os.Stderr))
}
