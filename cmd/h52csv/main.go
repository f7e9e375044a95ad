// Command h52csv writes every top-level dataset of an HDF5 container to its own CSV file.
package main

import (
	"os"

	"github.com/scigolib/h5table/internal/cli"
)

func main() {
	os.Exit(cli.RunH52CSV(os.Args[1:], os.Stdout, os.Stderr))
}
