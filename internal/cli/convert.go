package cli

import (
	"io"
	"log/slog"

	"github.com/scigolib/h5table"
)

// RunCSV2H5 converts one CSV table into an HDF5 container next to it.
func RunCSV2H5(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("csv2h5", "<path.csv>", stderr)
	input, code, ok := positional(fs, args)
	if !ok {
		return code
	}

	e, code := startEnv(fs.Name(), stdout, stderr)
	if e == nil {
		return code
	}

	out, err := h5table.ExportCSV(input, h5table.WithSuperblockVersion(e.cfg.Container.SuperblockVersion))
	if err != nil {
		return e.fail(err)
	}
	e.log.Info("wrote container", slog.String("input", input), slog.String("output", out))
	return ExitOK
}

// RunH52CSV writes every top-level dataset of an HDF5 container to its own CSV file.
func RunH52CSV(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("h52csv", "<path.h5>", stderr)
	input, code, ok := positional(fs, args)
	if !ok {
		return code
	}

	e, code := startEnv(fs.Name(), stdout, stderr)
	if e == nil {
		return code
	}

	written, err := h5table.ExportContainer(input)
	for _, out := range written {
		e.log.Info("wrote csv", slog.String("input", input), slog.String("output", out))
	}
	if err != nil {
		return e.fail(err)
	}
	return ExitOK
}
