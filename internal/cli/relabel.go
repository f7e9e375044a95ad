package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/scigolib/h5table"
)

// RunRelabel labels a correlation result with the column names of its dataset.
func RunRelabel(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("h5relabel", "-i <result.h5> -d <dataset.h5>", stderr)
	var inputFile, dataset string
	fs.StringVar(&inputFile, "i", "", "input file of the correlation result (shorthand)")
	fs.StringVar(&inputFile, "inputFile", "", "input file of the correlation result")
	fs.StringVar(&dataset, "d", "", "input file of the original dataset (shorthand)")
	fs.StringVar(&dataset, "dataset", "", "input file of the original dataset")
	if code, ok := parse(fs, args); !ok {
		return code
	}
	if inputFile == "" || dataset == "" || fs.NArg() != 0 {
		fs.Usage()
		return ExitUsage
	}

	e, code := startEnv(fs.Name(), stdout, stderr)
	if e == nil {
		return code
	}

	res, err := h5table.Relabel(inputFile, dataset)
	if errors.Is(err, h5table.ErrNotContainer) {
		_, _ = fmt.Fprintln(stdout, h5table.NotContainerMessage)
		return ExitOK
	}
	if err != nil {
		return e.fail(err)
	}
	e.log.Info("wrote relabeled tables",
		slog.String("dataset_csv", res.DatasetCSV),
		slog.String("corrcoef_csv", res.CorrCSV),
		slog.Int("labels", len(res.Labels)))
	return ExitOK
}
