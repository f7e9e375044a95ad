package cli

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scigolib/h5table"
)

func run(fn func([]string, *bytes.Buffer, *bytes.Buffer) int, args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := fn(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func csv2h5(args []string, stdout, stderr *bytes.Buffer) int  { return RunCSV2H5(args, stdout, stderr) }
func h52csv(args []string, stdout, stderr *bytes.Buffer) int  { return RunH52CSV(args, stdout, stderr) }
func relabel(args []string, stdout, stderr *bytes.Buffer) int { return RunRelabel(args, stdout, stderr) }
func inspect(args []string, stdout, stderr *bytes.Buffer) int { return RunInspect(args, stdout, stderr) }

func TestCSV2H5_H52CSV(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "foo.csv")
	require.NoError(t, os.WriteFile(input, []byte("a,b\n1,2\n3,4\n"), 0o600))

	code, stdout, stderr := run(csv2h5, input)
	require.Equal(t, ExitOK, code, stderr)
	assert.Empty(t, stdout)
	assert.FileExists(t, filepath.Join(dir, "foo.h5"))

	code, _, stderr = run(h52csv, filepath.Join(dir, "foo.h5"))
	require.Equal(t, ExitOK, code, stderr)

	values, err := os.ReadFile(filepath.Join(dir, "foo.values.csv"))
	require.NoError(t, err)
	assert.Equal(t, "0,1\n1,2\n3,4\n", string(values))
}

func TestCSV2H5_Failures(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("a\nabc\n"), 0o600))

	code, _, stderr := run(csv2h5, bad)
	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, "csv2h5:")
	assert.NoFileExists(t, filepath.Join(dir, "bad.h5"))

	code, _, _ = run(csv2h5)
	assert.Equal(t, ExitUsage, code)

	code, _, _ = run(csv2h5, "-nope", bad)
	assert.Equal(t, ExitUsage, code)

	code, _, _ = run(csv2h5, "-h")
	assert.Equal(t, ExitOK, code)
}

func TestCSV2H5_InvalidConfig(t *testing.T) {
	t.Setenv("H5TABLE_LOG_FORMAT", "xml")
	dir := t.TempDir()
	input := filepath.Join(dir, "foo.csv")
	require.NoError(t, os.WriteFile(input, []byte("a\n1\n"), 0o600))

	code, _, stderr := run(csv2h5, input)
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "config validation failed")
}

func TestH52CSV_MissingFile(t *testing.T) {
	code, _, stderr := run(h52csv, filepath.Join(t.TempDir(), "missing.h5"))
	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, "h52csv:")
	assert.Equal(t, 1, strings.Count(stderr, "\n"), "failure reported once: %q", stderr)
}

func TestNewEnv_InstallsDefaultLogger(t *testing.T) {
	t.Setenv("H5TABLE_LOG_LEVEL", "info")
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var stderr bytes.Buffer
	e, err := newEnv("h52csv", io.Discard, &stderr)
	require.NoError(t, err)
	assert.Same(t, e.log, slog.Default())

	slog.Info("wrote csv")
	assert.Contains(t, stderr.String(), "tool=h52csv")
}

func writeRelabelInputs(t *testing.T, dir string) (result, dataset string) {
	t.Helper()
	result = filepath.Join(dir, "result.h5")
	dataset = filepath.Join(dir, "dataset.h5")
	require.NoError(t, h5table.WriteContainer(dataset, []*h5table.Array{
		h5table.StringArray(h5table.KeyNames, []string{"x", "y"}),
		h5table.NumericArray(h5table.KeyValues, []uint64{2, 2}, []float64{1, 2, 3, 4}, 32),
	}))
	require.NoError(t, h5table.WriteContainer(result, []*h5table.Array{
		h5table.NumericArray(h5table.KeyCorrCoef, []uint64{2, 2}, []float64{1, 0.5, 0.5, 1}, 64),
	}))
	return result, dataset
}

func TestRelabel(t *testing.T) {
	dir := t.TempDir()
	result, dataset := writeRelabelInputs(t, dir)

	code, stdout, stderr := run(relabel, "-i", result, "-d", dataset)
	require.Equal(t, ExitOK, code, stderr)
	assert.Empty(t, stdout)

	corr, err := os.ReadFile(filepath.Join(dir, "result.csv"))
	require.NoError(t, err)
	assert.Equal(t, ",x,y\nx,1,0.5\ny,0.5,1\n", string(corr))
}

func TestRelabel_LongFlags(t *testing.T) {
	dir := t.TempDir()
	result, dataset := writeRelabelInputs(t, dir)

	code, _, stderr := run(relabel, "--inputFile", result, "--dataset="+dataset)
	require.Equal(t, ExitOK, code, stderr)
	assert.FileExists(t, filepath.Join(dir, "dataset.csv"))
}

func TestRelabel_NotContainer(t *testing.T) {
	dir := t.TempDir()
	code, stdout, _ := run(relabel, "-i", filepath.Join(dir, "result.h5"), "-d", filepath.Join(dir, "foo.csv"))
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "The dataset is not in the HDF5(.h5) format.\n", stdout)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRelabel_Usage(t *testing.T) {
	code, _, stderr := run(relabel, "-i", "result.h5")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "Usage: h5relabel")
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	_, dataset := writeRelabelInputs(t, dir)

	code, stdout, stderr := run(inspect, dataset)
	require.Equal(t, ExitOK, code, stderr)
	assert.Equal(t, "rows: 2\ncolumns: 2\nlabels: x, y\n", stdout)

	code, stdout, stderr = run(inspect, "-keys", dataset)
	require.Equal(t, ExitOK, code, stderr)
	assert.Contains(t, stdout, "names\tstring\t[2]\n")
	assert.Contains(t, stdout, "values\tfloat\t[2 2]\n")

	code, _, _ = run(inspect, filepath.Join(dir, "notes.txt"))
	assert.Equal(t, ExitError, code)
}
