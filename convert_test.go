package h5table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestExportCSV_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "foo.csv")
	writeFile(t, input, "a,b,c\n1,2.5,3\n-4,0.125,6\n")

	out, err := ExportCSV(input)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "foo.h5"), out)

	written, err := ExportContainer(out)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "foo.names.csv"),
		filepath.Join(dir, "foo.values.csv"),
	}, written)

	assert.Equal(t, "0\na\nb\nc\n", readFile(t, filepath.Join(dir, "foo.names.csv")))
	assert.Equal(t, "0,1,2\n1,2.5,3\n-4,0.125,6\n", readFile(t, filepath.Join(dir, "foo.values.csv")))
}

func TestExportCSV_LoadsBack(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "data.csv")
	writeFile(t, input, "x,y\n0.1,0.2\n0.3,0.4\n")

	out, err := ExportCSV(input, WithSuperblockVersion(SuperblockV2))
	require.NoError(t, err)

	tbl, err := LoadTable(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, tbl.Columns)
	assert.Equal(t, 2, tbl.Rows())
	assert.Equal(t, "0.3", tbl.Cell(1, 0))
}

func TestExportCSV_Idempotent(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "foo.csv")
	writeFile(t, input, "a,b\n1,2\n3,4\n")

	out, err := ExportCSV(input)
	require.NoError(t, err)
	first := readFile(t, out)

	_, err = ExportCSV(input)
	require.NoError(t, err)
	assert.Equal(t, first, readFile(t, out))

	_, err = ExportContainer(out)
	require.NoError(t, err)
	values := readFile(t, filepath.Join(dir, "foo.values.csv"))

	_, err = ExportContainer(out)
	require.NoError(t, err)
	assert.Equal(t, values, readFile(t, filepath.Join(dir, "foo.values.csv")))
}

func TestExportCSV_TypeErrorWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bad.csv")
	writeFile(t, input, "a,b\n1,abc\n")

	_, err := ExportCSV(input)
	require.ErrorIs(t, err, ErrTypeConversion)

	_, statErr := os.Stat(filepath.Join(dir, "bad.h5"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestExportCSV_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ExportCSV(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	header := filepath.Join(dir, "header.csv")
	writeFile(t, header, "a,b\n")
	_, err = ExportCSV(header)
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func TestExportContainer_MissingFile(t *testing.T) {
	_, err := ExportContainer(filepath.Join(t.TempDir(), "missing.h5"))
	require.Error(t, err)
}

func TestExportContainer_HigherRank(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cube.h5")
	require.NoError(t, WriteContainer(path, []*Array{
		NumericArray("cube", []uint64{2, 1, 2}, []float64{1, 2, 3, 4}, 64),
	}))

	written, err := ExportContainer(path)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "cube.cube.csv")}, written)
	assert.Equal(t, "0,1\n1,2\n3,4\n", readFile(t, written[0]))
}
