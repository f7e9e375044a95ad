package h5table

import (
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/scigolib/hdf5"
)

// Element classes of a container array.
const (
	ClassFloat   = "float"
	ClassInteger = "integer"
	ClassString  = "string"

	// classVLen is how Dataset.Info reports variable-length data, such as
	// the strings h5py writes with string_dtype().
	classVLen = "class_9"
)

// Array is one top-level dataset of a container, fully loaded.
// Numeric arrays fill Numbers, string arrays fill Strings; both are row-major.
type Array struct {
	Name    string
	Class   string
	Dims    []uint64
	BitSize int
	Numbers []float64
	Strings []string
}

// NumericArray returns a float array of the given shape.
func NumericArray(name string, dims []uint64, values []float64, bitSize int) *Array {
	return &Array{Name: name, Class: ClassFloat, Dims: dims, BitSize: bitSize, Numbers: values}
}

// StringArray returns a 1-D string array.
func StringArray(name string, values []string) *Array {
	return &Array{Name: name, Class: ClassString, Dims: []uint64{uint64(len(values))}, Strings: values}
}

// Len returns the number of elements.
func (a *Array) Len() int {
	if a.Class == ClassString {
		return len(a.Strings)
	}
	return len(a.Numbers)
}

// Shape returns the array as rows x cols: one column per element of the
// innermost dimension. Scalars and 1-D arrays form a single column and
// leading dimensions of higher-rank arrays are folded into rows.
func (a *Array) Shape() (rows, cols int) {
	n := a.Len()
	if len(a.Dims) < 2 {
		return n, 1
	}
	cols = int(a.Dims[len(a.Dims)-1])
	if cols == 0 {
		return 0, 0
	}
	return n / cols, cols
}

// Table lays the array out as a table with columns labelled 0..cols-1.
func (a *Array) Table() (*Table, error) {
	rows, cols := a.Shape()
	if a.Class != ClassString {
		return NewTable(nil, rows, cols, a.Numbers, a.BitSize)
	}

	t := &Table{Columns: ordinalLabels(cols, 0), Text: make([][]string, rows)}
	for i := range t.Text {
		t.Text[i] = a.Strings[i*cols : (i+1)*cols]
	}
	return t, nil
}

// Container is an HDF5 file opened for reading. Only top-level datasets are visible.
type Container struct {
	path     string
	file     *hdf5.File
	keys     []string
	datasets map[string]*hdf5.Dataset
}

// OpenContainer opens the HDF5 file at path.
func OpenContainer(path string) (*Container, error) {
	f, err := hdf5.Open(path)
	if err != nil {
		return nil, wrapError("open container", path, err)
	}

	c := &Container{path: path, file: f, datasets: make(map[string]*hdf5.Dataset)}
	for _, child := range f.Root().Children() {
		ds, ok := child.(*hdf5.Dataset)
		if !ok {
			continue
		}
		key := datasetKey(ds.Name())
		if _, dup := c.datasets[key]; dup {
			continue
		}
		c.keys = append(c.keys, key)
		c.datasets[key] = ds
	}
	return c, nil
}

// Close releases the underlying file. It is safe to call Close multiple times.
func (c *Container) Close() error {
	return c.file.Close()
}

// Path returns the file the container was opened from.
func (c *Container) Path() string {
	return c.path
}

// Keys returns the dataset names in the file's own iteration order.
func (c *Container) Keys() []string {
	return append([]string(nil), c.keys...)
}

// Has reports whether the container holds a dataset named key.
func (c *Container) Has(key string) bool {
	_, ok := c.datasets[key]
	return ok
}

// Array loads the dataset named key.
func (c *Container) Array(key string) (*Array, error) {
	ds, ok := c.datasets[key]
	if !ok {
		return nil, wrapError("read "+strconv.Quote(key), c.path, ErrKeyNotFound)
	}
	a, err := readArray(key, ds)
	if err != nil {
		return nil, wrapError("read "+strconv.Quote(key), c.path, err)
	}
	return a, nil
}

// Each loads every dataset in iteration order and passes it to fn.
// Iteration stops at the first error.
func (c *Container) Each(fn func(key string, a *Array) error) error {
	for _, key := range c.keys {
		a, err := c.Array(key)
		if err != nil {
			return err
		}
		if err := fn(key, a); err != nil {
			return err
		}
	}
	return nil
}

// Strings loads the string dataset named key.
func (c *Container) Strings(key string) ([]string, error) {
	a, err := c.Array(key)
	if err != nil {
		return nil, err
	}
	if a.Class != ClassString {
		return nil, wrapError("read "+strconv.Quote(key), c.path,
			fmt.Errorf("%s dataset where strings are expected: %w", a.Class, ErrUnsupported))
	}
	return a.Strings, nil
}

// Table loads the numeric dataset named key as a table.
func (c *Container) Table(key string) (*Table, error) {
	a, err := c.Array(key)
	if err != nil {
		return nil, err
	}
	if a.Class == ClassString {
		return nil, wrapError("read "+strconv.Quote(key), c.path,
			fmt.Errorf("string dataset where numbers are expected: %w", ErrUnsupported))
	}
	return a.Table()
}

func datasetKey(name string) string {
	return path.Base("/" + strings.TrimPrefix(name, "/"))
}

// datasetMeta is the shape and type summary reported by Dataset.Info, e.g.
// "Dataset: float (size=4 bytes), 2D array [2 x 3], contiguous (...)".
type datasetMeta struct {
	class    string
	elemSize int
	dims     []uint64
}

var (
	infoTypeRe  = regexp.MustCompile(`^Dataset: (\w+) \(size=(\d+) bytes\)`)
	infoShapeRe = regexp.MustCompile(`(\d+)D array \[([0-9x ]*)\]`)
	digitsRe    = regexp.MustCompile(`\d+`)
)

func parseDatasetInfo(info string) (*datasetMeta, error) {
	m := infoTypeRe.FindStringSubmatch(info)
	if m == nil {
		return nil, fmt.Errorf("unrecognized dataset info %q: %w", info, ErrUnsupported)
	}
	size, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, fmt.Errorf("element size in %q: %w", info, err)
	}
	meta := &datasetMeta{class: m[1], elemSize: size}

	s := infoShapeRe.FindStringSubmatch(info)
	if s == nil {
		// Scalar datasets hold a single element.
		meta.dims = []uint64{1}
		return meta, nil
	}
	for _, d := range digitsRe.FindAllString(s[2], -1) {
		n, err := strconv.ParseUint(d, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("dimension in %q: %w", info, err)
		}
		meta.dims = append(meta.dims, n)
	}
	if rank, _ := strconv.Atoi(s[1]); rank != len(meta.dims) {
		return nil, fmt.Errorf("rank %d with dims %v in %q: %w", rank, meta.dims, info, ErrUnsupported)
	}
	return meta, nil
}

func readArray(key string, ds *hdf5.Dataset) (*Array, error) {
	info, err := ds.Info()
	if err != nil {
		return nil, err
	}
	meta, err := parseDatasetInfo(info)
	if err != nil {
		return nil, err
	}

	a := &Array{Name: key, Class: meta.class, Dims: meta.dims, BitSize: 64}
	switch meta.class {
	case ClassString:
		values, err := ds.ReadStrings()
		if err != nil {
			return nil, err
		}
		for i, v := range values {
			if !utf8.ValidString(v) {
				return nil, fmt.Errorf("element %d: %w", i, ErrDecode)
			}
		}
		a.Strings = values
	case classVLen:
		raw, err := ds.ReadVLenBytes()
		if err != nil {
			return nil, err
		}
		values := make([]string, len(raw))
		for i, b := range raw {
			if !utf8.Valid(b) {
				return nil, fmt.Errorf("element %d: %w", i, ErrDecode)
			}
			values[i] = string(b)
		}
		a.Class = ClassString
		a.Strings = values
	case ClassFloat, ClassInteger:
		values, err := ds.Read()
		if err != nil {
			return nil, err
		}
		if meta.class == ClassFloat && meta.elemSize == 4 {
			a.BitSize = 32
		}
		a.Numbers = values
	default:
		return nil, fmt.Errorf("%s elements: %w", meta.class, ErrUnsupported)
	}
	return a, nil
}
