package h5table

import (
	"fmt"

	"github.com/scigolib/hdf5"
)

// Superblock versions accepted by WithSuperblockVersion.
const (
	// SuperblockV0 is readable by HDF5 1.8 tools such as h5dump.
	SuperblockV0 uint8 = 0
	// SuperblockV2 is the default format.
	SuperblockV2 uint8 = 2
)

// WriteConfig holds options for WriteContainer.
type WriteConfig struct {
	SuperblockVersion uint8
}

// WriteOption configures WriteContainer.
type WriteOption func(*WriteConfig)

// WithSuperblockVersion selects the superblock format of the written file.
func WithSuperblockVersion(version uint8) WriteOption {
	return func(cfg *WriteConfig) {
		cfg.SuperblockVersion = version
	}
}

// WriteContainer writes arrays as top-level datasets of a new HDF5 file at
// path, replacing any existing file. Numeric arrays keep their BitSize;
// string arrays become fixed-length strings sized to the longest element.
func WriteContainer(path string, arrays []*Array, opts ...WriteOption) (err error) {
	cfg := &WriteConfig{SuperblockVersion: SuperblockV2}
	for _, opt := range opts {
		opt(cfg)
	}

	for _, a := range arrays {
		if a.Len() == 0 {
			return wrapError("write "+a.Name, path, ErrEmptyTable)
		}
	}

	fw, err := hdf5.CreateForWrite(path, hdf5.CreateTruncate, hdf5.WithSuperblockVersion(cfg.SuperblockVersion))
	if err != nil {
		return wrapError("create container", path, err)
	}
	defer func() {
		if cerr := fw.Close(); cerr != nil && err == nil {
			err = wrapError("close container", path, cerr)
		}
	}()

	for _, a := range arrays {
		if err := writeArray(fw, a); err != nil {
			return wrapError("write "+a.Name, path, err)
		}
	}
	return nil
}

func writeArray(fw *hdf5.FileWriter, a *Array) error {
	name := "/" + a.Name
	dims := a.Dims
	if len(dims) == 0 {
		dims = []uint64{uint64(a.Len())}
	}
	if n := calculateElements(dims); n != uint64(a.Len()) {
		return fmt.Errorf("%d elements for dims %v: %w", a.Len(), dims, ErrShapeMismatch)
	}

	switch a.Class {
	case ClassString:
		ds, err := fw.CreateDataset(name, hdf5.String, dims, hdf5.WithStringSize(stringSize(a.Strings)))
		if err != nil {
			return err
		}
		return ds.Write(a.Strings)
	case ClassFloat, ClassInteger:
		if a.BitSize == 32 {
			ds, err := fw.CreateDataset(name, hdf5.Float32, dims)
			if err != nil {
				return err
			}
			return ds.Write(toFloat32(a.Numbers))
		}
		ds, err := fw.CreateDataset(name, hdf5.Float64, dims)
		if err != nil {
			return err
		}
		return ds.Write(a.Numbers)
	default:
		return fmt.Errorf("%s elements: %w", a.Class, ErrUnsupported)
	}
}

// stringSize is the byte length of the longest string plus its null terminator.
func stringSize(values []string) uint32 {
	size := 0
	for _, v := range values {
		if len(v) > size {
			size = len(v)
		}
	}
	size++
	//nolint:gosec // G115: label lengths are far below 4 GiB
	return uint32(size)
}

func calculateElements(dims []uint64) uint64 {
	n := uint64(1)
	for _, d := range dims {
		n *= d
	}
	return n
}

func toFloat32(values []float64) []float32 {
	out := make([]float32, len(values))
	for i, v := range values {
		out[i] = float32(v)
	}
	return out
}
