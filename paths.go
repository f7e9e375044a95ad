package h5table

import (
	"path/filepath"
	"strings"
)

// ContainerPath returns the container file written for a CSV input: foo.csv -> foo.h5.
func ContainerPath(csvPath string) string {
	return withSuffix(csvPath, SuffixH5)
}

// CSVPath returns path with its suffix replaced by .csv.
func CSVPath(path string) string {
	return withSuffix(path, SuffixCSV)
}

// ArrayCSVPath returns the CSV file written for one dataset of a container:
// ("foo.h5", "values") -> foo.values.csv.
func ArrayCSVPath(containerPath, key string) string {
	return withSuffix(containerPath, "."+key+SuffixCSV)
}

// IsContainerPath reports whether path carries the .h5 suffix.
func IsContainerPath(path string) bool {
	return filepath.Ext(path) == SuffixH5
}

func isTableContainerPath(path string) bool {
	ext := filepath.Ext(path)
	return ext == SuffixH5 || ext == SuffixHDF5
}

// withSuffix replaces the last suffix of the final path element.
// A dot-file such as ".h5" has no suffix to replace.
func withSuffix(path, suffix string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base {
		ext = ""
	}
	return strings.TrimSuffix(path, ext) + suffix
}
