package h5table

import "fmt"

// Dataset keys used by the container conventions.
const (
	// KeyNames holds the 1-D string array of column labels.
	KeyNames = "names"
	// KeyValues holds the 2-D numeric array the labels describe.
	KeyValues = "values"
	// KeyCorrCoef holds the square correlation matrix of a result container.
	KeyCorrCoef = "corrcoef"
)

// File suffixes.
const (
	SuffixCSV  = ".csv"
	SuffixH5   = ".h5"
	SuffixHDF5 = ".hdf5"
)

// Schema lists the datasets a container must hold to be read as a given kind.
type Schema struct {
	Name string
	Keys []string
}

var (
	// TabularSchema describes a container holding one tabular dataset.
	TabularSchema = Schema{Name: "tabular dataset", Keys: []string{KeyNames, KeyValues}}

	// ResultSchema describes a container holding a correlation result.
	ResultSchema = Schema{Name: "correlation result", Keys: []string{KeyCorrCoef}}
)

// Check returns ErrKeyNotFound for the first required key missing from c.
func (s Schema) Check(c *Container) error {
	for _, key := range s.Keys {
		if !c.Has(key) {
			return fmt.Errorf("%s requires %q: %w", s.Name, key, ErrKeyNotFound)
		}
	}
	return nil
}
