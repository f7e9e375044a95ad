package h5table

import (
	"fmt"
	"path/filepath"
)

// LoadTable loads a tabular dataset from a .csv file or from the "values"
// dataset of a .h5/.hdf5 container. Container columns take their labels
// from "names" when present and are numbered otherwise.
func LoadTable(path string) (*Table, error) {
	switch {
	case filepath.Ext(path) == SuffixCSV:
		return ReadCSVFile(path)
	case isTableContainerPath(path):
		return loadContainerTable(path)
	default:
		return nil, wrapError("load", path, fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Ext(path)))
	}
}

func loadContainerTable(path string) (*Table, error) {
	c, err := OpenContainer(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = c.Close() }()

	t, err := c.Table(KeyValues)
	if err != nil {
		return nil, err
	}
	if !c.Has(KeyNames) {
		return t, nil
	}
	labels, err := c.Strings(KeyNames)
	if err != nil {
		return nil, err
	}
	if err := t.SetColumns(labels); err != nil {
		return nil, wrapError("load", path, err)
	}
	return t, nil
}
