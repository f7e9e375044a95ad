package h5table

// ExportCSV converts the CSV table at csvPath into a container holding
// "names" and "values", written next to it with the .h5 suffix.
// It returns the container path. Nothing is written if any cell fails to
// convert.
func ExportCSV(csvPath string, opts ...WriteOption) (string, error) {
	t, err := ReadCSVFile(csvPath)
	if err != nil {
		return "", err
	}
	out := ContainerPath(csvPath)
	if t.Rows() == 0 || t.Cols() == 0 {
		return "", wrapError("export", csvPath, ErrEmptyTable)
	}

	values := make([]float64, 0, t.Rows()*t.Cols())
	for i := 0; i < t.Rows(); i++ {
		values = append(values, t.Row(i)...)
	}
	arrays := []*Array{
		StringArray(KeyNames, t.Columns),
		NumericArray(KeyValues, []uint64{uint64(t.Rows()), uint64(t.Cols())}, values, 32),
	}
	if err := WriteContainer(out, arrays, opts...); err != nil {
		return "", err
	}
	return out, nil
}

// ExportContainer writes every top-level dataset of the container at path
// to its own CSV file, named <stem>.<dataset>.csv, without an index column.
// It returns the written paths in the container's iteration order.
func ExportContainer(path string) ([]string, error) {
	c, err := OpenContainer(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = c.Close() }()

	var written []string
	err = c.Each(func(key string, a *Array) error {
		t, err := a.Table()
		if err != nil {
			return wrapError("export "+key, path, err)
		}
		out := ArrayCSVPath(path, key)
		if err := WriteCSVFile(out, t); err != nil {
			return err
		}
		written = append(written, out)
		return nil
	})
	return written, err
}
