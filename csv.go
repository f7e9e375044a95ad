package h5table

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ReadCSV reads a header row of column names followed by rows of numbers.
// Every cell is coerced to float32; an empty cell reads as NaN.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("missing header row: %w", ErrEmptyTable)
	}
	if err != nil {
		return nil, err
	}
	columns := append([]string(nil), header...)
	if len(columns) > 0 {
		columns[0] = strings.TrimPrefix(columns[0], "\ufeff")
	}

	var data []float64
	rows := 0
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		for j, cell := range record {
			v, err := parseCell(cell)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %q: %q: %w", rows+1, columns[j], cell, ErrTypeConversion)
			}
			data = append(data, v)
		}
		rows++
	}

	return NewTable(columns, rows, len(columns), data, 32)
}

// ReadCSVFile reads a CSV table from path.
func ReadCSVFile(path string) (*Table, error) {
	//nolint:gosec // G304: reading a user-supplied table is the point of the tool
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapError("open", path, err)
	}
	defer func() { _ = f.Close() }()

	t, err := ReadCSV(f)
	if err != nil {
		return nil, wrapError("read csv", path, err)
	}
	return t, nil
}

func parseCell(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(cell, 32)
	if errors.Is(err, strconv.ErrRange) {
		// Values beyond float32 range saturate to ±Inf.
		return v, nil
	}
	if err != nil {
		return 0, err
	}
	return v, nil
}

// WriteCSV writes t as comma-separated text. When t has an Index, the header
// starts with an empty cell and every row starts with its label.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	indexed := t.Index != nil

	record := make([]string, 0, t.Cols()+1)
	if indexed {
		record = append(record, "")
	}
	record = append(record, t.Columns...)
	if err := cw.Write(record); err != nil {
		return err
	}

	for i := 0; i < t.Rows(); i++ {
		record = record[:0]
		if indexed {
			record = append(record, t.Index[i])
		}
		for j := 0; j < t.Cols(); j++ {
			record = append(record, t.Cell(i, j))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes t to path, replacing any existing file.
func WriteCSVFile(path string, t *Table) (err error) {
	//nolint:gosec // G304: output path is derived from the user's input path
	f, err := os.Create(path)
	if err != nil {
		return wrapError("create", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = wrapError("close", path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := WriteCSV(bw, t); err != nil {
		return wrapError("write csv", path, err)
	}
	if err := bw.Flush(); err != nil {
		return wrapError("write csv", path, err)
	}
	return nil
}
