// Package h5table converts tabular scientific data between HDF5 containers
// and comma-separated text.
//
// A tabular dataset is stored in a container as two top-level datasets:
// "names", a 1-D array of UTF-8 column labels, and "values", the 2-D numeric
// array they label. Correlation results carry a square "corrcoef" matrix
// whose row and column order follows the "names" of a companion dataset.
package h5table

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Table is a column-labelled 2-D table.
//
// Numeric cells live in Data. Tables built from string datasets keep their
// cells in Text instead; exactly one of the two is set unless the table is
// empty. Index holds optional row labels written as a leading CSV column.
type Table struct {
	Columns []string
	Index   []string
	Data    *mat.Dense
	Text    [][]string
	// BitSize is the float precision (32 or 64) used when formatting Data.
	BitSize int
}

// NewTable builds a numeric table from row-major data.
// A nil columns slice labels the columns 0..cols-1.
func NewTable(columns []string, rows, cols int, data []float64, bitSize int) (*Table, error) {
	if len(data) != rows*cols {
		return nil, fmt.Errorf("data has %d elements, want %d x %d: %w", len(data), rows, cols, ErrShapeMismatch)
	}
	if columns == nil {
		columns = ordinalLabels(cols, 0)
	}
	if len(columns) != cols {
		return nil, fmt.Errorf("%d column labels for %d columns: %w", len(columns), cols, ErrShapeMismatch)
	}
	t := &Table{Columns: columns, BitSize: bitSize}
	if rows > 0 && cols > 0 {
		t.Data = mat.NewDense(rows, cols, data)
	}
	return t, nil
}

// Rows returns the number of data rows.
func (t *Table) Rows() int {
	if t.Text != nil {
		return len(t.Text)
	}
	if t.Data == nil {
		return 0
	}
	r, _ := t.Data.Dims()
	return r
}

// Cols returns the number of data columns.
func (t *Table) Cols() int {
	return len(t.Columns)
}

// Row returns a copy of row i of a numeric table.
func (t *Table) Row(i int) []float64 {
	if t.Data == nil {
		return nil
	}
	return mat.Row(nil, i, t.Data)
}

// Cell formats the cell at row i, column j.
func (t *Table) Cell(i, j int) string {
	if t.Text != nil {
		return t.Text[i][j]
	}
	return formatFloat(t.Data.At(i, j), t.BitSize)
}

// SetColumns replaces the column labels.
func (t *Table) SetColumns(labels []string) error {
	if len(labels) != t.Cols() {
		return fmt.Errorf("%d labels for %d columns: %w", len(labels), t.Cols(), ErrShapeMismatch)
	}
	t.Columns = append([]string(nil), labels...)
	return nil
}

// SetIndex replaces the row labels.
func (t *Table) SetIndex(labels []string) error {
	if len(labels) != t.Rows() {
		return fmt.Errorf("%d labels for %d rows: %w", len(labels), t.Rows(), ErrShapeMismatch)
	}
	t.Index = append([]string(nil), labels...)
	return nil
}

// ShiftIndex labels the rows with consecutive integers starting at base.
func (t *Table) ShiftIndex(base int) {
	t.Index = ordinalLabels(t.Rows(), base)
}

func ordinalLabels(n, base int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(base + i)
	}
	return labels
}

func formatFloat(v float64, bitSize int) string {
	if bitSize != 32 {
		bitSize = 64
	}
	return strconv.FormatFloat(v, 'f', -1, bitSize)
}
