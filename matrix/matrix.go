// Package matrix provides a fixed size two dimensional grid that can be
// shuffled in place.
package matrix

import (
	"errors"

	"lukechampine.com/frand"
)

var ErrInvalidDimensions = errors.New("the number of rows and columns must be greater than zero")

// Randomizer picks the swap targets for a shuffle. Between returns a value
// in [min, max).
type Randomizer interface {
	Between(min, max int) int
}

type frandRandomizer struct{}

func (frandRandomizer) Between(min, max int) int {
	return min + frand.Intn(max-min)
}

// DefaultRandomizer is the process-wide source used when a shuffle is not
// given one.
var DefaultRandomizer Randomizer = frandRandomizer{}

// Matrix is a rows x columns grid stored row-major.
type Matrix[T any] struct {
	rows    int
	columns int
	cells   []T
}

func New[T any](rows, columns int) (*Matrix[T], error) {
	if rows <= 0 || columns <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Matrix[T]{
		rows:    rows,
		columns: columns,
		cells:   make([]T, rows*columns),
	}, nil
}

func (m *Matrix[T]) Rows() int    { return m.rows }
func (m *Matrix[T]) Columns() int { return m.columns }

func (m *Matrix[T]) At(row, column int) T {
	return m.cells[m.index(row, column)]
}

func (m *Matrix[T]) Set(row, column int, v T) {
	m.cells[m.index(row, column)] = v
}

// Row returns a copy of the given row.
func (m *Matrix[T]) Row(row int) []T {
	out := make([]T, m.columns)
	copy(out, m.cells[m.index(row, 0):m.index(row, 0)+m.columns])
	return out
}

func (m *Matrix[T]) index(row, column int) int {
	if row < 0 || row >= m.rows || column < 0 || column >= m.columns {
		panic("matrix index out of range")
	}
	return row*m.columns + column
}

// Shuffle permutes every cell of the matrix in place, treating it as a flat
// sequence (Fisher-Yates). A nil randomizer uses DefaultRandomizer.
func (m *Matrix[T]) Shuffle(r Randomizer) {
	if r == nil {
		r = DefaultRandomizer
	}
	n := len(m.cells)
	for i := 0; i < n-1; i++ {
		j := r.Between(i, n)
		m.cells[i], m.cells[j] = m.cells[j], m.cells[i]
	}
}
