package linalg

import (
	"errors"
	"fmt"
)

// Matrix errors.
var (
	// ErrNotSquare indicates an operation that requires a square matrix.
	ErrNotSquare = errors.New("linalg: matrix is not square")

	// ErrShapeMismatch indicates incompatible matrix shapes.
	ErrShapeMismatch = errors.New("linalg: matrix shape mismatch")
)

// Matrix is a dense row-major real matrix.
type Matrix struct {
	rows, cols int
	data       []float64
}

// New creates a zero matrix of the given size.
func New(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("linalg: negative dimensions %dx%d", rows, cols))
	}
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// FromRows creates a matrix from row slices. All rows must have equal length.
func FromRows(rows [][]float64) (*Matrix, error) {
	r := len(rows)
	if r == 0 {
		return New(0, 0), nil
	}
	c := len(rows[0])
	m := New(r, c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrShapeMismatch, i, len(row), c)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}
	return m, nil
}

func (m *Matrix) Rows() int { return m.rows }
func (m *Matrix) Cols() int { return m.cols }

func (m *Matrix) IsSquare() bool { return m.rows == m.cols }

// At returns the entry at row r, column c.
func (m *Matrix) At(r, c int) float64 {
	return m.data[r*m.cols+c]
}

// Set writes the entry at row r, column c.
func (m *Matrix) Set(r, c int, v float64) {
	m.data[r*m.cols+c] = v
}

func (m *Matrix) Clone() *Matrix {
	c := New(m.rows, m.cols)
	copy(c.data, m.data)
	return c
}

// Transpose returns a new transposed matrix.
func (m *Matrix) Transpose() *Matrix {
	t := New(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			t.Set(j, i, m.At(i, j))
		}
	}
	return t
}

// Add returns m + other.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, fmt.Errorf("%w: %dx%d + %dx%d", ErrShapeMismatch, m.rows, m.cols, other.rows, other.cols)
	}
	res := New(m.rows, m.cols)
	for i := range m.data {
		res.data[i] = m.data[i] + other.data[i]
	}
	return res, nil
}

// Sub returns m - other.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, fmt.Errorf("%w: %dx%d - %dx%d", ErrShapeMismatch, m.rows, m.cols, other.rows, other.cols)
	}
	res := New(m.rows, m.cols)
	for i := range m.data {
		res.data[i] = m.data[i] - other.data[i]
	}
	return res, nil
}

// Scale returns m scaled by factor.
func (m *Matrix) Scale(factor float64) *Matrix {
	res := New(m.rows, m.cols)
	for i := range m.data {
		res.data[i] = m.data[i] * factor
	}
	return res
}

// MulVec returns the product m * v.
func (m *Matrix) MulVec(v []float64) ([]float64, error) {
	if m.cols != len(v) {
		return nil, fmt.Errorf("%w: %dx%d * vector of length %d", ErrShapeMismatch, m.rows, m.cols, len(v))
	}
	res := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		sum := 0.0
		for j := 0; j < m.cols; j++ {
			sum += m.At(i, j) * v[j]
		}
		res[i] = sum
	}
	return res, nil
}
