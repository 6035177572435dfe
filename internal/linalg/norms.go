package linalg

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrUnknownNorm indicates an unrecognized norm selector.
var ErrUnknownNorm = errors.New("linalg: unknown norm kind")

// NormKind selects a matrix norm.
type NormKind int

const (
	// Frobenius is the square root of the sum of squared entries.
	Frobenius NormKind = iota
	// One is the maximum absolute column sum.
	One
	// Infinity is the maximum absolute row sum.
	Infinity
	// Spectral is the largest singular value.
	Spectral
	// Max is the largest absolute entry.
	Max
)

func (k NormKind) String() string {
	switch k {
	case Frobenius:
		return "frobenius"
	case One:
		return "one"
	case Infinity:
		return "infinity"
	case Spectral:
		return "spectral"
	case Max:
		return "max"
	}
	return fmt.Sprintf("NormKind(%d)", int(k))
}

// ParseNorm maps a selector name to a NormKind.
func ParseNorm(name string) (NormKind, error) {
	switch name {
	case "frobenius", "fro", "":
		return Frobenius, nil
	case "one", "1":
		return One, nil
	case "infinity", "inf":
		return Infinity, nil
	case "spectral", "2":
		return Spectral, nil
	case "max":
		return Max, nil
	}
	return Frobenius, fmt.Errorf("%w: %q", ErrUnknownNorm, name)
}

// NormKinds lists all supported norm selectors.
func NormKinds() []NormKind {
	return []NormKind{Frobenius, One, Infinity, Spectral, Max}
}

// Norm computes the selected matrix norm of m.
func Norm(m *Matrix, kind NormKind) (float64, error) {
	switch kind {
	case Frobenius:
		sum := 0.0
		for _, v := range m.data {
			sum += v * v
		}
		return math.Sqrt(sum), nil

	case One:
		best := 0.0
		for j := 0; j < m.cols; j++ {
			sum := 0.0
			for i := 0; i < m.rows; i++ {
				sum += math.Abs(m.At(i, j))
			}
			if sum > best {
				best = sum
			}
		}
		return best, nil

	case Infinity:
		best := 0.0
		for i := 0; i < m.rows; i++ {
			sum := 0.0
			for j := 0; j < m.cols; j++ {
				sum += math.Abs(m.At(i, j))
			}
			if sum > best {
				best = sum
			}
		}
		return best, nil

	case Spectral:
		return spectralNorm(m)

	case Max:
		best := 0.0
		for _, v := range m.data {
			if a := math.Abs(v); a > best {
				best = a
			}
		}
		return best, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownNorm, int(kind))
}

// spectralNorm delegates the singular value decomposition to gonum.
func spectralNorm(m *Matrix) (float64, error) {
	if m.rows == 0 || m.cols == 0 {
		return 0, nil
	}

	data := make([]float64, len(m.data))
	copy(data, m.data)
	dense := mat.NewDense(m.rows, m.cols, data)

	var svd mat.SVD
	if ok := svd.Factorize(dense, mat.SVDNone); !ok {
		return 0, errors.New("linalg: SVD factorization failed")
	}
	values := svd.Values(nil)
	if len(values) == 0 {
		return 0, nil
	}
	return values[0], nil
}
