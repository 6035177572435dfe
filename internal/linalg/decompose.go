package linalg

import "fmt"

// SplitSymmetric decomposes a square matrix into its symmetric and
// skew-symmetric parts:
//
//	sym  = (M + Mᵗ) / 2
//	skew = (M - Mᵗ) / 2
//
// The decomposition is lossless: sym + skew == M up to rounding, sym is
// symmetric and skew is skew-symmetric by construction.
func SplitSymmetric(m *Matrix) (sym, skew *Matrix, err error) {
	if !m.IsSquare() {
		return nil, nil, fmt.Errorf("%w: got %dx%d", ErrNotSquare, m.rows, m.cols)
	}

	n := m.rows
	sym = New(n, n)
	skew = New(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a, b := m.At(i, j), m.At(j, i)
			sym.Set(i, j, (a+b)/2)
			skew.Set(i, j, (a-b)/2)
		}
	}
	return sym, skew, nil
}
