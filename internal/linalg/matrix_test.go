package linalg_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/san-kum/potflow/internal/linalg"
)

func TestFromRows(t *testing.T) {
	m, err := linalg.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())
	require.Equal(t, 3.0, m.At(1, 0))
}

func TestFromRows_Ragged(t *testing.T) {
	_, err := linalg.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, linalg.ErrShapeMismatch)
}

func TestTranspose(t *testing.T) {
	m, err := linalg.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	tr := m.Transpose()
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	require.Equal(t, 2.0, tr.At(1, 0))
	require.Equal(t, 6.0, tr.At(2, 1))
}

func TestAddSubScale(t *testing.T) {
	a, _ := linalg.FromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := linalg.FromRows([][]float64{{4, 3}, {2, 1}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, 5.0, sum.At(0, 0))
	require.Equal(t, 5.0, sum.At(1, 1))

	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.Equal(t, -3.0, diff.At(0, 0))
	require.Equal(t, 3.0, diff.At(1, 1))

	scaled := a.Scale(0.5)
	require.Equal(t, 0.5, scaled.At(0, 0))
	require.Equal(t, 2.0, scaled.At(1, 1))
}

func TestAdd_ShapeMismatch(t *testing.T) {
	a := linalg.New(2, 2)
	b := linalg.New(2, 3)
	_, err := a.Add(b)
	require.ErrorIs(t, err, linalg.ErrShapeMismatch)
}

func TestMulVec(t *testing.T) {
	m, _ := linalg.FromRows([][]float64{{-4, -2}, {-2, 0}})
	v, err := m.MulVec([]float64{-0.02, 0.01})
	require.NoError(t, err)
	require.InDelta(t, 0.06, v[0], 1e-12)
	require.InDelta(t, 0.04, v[1], 1e-12)

	_, err = m.MulVec([]float64{1})
	require.ErrorIs(t, err, linalg.ErrShapeMismatch)
}

func TestSplitSymmetric(t *testing.T) {
	m, _ := linalg.FromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	sym, skew, err := linalg.SplitSymmetric(m)
	require.NoError(t, err)

	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			// Additive and lossless.
			require.InDelta(t, m.At(i, j), sym.At(i, j)+skew.At(i, j), 1e-15)
			// Symmetric and skew-symmetric by construction.
			require.InDelta(t, sym.At(i, j), sym.At(j, i), 1e-15)
			require.InDelta(t, skew.At(i, j), -skew.At(j, i), 1e-15)
		}
	}
}

func TestSplitSymmetric_NotSquare(t *testing.T) {
	m := linalg.New(2, 3)
	_, _, err := linalg.SplitSymmetric(m)
	require.True(t, errors.Is(err, linalg.ErrNotSquare))
}

func TestSplitSymmetric_AlreadySymmetric(t *testing.T) {
	m, _ := linalg.FromRows([][]float64{{-4, -2}, {-2, 0}})
	sym, skew, err := linalg.SplitSymmetric(m)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			require.InDelta(t, m.At(i, j), sym.At(i, j), 1e-15)
			require.InDelta(t, 0.0, skew.At(i, j), 1e-15)
		}
	}
}
