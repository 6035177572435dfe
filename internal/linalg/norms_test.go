package linalg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/san-kum/potflow/internal/linalg"
)

func TestNorms(t *testing.T) {
	m, err := linalg.FromRows([][]float64{
		{1, -2},
		{-3, 4},
	})
	require.NoError(t, err)

	tests := []struct {
		kind linalg.NormKind
		want float64
	}{
		{linalg.Frobenius, math.Sqrt(1 + 4 + 9 + 16)},
		{linalg.One, 6},      // max column sum: |−2|+|4|
		{linalg.Infinity, 7}, // max row sum: |−3|+|4|
		{linalg.Max, 4},
	}

	for _, tt := range tests {
		got, err := linalg.Norm(m, tt.kind)
		require.NoError(t, err, tt.kind.String())
		require.InDelta(t, tt.want, got, 1e-12, tt.kind.String())
	}
}

func TestSpectralNorm_Rotation(t *testing.T) {
	// Rotation generator has both singular values equal to 1.
	m, _ := linalg.FromRows([][]float64{
		{0, -1},
		{1, 0},
	})
	got, err := linalg.Norm(m, linalg.Spectral)
	require.NoError(t, err)
	require.InDelta(t, 1.0, got, 1e-12)
}

func TestSpectralNorm_Diagonal(t *testing.T) {
	// Diagonal matrix: spectral norm is the largest |entry|.
	m, _ := linalg.FromRows([][]float64{
		{3, 0},
		{0, -5},
	})
	got, err := linalg.Norm(m, linalg.Spectral)
	require.NoError(t, err)
	require.InDelta(t, 5.0, got, 1e-10)
}

func TestNorm_ZeroMatrix(t *testing.T) {
	m := linalg.New(3, 3)
	for _, kind := range linalg.NormKinds() {
		got, err := linalg.Norm(m, kind)
		require.NoError(t, err, kind.String())
		require.Equal(t, 0.0, got, kind.String())
	}
}

func TestParseNorm(t *testing.T) {
	tests := []struct {
		name string
		want linalg.NormKind
	}{
		{"frobenius", linalg.Frobenius},
		{"fro", linalg.Frobenius},
		{"", linalg.Frobenius},
		{"one", linalg.One},
		{"1", linalg.One},
		{"infinity", linalg.Infinity},
		{"inf", linalg.Infinity},
		{"spectral", linalg.Spectral},
		{"2", linalg.Spectral},
		{"max", linalg.Max},
	}
	for _, tt := range tests {
		got, err := linalg.ParseNorm(tt.name)
		require.NoError(t, err, tt.name)
		require.Equal(t, tt.want, got, tt.name)
	}

	_, err := linalg.ParseNorm("nuclear")
	require.ErrorIs(t, err, linalg.ErrUnknownNorm)
}
