package potential_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/san-kum/potflow/internal/field"
	"github.com/san-kum/potflow/internal/jacobian"
	"github.com/san-kum/potflow/internal/linalg"
	"github.com/san-kum/potflow/internal/potential"
)

func TestEstimate_ZeroDisplacement(t *testing.T) {
	f := func(x field.Vec) field.Vec {
		return field.Vec{-2 * x[0] * x[1], -x[0]*x[0] - 1}
	}
	x0 := field.Vec{1, 2}

	res, err := potential.Estimate(f, x0, x0)
	require.NoError(t, err)
	require.InDelta(t, 0, res.DV, 1e-12)
}

func TestEstimate_Cosine1D(t *testing.T) {
	f := func(x field.Vec) field.Vec { return field.Vec{math.Cos(x[0])} }

	res, err := potential.Estimate(f, field.Vec{1.02}, field.Vec{1})
	require.NoError(t, err)

	// dV = -cos(1)·0.02 - ½·(-sin(1))·0.02²
	want := -math.Cos(1)*0.02 + 0.5*math.Sin(1)*0.02*0.02
	require.InDelta(t, want, res.DV, 1e-8)
	// A 1x1 Jacobian is always symmetric.
	require.InDelta(t, 0, res.Err, 1e-9)
}

func TestEstimate_Symmetric2D(t *testing.T) {
	// f = (-2·x1·x2, -x1² - 1) has the symmetric Jacobian
	// [[-4,-2],[-2,0]] at (1,2), so the skew part vanishes.
	f := func(x field.Vec) field.Vec {
		return field.Vec{-2 * x[0] * x[1], -x[0]*x[0] - 1}
	}
	x0 := field.Vec{1, 2}
	x := field.Vec{0.98, 2.01}

	res, err := potential.Estimate(f, x, x0)
	require.NoError(t, err)

	// Closed form: f(x0) = (-4,-2), d = (-0.02, 0.01),
	// dV = -f·d - ½ dᵗJd = -0.06 + 0.0004
	require.InDelta(t, -0.0596, res.DV, 1e-6)
	require.InDelta(t, 0, res.Err, 1e-7)
}

func TestEstimate_GradientFlow(t *testing.T) {
	// f = -x is the gradient flow of V = ½|x|²; its Jacobian is
	// symmetric everywhere.
	f := func(x field.Vec) field.Vec { return field.Vec{-x[0], -x[1]} }

	for _, kind := range linalg.NormKinds() {
		res, err := potential.Estimate(f, field.Vec{1.1, -0.4}, field.Vec{1, -0.5},
			potential.WithNorm(kind))
		require.NoError(t, err, kind.String())
		require.InDelta(t, 0, res.Err, 1e-9, kind.String())
	}
}

func TestEstimate_RotationalFlow(t *testing.T) {
	// f = (-y, x) has a skew-symmetric Jacobian everywhere: nothing of
	// it is gradient-like.
	f := func(x field.Vec) field.Vec { return field.Vec{-x[1], x[0]} }

	for _, kind := range linalg.NormKinds() {
		res, err := potential.Estimate(f, field.Vec{0.6, 0.3}, field.Vec{0.5, 0.25},
			potential.WithNorm(kind))
		require.NoError(t, err, kind.String())
		require.InDelta(t, 1, res.Err, 1e-9, kind.String())
	}
}

func TestEstimate_ShearFlow(t *testing.T) {
	// f = (y, 0): the symmetric and skew parts have equal Frobenius
	// norm, so the score sits exactly in the middle.
	f := func(x field.Vec) field.Vec { return field.Vec{x[1], 0} }

	res, err := potential.Estimate(f, field.Vec{0.1, 0.2}, field.Vec{0, 0})
	require.NoError(t, err)
	require.InDelta(t, 0.5, res.Err, 1e-9)
}

func TestEstimate_ConstantFlow(t *testing.T) {
	// A constant flow has a zero Jacobian: the 0/0 ratio is defined as 0.
	f := func(x field.Vec) field.Vec { return field.Vec{1, 1} }
	x0 := field.Vec{0, 0}
	x := field.Vec{0.1, -0.2}

	res, err := potential.Estimate(f, x, x0)
	require.NoError(t, err)
	require.Equal(t, 0.0, res.Err)
	// Only the linear term survives: dV = -f0·d.
	require.InDelta(t, -(1*0.1 + 1*-0.2), res.DV, 1e-9)
}

func TestEstimate_NormSelectorDoesNotChangeDV(t *testing.T) {
	f := func(x field.Vec) field.Vec {
		return field.Vec{-x[0] + 0.3*x[1], -0.7*x[0] - x[1]}
	}
	x0 := field.Vec{0.4, -0.1}
	x := field.Vec{0.42, -0.13}

	base, err := potential.Estimate(f, x, x0)
	require.NoError(t, err)

	for _, kind := range linalg.NormKinds() {
		res, err := potential.Estimate(f, x, x0, potential.WithNorm(kind))
		require.NoError(t, err, kind.String())
		require.Equal(t, base.DV, res.DV, kind.String())
		require.GreaterOrEqual(t, res.Err, 0.0, kind.String())
		require.LessOrEqual(t, res.Err, 1.0, kind.String())
	}
}

func TestEstimate_DimensionMismatch(t *testing.T) {
	f := func(x field.Vec) field.Vec { return x }

	_, err := potential.Estimate(f, field.Vec{1, 2}, field.Vec{1})
	require.ErrorIs(t, err, field.ErrDimensionMismatch)

	_, err = potential.Estimate(f, field.Vec{}, field.Vec{})
	require.ErrorIs(t, err, field.ErrDimensionMismatch)
}

func TestEstimate_FlowFailure(t *testing.T) {
	f := func(x field.Vec) field.Vec { return field.Vec{math.NaN()} }
	_, err := potential.Estimate(f, field.Vec{1}, field.Vec{0})
	require.ErrorIs(t, err, field.ErrEvaluation)
}

func TestEstimate_CustomEstimator(t *testing.T) {
	f := func(x field.Vec) field.Vec { return field.Vec{math.Cos(x[0])} }

	res, err := potential.Estimate(f, field.Vec{1.02}, field.Vec{1},
		potential.WithEstimator(jacobian.NewRichardson()))
	require.NoError(t, err)

	want := -math.Cos(1)*0.02 + 0.5*math.Sin(1)*0.02*0.02
	require.InDelta(t, want, res.DV, 1e-10)
}

func TestAnalyze_ReuseAcrossDisplacements(t *testing.T) {
	f := func(x field.Vec) field.Vec { return field.Vec{-x[0], -x[1]} }
	x0 := field.Vec{1, 1}

	local, err := potential.Analyze(f, x0)
	require.NoError(t, err)

	for _, x := range []field.Vec{{1.1, 1}, {1, 0.9}, {0.95, 1.05}} {
		dv, err := local.Diff(x)
		require.NoError(t, err)

		want, err := potential.Estimate(f, x, x0)
		require.NoError(t, err)
		require.InDelta(t, want.DV, dv, 1e-12)
	}

	_, err = local.Diff(field.Vec{1})
	require.ErrorIs(t, err, field.ErrDimensionMismatch)
}

func TestDiff_DimensionMismatch(t *testing.T) {
	sym := linalg.New(2, 2)
	_, err := potential.Diff(field.Vec{1}, sym, field.Vec{1, 2})
	require.ErrorIs(t, err, field.ErrDimensionMismatch)
}

func TestRelativeError_DimensionMismatch(t *testing.T) {
	_, err := potential.RelativeError(linalg.New(2, 2), linalg.New(3, 3), linalg.Frobenius)
	require.ErrorIs(t, err, field.ErrDimensionMismatch)
}
