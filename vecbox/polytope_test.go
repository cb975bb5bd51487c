package vecbox_test

import (
	"math/rand"
	"testing"

	"github.com/lmarchetti/reachtube/vecbox"
	"github.com/stretchr/testify/require"
)

// unitSquarePolytope returns {x : 0<=x0<=1, 0<=x1<=1} expressed as
// A*x <= B with four axis-aligned rows.
func unitSquarePolytope(t *testing.T) *vecbox.Polytope {
	t.Helper()
	a := matOf(t, 4, 2, []float64{
		1, 0,
		-1, 0,
		0, 1,
		0, -1,
	})
	b := []float64{1, 0, 1, 0}
	p, err := vecbox.NewPolytope(a, b)
	require.NoError(t, err)
	return p
}

func TestPolytopeContains(t *testing.T) {
	p := unitSquarePolytope(t)

	ok, err := p.Contains([]float64{0.5, 0.5})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = p.Contains([]float64{2, 0.5})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPolytopeSampleStaysInside(t *testing.T) {
	p := unitSquarePolytope(t)
	rng := rand.New(rand.NewSource(7))

	pts, err := p.Sample(20, rng)
	require.NoError(t, err)
	require.Len(t, pts, 20)
	for _, pt := range pts {
		ok, err := p.Contains(pt)
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestPolytopeAffineImageIdentityRoundTrip(t *testing.T) {
	p := unitSquarePolytope(t)
	identity := matOf(t, 2, 2, []float64{1, 0, 0, 1})

	img, err := p.AffineImage(identity, []float64{0, 0})
	require.NoError(t, err)

	out, ok := img.(*vecbox.Polytope)
	require.True(t, ok)
	for i := 0; i < 4; i++ {
		require.InDelta(t, p.B[i], out.B[i], 1e-9)
	}
}

func TestPolytopeAffineImageRejectsNonSquare(t *testing.T) {
	p := unitSquarePolytope(t)
	m := matOf(t, 1, 2, []float64{1, 1})

	_, err := p.AffineImage(m, []float64{0})
	require.ErrorIs(t, err, vecbox.ErrDimensionMismatch)
}

func TestPolytopeVolumeApproximatesUnitSquare(t *testing.T) {
	p := unitSquarePolytope(t)

	vol, err := p.Volume()
	require.NoError(t, err)
	require.InDelta(t, 1.0, vol, 0.1)
}
