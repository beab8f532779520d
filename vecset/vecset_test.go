// Package vecset_test: unit tests for set construction, rank queries,
// basis extraction and Gram-Schmidt.
package vecset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/vecset"
	"github.com/katalvlaran/lvlinalg/vector"
)

const eps = 1e-9

type vec = vector.Vector[float64]

// mustSet builds a column-oriented set or fails the test.
func mustSet(t *testing.T, vs ...vec) *vecset.Set[float64] {
	t.Helper()
	s, err := vecset.New(vecset.Columns, vs...)
	require.NoError(t, err)
	return s
}

// TestRankAndIndependence covers independent, dependent and spanning sets.
func TestRankAndIndependence(t *testing.T) {
	cases := []struct {
		name  string
		vs    []vec
		rank  int
		indep bool
	}{
		{"standard_basis", []vec{{1, 0}, {0, 1}}, 2, true},
		{"collinear_pair", []vec{{1, 2}, {2, 4}}, 1, false},
		{"three_in_plane", []vec{{1, 0}, {0, 1}, {3, 5}}, 2, false},
		{"single_zero", []vec{{0, 0, 0}}, 0, false},
		{"oblique_full", []vec{{1, 1, 0}, {0, 1, 1}, {1, 0, 1}}, 3, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := mustSet(t, tc.vs...)
			r, err := s.Rank(eps)
			require.NoError(t, err)
			assert.Equal(t, tc.rank, r)

			ind, err := s.Independent(eps)
			require.NoError(t, err)
			assert.Equal(t, tc.indep, ind)
		})
	}
}

// TestRankOrientationInvariant: row rank equals column rank.
func TestRankOrientationInvariant(t *testing.T) {
	vs := []vec{{1, 2, 3}, {2, 4, 6}, {0, 1, 1}}

	byCols, err := vecset.New(vecset.Columns, vs...)
	require.NoError(t, err)
	byRows, err := vecset.New(vecset.Rows, vs...)
	require.NoError(t, err)

	r1, err := byCols.Rank(eps)
	require.NoError(t, err)
	r2, err := byRows.Rank(eps)
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
	assert.Equal(t, 2, r1)
}

// TestBasisSelectsOriginals: the basis is a subset of the input vectors in
// input order, never their reduced images.
func TestBasisSelectsOriginals(t *testing.T) {
	v := vec{1, 2}
	twice := vec{2, 4}
	w := vec{0, 1}
	s := mustSet(t, v, twice, w)

	basis, err := s.Basis(eps)
	require.NoError(t, err)
	require.Len(t, basis, 2)
	assert.Equal(t, v, basis[0])
	assert.Equal(t, w, basis[1])
}

// TestBasisOfZeroSet: nothing spans nothing.
func TestBasisOfZeroSet(t *testing.T) {
	s := mustSet(t, vec{0, 0}, vec{0, 0})
	basis, err := s.Basis(eps)
	require.NoError(t, err)
	assert.Empty(t, basis)
}

// TestMatrixAssembly checks both orientations produce the expected shapes
// and entry layout.
func TestMatrixAssembly(t *testing.T) {
	vs := []vec{{1, 2, 3}, {4, 5, 6}}

	byCols, err := vecset.New(vecset.Columns, vs...)
	require.NoError(t, err)
	mc, err := byCols.Matrix()
	require.NoError(t, err)
	r, c := mc.Shape()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	got, err := mc.At(2, 1) // third entry of second vector
	require.NoError(t, err)
	assert.Equal(t, 6.0, got)

	byRows, err := vecset.New(vecset.Rows, vs...)
	require.NoError(t, err)
	mr, err := byRows.Matrix()
	require.NoError(t, err)
	r, c = mr.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	got, err = mr.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, got)
}

// TestOrthogonalized verifies the classic two-vector Gram-Schmidt by hand:
// (1,1) stays, (1,0) loses its projection and becomes (1/2, -1/2).
func TestOrthogonalized(t *testing.T) {
	s := mustSet(t, vec{1, 1}, vec{1, 0})

	ortho, err := s.Orthogonalized(eps, false)
	require.NoError(t, err)
	require.Len(t, ortho, 2)
	assert.Equal(t, vec{1, 1}, ortho[0])
	assert.Equal(t, vec{0.5, -0.5}, ortho[1])

	dot, err := ortho[0].Dot(ortho[1])
	require.NoError(t, err)
	assert.InDelta(t, 0, dot, 1e-12)
}

// TestOrthonormalized adds unit scaling on top.
func TestOrthonormalized(t *testing.T) {
	s := mustSet(t, vec{1, 1}, vec{1, 0})

	ortho, err := s.Orthogonalized(eps, true)
	require.NoError(t, err)
	require.Len(t, ortho, 2)
	invSqrt2 := 1 / math.Sqrt2
	assert.InDelta(t, invSqrt2, ortho[0][0], 1e-12)
	assert.InDelta(t, invSqrt2, ortho[0][1], 1e-12)
	assert.InDelta(t, invSqrt2, ortho[1][0], 1e-12)
	assert.InDelta(t, -invSqrt2, ortho[1][1], 1e-12)
	for _, u := range ortho {
		assert.InDelta(t, 1, u.Norm(), 1e-12)
	}
}

// TestOrthogonalizedDropsDependent: dependent directions vanish instead of
// surviving as zero vectors.
func TestOrthogonalizedDropsDependent(t *testing.T) {
	v := vec{1, 2, 0}
	s := mustSet(t, v, v.Scale(2), vec{0, 0, 1})

	ortho, err := s.Orthogonalized(eps, false)
	require.NoError(t, err)
	require.Len(t, ortho, 2)
	assert.Equal(t, v, ortho[0])
	assert.Equal(t, vec{0, 0, 1}, ortho[1])
}

// TestValidation covers every construction failure.
func TestValidation(t *testing.T) {
	_, err := vecset.New[float64](vecset.Columns)
	assert.ErrorIs(t, err, vecset.ErrEmptySet)

	_, err = vecset.New(vecset.Orientation(9), vec{1})
	assert.ErrorIs(t, err, vecset.ErrBadOrientation)

	_, err = vecset.New(vecset.Columns, vec{})
	assert.ErrorIs(t, err, vector.ErrBadLength)

	_, err = vecset.New(vecset.Columns, vec{1, 2}, vec{1, 2, 3})
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)

	s := mustSet(t, vec{1, 0})
	_, err = s.Orthogonalized(0, false)
	assert.ErrorIs(t, err, vecset.ErrBadEpsilon)
}

// TestOwnership: the set is isolated from caller mutations in both
// directions.
func TestOwnership(t *testing.T) {
	v := vec{1, 2}
	s := mustSet(t, v)

	v[0] = 99 // mutate the input after construction
	got := s.Vectors()
	assert.Equal(t, vec{1, 2}, got[0])

	got[0][0] = 77 // mutate the output
	assert.Equal(t, vec{1, 2}, s.Vectors()[0])
}

// TestAccessors pins Len, Dim, Orientation and the string forms.
func TestAccessors(t *testing.T) {
	s, err := vecset.New(vecset.Rows, vec{1, 2, 3}, vec{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 3, s.Dim())
	assert.Equal(t, vecset.Rows, s.Orientation())

	assert.Equal(t, "Columns", vecset.Columns.String())
	assert.Equal(t, "Rows", vecset.Rows.String())
}
