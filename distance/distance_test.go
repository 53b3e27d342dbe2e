package distance_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/distance"
)

// TestNewFloat_RejectsNaN verifies that NaN never becomes a Float.
func TestNewFloat_RejectsNaN(t *testing.T) {
	_, err := distance.NewFloat(math.NaN())
	require.Error(t, err)
	require.True(t, errors.Is(err, distance.ErrInvalidDistance), "expected ErrInvalidDistance, got %v", err)

	require.Panics(t, func() { distance.MustFloat(math.NaN()) })
}

// TestNewFloat_AcceptsFinite ensures ordinary values and infinities pass.
func TestNewFloat_AcceptsFinite(t *testing.T) {
	for _, v := range []float64{0, 1.25, -3, math.Inf(1)} {
		f, err := distance.NewFloat(v)
		require.NoError(t, err)
		assert.Equal(t, v, f.Float64())
	}
}

// TestZeroIsIdentity checks zero() + x == x for both implementations.
func TestZeroIsIdentity(t *testing.T) {
	x := distance.MustFloat(4.5)
	assert.Equal(t, x, distance.Zero[distance.Float]().Add(x))

	n := distance.Int(7)
	assert.Equal(t, n, distance.Zero[distance.Int]().Add(n))
}

// TestCompareAndHelpers covers Compare, Less, Min and Sum.
func TestCompareAndHelpers(t *testing.T) {
	a, b := distance.MustFloat(1), distance.MustFloat(2)
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(distance.MustFloat(1)))
	assert.True(t, distance.Less(a, b))
	assert.False(t, distance.Less(b, a))
	assert.Equal(t, a, distance.Min(b, a))

	assert.Equal(t, distance.Int(10), distance.Sum[distance.Int](1, 2, 3, 4))
	assert.Equal(t, distance.Int(0), distance.Sum[distance.Int]())
	assert.Equal(t, 3.5, distance.Sum(a, b, distance.MustFloat(0.5)).Float64())
}

// TestAddCommutative is a small property check over a fixed grid.
func TestAddCommutative(t *testing.T) {
	vals := []distance.Int{0, 1, 5, 1 << 40}
	for _, x := range vals {
		for _, y := range vals {
			assert.Equal(t, x.Add(y), y.Add(x))
		}
	}
}
