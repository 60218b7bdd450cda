// Package vector_test contains unit tests for the sparse vector entity:
// mutation semantics under the storage policies, revision accounting,
// readonly enforcement, and the merge-join based operations.
package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jomazi/libtvg/sparse"
	"github.com/jomazi/libtvg/vector"
)

// ------------------------------------------------------------------------
// 1. Basic mutation semantics.
// ------------------------------------------------------------------------

func TestVector_SetGetDel(t *testing.T) {
	v := vector.New()
	defer v.Release()

	require.True(t, v.Empty())
	assert.Equal(t, float32(0), v.Get(7), "absent entries read as zero")
	assert.False(t, v.Has(7))

	require.NoError(t, v.Set(7, 1.5))
	assert.True(t, v.Has(7))
	assert.Equal(t, float32(1.5), v.Get(7))
	assert.Equal(t, uint64(1), v.NumEntries())

	require.NoError(t, v.Del(7))
	assert.False(t, v.Has(7))
	assert.True(t, v.Empty())
}

func TestVector_AddAccumulates(t *testing.T) {
	v := vector.New()
	defer v.Release()

	require.NoError(t, v.Add(1, 2))
	require.NoError(t, v.Add(1, 3))
	assert.Equal(t, float32(5), v.Get(1))

	require.NoError(t, v.Sub(1, 1))
	assert.Equal(t, float32(4), v.Get(1))
}

func TestVector_DefaultPolicyKeepsZero(t *testing.T) {
	v := vector.New()
	defer v.Release()

	require.NoError(t, v.Set(1, 0))
	assert.True(t, v.Has(1), "default policy stores explicit zeroes")
}

func TestVector_NonzeroPolicyDropsZero(t *testing.T) {
	v := vector.New(vector.WithNonzero())
	defer v.Release()

	require.NoError(t, v.Set(1, 2))
	require.NoError(t, v.Set(1, 0))
	assert.False(t, v.Has(1), "writing zero acts as delete under nonzero")

	// Accumulating to an exact zero also removes the entry.
	require.NoError(t, v.Add(2, 1))
	require.NoError(t, v.Add(2, -1))
	assert.False(t, v.Has(2))
}

func TestVector_PositivePolicyStoresNegative(t *testing.T) {
	// The positive flag is a caller-level declaration, not a write filter;
	// only DelSmall changes its pruning rule under it.
	v := vector.New(vector.WithPositive())
	defer v.Release()

	require.NoError(t, v.Set(1, 1))
	require.NoError(t, v.Sub(1, 2))
	assert.Equal(t, float32(-1), v.Get(1))

	require.NoError(t, v.DelSmall(0))
	assert.False(t, v.Has(1), "DelSmall drops non-positive weights")
}

func TestVector_NonzeroMulConstDropsZeroed(t *testing.T) {
	v := vector.New(vector.WithNonzero())
	defer v.Release()

	require.NoError(t, v.Set(1, 2))
	require.NoError(t, v.MulConst(0))
	assert.False(t, v.Has(1), "entries scaled to zero vanish under nonzero")

	// Without the nonzero flag the zeroed entry stays.
	w := vector.New()
	defer w.Release()
	require.NoError(t, w.Set(1, 2))
	require.NoError(t, w.MulConst(0))
	assert.True(t, w.Has(1))
	assert.Equal(t, float32(0), w.Get(1))
}

// ------------------------------------------------------------------------
// 2. Revision accounting and readonly enforcement.
// ------------------------------------------------------------------------

func TestVector_RevisionBumpRules(t *testing.T) {
	v := vector.New()
	defer v.Release()

	rev := v.Revision()
	require.NoError(t, v.Set(1, 1))
	require.Greater(t, v.Revision(), rev, "set bumps the revision")

	// Deleting an absent entry succeeds but must not bump the revision.
	rev = v.Revision()
	require.NoError(t, v.Del(42))
	assert.Equal(t, rev, v.Revision())

	require.NoError(t, v.Del(1))
	assert.Greater(t, v.Revision(), rev)
}

func TestVector_MulConstFastPath(t *testing.T) {
	v := vector.New()
	defer v.Release()

	require.NoError(t, v.Set(1, 3))
	rev := v.Revision()

	// Scaling by exactly 1 is a no-op, without even a revision bump.
	require.NoError(t, v.MulConst(1))
	assert.Equal(t, rev, v.Revision())

	require.NoError(t, v.MulConst(-2))
	assert.Equal(t, float32(-6), v.Get(1))
	assert.Greater(t, v.Revision(), rev)
}

func TestVector_ReadonlyRejectsMutators(t *testing.T) {
	v := vector.New()
	defer v.Release()
	require.NoError(t, v.Set(1, 1))

	v.SetReadonly()
	assert.ErrorIs(t, v.Set(2, 1), vector.ErrReadonly)
	assert.ErrorIs(t, v.Add(1, 1), vector.ErrReadonly)
	assert.ErrorIs(t, v.Del(1), vector.ErrReadonly)
	assert.ErrorIs(t, v.Clear(), vector.ErrReadonly)
	assert.ErrorIs(t, v.MulConst(2), vector.ErrReadonly)

	// A vector can also be born frozen.
	frozen := vector.New(vector.WithReadonly())
	defer frozen.Release()
	assert.ErrorIs(t, frozen.Set(1, 1), vector.ErrReadonly)
	assert.ErrorIs(t, v.DelSmall(0.1), vector.ErrReadonly)

	// Reads keep working.
	assert.Equal(t, float32(1), v.Get(1))
}

func TestVector_GrabRelease(t *testing.T) {
	v := vector.New()
	v.Grab()
	v.Release()
	v.Release()

	assert.Panics(t, func() { v.Release() }, "over-release must panic")
}

// ------------------------------------------------------------------------
// 3. Resize transparency: contents survive growth through the thresholds.
// ------------------------------------------------------------------------

func TestVector_ResizeTransparency(t *testing.T) {
	v := vector.New()
	defer v.Release()

	const n = 5000
	for i := uint64(0); i < n; i++ {
		require.NoError(t, v.Set(i, float32(i)))
	}

	require.Greater(t, v.Bits(), uint32(0), "growth must have happened")
	require.Equal(t, uint64(n), v.NumEntries())
	for i := uint64(0); i < n; i += 37 {
		assert.Equal(t, float32(i), v.Get(i))
	}
}

// ------------------------------------------------------------------------
// 4. DelSmall, Norm, dot products and elementwise combination.
// ------------------------------------------------------------------------

func TestVector_DelSmall(t *testing.T) {
	v := vector.New()
	defer v.Release()

	require.NoError(t, v.Set(1, 0.05))
	require.NoError(t, v.Set(2, -0.05))
	require.NoError(t, v.Set(3, 1))

	require.NoError(t, v.DelSmall(0.1))
	assert.False(t, v.Has(1))
	assert.False(t, v.Has(2), "pruning compares absolute values")
	assert.True(t, v.Has(3))
}

func TestVector_DelSmallPositive(t *testing.T) {
	v := vector.New(vector.WithPositive())
	defer v.Release()

	require.NoError(t, v.Set(1, 0.05))
	require.NoError(t, v.Set(2, 1))

	require.NoError(t, v.DelSmall(0.1))
	assert.False(t, v.Has(1))
	assert.True(t, v.Has(2))
}

func TestVector_NormAndDot(t *testing.T) {
	v := vector.New()
	defer v.Release()
	w := vector.New()
	defer w.Release()

	require.NoError(t, v.Set(1, 3))
	require.NoError(t, v.Set(2, 4))
	assert.InDelta(t, 5.0, v.Norm(), 1e-9)

	require.NoError(t, w.Set(2, 2))
	require.NoError(t, w.Set(3, 7))
	assert.InDelta(t, 8.0, v.MulVector(w), 1e-9, "only shared keys contribute")
	assert.InDelta(t, 0.0, v.MulVector(nil), 1e-9)
}

func TestVector_DotAcrossUnequalWidths(t *testing.T) {
	big := vector.New()
	defer big.Release()
	small := vector.New()
	defer small.Release()

	var want float64
	for i := uint64(0); i < 2000; i++ {
		require.NoError(t, big.Set(i, 1))
	}
	for i := uint64(0); i < 2000; i += 100 {
		require.NoError(t, small.Set(i, 2))
		want += 2
	}
	require.Greater(t, big.Bits(), small.Bits())

	assert.InDelta(t, want, big.MulVector(small), 1e-9)
	assert.InDelta(t, want, small.MulVector(big), 1e-9)
}

func TestVector_SubVectorNorm(t *testing.T) {
	v := vector.New()
	defer v.Release()
	w := vector.New()
	defer w.Release()

	require.NoError(t, v.Set(1, 1))
	require.NoError(t, v.Set(2, 2))
	require.NoError(t, w.Set(2, 2))
	require.NoError(t, w.Set(3, 2))

	// Difference vector is (1, 0, -2).
	assert.InDelta(t, math.Sqrt(5), v.SubVectorNorm(w), 1e-9)
	assert.InDelta(t, v.Norm(), v.SubVectorNorm(nil), 1e-9)
}

func TestVector_AddVector(t *testing.T) {
	v := vector.New()
	defer v.Release()
	w := vector.New()
	defer w.Release()

	require.NoError(t, v.Set(1, 1))
	require.NoError(t, w.Set(1, 2))
	require.NoError(t, w.Set(2, 3))

	require.NoError(t, v.AddVector(w, 2))
	assert.Equal(t, float32(5), v.Get(1))
	assert.Equal(t, float32(6), v.Get(2))

	require.NoError(t, v.SubVector(w, 1))
	assert.Equal(t, float32(3), v.Get(1))
	assert.Equal(t, float32(3), v.Get(2))
}

func TestVector_BulkEntries(t *testing.T) {
	v := vector.New()
	defer v.Release()

	entries := []sparse.Entry{{Index: 1, Weight: 1}, {Index: 2, Weight: 2}}
	require.NoError(t, v.SetEntries(entries))
	assert.Equal(t, uint64(2), v.NumEntries())

	require.NoError(t, v.AddEntries(entries))
	assert.Equal(t, float32(2), v.Get(1))

	require.NoError(t, v.DelEntries([]uint64{1, 2}))
	assert.True(t, v.Empty())
}
