package vector

import (
	"math"

	"github.com/jomazi/libtvg/sparse"
)

// MulConst multiplies every weight by constant, with a fast no-op path
// for constant == 1. Scaled weights that fall outside the storage policy
// are dropped: zero under nonzero, anything ≤ 0 under positive. Scaling
// does not tick the rebalance counter.
// Complexity: O(E + B)
func (v *Vector) MulConst(constant float32) error {
	if v.readonly {
		return ErrReadonly
	}
	if constant == 1.0 {
		return nil
	}

	v.index.ForEach(func(e *sparse.Entry) bool {
		e.Weight *= constant

		return true
	})
	v.index.Filter(func(e sparse.Entry) bool {
		return v.policy.keep(e.Weight)
	})
	v.revision++

	return nil
}

// DelSmall removes every entry with |weight| ≤ |eps| (weight ≤ eps under
// the positive policy), compacting buckets in place.
//
// Bulk removal deliberately does not trigger a rebalance check; the next
// regular mutation picks it up.
// Complexity: O(E + B)
func (v *Vector) DelSmall(eps float32) error {
	if v.readonly {
		return ErrReadonly
	}

	eps = float32(math.Abs(float64(eps)))
	v.index.Filter(func(e sparse.Entry) bool {
		return !v.policy.prunable(e.Weight, eps)
	})
	v.revision++

	return nil
}

// Norm returns the L2 norm of the vector.
// Complexity: O(E + B)
func (v *Vector) Norm() float64 {
	var sum float64
	v.index.ForEach(func(e *sparse.Entry) bool {
		sum += float64(e.Weight) * float64(e.Weight)

		return true
	})

	return math.Sqrt(sum)
}

// MulVector returns the inner product ⟨v, other⟩, merge-joining the two
// indexes on the entry key. A nil other is treated as empty.
// Complexity: O(E_v + E_other) for equal partition widths
func (v *Vector) MulVector(other *Vector) float64 {
	if other == nil {
		return 0
	}

	var sum float64
	sparse.ForEachPair(v.index, other.index, func(x, y *sparse.Entry) {
		if x != nil && y != nil {
			sum += float64(x.Weight) * float64(y.Weight)
		}
	})

	return sum
}

// SubVectorNorm returns the L2 norm of (v − other), merge-joining the two
// indexes; keys present on only one side contribute their full weight.
// A nil other yields Norm().
// Complexity: O(E_v + E_other) for equal partition widths
func (v *Vector) SubVectorNorm(other *Vector) float64 {
	if other == nil {
		return v.Norm()
	}

	var sum float64
	sparse.ForEachPair(v.index, other.index, func(x, y *sparse.Entry) {
		var diff float64
		switch {
		case x != nil && y != nil:
			diff = float64(x.Weight) - float64(y.Weight)
		case x != nil:
			diff = float64(x.Weight)
		default:
			diff = -float64(y.Weight)
		}
		sum += diff * diff
	})

	return math.Sqrt(sum)
}

// AddVector accumulates other scaled by weight onto v. The two vectors
// must be distinct: mutating v can rebalance its index mid-iteration.
// Complexity: O(E_other · log(E_v/B_v))
func (v *Vector) AddVector(other *Vector, weight float32) error {
	if v.readonly {
		return ErrReadonly
	}
	if other == nil {
		return nil
	}

	var err error
	other.index.ForEach(func(e *sparse.Entry) bool {
		err = v.Add(e.Index, e.Weight*weight)

		return err == nil
	})

	return err
}

// SubVector subtracts other scaled by weight from v.
func (v *Vector) SubVector(other *Vector, weight float32) error {
	return v.AddVector(other, -weight)
}
