// Package vector types: sentinel errors, construction options, and the
// closed set of storage policies behind the NONZERO/POSITIVE flags.
package vector

import (
	"errors"
	"math"
)

// Sentinel errors for vector operations.
var (
	// ErrReadonly is returned by every mutator of a read-only vector.
	ErrReadonly = errors.New("vector: vector is readonly")
)

// Option configures a Vector before creation.
type Option func(*options)

type options struct {
	nonzero  bool
	positive bool
	readonly bool
}

// WithNonzero drops entries whose weight becomes exactly zero: writing a
// zero is equivalent to deleting the entry.
func WithNonzero() Option {
	return func(o *options) { o.nonzero = true }
}

// WithPositive declares that weights are constrained to be non-negative.
// The constraint itself is a caller-level invariant; the flag changes the
// pruning rule of DelSmall (weight ≤ eps instead of |weight| ≤ eps).
func WithPositive() Option {
	return func(o *options) { o.positive = true }
}

// WithReadonly creates the vector already frozen; every mutator fails
// with ErrReadonly.
func WithReadonly() Option {
	return func(o *options) { o.readonly = true }
}

// storagePolicy is the closed set of flag-dependent behaviors, selected
// once at construction instead of branching on a bitmask in every mutator.
type storagePolicy interface {
	// keep reports whether a freshly computed weight is stored; a false
	// return deletes the entry instead.
	keep(weight float32) bool

	// prunable reports whether DelSmall(eps) drops the weight.
	prunable(weight, eps float32) bool
}

type policyDefault struct{}

func (policyDefault) keep(float32) bool { return true }
func (policyDefault) prunable(w, eps float32) bool {
	return math.Abs(float64(w)) <= float64(eps)
}

type policyNonzero struct{}

func (policyNonzero) keep(w float32) bool { return w != 0 }
func (policyNonzero) prunable(w, eps float32) bool {
	return math.Abs(float64(w)) <= float64(eps)
}

type policyPositive struct{}

func (policyPositive) keep(float32) bool            { return true }
func (policyPositive) prunable(w, eps float32) bool { return w <= eps }

type policyPositiveNonzero struct{}

func (policyPositiveNonzero) keep(w float32) bool          { return w != 0 }
func (policyPositiveNonzero) prunable(w, eps float32) bool { return w <= eps }

// policyFor selects the storage policy for a flag combination.
func policyFor(o options) storagePolicy {
	switch {
	case o.nonzero && o.positive:
		return policyPositiveNonzero{}
	case o.nonzero:
		return policyNonzero{}
	case o.positive:
		return policyPositive{}
	default:
		return policyDefault{}
	}
}
