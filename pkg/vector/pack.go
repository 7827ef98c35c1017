// Package vector provides fixed-length numeric tuples for positions,
// directions and view angles, with prefix-bounded dot/length operations.
package vector

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Scalar is the element type constraint for packs.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Orientation component indices, in degrees by convention.
const (
	Pitch = 0
	Yaw   = 1
	Roll  = 2
)

// Pack2 is a fixed 2-component tuple.
type Pack2[T Scalar] [2]T

// Pack3 is a fixed 3-component tuple. As an orientation it holds
// pitch/yaw/roll; as a direction or position it holds x/y/z.
type Pack3[T Scalar] [3]T

// Pack4 is a fixed 4-component tuple.
type Pack4[T Scalar] [4]T

// Conventional float specializations.
type (
	Vec2 = Pack2[float32]
	Vec3 = Pack3[float32]
	Vec4 = Pack4[float32]
)

// checkIndex panics unless i is a valid component index for a pack of
// length n.
func checkIndex(i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("vector: index %d out of range [0,%d)", i, n))
	}
}

// Len returns the number of components.
func (p Pack2[T]) Len() int { return len(p) }

// At returns component i. It panics if i is out of range; plain indexing
// is the unchecked form.
func (p Pack2[T]) At(i int) T {
	checkIndex(i, len(p))
	return p[i]
}

// Set stores v into component i. It panics if i is out of range.
func (p *Pack2[T]) Set(i int, v T) {
	checkIndex(i, len(p))
	p[i] = v
}

// Copy returns an independent copy.
func (p Pack2[T]) Copy() Pack2[T] { return p }

// Len returns the number of components.
func (p Pack3[T]) Len() int { return len(p) }

// At returns component i, panicking if i is out of range.
func (p Pack3[T]) At(i int) T {
	checkIndex(i, len(p))
	return p[i]
}

// Set stores v into component i, panicking if i is out of range.
func (p *Pack3[T]) Set(i int, v T) {
	checkIndex(i, len(p))
	p[i] = v
}

// Copy returns an independent copy.
func (p Pack3[T]) Copy() Pack3[T] { return p }

// Len returns the number of components.
func (p Pack4[T]) Len() int { return len(p) }

// At returns component i, panicking if i is out of range.
func (p Pack4[T]) At(i int) T {
	checkIndex(i, len(p))
	return p[i]
}

// Set stores v into component i, panicking if i is out of range.
func (p *Pack4[T]) Set(i int, v T) {
	checkIndex(i, len(p))
	p[i] = v
}

// Copy returns an independent copy.
func (p Pack4[T]) Copy() Pack4[T] { return p }
