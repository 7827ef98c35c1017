package vector

import (
	"fmt"
	"math"
)

// The dot/length family is shared across the pack sizes as helpers over a
// component prefix. Every operation takes an effective length k and works
// on components [0,k); the full-length methods pass the pack's own length.

// checkPrefix panics unless k is a valid effective length for a pack of
// length n.
func checkPrefix(k, n int) {
	if k < 0 || k > n {
		panic(fmt.Sprintf("vector: effective length %d exceeds pack length %d", k, n))
	}
}

func sumOfSquares[T Scalar](contents []T, k int) T {
	checkPrefix(k, len(contents))
	var result T
	for i := 0; i < k; i++ {
		result += contents[i] * contents[i]
	}
	return result
}

func dotScalar[T Scalar](contents []T, s T, k int) T {
	checkPrefix(k, len(contents))
	var result T
	for i := 0; i < k; i++ {
		result += contents[i] * s
	}
	return result
}

func dotVector[T Scalar](contents, other []T, k int) T {
	checkPrefix(k, len(contents))
	if len(other) > k {
		panic(fmt.Sprintf("vector: operand length %d exceeds effective length %d", len(other), k))
	}
	var result T
	for i := 0; i < k; i++ {
		result += contents[i] * other[i]
	}
	return result
}

// magnitude promotes through float64 so integral packs get a real root.
func magnitude[T Scalar](contents []T, k int) float64 {
	return math.Sqrt(float64(sumOfSquares(contents, k)))
}

// SumOfSquares returns the sum of the squared components.
func (p Pack2[T]) SumOfSquares() T { return sumOfSquares(p[:], len(p)) }

// SumOfSquaresN is SumOfSquares over the first k components only.
func (p Pack2[T]) SumOfSquaresN(k int) T { return sumOfSquares(p[:], k) }

// Magnitude returns the Euclidean norm.
func (p Pack2[T]) Magnitude() float64 { return magnitude(p[:], len(p)) }

// MagnitudeN is Magnitude over the first k components only.
func (p Pack2[T]) MagnitudeN(k int) float64 { return magnitude(p[:], k) }

// DotScalar returns the sum of each component multiplied by s.
func (p Pack2[T]) DotScalar(s T) T { return dotScalar(p[:], s, len(p)) }

// DotScalarN is DotScalar over the first k components only.
func (p Pack2[T]) DotScalarN(s T, k int) T { return dotScalar(p[:], s, k) }

// Dot returns the dot product with other.
func (p Pack2[T]) Dot(other Pack2[T]) T { return dotVector(p[:], other[:], len(p)) }

// DotN is Dot over the first k components only. It panics if other has
// more than k components.
func (p Pack2[T]) DotN(other Pack2[T], k int) T { return dotVector(p[:], other[:], k) }

// DistanceScalar returns the square root of DotScalar(s). The name is
// historical; this is not a point-to-point distance.
func (p Pack2[T]) DistanceScalar(s T) float64 {
	return math.Sqrt(float64(dotScalar(p[:], s, len(p))))
}

// DistanceScalarN is DistanceScalar over the first k components only.
func (p Pack2[T]) DistanceScalarN(s T, k int) float64 {
	return math.Sqrt(float64(dotScalar(p[:], s, k)))
}

// Distance returns the square root of Dot(other).
func (p Pack2[T]) Distance(other Pack2[T]) float64 {
	return math.Sqrt(float64(dotVector(p[:], other[:], len(p))))
}

// DistanceN is Distance over the first k components only.
func (p Pack2[T]) DistanceN(other Pack2[T], k int) float64 {
	return math.Sqrt(float64(dotVector(p[:], other[:], k)))
}

// SumOfSquares returns the sum of the squared components.
func (p Pack3[T]) SumOfSquares() T { return sumOfSquares(p[:], len(p)) }

// SumOfSquaresN is SumOfSquares over the first k components only.
func (p Pack3[T]) SumOfSquaresN(k int) T { return sumOfSquares(p[:], k) }

// Magnitude returns the Euclidean norm.
func (p Pack3[T]) Magnitude() float64 { return magnitude(p[:], len(p)) }

// MagnitudeN is Magnitude over the first k components only. A horizontal
// length of a 3D vector is MagnitudeN(2).
func (p Pack3[T]) MagnitudeN(k int) float64 { return magnitude(p[:], k) }

// DotScalar returns the sum of each component multiplied by s.
func (p Pack3[T]) DotScalar(s T) T { return dotScalar(p[:], s, len(p)) }

// DotScalarN is DotScalar over the first k components only.
func (p Pack3[T]) DotScalarN(s T, k int) T { return dotScalar(p[:], s, k) }

// Dot returns the dot product with other.
func (p Pack3[T]) Dot(other Pack3[T]) T { return dotVector(p[:], other[:], len(p)) }

// DotN is Dot over the first k components only. It panics if other has
// more than k components.
func (p Pack3[T]) DotN(other Pack3[T], k int) T { return dotVector(p[:], other[:], k) }

// DistanceScalar returns the square root of DotScalar(s). The name is
// historical; this is not a point-to-point distance.
func (p Pack3[T]) DistanceScalar(s T) float64 {
	return math.Sqrt(float64(dotScalar(p[:], s, len(p))))
}

// DistanceScalarN is DistanceScalar over the first k components only.
func (p Pack3[T]) DistanceScalarN(s T, k int) float64 {
	return math.Sqrt(float64(dotScalar(p[:], s, k)))
}

// Distance returns the square root of Dot(other).
func (p Pack3[T]) Distance(other Pack3[T]) float64 {
	return math.Sqrt(float64(dotVector(p[:], other[:], len(p))))
}

// DistanceN is Distance over the first k components only.
func (p Pack3[T]) DistanceN(other Pack3[T], k int) float64 {
	return math.Sqrt(float64(dotVector(p[:], other[:], k)))
}

// SumOfSquares returns the sum of the squared components.
func (p Pack4[T]) SumOfSquares() T { return sumOfSquares(p[:], len(p)) }

// SumOfSquaresN is SumOfSquares over the first k components only.
func (p Pack4[T]) SumOfSquaresN(k int) T { return sumOfSquares(p[:], k) }

// Magnitude returns the Euclidean norm.
func (p Pack4[T]) Magnitude() float64 { return magnitude(p[:], len(p)) }

// MagnitudeN is Magnitude over the first k components only.
func (p Pack4[T]) MagnitudeN(k int) float64 { return magnitude(p[:], k) }

// DotScalar returns the sum of each component multiplied by s.
func (p Pack4[T]) DotScalar(s T) T { return dotScalar(p[:], s, len(p)) }

// DotScalarN is DotScalar over the first k components only.
func (p Pack4[T]) DotScalarN(s T, k int) T { return dotScalar(p[:], s, k) }

// Dot returns the dot product with other.
func (p Pack4[T]) Dot(other Pack4[T]) T { return dotVector(p[:], other[:], len(p)) }

// DotN is Dot over the first k components only. It panics if other has
// more than k components.
func (p Pack4[T]) DotN(other Pack4[T], k int) T { return dotVector(p[:], other[:], k) }

// DistanceScalar returns the square root of DotScalar(s). The name is
// historical; this is not a point-to-point distance.
func (p Pack4[T]) DistanceScalar(s T) float64 {
	return math.Sqrt(float64(dotScalar(p[:], s, len(p))))
}

// DistanceScalarN is DistanceScalar over the first k components only.
func (p Pack4[T]) DistanceScalarN(s T, k int) float64 {
	return math.Sqrt(float64(dotScalar(p[:], s, k)))
}

// Distance returns the square root of Dot(other).
func (p Pack4[T]) Distance(other Pack4[T]) float64 {
	return math.Sqrt(float64(dotVector(p[:], other[:], len(p))))
}

// DistanceN is Distance over the first k components only.
func (p Pack4[T]) DistanceN(other Pack4[T], k int) float64 {
	return math.Sqrt(float64(dotVector(p[:], other[:], k)))
}
