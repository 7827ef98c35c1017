package vector

import (
	"math"

	"golang.org/x/exp/constraints"
)

// View-angle limits, in degrees.
const (
	pitchLimit = 89
	yawLimit   = 180
)

const degPerRad = 180 / math.Pi

// clamp limits v to [lo, hi].
func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// wrapDegrees folds an angle to within a half turn of zero using the IEEE
// remainder, so remainder(370, 360) = 10. Non-finite angles become zero.
func wrapDegrees[F constraints.Float](v F) F {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return F(math.Remainder(f, 360))
}

// Normalize scales p to unit length in place. The zero vector becomes
// (0, 0, 1) rather than dividing by zero.
func Normalize[F constraints.Float](p *Pack3[F]) {
	l := F(p.Magnitude())
	if l != 0 {
		p[0] /= l
		p[1] /= l
		p[2] /= l
		return
	}
	p[0], p[1] = 0, 0
	p[2] = 1
}

// Normalized returns a unit-length copy of p, leaving p untouched.
func Normalized[F constraints.Float](p Pack3[F]) Pack3[F] {
	Normalize(&p)
	return p
}

// NormalizeAngle wraps pitch and yaw into [-180, 180] in place and forces
// roll to zero. Roll is not a free angle here.
func NormalizeAngle[F constraints.Float](p *Pack3[F]) {
	p[Pitch] = wrapDegrees(p[Pitch])
	p[Yaw] = wrapDegrees(p[Yaw])
	p[Roll] = 0
}

// NormalizedAngle returns a wrapped copy of p, leaving p untouched.
func NormalizedAngle[F constraints.Float](p Pack3[F]) Pack3[F] {
	NormalizeAngle(&p)
	return p
}

// ClampAngle limits pitch to [-89, 89] and yaw to [-180, 180] in place,
// and forces roll to zero.
func ClampAngle[F constraints.Float](p *Pack3[F]) {
	p[Pitch] = clamp(p[Pitch], -pitchLimit, pitchLimit)
	p[Yaw] = clamp(p[Yaw], -yawLimit, yawLimit)
	p[Roll] = 0
}

// DeriveAngle converts a direction vector into view angles. A direction
// with no horizontal component looks straight down (pitch +90) for
// non-positive vertical values and straight up (pitch -90) otherwise,
// with yaw zero. The input is never modified.
func DeriveAngle[F constraints.Float](dir Pack3[F]) Pack3[F] {
	var angles Pack3[F]

	if dir[0] == 0 && dir[1] == 0 {
		if dir[2] <= 0 {
			angles[Pitch] = 90
		} else {
			angles[Pitch] = -90
		}
		angles[Yaw] = 0
		return angles
	}

	x := float64(dir[0])
	y := float64(dir[1])
	z := float64(dir[2])
	angles[Pitch] = F(math.Atan2(-z, math.Hypot(x, y)) * degPerRad)
	angles[Yaw] = F(math.Atan2(y, x) * degPerRad)
	return angles
}
