package collide2d

import "math"

// Global tuning constants. These are not expected to need adjustment.

// MaxPolyVerts is the maximum number of vertices on a convex polygon.
// The fixed-capacity arrays in Poly, Proxy and the hull builder are sized
// by this value; do not change it.
const MaxPolyVerts = 8

// MaxManifoldPoints is the maximum number of contact points between two
// convex shapes.
const MaxManifoldPoints = 2

const maxFloat = math.MaxFloat64

// Machine epsilon for float64.
const epsilon = 2.220446049250313e-16

// A small length used as a collision tolerance. Chosen to be numerically
// significant but visually insignificant.
const linearSlop = 0.005

// Default iteration caps. These bound per-call work; the solvers return the
// best result found when the cap is exhausted.
const (
	gjkMaxIterations = 20
	toiMaxIterations = 20
)

// Separation below which the time-of-impact solver reports touching.
const toiTolerance = 1e-6

func assert(a bool) {
	if !a {
		panic("collide2d: assertion failed")
	}
}
