package collide2d

import "math"

// IsValidFloat reports whether x is neither NaN nor infinite.
func IsValidFloat(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// A 2D column vector.
type Vec2 struct {
	X, Y float64
}

func MakeVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

var vec2Zero = Vec2{}

func (v *Vec2) Set(x, y float64) {
	v.X = x
	v.Y = y
}

func (v *Vec2) SetZero() {
	v.X = 0.0
	v.Y = 0.0
}

func (v Vec2) Neg() Vec2 {
	return MakeVec2(-v.X, -v.Y)
}

func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared avoids the square root of Length where only comparisons
// are needed.
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize converts this vector into a unit vector and returns the original
// length. Vectors shorter than epsilon are left untouched and report 0.
func (v *Vec2) Normalize() float64 {
	length := v.Length()
	if length < epsilon {
		return 0.0
	}

	invLength := 1.0 / length
	v.X *= invLength
	v.Y *= invLength

	return length
}

// Does this vector contain finite coordinates?
func (v Vec2) IsValid() bool {
	return IsValidFloat(v.X) && IsValidFloat(v.Y)
}

// Skew returns the vector rotated 90 degrees counter-clockwise, such that
// dot(skew, other) == cross(v, other).
func (v Vec2) Skew() Vec2 {
	return MakeVec2(-v.Y, v.X)
}

// Perform the dot product on two vectors.
func Vec2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Perform the cross product on two vectors. In 2D this produces a scalar.
func Vec2Cross(a, b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Perform the cross product on a vector and a scalar. In 2D this produces
// a vector.
func Vec2CrossVS(a Vec2, s float64) Vec2 {
	return MakeVec2(s*a.Y, -s*a.X)
}

// Perform the cross product on a scalar and a vector. In 2D this produces
// a vector.
func Vec2CrossSV(s float64, a Vec2) Vec2 {
	return MakeVec2(-s*a.Y, s*a.X)
}

func Vec2Add(a, b Vec2) Vec2 {
	return MakeVec2(a.X+b.X, a.Y+b.Y)
}

func Vec2Sub(a, b Vec2) Vec2 {
	return MakeVec2(a.X-b.X, a.Y-b.Y)
}

func Vec2MulScalar(s float64, a Vec2) Vec2 {
	return MakeVec2(s*a.X, s*a.Y)
}

// Vec2Norm returns a normalized copy of a, or the zero vector when a is too
// short to normalize safely.
func Vec2Norm(a Vec2) Vec2 {
	a.Normalize()
	return a
}

func Vec2Distance(a, b Vec2) float64 {
	return Vec2Sub(a, b).Length()
}

func Vec2DistanceSquared(a, b Vec2) float64 {
	c := Vec2Sub(a, b)
	return Vec2Dot(c, c)
}

func Vec2Abs(a Vec2) Vec2 {
	return MakeVec2(math.Abs(a.X), math.Abs(a.Y))
}

func Vec2Min(a, b Vec2) Vec2 {
	return MakeVec2(math.Min(a.X, b.X), math.Min(a.Y, b.Y))
}

func Vec2Max(a, b Vec2) Vec2 {
	return MakeVec2(math.Max(a.X, b.X), math.Max(a.Y, b.Y))
}

func Vec2Clamp(a, low, high Vec2) Vec2 {
	return Vec2Max(low, Vec2Min(a, high))
}

func FloatClamp(a, low, high float64) float64 {
	return math.Max(low, math.Min(a, high))
}

// Rot represents an orientation as a sine/cosine pair, avoiding repeated
// trigonometric evaluation. Invariant: s*s + c*c == 1 up to rounding.
type Rot struct {
	S, C float64
}

// Initialize from an angle in radians.
func MakeRot(angle float64) Rot {
	return Rot{
		S: math.Sin(angle),
		C: math.Cos(angle),
	}
}

func MakeRotIdentity() Rot {
	return Rot{S: 0.0, C: 1.0}
}

func (r *Rot) Set(angle float64) {
	r.S = math.Sin(angle)
	r.C = math.Cos(angle)
}

func (r *Rot) SetIdentity() {
	r.S = 0.0
	r.C = 1.0
}

// Get the angle in radians.
func (r Rot) Angle() float64 {
	return math.Atan2(r.S, r.C)
}

// Get the x-axis of the rotated frame.
func (r Rot) XAxis() Vec2 {
	return MakeVec2(r.C, r.S)
}

// Get the y-axis of the rotated frame.
func (r Rot) YAxis() Vec2 {
	return MakeVec2(-r.S, r.C)
}

// Multiply two rotations: q * r
func RotMul(q, r Rot) Rot {
	return Rot{
		S: q.S*r.C + q.C*r.S,
		C: q.C*r.C - q.S*r.S,
	}
}

// Transpose multiply two rotations: qT * r
func RotMulT(q, r Rot) Rot {
	return Rot{
		S: q.C*r.S - q.S*r.C,
		C: q.C*r.C + q.S*r.S,
	}
}

// Rotate a vector.
func RotVec2Mul(q Rot, v Vec2) Vec2 {
	return MakeVec2(
		q.C*v.X-q.S*v.Y,
		q.S*v.X+q.C*v.Y,
	)
}

// Inverse rotate a vector.
func RotVec2MulT(q Rot, v Vec2) Vec2 {
	return MakeVec2(
		q.C*v.X+q.S*v.Y,
		-q.S*v.X+q.C*v.Y,
	)
}

// A Transform contains translation and rotation. It is used to represent the
// pose of a rigid frame.
type Transform struct {
	P Vec2
	Q Rot
}

// Initialize from a position and an angle in radians.
func MakeTransform(position Vec2, angle float64) Transform {
	return Transform{
		P: position,
		Q: MakeRot(angle),
	}
}

func MakeTransformIdentity() Transform {
	return Transform{
		P: MakeVec2(0, 0),
		Q: MakeRotIdentity(),
	}
}

func (t *Transform) SetIdentity() {
	t.P.SetZero()
	t.Q.SetIdentity()
}

func (t *Transform) Set(position Vec2, angle float64) {
	t.P = position
	t.Q.Set(angle)
}

// Apply the transform to a point.
func TransformVec2Mul(t Transform, v Vec2) Vec2 {
	return MakeVec2(
		(t.Q.C*v.X-t.Q.S*v.Y)+t.P.X,
		(t.Q.S*v.X+t.Q.C*v.Y)+t.P.Y,
	)
}

// Apply the inverse transform to a point, expressing it in t's local frame.
func TransformVec2MulT(t Transform, v Vec2) Vec2 {
	px := v.X - t.P.X
	py := v.Y - t.P.Y
	return MakeVec2(
		t.Q.C*px+t.Q.S*py,
		-t.Q.S*px+t.Q.C*py,
	)
}

// TransformMul composes two transforms: the result applies b in a's frame.
func TransformMul(a, b Transform) Transform {
	return Transform{
		P: Vec2Add(RotVec2Mul(a.Q, b.P), a.P),
		Q: RotMul(a.Q, b.Q),
	}
}

// TransformMulT expresses b in a's local frame without materializing a full
// inverse.
func TransformMulT(a, b Transform) Transform {
	return Transform{
		P: RotVec2MulT(a.Q, Vec2Sub(b.P, a.P)),
		Q: RotMulT(a.Q, b.Q),
	}
}

// Halfspace is the region {p : dot(N, p) <= D}, bounded by the line
// dot(N, p) == D. N is a unit vector.
type Halfspace struct {
	N Vec2
	D float64
}

func MakeHalfspace(normal Vec2, offset float64) Halfspace {
	return Halfspace{N: normal, D: offset}
}

// Distance returns the signed distance from p to the boundary. Negative
// values are inside the halfspace.
func (h Halfspace) Distance(p Vec2) float64 {
	return Vec2Dot(h.N, p) - h.D
}

// Project returns the closest point to p on the boundary.
func (h Halfspace) Project(p Vec2) Vec2 {
	return Vec2Sub(p, Vec2MulScalar(h.Distance(p), h.N))
}

// HalfspaceMul transforms a halfspace by a rigid transform. The normal is
// rotated and the offset is recomputed from a transformed boundary point so
// the halfspace stays consistent under rigid motion.
func HalfspaceMul(t Transform, h Halfspace) Halfspace {
	n := RotVec2Mul(t.Q, h.N)
	p := TransformVec2Mul(t, Vec2MulScalar(h.D, h.N))
	return Halfspace{N: n, D: Vec2Dot(n, p)}
}

// xfOrIdentity resolves the optional-transform convention used throughout the
// public surface: nil means identity.
func xfOrIdentity(xf *Transform) Transform {
	if xf == nil {
		return MakeTransformIdentity()
	}
	return *xf
}
