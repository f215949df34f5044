package collide2d

// ShapeType tags the closed set of shape kinds understood by the generic
// dispatch layer.
type ShapeType uint8

const (
	ShapeTypeCircle ShapeType = iota
	ShapeTypeAABB
	ShapeTypeCapsule
	ShapeTypePoly
)

// Shape is the capability interface implemented by every shape kind. It
// exists for the dispatch layer; the per-pair collision routines take the
// concrete types.
type Shape interface {
	Type() ShapeType
	Proxy() Proxy
}

// A circle.
type Circle struct {
	P      Vec2
	Radius float64
}

func MakeCircle(center Vec2, radius float64) Circle {
	return Circle{P: center, Radius: radius}
}

func (c Circle) Type() ShapeType { return ShapeTypeCircle }

func (c Circle) Proxy() Proxy {
	p := Proxy{Count: 1, Radius: c.Radius}
	p.Verts[0] = c.P
	return p
}

// ComputeAABB returns the world-space bounding box of the circle under xf.
func (c Circle) ComputeAABB(xf *Transform) AABB {
	center := TransformVec2Mul(xfOrIdentity(xf), c.P)
	r := MakeVec2(c.Radius, c.Radius)
	return AABB{Min: Vec2Sub(center, r), Max: Vec2Add(center, r)}
}

// TestPoint reports whether p lies inside the circle under xf.
func (c Circle) TestPoint(xf *Transform, p Vec2) bool {
	center := TransformVec2Mul(xfOrIdentity(xf), c.P)
	return Vec2DistanceSquared(center, p) <= c.Radius*c.Radius
}

// An axis-aligned bounding box. Invariant: Min.X <= Max.X, Min.Y <= Max.Y.
type AABB struct {
	Min, Max Vec2
}

func MakeAABB(min, max Vec2) AABB {
	return AABB{Min: min, Max: max}
}

func (bb AABB) Type() ShapeType { return ShapeTypeAABB }

func (bb AABB) Proxy() Proxy {
	p := Proxy{Count: 4}
	p.Verts[0] = bb.Min
	p.Verts[1] = MakeVec2(bb.Max.X, bb.Min.Y)
	p.Verts[2] = bb.Max
	p.Verts[3] = MakeVec2(bb.Min.X, bb.Max.Y)
	return p
}

func (bb AABB) Center() Vec2 {
	return Vec2MulScalar(0.5, Vec2Add(bb.Min, bb.Max))
}

// Extents returns the half-widths of the box.
func (bb AABB) Extents() Vec2 {
	return Vec2MulScalar(0.5, Vec2Sub(bb.Max, bb.Min))
}

func (bb AABB) Perimeter() float64 {
	wx := bb.Max.X - bb.Min.X
	wy := bb.Max.Y - bb.Min.Y
	return 2.0 * (wx + wy)
}

// Combine returns the union of two boxes.
func (bb AABB) Combine(other AABB) AABB {
	return AABB{
		Min: Vec2Min(bb.Min, other.Min),
		Max: Vec2Max(bb.Max, other.Max),
	}
}

// Contains reports whether the box fully contains other.
func (bb AABB) Contains(other AABB) bool {
	return bb.Min.X <= other.Min.X &&
		bb.Min.Y <= other.Min.Y &&
		other.Max.X <= bb.Max.X &&
		other.Max.Y <= bb.Max.Y
}

func (bb AABB) IsValid() bool {
	d := Vec2Sub(bb.Max, bb.Min)
	return d.X >= 0.0 && d.Y >= 0.0 && bb.Min.IsValid() && bb.Max.IsValid()
}

// Translated offsets the box by the position of xf. An AABB is axis-aligned
// by definition, so the rotation of xf is ignored here; callers that need a
// rotated box should build a polygon with MakePolyFromAABB.
func (bb AABB) Translated(xf *Transform) AABB {
	if xf == nil {
		return bb
	}
	return AABB{
		Min: Vec2Add(bb.Min, xf.P),
		Max: Vec2Add(bb.Max, xf.P),
	}
}

// ComputeAABB returns the world-space bounding box under xf. Rotation is
// honored by bounding the four transformed corners.
func (bb AABB) ComputeAABB(xf *Transform) AABB {
	t := xfOrIdentity(xf)
	lower := TransformVec2Mul(t, bb.Min)
	upper := lower
	corners := [3]Vec2{
		MakeVec2(bb.Max.X, bb.Min.Y),
		bb.Max,
		MakeVec2(bb.Min.X, bb.Max.Y),
	}
	for _, c := range corners {
		v := TransformVec2Mul(t, c)
		lower = Vec2Min(lower, v)
		upper = Vec2Max(upper, v)
	}
	return AABB{Min: lower, Max: upper}
}

// TestPoint reports whether p lies inside the translated box.
func (bb AABB) TestPoint(xf *Transform, p Vec2) bool {
	b := bb.Translated(xf)
	return b.Min.X <= p.X && p.X <= b.Max.X && b.Min.Y <= p.Y && p.Y <= b.Max.Y
}

// AABBOverlap reports whether two boxes overlap.
func AABBOverlap(a, b AABB) bool {
	d1 := Vec2Sub(b.Min, a.Max)
	d2 := Vec2Sub(a.Min, b.Max)

	if d1.X > 0.0 || d1.Y > 0.0 {
		return false
	}
	if d2.X > 0.0 || d2.Y > 0.0 {
		return false
	}
	return true
}

// A capsule: a disk of the given radius swept along the segment from A to B.
type Capsule struct {
	A, B   Vec2
	Radius float64
}

func MakeCapsule(a, b Vec2, radius float64) Capsule {
	return Capsule{A: a, B: b, Radius: radius}
}

func (c Capsule) Type() ShapeType { return ShapeTypeCapsule }

func (c Capsule) Proxy() Proxy {
	p := Proxy{Count: 2, Radius: c.Radius}
	p.Verts[0] = c.A
	p.Verts[1] = c.B
	return p
}

// ComputeAABB returns the world-space bounding box of the capsule under xf.
func (c Capsule) ComputeAABB(xf *Transform) AABB {
	t := xfOrIdentity(xf)
	a := TransformVec2Mul(t, c.A)
	b := TransformVec2Mul(t, c.B)
	r := MakeVec2(c.Radius, c.Radius)
	return AABB{
		Min: Vec2Sub(Vec2Min(a, b), r),
		Max: Vec2Add(Vec2Max(a, b), r),
	}
}

// TestPoint reports whether p lies inside the capsule under xf.
func (c Capsule) TestPoint(xf *Transform, p Vec2) bool {
	t := xfOrIdentity(xf)
	a := TransformVec2Mul(t, c.A)
	b := TransformVec2Mul(t, c.B)
	closest := closestPointOnSegment(p, a, b)
	return Vec2DistanceSquared(p, closest) <= c.Radius*c.Radius
}

// closestPointOnSegment projects p onto the segment ab, clamped to the
// endpoints.
func closestPointOnSegment(p, a, b Vec2) Vec2 {
	e := Vec2Sub(b, a)
	t := Vec2Dot(Vec2Sub(p, a), e)
	if t <= 0.0 {
		return a
	}
	d := Vec2Dot(e, e)
	if t >= d {
		return b
	}
	return Vec2Add(a, Vec2MulScalar(t/d, e))
}

// A convex polygon. Invariant: the vertices form a convex counter-clockwise
// loop of at most MaxPolyVerts points, and Norms[i] is the outward unit
// normal of the edge (Verts[i], Verts[(i+1)%Count]).
type Poly struct {
	Count int
	Verts [MaxPolyVerts]Vec2
	Norms [MaxPolyVerts]Vec2
}

func (p *Poly) Type() ShapeType { return ShapeTypePoly }

func (p *Poly) Proxy() Proxy {
	pr := Proxy{Count: p.Count}
	copy(pr.Verts[:], p.Verts[:p.Count])
	return pr
}

// MakeBoxPoly builds a polygon for an axis-aligned box of half-widths hx, hy
// centered on the origin.
func MakeBoxPoly(hx, hy float64) Poly {
	p := Poly{Count: 4}
	p.Verts[0] = MakeVec2(-hx, -hy)
	p.Verts[1] = MakeVec2(hx, -hy)
	p.Verts[2] = MakeVec2(hx, hy)
	p.Verts[3] = MakeVec2(-hx, hy)
	p.Norms[0] = MakeVec2(0.0, -1.0)
	p.Norms[1] = MakeVec2(1.0, 0.0)
	p.Norms[2] = MakeVec2(0.0, 1.0)
	p.Norms[3] = MakeVec2(-1.0, 0.0)
	return p
}

// MakePolyFromAABB converts a box into its 4-gon polygon form, used by the
// manifold routines that reduce AABB pairs to the polygon case.
func MakePolyFromAABB(bb AABB) Poly {
	p := Poly{Count: 4}
	p.Verts[0] = bb.Min
	p.Verts[1] = MakeVec2(bb.Max.X, bb.Min.Y)
	p.Verts[2] = bb.Max
	p.Verts[3] = MakeVec2(bb.Min.X, bb.Max.Y)
	p.Norms[0] = MakeVec2(0.0, -1.0)
	p.Norms[1] = MakeVec2(1.0, 0.0)
	p.Norms[2] = MakeVec2(0.0, 1.0)
	p.Norms[3] = MakeVec2(-1.0, 0.0)
	return p
}

// HalfspaceAt returns the supporting halfspace of face i in the polygon's
// local frame.
func (p *Poly) HalfspaceAt(i int) Halfspace {
	assert(0 <= i && i < p.Count)
	return Halfspace{N: p.Norms[i], D: Vec2Dot(p.Norms[i], p.Verts[i])}
}

// Centroid returns the vertex average. This is the reference point used by
// the inflate/deflate dual transform, not the area centroid.
func (p *Poly) Centroid() Vec2 {
	assert(p.Count > 0)
	c := MakeVec2(0, 0)
	for i := 0; i < p.Count; i++ {
		c = Vec2Add(c, p.Verts[i])
	}
	return Vec2MulScalar(1.0/float64(p.Count), c)
}

// ComputeAABB returns the world-space bounding box of the polygon under xf.
func (p *Poly) ComputeAABB(xf *Transform) AABB {
	assert(p.Count > 0)
	t := xfOrIdentity(xf)
	lower := TransformVec2Mul(t, p.Verts[0])
	upper := lower
	for i := 1; i < p.Count; i++ {
		v := TransformVec2Mul(t, p.Verts[i])
		lower = Vec2Min(lower, v)
		upper = Vec2Max(upper, v)
	}
	return AABB{Min: lower, Max: upper}
}

// TestPoint reports whether p lies inside the polygon under xf.
func (p *Poly) TestPoint(xf *Transform, pt Vec2) bool {
	local := TransformVec2MulT(xfOrIdentity(xf), pt)
	for i := 0; i < p.Count; i++ {
		if Vec2Dot(p.Norms[i], Vec2Sub(local, p.Verts[i])) > 0.0 {
			return false
		}
	}
	return true
}

// Validate reports whether the polygon is convex and counter-clockwise.
func (p *Poly) Validate() bool {
	for i := 0; i < p.Count; i++ {
		i2 := 0
		if i < p.Count-1 {
			i2 = i + 1
		}
		v := p.Verts[i]
		e := Vec2Sub(p.Verts[i2], v)

		for j := 0; j < p.Count; j++ {
			if j == i || j == i2 {
				continue
			}
			if Vec2Cross(e, Vec2Sub(p.Verts[j], v)) < 0.0 {
				return false
			}
		}
	}
	return true
}

// A ray starting at P, pointing along the unit direction D, of length T.
type Ray struct {
	P Vec2
	D Vec2
	T float64
}

// MakeRay builds a ray from an origin, a direction (normalized here) and a
// length.
func MakeRay(origin, direction Vec2, length float64) Ray {
	direction.Normalize()
	return Ray{P: origin, D: direction, T: length}
}

// EndPoint returns the point at parameter t along the ray.
func (r Ray) EndPoint(t float64) Vec2 {
	return Vec2Add(r.P, Vec2MulScalar(t, r.D))
}

// RayHit describes a ray intersection: the parameter along the ray in
// [0, ray.T] and the unit surface normal at the hit point.
type RayHit struct {
	T float64
	N Vec2
}

// Manifold describes how two overlapping shapes touch. N is a unit vector
// pointing from shape A toward shape B; moving B along N by the matching
// depth separates the pair. Count == 0 means no contact was recorded.
type Manifold struct {
	Count  int
	Depths [MaxManifoldPoints]float64
	Points [MaxManifoldPoints]Vec2
	N      Vec2
}

// A Proxy is the uniform view of a shape consumed by the GJK solver: a small
// convex point set plus a radius, modeling the shape as the Minkowski sum of
// the point set and a disk.
type Proxy struct {
	Count  int
	Verts  [MaxPolyVerts]Vec2
	Radius float64
}

func (p *Proxy) Vertex(index int) Vec2 {
	assert(0 <= index && index < p.Count)
	return p.Verts[index]
}

// Support returns the index of the point with the greatest projection along
// d. Linear scan; the point set never exceeds MaxPolyVerts entries.
func (p *Proxy) Support(d Vec2) int {
	bestIndex := 0
	bestValue := Vec2Dot(p.Verts[0], d)
	for i := 1; i < p.Count; i++ {
		value := Vec2Dot(p.Verts[i], d)
		if value > bestValue {
			bestIndex = i
			bestValue = value
		}
	}
	return bestIndex
}
