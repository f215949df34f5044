package collide2d

import "math"

// Manifold builders for pairs involving a circle. Each routine writes the
// manifold with N pointing from the first shape toward the second; the
// reversed-order entry points delegate and flip the normal.

// CollideCircles builds the contact manifold for two circles.
func CollideCircles(manifold *Manifold, a Circle, xfA *Transform, b Circle, xfB *Transform) {
	manifold.Count = 0

	pA := TransformVec2Mul(xfOrIdentity(xfA), a.P)
	pB := TransformVec2Mul(xfOrIdentity(xfB), b.P)

	d := Vec2Sub(pB, pA)
	r := a.Radius + b.Radius
	distSqr := d.LengthSquared()
	if distSqr > r*r {
		return
	}

	dist := math.Sqrt(distSqr)
	n := MakeVec2(1.0, 0.0)
	if dist > epsilon {
		n = Vec2MulScalar(1.0/dist, d)
	}

	onA := Vec2Add(pA, Vec2MulScalar(a.Radius, n))
	onB := Vec2Sub(pB, Vec2MulScalar(b.Radius, n))

	manifold.Count = 1
	manifold.N = n
	manifold.Depths[0] = r - dist
	manifold.Points[0] = Vec2MulScalar(0.5, Vec2Add(onA, onB))
}

// CollideCircleAABB builds the contact manifold for a circle against a box.
// The box honors only the translation of xfB; rotated boxes go through the
// polygon routines.
func CollideCircleAABB(manifold *Manifold, a Circle, xfA *Transform, b AABB, xfB *Transform) {
	manifold.Count = 0

	p := TransformVec2Mul(xfOrIdentity(xfA), a.P)
	bb := b.Translated(xfB)

	c := Vec2Clamp(p, bb.Min, bb.Max)
	d := Vec2Sub(c, p)
	distSqr := d.LengthSquared()
	if distSqr > a.Radius*a.Radius {
		return
	}

	if distSqr > epsilon*epsilon {
		// Center outside the box; the clamp point is on the surface.
		dist := math.Sqrt(distSqr)
		n := Vec2MulScalar(1.0/dist, d)

		manifold.Count = 1
		manifold.N = n
		manifold.Depths[0] = a.Radius - dist
		manifold.Points[0] = c
		return
	}

	// Center inside the box; separate along the axis of least penetration.
	mid := bb.Center()
	e := bb.Extents()
	dv := Vec2Sub(p, mid)

	xOverlap := e.X - math.Abs(dv.X)
	yOverlap := e.Y - math.Abs(dv.Y)

	var n Vec2
	var depth float64
	if xOverlap < yOverlap {
		depth = xOverlap + a.Radius
		if dv.X > 0.0 {
			n = MakeVec2(-1.0, 0.0)
		} else {
			n = MakeVec2(1.0, 0.0)
		}
	} else {
		depth = yOverlap + a.Radius
		if dv.Y > 0.0 {
			n = MakeVec2(0.0, -1.0)
		} else {
			n = MakeVec2(0.0, 1.0)
		}
	}

	manifold.Count = 1
	manifold.N = n
	manifold.Depths[0] = depth
	manifold.Points[0] = p
}

// CollideAABBCircle is CollideCircleAABB with the shape order reversed.
func CollideAABBCircle(manifold *Manifold, a AABB, xfA *Transform, b Circle, xfB *Transform) {
	CollideCircleAABB(manifold, b, xfB, a, xfA)
	manifold.N = manifold.N.Neg()
}

// CollideCircleCapsule builds the contact manifold for a circle against a
// capsule.
func CollideCircleCapsule(manifold *Manifold, a Circle, xfA *Transform, b Capsule, xfB *Transform) {
	manifold.Count = 0

	tB := xfOrIdentity(xfB)
	p := TransformVec2Mul(xfOrIdentity(xfA), a.P)
	ca := TransformVec2Mul(tB, b.A)
	cb := TransformVec2Mul(tB, b.B)

	c := closestPointOnSegment(p, ca, cb)
	d := Vec2Sub(c, p)
	r := a.Radius + b.Radius
	distSqr := d.LengthSquared()
	if distSqr > r*r {
		return
	}

	dist := math.Sqrt(distSqr)
	var n Vec2
	if dist > epsilon {
		n = Vec2MulScalar(1.0/dist, d)
	} else {
		// Center on the spine; resolve along the capsule's side normal.
		n = Vec2Norm(Vec2CrossVS(Vec2Sub(cb, ca), 1.0))
		if n.LengthSquared() < epsilon {
			n = MakeVec2(1.0, 0.0)
		}
	}

	onA := Vec2Add(p, Vec2MulScalar(a.Radius, n))
	onB := Vec2Sub(c, Vec2MulScalar(b.Radius, n))

	manifold.Count = 1
	manifold.N = n
	manifold.Depths[0] = r - dist
	manifold.Points[0] = Vec2MulScalar(0.5, Vec2Add(onA, onB))
}

// CollideCapsuleCircle is CollideCircleCapsule with the shape order reversed.
func CollideCapsuleCircle(manifold *Manifold, a Capsule, xfA *Transform, b Circle, xfB *Transform) {
	CollideCircleCapsule(manifold, b, xfB, a, xfA)
	manifold.N = manifold.N.Neg()
}

// CollidePolyCircle builds the contact manifold for a polygon against a
// circle by locating the circle center's Voronoi region on the polygon
// boundary.
func CollidePolyCircle(manifold *Manifold, a *Poly, xfA *Transform, b Circle, xfB *Transform) {
	manifold.Count = 0

	tA := xfOrIdentity(xfA)

	// Circle center in the polygon's frame.
	c := TransformVec2Mul(xfOrIdentity(xfB), b.P)
	cLocal := TransformVec2MulT(tA, c)

	radius := b.Radius

	// Face of maximum separation.
	normalIndex := 0
	separation := -maxFloat
	for i := 0; i < a.Count; i++ {
		s := Vec2Dot(a.Norms[i], Vec2Sub(cLocal, a.Verts[i]))
		if s > radius {
			return
		}
		if s > separation {
			separation = s
			normalIndex = i
		}
	}

	vertIndex1 := normalIndex
	vertIndex2 := 0
	if vertIndex1+1 < a.Count {
		vertIndex2 = vertIndex1 + 1
	}
	v1 := a.Verts[vertIndex1]
	v2 := a.Verts[vertIndex2]

	if separation < epsilon {
		// Center inside the polygon; use the deepest face directly.
		n := RotVec2Mul(tA.Q, a.Norms[normalIndex])
		manifold.Count = 1
		manifold.N = n
		manifold.Depths[0] = radius - separation
		manifold.Points[0] = Vec2Sub(c, Vec2MulScalar(radius, n))
		return
	}

	// Voronoi regions of the deepest face.
	u1 := Vec2Dot(Vec2Sub(cLocal, v1), Vec2Sub(v2, v1))
	u2 := Vec2Dot(Vec2Sub(cLocal, v2), Vec2Sub(v1, v2))

	var nLocal Vec2
	var dist float64
	switch {
	case u1 <= 0.0:
		dist = Vec2Distance(cLocal, v1)
		if dist > radius {
			return
		}
		nLocal = Vec2Norm(Vec2Sub(cLocal, v1))

	case u2 <= 0.0:
		dist = Vec2Distance(cLocal, v2)
		if dist > radius {
			return
		}
		nLocal = Vec2Norm(Vec2Sub(cLocal, v2))

	default:
		// Interior of the face; the earlier scan already bounded separation.
		dist = separation
		nLocal = a.Norms[normalIndex]
	}

	n := RotVec2Mul(tA.Q, nLocal)
	manifold.Count = 1
	manifold.N = n
	manifold.Depths[0] = radius - dist
	manifold.Points[0] = Vec2Sub(c, Vec2MulScalar(radius, n))
}

// CollideCirclePoly is CollidePolyCircle with the shape order reversed.
func CollideCirclePoly(manifold *Manifold, a Circle, xfA *Transform, b *Poly, xfB *Transform) {
	CollidePolyCircle(manifold, b, xfB, a, xfA)
	manifold.N = manifold.N.Neg()
}
