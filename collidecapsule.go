package collide2d

// Manifold builders for pairs involving a capsule. Shallow contact comes from
// a GJK query on the spines with the radii applied afterward; once the spines
// touch, the deep polygon cases fall back to the radius-aware SAT with the
// capsule modeled as a two-vertex polygon.

// makeCapsulePoly models the capsule as a degenerate two-vertex polygon whose
// faces are the two side planes of the spine. The capsule must not be
// degenerate (A != B).
func makeCapsulePoly(c Capsule) Poly {
	axis := Vec2Sub(c.B, c.A)
	length := axis.Normalize()
	assert(length > epsilon)

	var p Poly
	p.Count = 2
	p.Verts[0] = c.A
	p.Verts[1] = c.B
	p.Norms[0] = Vec2CrossVS(axis, 1.0)
	p.Norms[1] = p.Norms[0].Neg()
	return p
}

// CollideCapsules builds the contact manifold for two capsules.
func CollideCapsules(manifold *Manifold, a Capsule, xfA *Transform, b Capsule, xfB *Transform) {
	manifold.Count = 0

	tA := xfOrIdentity(xfA)
	tB := xfOrIdentity(xfB)

	out := closestOnProxies(a.Proxy(), tA, b.Proxy(), tB)
	r := a.Radius + b.Radius
	if out.Distance > r {
		return
	}

	if out.Distance > epsilon {
		n := Vec2Norm(Vec2Sub(out.PointB, out.PointA))
		onA := Vec2Add(out.PointA, Vec2MulScalar(a.Radius, n))
		onB := Vec2Sub(out.PointB, Vec2MulScalar(b.Radius, n))

		manifold.Count = 1
		manifold.N = n
		manifold.Depths[0] = r - out.Distance
		manifold.Points[0] = Vec2MulScalar(0.5, Vec2Add(onA, onB))
		return
	}

	// The spines cross; resolve along A's side normal, oriented toward B.
	n := Vec2Norm(Vec2CrossVS(RotVec2Mul(tA.Q, Vec2Sub(a.B, a.A)), 1.0))
	if n.LengthSquared() < epsilon {
		n = MakeVec2(1.0, 0.0)
	}
	cA := TransformVec2Mul(tA, Vec2MulScalar(0.5, Vec2Add(a.A, a.B)))
	cB := TransformVec2Mul(tB, Vec2MulScalar(0.5, Vec2Add(b.A, b.B)))
	if Vec2Dot(n, Vec2Sub(cB, cA)) < 0.0 {
		n = n.Neg()
	}

	manifold.Count = 1
	manifold.N = n
	manifold.Depths[0] = r
	manifold.Points[0] = out.PointA
}

// CollideCapsulePoly builds the contact manifold for a capsule against a
// polygon.
func CollideCapsulePoly(manifold *Manifold, a Capsule, xfA *Transform, b *Poly, xfB *Transform) {
	manifold.Count = 0

	tA := xfOrIdentity(xfA)
	tB := xfOrIdentity(xfB)

	// A degenerate spine collapses the capsule to a circle.
	if Vec2DistanceSquared(a.A, a.B) < epsilon*epsilon {
		CollidePolyCircle(manifold, b, xfB, MakeCircle(a.A, a.Radius), xfA)
		manifold.N = manifold.N.Neg()
		return
	}

	out := closestOnProxies(a.Proxy(), tA, b.Proxy(), tB)
	if out.Distance > a.Radius {
		return
	}

	if out.Distance > epsilon {
		n := Vec2Norm(Vec2Sub(out.PointB, out.PointA))
		manifold.Count = 1
		manifold.N = n
		manifold.Depths[0] = a.Radius - out.Distance
		manifold.Points[0] = Vec2Add(out.PointA, Vec2MulScalar(a.Radius, n))
		return
	}

	// The spine reaches into the polygon; run the radius-aware SAT.
	cp := makeCapsulePoly(a)
	collidePolyPoly(manifold, &cp, a.Radius, tA, b, 0.0, tB)
}

// CollidePolyCapsule is CollideCapsulePoly with the shape order reversed.
func CollidePolyCapsule(manifold *Manifold, a *Poly, xfA *Transform, b Capsule, xfB *Transform) {
	CollideCapsulePoly(manifold, b, xfB, a, xfA)
	manifold.N = manifold.N.Neg()
}

// CollideCapsuleAABB builds the contact manifold for a capsule against a box
// by promoting the box to its polygon form. Unlike the box-only routines, the
// box honors the full transform here, including rotation.
func CollideCapsuleAABB(manifold *Manifold, a Capsule, xfA *Transform, b AABB, xfB *Transform) {
	bp := MakePolyFromAABB(b)
	CollideCapsulePoly(manifold, a, xfA, &bp, xfB)
}

// CollideAABBCapsule is CollideCapsuleAABB with the shape order reversed.
func CollideAABBCapsule(manifold *Manifold, a AABB, xfA *Transform, b Capsule, xfB *Transform) {
	CollideCapsuleAABB(manifold, b, xfB, a, xfA)
	manifold.N = manifold.N.Neg()
}
