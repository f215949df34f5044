package collide2d

// Generic, type-tagged entry points over the concrete per-pair routines. All
// transforms are optional; nil means identity.

// TestOverlap reports whether two shapes overlap, radii included. Shapes are
// queried through their support proxies, so an AABB's corners honor the full
// transform here, rotation included; only the box-only manifold routines are
// translation-only (see AABB.Translated).
func TestOverlap(a Shape, xfA *Transform, b Shape, xfB *Transform) bool {
	input := MakeDistanceInput()
	input.ProxyA = a.Proxy()
	input.ProxyB = b.Proxy()
	input.TransformA = xfOrIdentity(xfA)
	input.TransformB = xfOrIdentity(xfB)
	input.UseRadii = true

	cache := MakeGJKCache()
	var output DistanceOutput
	Distance(&output, &cache, &input)

	return output.Distance < 10.0*epsilon
}

// ClosestPoints computes the closest points between two shapes. When useRadii
// is false the query runs on the bare proxy hulls (the capsule spine, the
// circle center). cache may be nil for a one-shot query, or carried across
// calls on the same pair to warm-start the solver.
func ClosestPoints(a Shape, xfA *Transform, b Shape, xfB *Transform, useRadii bool, cache *GJKCache) DistanceOutput {
	input := MakeDistanceInput()
	input.ProxyA = a.Proxy()
	input.ProxyB = b.Proxy()
	input.TransformA = xfOrIdentity(xfA)
	input.TransformB = xfOrIdentity(xfB)
	input.UseRadii = useRadii

	var local GJKCache
	if cache == nil {
		cache = &local
	}

	var output DistanceOutput
	Distance(&output, cache, &input)
	return output
}

// Collide builds a contact manifold for any ordered shape pair. The manifold
// normal always points from a toward b; disjoint shapes leave Count at 0.
func Collide(manifold *Manifold, a Shape, xfA *Transform, b Shape, xfB *Transform) {
	manifold.Count = 0

	switch sa := a.(type) {
	case Circle:
		switch sb := b.(type) {
		case Circle:
			CollideCircles(manifold, sa, xfA, sb, xfB)
		case AABB:
			CollideCircleAABB(manifold, sa, xfA, sb, xfB)
		case Capsule:
			CollideCircleCapsule(manifold, sa, xfA, sb, xfB)
		case *Poly:
			CollideCirclePoly(manifold, sa, xfA, sb, xfB)
		default:
			assert(false)
		}

	case AABB:
		switch sb := b.(type) {
		case Circle:
			CollideAABBCircle(manifold, sa, xfA, sb, xfB)
		case AABB:
			CollideAABBs(manifold, sa, xfA, sb, xfB)
		case Capsule:
			CollideAABBCapsule(manifold, sa, xfA, sb, xfB)
		case *Poly:
			CollideAABBPoly(manifold, sa, xfA, sb, xfB)
		default:
			assert(false)
		}

	case Capsule:
		switch sb := b.(type) {
		case Circle:
			CollideCapsuleCircle(manifold, sa, xfA, sb, xfB)
		case AABB:
			CollideCapsuleAABB(manifold, sa, xfA, sb, xfB)
		case Capsule:
			CollideCapsules(manifold, sa, xfA, sb, xfB)
		case *Poly:
			CollideCapsulePoly(manifold, sa, xfA, sb, xfB)
		default:
			assert(false)
		}

	case *Poly:
		switch sb := b.(type) {
		case Circle:
			CollidePolyCircle(manifold, sa, xfA, sb, xfB)
		case AABB:
			CollidePolyAABB(manifold, sa, xfA, sb, xfB)
		case Capsule:
			CollidePolyCapsule(manifold, sa, xfA, sb, xfB)
		case *Poly:
			CollidePolys(manifold, sa, xfA, sb, xfB)
		default:
			assert(false)
		}

	default:
		assert(false)
	}
}

// CastRay casts a ray against any shape.
func CastRay(output *RayHit, r Ray, s Shape, xf *Transform) bool {
	switch v := s.(type) {
	case Circle:
		return RayCastCircle(output, r, v, xf)
	case AABB:
		return RayCastAABB(output, r, v, xf)
	case Capsule:
		return RayCastCapsule(output, r, v, xf)
	case *Poly:
		return RayCastPoly(output, r, v, xf)
	default:
		assert(false)
		return false
	}
}

// ContainsPoint reports whether p lies inside the shape under xf.
func ContainsPoint(s Shape, xf *Transform, p Vec2) bool {
	switch v := s.(type) {
	case Circle:
		return v.TestPoint(xf, p)
	case AABB:
		return v.TestPoint(xf, p)
	case Capsule:
		return v.TestPoint(xf, p)
	case *Poly:
		return v.TestPoint(xf, p)
	default:
		assert(false)
		return false
	}
}

// TimeOfImpactShapes computes the normalized time in [0, 1] at which two
// translating shapes first touch. vA and vB are the displacements over the
// interval; 1 means no impact.
func TimeOfImpactShapes(a Shape, xfA *Transform, vA Vec2, b Shape, xfB *Transform, vB Vec2, useRadii bool) float64 {
	input := MakeToiInput()
	input.ProxyA = a.Proxy()
	input.ProxyB = b.Proxy()
	input.TransformA = xfOrIdentity(xfA)
	input.TransformB = xfOrIdentity(xfB)
	input.VelocityA = vA
	input.VelocityB = vB
	input.UseRadii = useRadii

	var output ToiOutput
	TimeOfImpact(&output, &input)
	return output.T
}
