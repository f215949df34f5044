package collide2d

// GJK closest-point solver using Voronoi regions and barycentric coordinates.

// GJKCache warm-starts Distance between repeated calls on the same ordered
// shape pair with slowly changing poses. Zero value means cold start. A cache
// is mutable scratch state owned by the caller; it must not be shared across
// concurrently executing queries and must be discarded when the pair
// identity changes.
type GJKCache struct {
	Metric float64 // length or area of the cached simplex
	Div    float64 // barycentric divisor of the cached simplex
	Count  int
	IndexA [3]int // vertices on shape A
	IndexB [3]int // vertices on shape B
}

func MakeGJKCache() GJKCache {
	return GJKCache{}
}

// DistanceInput bundles the two proxies and poses for a Distance query.
// MaxIterations of zero selects the default cap.
type DistanceInput struct {
	ProxyA        Proxy
	ProxyB        Proxy
	TransformA    Transform
	TransformB    Transform
	UseRadii      bool
	MaxIterations int
}

func MakeDistanceInput() DistanceInput {
	return DistanceInput{
		TransformA: MakeTransformIdentity(),
		TransformB: MakeTransformIdentity(),
	}
}

// DistanceOutput reports the closest points and their distance. On overlap
// the witness points coincide and Distance is zero.
type DistanceOutput struct {
	PointA     Vec2 // closest point on shape A
	PointB     Vec2 // closest point on shape B
	Distance   float64
	Iterations int // number of GJK iterations used
}

type simplexVertex struct {
	SA     Vec2    // support point on proxy A in world space
	SB     Vec2    // support point on proxy B in world space
	P      Vec2    // SB - SA
	U      float64 // unnormalized barycentric weight
	IndexA int
	IndexB int
}

type simplex struct {
	Verts [3]simplexVertex
	Div   float64 // sum of the weights of the retained vertices
	Count int
}

func (s *simplex) readCache(cache *GJKCache, proxyA *Proxy, xfA Transform, proxyB *Proxy, xfB Transform) {
	assert(cache.Count <= 3)

	s.Count = cache.Count
	for i := 0; i < s.Count; i++ {
		v := &s.Verts[i]
		v.IndexA = cache.IndexA[i]
		v.IndexB = cache.IndexB[i]
		v.SA = TransformVec2Mul(xfA, proxyA.Vertex(v.IndexA))
		v.SB = TransformVec2Mul(xfB, proxyB.Vertex(v.IndexB))
		v.P = Vec2Sub(v.SB, v.SA)
		v.U = 0.0
	}
	s.Div = 1.0

	// Accept the cache only if the current simplex metric is consistent with
	// the stored one; a substantially different metric means the shapes moved
	// too far for the old simplex to be useful.
	if s.Count > 1 {
		metric1 := cache.Metric
		metric2 := s.metric()
		if metric2 < 0.5*metric1 || 2.0*metric1 < metric2 || metric2 < epsilon {
			s.Count = 0
		}
	}

	// Cold start from each proxy's first vertex.
	if s.Count == 0 {
		v := &s.Verts[0]
		v.IndexA = 0
		v.IndexB = 0
		v.SA = TransformVec2Mul(xfA, proxyA.Vertex(0))
		v.SB = TransformVec2Mul(xfB, proxyB.Vertex(0))
		v.P = Vec2Sub(v.SB, v.SA)
		v.U = 1.0
		s.Count = 1
	}
}

func (s *simplex) writeCache(cache *GJKCache) {
	cache.Metric = s.metric()
	cache.Div = s.Div
	cache.Count = s.Count
	for i := 0; i < s.Count; i++ {
		cache.IndexA[i] = s.Verts[i].IndexA
		cache.IndexB[i] = s.Verts[i].IndexB
	}
}

func (s *simplex) metric() float64 {
	switch s.Count {
	case 1:
		return 0.0
	case 2:
		return Vec2Distance(s.Verts[0].P, s.Verts[1].P)
	case 3:
		return Vec2Cross(
			Vec2Sub(s.Verts[1].P, s.Verts[0].P),
			Vec2Sub(s.Verts[2].P, s.Verts[0].P),
		)
	default:
		assert(false)
		return 0.0
	}
}

func (s *simplex) searchDirection() Vec2 {
	switch s.Count {
	case 1:
		return s.Verts[0].P.Neg()

	case 2:
		e12 := Vec2Sub(s.Verts[1].P, s.Verts[0].P)
		sgn := Vec2Cross(e12, s.Verts[0].P.Neg())
		if sgn > 0.0 {
			// Origin is left of e12.
			return Vec2CrossSV(1.0, e12)
		}
		// Origin is right of e12.
		return Vec2CrossVS(e12, 1.0)

	default:
		assert(false)
		return vec2Zero
	}
}

func (s *simplex) closestPoint() Vec2 {
	switch s.Count {
	case 1:
		return s.Verts[0].P

	case 2:
		inv := 1.0 / s.Div
		return Vec2Add(
			Vec2MulScalar(inv*s.Verts[0].U, s.Verts[0].P),
			Vec2MulScalar(inv*s.Verts[1].U, s.Verts[1].P),
		)

	case 3:
		return vec2Zero

	default:
		assert(false)
		return vec2Zero
	}
}

func (s *simplex) witnessPoints(pA, pB *Vec2) {
	switch s.Count {
	case 1:
		*pA = s.Verts[0].SA
		*pB = s.Verts[0].SB

	case 2:
		inv := 1.0 / s.Div
		*pA = Vec2Add(
			Vec2MulScalar(inv*s.Verts[0].U, s.Verts[0].SA),
			Vec2MulScalar(inv*s.Verts[1].U, s.Verts[1].SA),
		)
		*pB = Vec2Add(
			Vec2MulScalar(inv*s.Verts[0].U, s.Verts[0].SB),
			Vec2MulScalar(inv*s.Verts[1].U, s.Verts[1].SB),
		)

	case 3:
		// Origin enclosed; the witness points coincide.
		inv := 1.0 / s.Div
		*pA = Vec2Add(
			Vec2Add(
				Vec2MulScalar(inv*s.Verts[0].U, s.Verts[0].SA),
				Vec2MulScalar(inv*s.Verts[1].U, s.Verts[1].SA),
			),
			Vec2MulScalar(inv*s.Verts[2].U, s.Verts[2].SA),
		)
		*pB = *pA

	default:
		assert(false)
	}
}

// solve2 reduces a line segment to its feature closest to the origin.
func (s *simplex) solve2() {
	w1 := s.Verts[0].P
	w2 := s.Verts[1].P
	e12 := Vec2Sub(w2, w1)

	// w1 region
	d12_2 := -Vec2Dot(w1, e12)
	if d12_2 <= 0.0 {
		s.Verts[0].U = 1.0
		s.Div = 1.0
		s.Count = 1
		return
	}

	// w2 region
	d12_1 := Vec2Dot(w2, e12)
	if d12_1 <= 0.0 {
		s.Verts[0] = s.Verts[1]
		s.Verts[0].U = 1.0
		s.Div = 1.0
		s.Count = 1
		return
	}

	// Must be in e12 region.
	s.Verts[0].U = d12_1
	s.Verts[1].U = d12_2
	s.Div = d12_1 + d12_2
	s.Count = 2
}

// solve3 reduces a triangle to its feature closest to the origin, testing
// each vertex, edge and the interior via signed areas.
func (s *simplex) solve3() {
	w1 := s.Verts[0].P
	w2 := s.Verts[1].P
	w3 := s.Verts[2].P

	e12 := Vec2Sub(w2, w1)
	d12_1 := Vec2Dot(w2, e12)
	d12_2 := -Vec2Dot(w1, e12)

	e13 := Vec2Sub(w3, w1)
	d13_1 := Vec2Dot(w3, e13)
	d13_2 := -Vec2Dot(w1, e13)

	e23 := Vec2Sub(w3, w2)
	d23_1 := Vec2Dot(w3, e23)
	d23_2 := -Vec2Dot(w2, e23)

	n123 := Vec2Cross(e12, e13)
	d123_1 := n123 * Vec2Cross(w2, w3)
	d123_2 := n123 * Vec2Cross(w3, w1)
	d123_3 := n123 * Vec2Cross(w1, w2)

	// w1 region
	if d12_2 <= 0.0 && d13_2 <= 0.0 {
		s.Verts[0].U = 1.0
		s.Div = 1.0
		s.Count = 1
		return
	}

	// e12
	if d12_1 > 0.0 && d12_2 > 0.0 && d123_3 <= 0.0 {
		s.Verts[0].U = d12_1
		s.Verts[1].U = d12_2
		s.Div = d12_1 + d12_2
		s.Count = 2
		return
	}

	// e13
	if d13_1 > 0.0 && d13_2 > 0.0 && d123_2 <= 0.0 {
		s.Verts[1] = s.Verts[2]
		s.Verts[0].U = d13_1
		s.Verts[1].U = d13_2
		s.Div = d13_1 + d13_2
		s.Count = 2
		return
	}

	// w2 region
	if d12_1 <= 0.0 && d23_2 <= 0.0 {
		s.Verts[0] = s.Verts[1]
		s.Verts[0].U = 1.0
		s.Div = 1.0
		s.Count = 1
		return
	}

	// w3 region
	if d13_1 <= 0.0 && d23_1 <= 0.0 {
		s.Verts[0] = s.Verts[2]
		s.Verts[0].U = 1.0
		s.Div = 1.0
		s.Count = 1
		return
	}

	// e23
	if d23_1 > 0.0 && d23_2 > 0.0 && d123_1 <= 0.0 {
		s.Verts[0] = s.Verts[2]
		s.Verts[0].U = d23_2
		s.Verts[1].U = d23_1
		s.Div = d23_1 + d23_2
		s.Count = 2
		return
	}

	// Must be inside the triangle.
	s.Verts[0].U = d123_1
	s.Verts[1].U = d123_2
	s.Verts[2].U = d123_3
	s.Div = d123_1 + d123_2 + d123_3
	s.Count = 3
}

// Distance computes the closest points between two convex proxies. The
// algorithm is approximate by design: it always terminates and never errors,
// returning the best result found when an early-exit condition or the
// iteration cap is reached.
func Distance(output *DistanceOutput, cache *GJKCache, input *DistanceInput) {
	proxyA := &input.ProxyA
	proxyB := &input.ProxyB

	xfA := input.TransformA
	xfB := input.TransformB

	maxIters := input.MaxIterations
	if maxIters <= 0 {
		maxIters = gjkMaxIterations
	}

	var s simplex
	s.readCache(cache, proxyA, xfA, proxyB, xfB)

	// Last simplex index pairs, kept to detect support-point cycling.
	var saveA, saveB [3]int
	saveCount := 0

	distSqr1 := maxFloat

	iter := 0
	for iter < maxIters {
		saveCount = s.Count
		for i := 0; i < saveCount; i++ {
			saveA[i] = s.Verts[i].IndexA
			saveB[i] = s.Verts[i].IndexB
		}

		switch s.Count {
		case 1:
		case 2:
			s.solve2()
		case 3:
			s.solve3()
		default:
			assert(false)
		}

		// With 3 retained points the origin is enclosed: the shapes overlap.
		if s.Count == 3 {
			break
		}

		// No further improvement since last iteration means a numerical
		// plateau; take the current result.
		p := s.closestPoint()
		distSqr2 := p.LengthSquared()
		if distSqr2 > distSqr1 {
			break
		}
		distSqr1 = distSqr2

		d := s.searchDirection()
		if d.LengthSquared() < epsilon*epsilon {
			// The origin is probably contained by a segment or is already at
			// the closest feature; either way the direction is unusable.
			break
		}

		vertex := &s.Verts[s.Count]
		vertex.IndexA = proxyA.Support(RotVec2MulT(xfA.Q, d.Neg()))
		vertex.SA = TransformVec2Mul(xfA, proxyA.Vertex(vertex.IndexA))
		vertex.IndexB = proxyB.Support(RotVec2MulT(xfB.Q, d))
		vertex.SB = TransformVec2Mul(xfB, proxyB.Vertex(vertex.IndexB))
		vertex.P = Vec2Sub(vertex.SB, vertex.SA)

		// Iteration count equals the number of support point calls.
		iter++

		// A repeated support pair means the simplex cannot grow; exit to
		// avoid cycling.
		duplicate := false
		for i := 0; i < saveCount; i++ {
			if vertex.IndexA == saveA[i] && vertex.IndexB == saveB[i] {
				duplicate = true
				break
			}
		}
		if duplicate {
			break
		}

		s.Count++
	}

	s.witnessPoints(&output.PointA, &output.PointB)
	output.Distance = Vec2Distance(output.PointA, output.PointB)
	output.Iterations = iter

	s.writeCache(cache)

	if input.UseRadii {
		rA := proxyA.Radius
		rB := proxyB.Radius

		if output.Distance > rA+rB && output.Distance > epsilon {
			// Shapes are still not overlapping; move the witness points onto
			// the outer surfaces.
			output.Distance -= rA + rB
			normal := Vec2Sub(output.PointB, output.PointA)
			normal.Normalize()
			output.PointA = Vec2Add(output.PointA, Vec2MulScalar(rA, normal))
			output.PointB = Vec2Sub(output.PointB, Vec2MulScalar(rB, normal))
		} else {
			// Shapes overlap once radii are considered; collapse the witness
			// points to the midpoint.
			p := Vec2MulScalar(0.5, Vec2Add(output.PointA, output.PointB))
			output.PointA = p
			output.PointB = p
			output.Distance = 0.0
		}
	}
}
