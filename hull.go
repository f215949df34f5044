package collide2d

// ConvexHull computes the convex hull of a point set using the gift wrapping
// algorithm. It returns the input indices of the hull vertices in
// counter-clockwise order, or nil when fewer than 3 hull vertices exist.
// Only the first MaxPolyVerts input points are considered.
func ConvexHull(pts []Vec2) []int {
	n := len(pts)
	if n > MaxPolyVerts {
		n = MaxPolyVerts
	}
	if n < 3 {
		return nil
	}

	// Find the rightmost point, breaking ties with the smallest y, so the
	// starting edge is deterministic.
	i0 := 0
	x0 := pts[0].X
	for i := 1; i < n; i++ {
		x := pts[i].X
		if x > x0 || (x == x0 && pts[i].Y < pts[i0].Y) {
			i0 = i
			x0 = x
		}
	}

	var hull [MaxPolyVerts]int
	m := 0
	ih := i0

	for {
		assert(m < MaxPolyVerts)
		hull[m] = ih

		// Among the remaining candidates, pick the most clockwise turn from
		// the current hull point. Collinear ties prefer the farther point so
		// redundant vertices are skipped.
		ie := 0
		for j := 1; j < n; j++ {
			if ie == ih {
				ie = j
				continue
			}

			r := Vec2Sub(pts[ie], pts[hull[m]])
			v := Vec2Sub(pts[j], pts[hull[m]])
			c := Vec2Cross(r, v)
			if c < 0.0 {
				ie = j
			}
			if c == 0.0 && v.LengthSquared() > r.LengthSquared() {
				ie = j
			}
		}

		m++
		ih = ie

		if ie == i0 {
			break
		}
	}

	if m < 3 {
		// Degenerate (collinear) input.
		return nil
	}

	out := make([]int, m)
	copy(out, hull[:m])
	return out
}

// ComputeNormals recomputes the outward unit normal of each edge from the
// vertex loop. The vertices must already be in counter-clockwise order.
func (p *Poly) ComputeNormals() {
	for i := 0; i < p.Count; i++ {
		i2 := 0
		if i+1 < p.Count {
			i2 = i + 1
		}
		edge := Vec2Sub(p.Verts[i2], p.Verts[i])
		p.Norms[i] = Vec2CrossVS(edge, 1.0)
		p.Norms[i].Normalize()
	}
}

// MakePolyFromPoints builds a convex polygon from an unordered point set:
// nearly coincident points are welded, the convex hull is extracted, and
// face normals are computed. ok is false when the input is degenerate
// (fewer than 3 distinct non-collinear points).
func MakePolyFromPoints(pts []Vec2) (p Poly, ok bool) {
	n := len(pts)
	if n > MaxPolyVerts {
		n = MaxPolyVerts
	}
	if n < 3 {
		return Poly{}, false
	}

	// Weld vertices closer than half the linear slop.
	const weldDistSqr = (0.5 * linearSlop) * (0.5 * linearSlop)
	var ps [MaxPolyVerts]Vec2
	tempCount := 0
	for i := 0; i < n; i++ {
		v := pts[i]
		unique := true
		for j := 0; j < tempCount; j++ {
			if Vec2DistanceSquared(v, ps[j]) < weldDistSqr {
				unique = false
				break
			}
		}
		if unique {
			ps[tempCount] = v
			tempCount++
		}
	}

	hull := ConvexHull(ps[:tempCount])
	if hull == nil {
		return Poly{}, false
	}

	p.Count = len(hull)
	for i, idx := range hull {
		p.Verts[i] = ps[idx]
	}
	p.ComputeNormals()
	return p, true
}
