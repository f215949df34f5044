package collide2d

import "math"

// Ray casts against each shape kind. A ray that starts inside a shape reports
// no hit. On a hit, output receives the parameter along the ray and the unit
// surface normal at the hit point.

// rayCircleT solves the quadratic for a unit-direction ray against a circle,
// returning the smallest parameter within the ray's length.
func rayCircleT(r Ray, center Vec2, radius float64) (float64, bool) {
	m := Vec2Sub(r.P, center)
	b := Vec2Dot(m, r.D)
	c := Vec2Dot(m, m) - radius*radius

	disc := b*b - c
	if disc < 0.0 {
		return 0.0, false
	}

	t := -b - math.Sqrt(disc)
	if t < 0.0 || t > r.T {
		// Starting inside the circle, or the hit lies beyond the ray.
		return 0.0, false
	}
	return t, true
}

// RayCastCircle casts a ray against a circle.
func RayCastCircle(output *RayHit, r Ray, c Circle, xf *Transform) bool {
	center := TransformVec2Mul(xfOrIdentity(xf), c.P)

	t, ok := rayCircleT(r, center, c.Radius)
	if !ok {
		return false
	}

	output.T = t
	output.N = Vec2Norm(Vec2Sub(r.EndPoint(t), center))
	return true
}

// RayCastAABB casts a ray against a box using the slab method. The box honors
// only the translation of xf.
func RayCastAABB(output *RayHit, r Ray, bb AABB, xf *Transform) bool {
	b := bb.Translated(xf)

	tmin := -maxFloat
	tmax := maxFloat
	var normal Vec2

	p := [2]float64{r.P.X, r.P.Y}
	d := [2]float64{r.D.X, r.D.Y}
	lo := [2]float64{b.Min.X, b.Min.Y}
	hi := [2]float64{b.Max.X, b.Max.Y}

	for i := 0; i < 2; i++ {
		if math.Abs(d[i]) < epsilon {
			// Parallel to this slab.
			if p[i] < lo[i] || hi[i] < p[i] {
				return false
			}
			continue
		}

		invD := 1.0 / d[i]
		t1 := (lo[i] - p[i]) * invD
		t2 := (hi[i] - p[i]) * invD

		// s tracks which face of the slab is entered first.
		s := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			s = 1.0
		}

		if t1 > tmin {
			tmin = t1
			normal = vec2Zero
			if i == 0 {
				normal.X = s
			} else {
				normal.Y = s
			}
		}

		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return false
		}
	}

	if tmin < 0.0 || tmin > r.T {
		// Inside the box, or out of reach.
		return false
	}

	output.T = tmin
	output.N = normal
	return true
}

// RayCastCapsule casts a ray against a capsule: the first hit among the two
// endpoint caps and the two side walls wins.
func RayCastCapsule(output *RayHit, r Ray, c Capsule, xf *Transform) bool {
	t := xfOrIdentity(xf)
	a := TransformVec2Mul(t, c.A)
	b := TransformVec2Mul(t, c.B)

	axis := Vec2Sub(b, a)
	length := axis.Normalize()
	if length < epsilon {
		return RayCastCircle(output, r, MakeCircle(c.A, c.Radius), xf)
	}

	bestT := maxFloat
	var bestN Vec2
	found := false

	// Endpoint caps count only in the half-disk past each end.
	if tc, ok := rayCircleT(r, a, c.Radius); ok {
		hit := r.EndPoint(tc)
		if Vec2Dot(Vec2Sub(hit, a), axis) <= 0.0 && tc < bestT {
			bestT = tc
			bestN = Vec2Norm(Vec2Sub(hit, a))
			found = true
		}
	}
	if tc, ok := rayCircleT(r, b, c.Radius); ok {
		hit := r.EndPoint(tc)
		if Vec2Dot(Vec2Sub(hit, b), axis) >= 0.0 && tc < bestT {
			bestT = tc
			bestN = Vec2Norm(Vec2Sub(hit, b))
			found = true
		}
	}

	// Side walls, offset outward from the spine by the radius.
	perp := Vec2CrossVS(axis, 1.0)
	for _, side := range [2]float64{1.0, -1.0} {
		n := Vec2MulScalar(side, perp)
		wall := MakeHalfspace(n, Vec2Dot(n, a)+c.Radius)

		denom := Vec2Dot(n, r.D)
		if denom >= -epsilon {
			// Parallel, or moving away from the wall.
			continue
		}
		dist := wall.Distance(r.P)
		if dist < 0.0 {
			// Starting behind the wall.
			continue
		}

		tc := dist / -denom
		if tc > r.T || tc >= bestT {
			continue
		}
		proj := Vec2Dot(Vec2Sub(r.EndPoint(tc), a), axis)
		if proj < 0.0 || proj > length {
			continue
		}

		bestT = tc
		bestN = n
		found = true
	}

	if !found {
		return false
	}
	output.T = bestT
	output.N = bestN
	return true
}

// RayCastPoly casts a ray against a polygon by walking the face halfplanes in
// the polygon's frame.
func RayCastPoly(output *RayHit, r Ray, p *Poly, xf *Transform) bool {
	t := xfOrIdentity(xf)

	p1 := TransformVec2MulT(t, r.P)
	p2 := TransformVec2MulT(t, r.EndPoint(r.T))
	d := Vec2Sub(p2, p1)

	lower, upper := 0.0, 1.0
	index := -1

	for i := 0; i < p.Count; i++ {
		// p = p1 + t * d
		// dot(normal, p - v) = 0
		// dot(normal, p1 - v) + t * dot(normal, d) = 0
		numerator := Vec2Dot(p.Norms[i], Vec2Sub(p.Verts[i], p1))
		denominator := Vec2Dot(p.Norms[i], d)

		if denominator == 0.0 {
			if numerator < 0.0 {
				return false
			}
		} else {
			// Note: we want t = numerator / denominator with inequalities kept
			// correct when denominator is negative.
			if denominator < 0.0 && numerator < lower*denominator {
				lower = numerator / denominator
				index = i
			} else if denominator > 0.0 && numerator < upper*denominator {
				upper = numerator / denominator
			}
		}

		if upper < lower {
			return false
		}
	}

	assert(0.0 <= lower && lower <= 1.0)

	if index >= 0 {
		output.T = lower * r.T
		output.N = RotVec2Mul(t.Q, p.Norms[index])
		return true
	}

	// The ray starts inside the polygon.
	return false
}
