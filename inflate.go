package collide2d

// Polygon inflate/deflate through projective duality: a face with outward
// unit normal n and offset d maps to the dual point n/d, and the dual of the
// dual recovers the polygon. Shifting the offsets before the first dual
// shifts every face uniformly along its normal.

// dual maps each face halfspace, with its offset grown by skin, to a dual
// point. The vertex ordering of the input carries over to the dual, so the
// dual's face normals are recomputed directly instead of re-hulling.
func (p *Poly) dual(skin float64) Poly {
	var q Poly
	q.Count = p.Count
	for i := 0; i < p.Count; i++ {
		d := Vec2Dot(p.Norms[i], p.Verts[i]) + skin
		if d == 0.0 {
			q.Verts[i] = vec2Zero
		} else {
			q.Verts[i] = Vec2MulScalar(1.0/d, p.Norms[i])
		}
	}
	q.ComputeNormals()
	return q
}

// Inflate offsets the polygon uniformly along its face normals by skin.
// Positive skin grows the polygon, negative shrinks it. Deflating past the
// point where the polygon inverts is not guarded; callers must keep |skin|
// below the polygon's inradius when shrinking.
func (p *Poly) Inflate(skin float64) {
	// The dual transform needs the origin strictly inside the polygon;
	// center on the vertex average and undo at the end.
	c := p.Centroid()
	for i := 0; i < p.Count; i++ {
		p.Verts[i] = Vec2Sub(p.Verts[i], c)
	}

	d := p.dual(skin)
	*p = d.dual(0.0)

	for i := 0; i < p.Count; i++ {
		p.Verts[i] = Vec2Add(p.Verts[i], c)
	}
	p.ComputeNormals()
}

// Inflate returns a copy of the shape grown by skin: radii for circles and
// capsules, extents for boxes, face offsets for polygons. Negative skin
// shrinks the shape.
func Inflate(s Shape, skin float64) Shape {
	switch v := s.(type) {
	case Circle:
		v.Radius += skin
		return v

	case AABB:
		factor := MakeVec2(skin, skin)
		v.Min = Vec2Sub(v.Min, factor)
		v.Max = Vec2Add(v.Max, factor)
		return v

	case Capsule:
		v.Radius += skin
		return v

	case *Poly:
		q := *v
		q.Inflate(skin)
		return &q

	default:
		assert(false)
		return s
	}
}
