package collide2d

import "math"

// SAT manifold generation for polygon pairs. The core routine works on
// polygons extended outward by a radius, so the deep capsule cases reuse it
// with the capsule modeled as a two-vertex polygon.

// findMaxSeparation finds the face of poly1 with the greatest separation from
// poly2, working in poly2's frame to avoid transforming both vertex sets.
func findMaxSeparation(edgeIndex *int, poly1 *Poly, xf1 Transform, poly2 *Poly, xf2 Transform) float64 {
	xf := TransformMulT(xf2, xf1)

	bestIndex := 0
	maxSeparation := -maxFloat

	for i := 0; i < poly1.Count; i++ {
		// Face normal and a face vertex of poly1 in poly2's frame.
		n := RotVec2Mul(xf.Q, poly1.Norms[i])
		v1 := TransformVec2Mul(xf, poly1.Verts[i])

		// Deepest vertex of poly2 against that face.
		si := maxFloat
		for j := 0; j < poly2.Count; j++ {
			sij := Vec2Dot(n, Vec2Sub(poly2.Verts[j], v1))
			if sij < si {
				si = sij
			}
		}

		if si > maxSeparation {
			maxSeparation = si
			bestIndex = i
		}
	}

	*edgeIndex = bestIndex
	return maxSeparation
}

// findIncidentEdge writes the endpoints of poly2's edge most anti-parallel to
// face edge1 of poly1, in world space.
func findIncidentEdge(c *[2]Vec2, poly1 *Poly, xf1 Transform, edge1 int, poly2 *Poly, xf2 Transform) {
	assert(0 <= edge1 && edge1 < poly1.Count)

	// Reference face normal in poly2's frame.
	normal1 := RotVec2MulT(xf2.Q, RotVec2Mul(xf1.Q, poly1.Norms[edge1]))

	index := 0
	minDot := maxFloat
	for i := 0; i < poly2.Count; i++ {
		dot := Vec2Dot(normal1, poly2.Norms[i])
		if dot < minDot {
			minDot = dot
			index = i
		}
	}

	i1 := index
	i2 := 0
	if i1+1 < poly2.Count {
		i2 = i1 + 1
	}

	c[0] = TransformVec2Mul(xf2, poly2.Verts[i1])
	c[1] = TransformVec2Mul(xf2, poly2.Verts[i2])
}

// collidePolyPoly builds a clipped contact manifold for two convex polygons,
// each extended outward by a radius. The polygon with the greater separation
// provides the reference face; the other contributes its incident edge, which
// is clipped against the reference face's side planes. The manifold normal
// points from polyA toward polyB.
func collidePolyPoly(manifold *Manifold, polyA *Poly, radiusA float64, xfA Transform, polyB *Poly, radiusB float64, xfB Transform) {
	manifold.Count = 0
	totalRadius := radiusA + radiusB

	edgeA := 0
	separationA := findMaxSeparation(&edgeA, polyA, xfA, polyB, xfB)
	if separationA > totalRadius {
		return
	}

	edgeB := 0
	separationB := findMaxSeparation(&edgeB, polyB, xfB, polyA, xfA)
	if separationB > totalRadius {
		return
	}

	var poly1, poly2 *Poly
	var xf1, xf2 Transform
	var radius1, radius2 float64
	edge1 := 0
	flip := false

	// Bias toward polyA as the reference under near-equal separations, so the
	// manifold does not flicker between frames.
	if biasGreaterThan(separationB, separationA) {
		poly1, poly2 = polyB, polyA
		xf1, xf2 = xfB, xfA
		radius1, radius2 = radiusB, radiusA
		edge1 = edgeB
		flip = true
	} else {
		poly1, poly2 = polyA, polyB
		xf1, xf2 = xfA, xfB
		radius1, radius2 = radiusA, radiusB
		edge1 = edgeA
	}

	var incidentEdge [2]Vec2
	findIncidentEdge(&incidentEdge, poly1, xf1, edge1, poly2, xf2)

	iv1 := edge1
	iv2 := 0
	if edge1+1 < poly1.Count {
		iv2 = edge1 + 1
	}

	v11 := poly1.Verts[iv1]
	v12 := poly1.Verts[iv2]

	localTangent := Vec2Sub(v12, v11)
	localTangent.Normalize()

	tangent := RotVec2Mul(xf1.Q, localTangent)
	normal := Vec2CrossVS(tangent, 1.0)

	v11 = TransformVec2Mul(xf1, v11)
	v12 = TransformVec2Mul(xf1, v12)

	frontOffset := Vec2Dot(normal, v11)

	// Side planes are pushed out by the total radius so grazing contacts on
	// the rounded hull survive the clip.
	sideOffset1 := -Vec2Dot(tangent, v11) + totalRadius
	sideOffset2 := Vec2Dot(tangent, v12) + totalRadius

	var clipPoints1, clipPoints2 [2]Vec2

	np := clipSegmentToLine(&clipPoints1, incidentEdge, tangent.Neg(), sideOffset1)
	if np < 2 {
		return
	}

	np = clipSegmentToLine(&clipPoints2, clipPoints1, tangent, sideOffset2)
	if np < 2 {
		return
	}

	pointCount := 0
	for i := 0; i < MaxManifoldPoints; i++ {
		separation := Vec2Dot(normal, clipPoints2[i]) - frontOffset
		if separation <= totalRadius {
			// Contact point midway between the two outer surfaces.
			onRef := Vec2Sub(clipPoints2[i], Vec2MulScalar(separation-radius1, normal))
			onInc := Vec2Sub(clipPoints2[i], Vec2MulScalar(radius2, normal))
			manifold.Points[pointCount] = Vec2MulScalar(0.5, Vec2Add(onRef, onInc))
			manifold.Depths[pointCount] = totalRadius - separation
			pointCount++
		}
	}

	if flip {
		manifold.N = normal.Neg()
	} else {
		manifold.N = normal
	}
	manifold.Count = pointCount
}

// CollidePolys builds the contact manifold for two polygons.
func CollidePolys(manifold *Manifold, a *Poly, xfA *Transform, b *Poly, xfB *Transform) {
	collidePolyPoly(manifold, a, 0.0, xfOrIdentity(xfA), b, 0.0, xfOrIdentity(xfB))
}

// CollideAABBs builds the contact manifold for two boxes directly from their
// per-axis overlaps. Transforms contribute translation only.
func CollideAABBs(manifold *Manifold, a AABB, xfA *Transform, b AABB, xfB *Transform) {
	manifold.Count = 0

	ba := a.Translated(xfA)
	bb := b.Translated(xfB)

	midA := ba.Center()
	midB := bb.Center()
	eA := ba.Extents()
	eB := bb.Extents()
	d := Vec2Sub(midB, midA)

	dx := eA.X + eB.X - math.Abs(d.X)
	if dx < 0.0 {
		return
	}
	dy := eA.Y + eB.Y - math.Abs(d.Y)
	if dy < 0.0 {
		return
	}

	var n Vec2
	var depth float64
	var p Vec2

	// Separate along the axis of least overlap; the contact point sits midway
	// between the two overlapping faces, at the middle of the overlap interval
	// on the other axis. The midpoint keeps the point set identical under
	// argument swap.
	if dx < dy {
		depth = dx
		if d.X < 0.0 {
			n = MakeVec2(-1.0, 0.0)
			p.X = 0.5 * (ba.Min.X + bb.Max.X)
		} else {
			n = MakeVec2(1.0, 0.0)
			p.X = 0.5 * (ba.Max.X + bb.Min.X)
		}
		p.Y = 0.5 * (math.Max(ba.Min.Y, bb.Min.Y) + math.Min(ba.Max.Y, bb.Max.Y))
	} else {
		depth = dy
		if d.Y < 0.0 {
			n = MakeVec2(0.0, -1.0)
			p.Y = 0.5 * (ba.Min.Y + bb.Max.Y)
		} else {
			n = MakeVec2(0.0, 1.0)
			p.Y = 0.5 * (ba.Max.Y + bb.Min.Y)
		}
		p.X = 0.5 * (math.Max(ba.Min.X, bb.Min.X) + math.Min(ba.Max.X, bb.Max.X))
	}

	manifold.Count = 1
	manifold.N = n
	manifold.Depths[0] = depth
	manifold.Points[0] = p
}

// CollideAABBPoly builds the contact manifold for a box against a polygon by
// promoting the box to its polygon form. Unlike the box-only routines, the
// box honors the full transform here, including rotation.
func CollideAABBPoly(manifold *Manifold, a AABB, xfA *Transform, b *Poly, xfB *Transform) {
	ap := MakePolyFromAABB(a)
	collidePolyPoly(manifold, &ap, 0.0, xfOrIdentity(xfA), b, 0.0, xfOrIdentity(xfB))
}

// CollidePolyAABB is CollideAABBPoly with the shape order reversed.
func CollidePolyAABB(manifold *Manifold, a *Poly, xfA *Transform, b AABB, xfB *Transform) {
	CollideAABBPoly(manifold, b, xfB, a, xfA)
	manifold.N = manifold.N.Neg()
}
