package collide2d

// Helpers shared by the manifold builders.

// clipSegmentToLine performs one step of Sutherland-Hodgman clipping, keeping
// the portion of the segment on the inner side of the line with the given
// normal and offset. It returns the number of points produced, at most 2.
func clipSegmentToLine(vOut *[2]Vec2, vIn [2]Vec2, normal Vec2, offset float64) int {
	numOut := 0

	distance0 := Vec2Dot(normal, vIn[0]) - offset
	distance1 := Vec2Dot(normal, vIn[1]) - offset

	if distance0 <= 0.0 {
		vOut[numOut] = vIn[0]
		numOut++
	}
	if distance1 <= 0.0 {
		vOut[numOut] = vIn[1]
		numOut++
	}

	// The points straddle the line; add the intersection.
	if distance0*distance1 < 0.0 {
		interp := distance0 / (distance0 - distance1)
		vOut[numOut] = Vec2Add(vIn[0], Vec2MulScalar(interp, Vec2Sub(vIn[1], vIn[0])))
		numOut++
	}

	return numOut
}

// biasGreaterThan reports whether a is greater than b with a relative and
// absolute tolerance, so the reference-face choice stays stable when the two
// separations are nearly equal.
func biasGreaterThan(a, b float64) bool {
	const (
		relTol = 0.95
		absTol = 0.01
	)
	return a >= b*relTol+a*absTol
}

// closestOnProxies runs a one-shot GJK query between two proxies, ignoring
// their radii. The manifold builders apply radii themselves.
func closestOnProxies(a Proxy, xfA Transform, b Proxy, xfB Transform) DistanceOutput {
	input := MakeDistanceInput()
	input.ProxyA = a
	input.ProxyB = b
	input.TransformA = xfA
	input.TransformB = xfB

	cache := MakeGJKCache()
	var output DistanceOutput
	Distance(&output, &cache, &input)
	return output
}
