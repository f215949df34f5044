package collide2d

import "math"

// Conservative-advancement time of impact for shapes moving by pure
// translation over a unit time interval.

// ToiInput describes a moving proxy pair. The velocities are the total
// displacement of each shape over the interval. MaxIterations of zero selects
// the default cap.
type ToiInput struct {
	ProxyA        Proxy
	ProxyB        Proxy
	TransformA    Transform
	TransformB    Transform
	VelocityA     Vec2
	VelocityB     Vec2
	UseRadii      bool
	MaxIterations int
}

func MakeToiInput() ToiInput {
	return ToiInput{
		TransformA: MakeTransformIdentity(),
		TransformB: MakeTransformIdentity(),
	}
}

// ToiOutput reports the normalized impact time in [0, 1]. T of 1 means the
// shapes do not touch within the interval; pairs overlapping at the start
// report 0.
type ToiOutput struct {
	T          float64
	Iterations int
}

// TimeOfImpact advances the pair conservatively: each step moves time forward
// by the current separation divided by the closing speed along the separating
// axis, which can never skip past the first touch. The result is approximate
// and clamped to [0, 1].
func TimeOfImpact(output *ToiOutput, input *ToiInput) {
	maxIters := input.MaxIterations
	if maxIters <= 0 {
		maxIters = toiMaxIterations
	}

	rv := Vec2Sub(input.VelocityB, input.VelocityA)

	dist := MakeDistanceInput()
	dist.ProxyA = input.ProxyA
	dist.ProxyB = input.ProxyB
	dist.UseRadii = input.UseRadii

	cache := MakeGJKCache()

	t := 0.0
	iter := 0

	for iter < maxIters {
		dist.TransformA = input.TransformA
		dist.TransformA.P = Vec2Add(input.TransformA.P, Vec2MulScalar(t, input.VelocityA))
		dist.TransformB = input.TransformB
		dist.TransformB.P = Vec2Add(input.TransformB.P, Vec2MulScalar(t, input.VelocityB))

		var out DistanceOutput
		Distance(&out, &cache, &dist)
		iter++

		if out.Distance < toiTolerance {
			// Touching, or overlapping at the start of the interval.
			break
		}

		n := Vec2Norm(Vec2Sub(out.PointB, out.PointA))
		speed := math.Abs(Vec2Dot(n, rv))
		if speed == 0.0 {
			// No relative motion along the separating axis.
			t = 1.0
			break
		}

		advance := out.Distance / speed
		t += advance
		if t >= 1.0 {
			t = 1.0
			break
		}
		if advance < toiTolerance {
			// Stalled; accept the current time.
			break
		}
	}

	output.T = FloatClamp(t, 0.0, 1.0)
	output.Iterations = iter
}
