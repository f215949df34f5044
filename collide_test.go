package collide2d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollideCircles(t *testing.T) {
	t.Run("overlapping", func(t *testing.T) {
		a := MakeCircle(MakeVec2(0, 0), 1.0)
		b := MakeCircle(MakeVec2(1.5, 0), 1.0)

		var m Manifold
		CollideCircles(&m, a, nil, b, nil)

		require.Equal(t, 1, m.Count)
		require.InDelta(t, 0.5, m.Depths[0], 1e-12)
		require.InDelta(t, 1.0, m.N.X, 1e-12)
		require.InDelta(t, 0.0, m.N.Y, 1e-12)
		require.InDelta(t, 0.75, m.Points[0].X, 1e-12)
		require.InDelta(t, 0.0, m.Points[0].Y, 1e-12)
	})

	t.Run("disjoint", func(t *testing.T) {
		a := MakeCircle(MakeVec2(0, 0), 1.0)
		b := MakeCircle(MakeVec2(3, 0), 1.0)

		var m Manifold
		CollideCircles(&m, a, nil, b, nil)
		require.Equal(t, 0, m.Count)
	})

	t.Run("coincident centers fall back to x axis", func(t *testing.T) {
		a := MakeCircle(MakeVec2(0, 0), 1.0)
		b := MakeCircle(MakeVec2(0, 0), 0.5)

		var m Manifold
		CollideCircles(&m, a, nil, b, nil)
		require.Equal(t, 1, m.Count)
		require.Equal(t, MakeVec2(1, 0), m.N)
		require.InDelta(t, 1.5, m.Depths[0], 1e-12)
	})

	t.Run("transforms move the shapes", func(t *testing.T) {
		a := MakeCircle(MakeVec2(0, 0), 1.0)
		b := MakeCircle(MakeVec2(0, 0), 1.0)
		xfB := MakeTransform(MakeVec2(0, 1.5), 0.0)

		var m Manifold
		CollideCircles(&m, a, nil, b, &xfB)
		require.Equal(t, 1, m.Count)
		require.InDelta(t, 1.0, m.N.Y, 1e-12)
		require.InDelta(t, 0.5, m.Depths[0], 1e-12)
	})
}

func TestCollideCircleAABB(t *testing.T) {
	t.Run("shallow from outside", func(t *testing.T) {
		a := MakeCircle(MakeVec2(-1.5, 0), 1.0)
		b := MakeAABB(MakeVec2(-1, -1), MakeVec2(1, 1))

		var m Manifold
		CollideCircleAABB(&m, a, nil, b, nil)

		require.Equal(t, 1, m.Count)
		require.InDelta(t, 0.5, m.Depths[0], 1e-12)
		require.InDelta(t, 1.0, m.N.X, 1e-12)
		require.InDelta(t, -1.0, m.Points[0].X, 1e-12)
	})

	t.Run("center inside pushes out the near face", func(t *testing.T) {
		a := MakeCircle(MakeVec2(0.9, 0), 0.25)
		b := MakeAABB(MakeVec2(-1, -1), MakeVec2(1, 1))

		var m Manifold
		CollideCircleAABB(&m, a, nil, b, nil)

		require.Equal(t, 1, m.Count)
		require.Equal(t, MakeVec2(-1, 0), m.N)
		require.InDelta(t, 0.35, m.Depths[0], 1e-12)
	})

	t.Run("disjoint", func(t *testing.T) {
		a := MakeCircle(MakeVec2(5, 5), 1.0)
		b := MakeAABB(MakeVec2(-1, -1), MakeVec2(1, 1))

		var m Manifold
		CollideCircleAABB(&m, a, nil, b, nil)
		require.Equal(t, 0, m.Count)
	})
}

func TestCollideCapsuleCircle(t *testing.T) {
	t.Run("circle on the spine", func(t *testing.T) {
		a := MakeCapsule(MakeVec2(0, 1), MakeVec2(0, 3), 0.5)
		b := MakeCircle(MakeVec2(0, 2), 0.2)

		var m Manifold
		CollideCapsuleCircle(&m, a, nil, b, nil)

		require.Equal(t, 1, m.Count)
		require.InDelta(t, 0.7, m.Depths[0], 1e-12)
		require.InDelta(t, 1.0, math.Abs(m.N.X), 1e-12)
		require.InDelta(t, 0.0, m.N.Y, 1e-12)
		require.InDelta(t, 2.0, m.Points[0].Y, 1e-12)
		require.LessOrEqual(t, math.Abs(m.Points[0].X), 0.5)
	})

	t.Run("circle beside the spine", func(t *testing.T) {
		a := MakeCapsule(MakeVec2(0, 0), MakeVec2(0, 2), 0.5)
		b := MakeCircle(MakeVec2(1.0, 1.0), 0.6)

		var m Manifold
		CollideCapsuleCircle(&m, a, nil, b, nil)

		require.Equal(t, 1, m.Count)
		require.InDelta(t, 0.1, m.Depths[0], 1e-9)
		require.InDelta(t, 1.0, m.N.X, 1e-9)
	})

	t.Run("disjoint", func(t *testing.T) {
		a := MakeCapsule(MakeVec2(0, 0), MakeVec2(0, 2), 0.5)
		b := MakeCircle(MakeVec2(3, 1), 0.5)

		var m Manifold
		CollideCapsuleCircle(&m, a, nil, b, nil)
		require.Equal(t, 0, m.Count)
	})
}

func TestCollideCapsules(t *testing.T) {
	t.Run("parallel overlap", func(t *testing.T) {
		a := MakeCapsule(MakeVec2(0, 0), MakeVec2(0, 2), 0.5)
		b := MakeCapsule(MakeVec2(0.8, 0), MakeVec2(0.8, 2), 0.5)

		var m Manifold
		CollideCapsules(&m, a, nil, b, nil)

		require.Equal(t, 1, m.Count)
		require.InDelta(t, 0.2, m.Depths[0], 1e-9)
		require.InDelta(t, 1.0, m.N.X, 1e-9)
	})

	t.Run("crossing spines report full depth", func(t *testing.T) {
		a := MakeCapsule(MakeVec2(-1, 0), MakeVec2(1, 0), 0.3)
		b := MakeCapsule(MakeVec2(0, -1), MakeVec2(0, 1), 0.3)

		var m Manifold
		CollideCapsules(&m, a, nil, b, nil)

		require.Equal(t, 1, m.Count)
		require.InDelta(t, 0.6, m.Depths[0], 1e-9)
		require.InDelta(t, 1.0, m.N.Length(), 1e-9)
	})

	t.Run("disjoint", func(t *testing.T) {
		a := MakeCapsule(MakeVec2(0, 0), MakeVec2(0, 2), 0.4)
		b := MakeCapsule(MakeVec2(2, 0), MakeVec2(2, 2), 0.4)

		var m Manifold
		CollideCapsules(&m, a, nil, b, nil)
		require.Equal(t, 0, m.Count)
	})
}

// requireSamePoints asserts two manifolds carry the same contact point set,
// ignoring order.
func requireSamePoints(t *testing.T, a, b Manifold) {
	t.Helper()
	require.Equal(t, a.Count, b.Count)
	switch a.Count {
	case 1:
		require.InDelta(t, a.Points[0].X, b.Points[0].X, 1e-9)
		require.InDelta(t, a.Points[0].Y, b.Points[0].Y, 1e-9)
	case 2:
		direct := Vec2Distance(a.Points[0], b.Points[0]) + Vec2Distance(a.Points[1], b.Points[1])
		swapped := Vec2Distance(a.Points[0], b.Points[1]) + Vec2Distance(a.Points[1], b.Points[0])
		require.InDelta(t, 0.0, math.Min(direct, swapped), 1e-9)
	}
}

func TestCollideSymmetry(t *testing.T) {
	// Swapping the argument order must flip the normal, keep the depth, and
	// report the same contact points.
	circle := MakeCircle(MakeVec2(0.5, 0), 1.0)
	box := MakeAABB(MakeVec2(1, -1), MakeVec2(3, 1))
	capsule := MakeCapsule(MakeVec2(-0.5, 0), MakeVec2(0.5, 0), 0.8)
	poly := MakeBoxPoly(1, 1)

	pairs := []struct {
		name string
		a, b Shape
	}{
		{"circle aabb", circle, box},
		{"circle capsule", circle, capsule},
		{"circle poly", circle, &poly},
		{"capsule poly", capsule, &poly},
	}

	for _, tc := range pairs {
		t.Run(tc.name, func(t *testing.T) {
			var fwd, rev Manifold
			Collide(&fwd, tc.a, nil, tc.b, nil)
			Collide(&rev, tc.b, nil, tc.a, nil)

			require.Equal(t, fwd.Count, rev.Count)
			require.Greater(t, fwd.Count, 0)
			require.InDelta(t, fwd.Depths[0], rev.Depths[0], 1e-9)
			require.InDelta(t, -fwd.N.X, rev.N.X, 1e-9)
			require.InDelta(t, -fwd.N.Y, rev.N.Y, 1e-9)
			requireSamePoints(t, fwd, rev)
		})
	}
}

func TestCollideDispatchMatrix(t *testing.T) {
	// One shape of each kind, all mutually overlapping, driven through the
	// generic dispatcher in both orders.
	shapes := []struct {
		name  string
		shape Shape
	}{
		{"circle", MakeCircle(MakeVec2(0, 0), 1.0)},
		{"aabb", MakeAABB(MakeVec2(0.3, -0.7), MakeVec2(1.7, 0.7))},
		{"capsule", MakeCapsule(MakeVec2(0.2, 0.6), MakeVec2(1.2, 0.6), 0.5)},
		{"poly", func() Shape {
			p := MakePolyFromAABB(MakeAABB(MakeVec2(0.5, -0.1), MakeVec2(1.7, 1.1)))
			return &p
		}()},
	}

	for i, a := range shapes {
		for j, b := range shapes {
			t.Run(a.name+" vs "+b.name, func(t *testing.T) {
				var fwd Manifold
				Collide(&fwd, a.shape, nil, b.shape, nil)

				require.Greater(t, fwd.Count, 0)
				require.InDelta(t, 1.0, fwd.N.Length(), 1e-9)
				for k := 0; k < fwd.Count; k++ {
					require.GreaterOrEqual(t, fwd.Depths[k], 0.0)
				}

				if i == j {
					return
				}

				var rev Manifold
				Collide(&rev, b.shape, nil, a.shape, nil)
				require.Equal(t, fwd.Count, rev.Count)
				require.InDelta(t, -fwd.N.X, rev.N.X, 1e-9)
				require.InDelta(t, -fwd.N.Y, rev.N.Y, 1e-9)
				require.InDelta(t, fwd.Depths[0], rev.Depths[0], 1e-9)
				requireSamePoints(t, fwd, rev)
			})
		}
	}
}

func TestAABBTransformConventions(t *testing.T) {
	// Proxy-backed queries see an AABB as its four transformed corners, so
	// rotation applies there; the box-only manifold routine is translation
	// only, and rotated boxes route through the polygon promotion.
	a := MakeAABB(MakeVec2(-1, -1), MakeVec2(1, 1))
	b := MakeAABB(MakeVec2(-1, -1), MakeVec2(1, 1))
	// Rotated 45 degrees, the near corner reaches sqrt(2) toward a.
	xfB := MakeTransform(MakeVec2(2.2, 0), 0.25*math.Pi)

	require.True(t, TestOverlap(a, nil, b, &xfB))

	var m Manifold
	CollideAABBs(&m, a, nil, b, &xfB)
	require.Equal(t, 0, m.Count)

	bp := MakePolyFromAABB(b)
	CollideAABBPoly(&m, a, nil, &bp, &xfB)
	require.Greater(t, m.Count, 0)
	require.InDelta(t, 1.0+math.Sqrt2-2.2, m.Depths[0], 1e-9)
}

func TestTestOverlap(t *testing.T) {
	box := MakeBoxPoly(1, 1)

	t.Run("overlapping boxes", func(t *testing.T) {
		xfB := MakeTransform(MakeVec2(1.5, 0), 0.0)
		require.True(t, TestOverlap(&box, nil, &box, &xfB))
	})

	t.Run("separated boxes", func(t *testing.T) {
		xfB := MakeTransform(MakeVec2(4, 0), 0.0)
		require.False(t, TestOverlap(&box, nil, &box, &xfB))
	})

	t.Run("radii count", func(t *testing.T) {
		a := MakeCircle(MakeVec2(0, 0), 1.0)
		b := MakeCircle(MakeVec2(1.9, 0), 1.0)
		require.True(t, TestOverlap(a, nil, b, nil))

		c := MakeCircle(MakeVec2(2.1, 0), 1.0)
		require.False(t, TestOverlap(a, nil, c, nil))
	})

	t.Run("order independent", func(t *testing.T) {
		capsule := MakeCapsule(MakeVec2(0, 0), MakeVec2(2, 0), 0.5)
		circle := MakeCircle(MakeVec2(1, 0.8), 0.5)
		require.True(t, TestOverlap(capsule, nil, circle, nil))
		require.True(t, TestOverlap(circle, nil, capsule, nil))
	})
}

func TestContainsPoint(t *testing.T) {
	box := MakeBoxPoly(1, 1)
	xf := MakeTransform(MakeVec2(10, 0), 0.0)

	require.True(t, ContainsPoint(&box, &xf, MakeVec2(10.5, 0.5)))
	require.False(t, ContainsPoint(&box, &xf, MakeVec2(0.5, 0.5)))
	require.True(t, ContainsPoint(MakeCircle(MakeVec2(0, 0), 1), nil, MakeVec2(0.5, 0)))
	require.False(t, ContainsPoint(MakeCapsule(MakeVec2(0, 0), MakeVec2(0, 1), 0.3), nil, MakeVec2(1, 0)))
}
