package collide2d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRayCastCircle(t *testing.T) {
	c := MakeCircle(MakeVec2(0, 0), 1.0)

	t.Run("direct hit", func(t *testing.T) {
		r := MakeRay(MakeVec2(-3, 0), MakeVec2(1, 0), 10.0)

		var hit RayHit
		require.True(t, RayCastCircle(&hit, r, c, nil))
		require.InDelta(t, 2.0, hit.T, 1e-12)
		require.InDelta(t, -1.0, hit.N.X, 1e-12)
	})

	t.Run("miss", func(t *testing.T) {
		r := MakeRay(MakeVec2(-3, 2), MakeVec2(1, 0), 10.0)
		var hit RayHit
		require.False(t, RayCastCircle(&hit, r, c, nil))
	})

	t.Run("too short", func(t *testing.T) {
		r := MakeRay(MakeVec2(-3, 0), MakeVec2(1, 0), 1.5)
		var hit RayHit
		require.False(t, RayCastCircle(&hit, r, c, nil))
	})

	t.Run("origin inside reports no hit", func(t *testing.T) {
		r := MakeRay(MakeVec2(0, 0), MakeVec2(1, 0), 10.0)
		var hit RayHit
		require.False(t, RayCastCircle(&hit, r, c, nil))
	})

	t.Run("transformed", func(t *testing.T) {
		xf := MakeTransform(MakeVec2(5, 0), 0.0)
		r := MakeRay(MakeVec2(0, 0), MakeVec2(1, 0), 10.0)

		var hit RayHit
		require.True(t, RayCastCircle(&hit, r, c, &xf))
		require.InDelta(t, 4.0, hit.T, 1e-12)
	})
}

func TestRayCastAABB(t *testing.T) {
	bb := MakeAABB(MakeVec2(-1, -1), MakeVec2(1, 1))

	t.Run("hits the near face", func(t *testing.T) {
		r := MakeRay(MakeVec2(-3, 0), MakeVec2(1, 0), 10.0)

		var hit RayHit
		require.True(t, RayCastAABB(&hit, r, bb, nil))
		require.InDelta(t, 2.0, hit.T, 1e-12)
		require.Equal(t, MakeVec2(-1, 0), hit.N)
	})

	t.Run("diagonal hit", func(t *testing.T) {
		r := MakeRay(MakeVec2(-3, -3), MakeVec2(1, 1), 10.0)

		var hit RayHit
		require.True(t, RayCastAABB(&hit, r, bb, nil))
		p := r.EndPoint(hit.T)
		require.InDelta(t, -1.0, p.X, 1e-9)
		require.InDelta(t, -1.0, p.Y, 1e-9)
	})

	t.Run("parallel miss", func(t *testing.T) {
		r := MakeRay(MakeVec2(-3, 2), MakeVec2(1, 0), 10.0)
		var hit RayHit
		require.False(t, RayCastAABB(&hit, r, bb, nil))
	})

	t.Run("origin inside reports no hit", func(t *testing.T) {
		r := MakeRay(MakeVec2(0, 0), MakeVec2(1, 0), 10.0)
		var hit RayHit
		require.False(t, RayCastAABB(&hit, r, bb, nil))
	})
}

func TestRayCastCapsule(t *testing.T) {
	c := MakeCapsule(MakeVec2(0, -1), MakeVec2(0, 1), 0.5)

	t.Run("side wall hit", func(t *testing.T) {
		r := MakeRay(MakeVec2(-3, 0), MakeVec2(1, 0), 10.0)

		var hit RayHit
		require.True(t, RayCastCapsule(&hit, r, c, nil))
		require.InDelta(t, 2.5, hit.T, 1e-9)
		require.InDelta(t, -1.0, hit.N.X, 1e-9)
	})

	t.Run("end cap hit", func(t *testing.T) {
		r := MakeRay(MakeVec2(0, -5), MakeVec2(0, 1), 10.0)

		var hit RayHit
		require.True(t, RayCastCapsule(&hit, r, c, nil))
		require.InDelta(t, 3.5, hit.T, 1e-9)
		require.InDelta(t, -1.0, hit.N.Y, 1e-9)
	})

	t.Run("miss beside the wall", func(t *testing.T) {
		r := MakeRay(MakeVec2(-3, 2), MakeVec2(1, 0), 10.0)
		var hit RayHit
		require.False(t, RayCastCapsule(&hit, r, c, nil))
	})

	t.Run("origin inside reports no hit", func(t *testing.T) {
		r := MakeRay(MakeVec2(0, 0), MakeVec2(1, 0), 10.0)
		var hit RayHit
		require.False(t, RayCastCapsule(&hit, r, c, nil))
	})

	t.Run("degenerate spine acts as a circle", func(t *testing.T) {
		point := MakeCapsule(MakeVec2(0, 0), MakeVec2(0, 0), 0.5)
		r := MakeRay(MakeVec2(-3, 0), MakeVec2(1, 0), 10.0)

		var hit RayHit
		require.True(t, RayCastCapsule(&hit, r, point, nil))
		require.InDelta(t, 2.5, hit.T, 1e-9)
	})
}

func TestRayCastPoly(t *testing.T) {
	p := MakeBoxPoly(1, 1)

	t.Run("face hit", func(t *testing.T) {
		r := MakeRay(MakeVec2(-3, 0), MakeVec2(1, 0), 10.0)

		var hit RayHit
		require.True(t, RayCastPoly(&hit, r, &p, nil))
		require.InDelta(t, 2.0, hit.T, 1e-9)
		require.InDelta(t, -1.0, hit.N.X, 1e-9)
	})

	t.Run("rotated polygon", func(t *testing.T) {
		xf := MakeTransform(MakeVec2(0, 0), 0.25*math.Pi)
		r := MakeRay(MakeVec2(-3, 0), MakeVec2(1, 0), 10.0)

		var hit RayHit
		require.True(t, RayCastPoly(&hit, r, &p, &xf))
		// The diamond's left corner is at distance sqrt(2) from the center.
		require.InDelta(t, 3.0-math.Sqrt2, hit.T, 1e-6)
	})

	t.Run("origin inside reports no hit", func(t *testing.T) {
		r := MakeRay(MakeVec2(0, 0), MakeVec2(1, 0), 10.0)
		var hit RayHit
		require.False(t, RayCastPoly(&hit, r, &p, nil))
	})

	t.Run("out of reach", func(t *testing.T) {
		r := MakeRay(MakeVec2(-10, 0), MakeVec2(1, 0), 5.0)
		var hit RayHit
		require.False(t, RayCastPoly(&hit, r, &p, nil))
	})
}

func TestCastRayDispatch(t *testing.T) {
	r := MakeRay(MakeVec2(-5, 0), MakeVec2(1, 0), 20.0)

	shapes := []struct {
		name  string
		shape Shape
		wantT float64
	}{
		{"circle", MakeCircle(MakeVec2(0, 0), 1), 4.0},
		{"aabb", MakeAABB(MakeVec2(-1, -1), MakeVec2(1, 1)), 4.0},
		{"capsule", MakeCapsule(MakeVec2(0, -1), MakeVec2(0, 1), 1.0), 4.0},
	}

	for _, tc := range shapes {
		t.Run(tc.name, func(t *testing.T) {
			var hit RayHit
			require.True(t, CastRay(&hit, r, tc.shape, nil))
			require.InDelta(t, tc.wantT, hit.T, 1e-9)
		})
	}

	t.Run("poly", func(t *testing.T) {
		p := MakeBoxPoly(1, 1)
		var hit RayHit
		require.True(t, CastRay(&hit, r, &p, nil))
		require.InDelta(t, 4.0, hit.T, 1e-9)
	})
}
