package collide2d

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvexHull(t *testing.T) {
	t.Run("interior point is discarded", func(t *testing.T) {
		pts := []Vec2{
			MakeVec2(0, 0),
			MakeVec2(2, 0),
			MakeVec2(2, 2),
			MakeVec2(0, 2),
			MakeVec2(1, 1),
		}

		hull := ConvexHull(pts)
		require.Len(t, hull, 4)
		require.NotContains(t, hull, 4)

		// Counter-clockwise, starting from the rightmost lowest point.
		require.Equal(t, []int{1, 2, 3, 0}, hull)
	})

	t.Run("collinear input has no hull", func(t *testing.T) {
		pts := []Vec2{
			MakeVec2(0, 0),
			MakeVec2(1, 1),
			MakeVec2(2, 2),
			MakeVec2(3, 3),
		}
		require.Nil(t, ConvexHull(pts))
	})

	t.Run("too few points", func(t *testing.T) {
		require.Nil(t, ConvexHull([]Vec2{MakeVec2(0, 0), MakeVec2(1, 0)}))
	})

	t.Run("collinear edge point is skipped", func(t *testing.T) {
		pts := []Vec2{
			MakeVec2(0, 0),
			MakeVec2(1, 0), // on the bottom edge
			MakeVec2(2, 0),
			MakeVec2(1, 2),
		}
		hull := ConvexHull(pts)
		require.Len(t, hull, 3)
		require.NotContains(t, hull, 1)
	})
}

func TestMakePolyFromPoints(t *testing.T) {
	t.Run("valid polygon", func(t *testing.T) {
		pts := []Vec2{
			MakeVec2(-1, -1),
			MakeVec2(1, -1),
			MakeVec2(1, 1),
			MakeVec2(-1, 1),
			MakeVec2(0, 0),
		}

		p, ok := MakePolyFromPoints(pts)
		require.True(t, ok)
		require.Equal(t, 4, p.Count)
		require.True(t, p.Validate())

		// Every normal is unit length and points away from the centroid.
		c := p.Centroid()
		for i := 0; i < p.Count; i++ {
			require.InDelta(t, 1.0, p.Norms[i].Length(), 1e-12)
			require.Greater(t, Vec2Dot(p.Norms[i], Vec2Sub(p.Verts[i], c)), 0.0)
		}
	})

	t.Run("duplicates are welded", func(t *testing.T) {
		pts := []Vec2{
			MakeVec2(0, 0),
			MakeVec2(0, 0),
			MakeVec2(2, 0),
			MakeVec2(1, 2),
		}
		p, ok := MakePolyFromPoints(pts)
		require.True(t, ok)
		require.Equal(t, 3, p.Count)
	})

	t.Run("degenerate input fails", func(t *testing.T) {
		_, ok := MakePolyFromPoints([]Vec2{
			MakeVec2(0, 0),
			MakeVec2(1, 0),
			MakeVec2(2, 0),
		})
		require.False(t, ok)
	})
}
