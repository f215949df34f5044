package main

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Trivaxy/collide2d"
)

func TestLoadConfig(t *testing.T) {
	t.Run("fields override defaults", func(t *testing.T) {
		in := strings.NewReader("seed: 7\nshapes: 100\nspread: 10.5\n")
		cfg, err := LoadConfig(in)
		require.NoError(t, err)
		require.Equal(t, int64(7), cfg.Seed)
		require.Equal(t, 100, cfg.Shapes)
		require.Equal(t, 10.5, cfg.Spread)
		// Unset fields keep defaults.
		require.Equal(t, defaultConfig().Iterations, cfg.Iterations)
	})

	t.Run("bad yaml errors", func(t *testing.T) {
		_, err := LoadConfig(strings.NewReader("shapes: [not a number"))
		require.Error(t, err)
	})
}

func TestMakeSoup(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	soup := makeSoup(rng, 40, 20.0)
	require.Len(t, soup, 40)

	kinds := map[collide2d.ShapeType]int{}
	for _, s := range soup {
		kinds[s.Type()]++
	}
	require.Len(t, kinds, 4)
}
