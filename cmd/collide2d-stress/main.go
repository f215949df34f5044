// Stress driver for the narrow-phase queries: generates a random shape soup
// and times overlap tests, manifold generation, ray casts and time-of-impact
// sweeps over it.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Trivaxy/collide2d"
)

// Config drives a stress run. All fields are optional; the zero value is
// filled with defaults.
type Config struct {
	Seed       int64   `yaml:"seed"`
	Shapes     int     `yaml:"shapes"`
	Spread     float64 `yaml:"spread"`
	Iterations int     `yaml:"iterations"`
	Rays       int     `yaml:"rays"`
	Sweeps     int     `yaml:"sweeps"`
}

func defaultConfig() Config {
	return Config{
		Seed:       42,
		Shapes:     500,
		Spread:     50.0,
		Iterations: 10,
		Rays:       1000,
		Sweeps:     1000,
	}
}

// LoadConfig reads a YAML config, filling unset fields with defaults.
func LoadConfig(r io.Reader) (Config, error) {
	c := defaultConfig()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config")
	shapes := flag.Int("shapes", 0, "override the shape count")
	seed := flag.Int64("seed", 0, "override the random seed")
	flag.Parse()

	logger, err := newLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg := defaultConfig()
	if *configPath != "" {
		f, err := os.Open(*configPath)
		if err != nil {
			logger.Fatal("open config", zap.Error(err))
		}
		cfg, err = LoadConfig(f)
		f.Close()
		if err != nil {
			logger.Fatal("parse config", zap.Error(err))
		}
	}
	if *shapes > 0 {
		cfg.Shapes = *shapes
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	logger.Info("stress run",
		zap.Int64("seed", cfg.Seed),
		zap.Int("shapes", cfg.Shapes),
		zap.Float64("spread", cfg.Spread),
		zap.Int("iterations", cfg.Iterations),
	)

	rng := rand.New(rand.NewSource(cfg.Seed))
	soup := makeSoup(rng, cfg.Shapes, cfg.Spread)

	runOverlap(logger, cfg, soup)
	runManifolds(logger, cfg, soup)
	runRays(logger, cfg, rng, soup)
	runSweeps(logger, cfg, rng, soup)
}

func newLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}
	config.DisableCaller = true
	return config.Build()
}

// makeSoup generates a mix of all four shape kinds scattered over a square of
// the given half-width.
func makeSoup(rng *rand.Rand, count int, spread float64) []collide2d.Shape {
	pos := func() collide2d.Vec2 {
		return collide2d.MakeVec2(
			(rng.Float64()*2.0-1.0)*spread,
			(rng.Float64()*2.0-1.0)*spread,
		)
	}

	soup := make([]collide2d.Shape, 0, count)
	for i := 0; i < count; i++ {
		switch i % 4 {
		case 0:
			soup = append(soup, collide2d.MakeCircle(pos(), 0.5+rng.Float64()))

		case 1:
			c := pos()
			e := collide2d.MakeVec2(0.5+rng.Float64(), 0.5+rng.Float64())
			soup = append(soup, collide2d.MakeAABB(collide2d.Vec2Sub(c, e), collide2d.Vec2Add(c, e)))

		case 2:
			a := pos()
			b := collide2d.Vec2Add(a, collide2d.MakeVec2(rng.Float64()*2.0, rng.Float64()*2.0))
			soup = append(soup, collide2d.MakeCapsule(a, b, 0.3+rng.Float64()*0.5))

		default:
			c := pos()
			pts := make([]collide2d.Vec2, 6)
			for j := range pts {
				pts[j] = collide2d.Vec2Add(c, collide2d.MakeVec2(
					(rng.Float64()*2.0-1.0)*1.5,
					(rng.Float64()*2.0-1.0)*1.5,
				))
			}
			if p, ok := collide2d.MakePolyFromPoints(pts); ok {
				soup = append(soup, &p)
			} else {
				soup = append(soup, collide2d.MakeCircle(c, 1.0))
			}
		}
	}
	return soup
}

func runOverlap(logger *zap.Logger, cfg Config, soup []collide2d.Shape) {
	start := time.Now()
	hits := 0
	checks := 0

	for iter := 0; iter < cfg.Iterations; iter++ {
		hits = 0
		checks = 0
		for i := 0; i < len(soup); i++ {
			for j := i + 1; j < len(soup); j++ {
				checks++
				if collide2d.TestOverlap(soup[i], nil, soup[j], nil) {
					hits++
				}
			}
		}
	}
	elapsed := time.Since(start) / time.Duration(cfg.Iterations)

	logger.Info("overlap pass",
		zap.Int("checks", checks),
		zap.Int("hits", hits),
		zap.Duration("per_iteration", elapsed),
	)
}

func runManifolds(logger *zap.Logger, cfg Config, soup []collide2d.Shape) {
	start := time.Now()
	contacts := 0

	var m collide2d.Manifold
	for iter := 0; iter < cfg.Iterations; iter++ {
		contacts = 0
		for i := 0; i < len(soup); i++ {
			for j := i + 1; j < len(soup); j++ {
				collide2d.Collide(&m, soup[i], nil, soup[j], nil)
				contacts += m.Count
			}
		}
	}
	elapsed := time.Since(start) / time.Duration(cfg.Iterations)

	logger.Info("manifold pass",
		zap.Int("contact_points", contacts),
		zap.Duration("per_iteration", elapsed),
	)
}

func runRays(logger *zap.Logger, cfg Config, rng *rand.Rand, soup []collide2d.Shape) {
	start := time.Now()
	hits := 0

	var hit collide2d.RayHit
	for i := 0; i < cfg.Rays; i++ {
		origin := collide2d.MakeVec2(
			(rng.Float64()*2.0-1.0)*cfg.Spread*1.5,
			(rng.Float64()*2.0-1.0)*cfg.Spread*1.5,
		)
		dir := collide2d.MakeVec2(rng.Float64()*2.0-1.0, rng.Float64()*2.0-1.0)
		ray := collide2d.MakeRay(origin, dir, cfg.Spread*4.0)

		for _, s := range soup {
			if collide2d.CastRay(&hit, ray, s, nil) {
				hits++
			}
		}
	}

	logger.Info("ray pass",
		zap.Int("rays", cfg.Rays),
		zap.Int("hits", hits),
		zap.Duration("elapsed", time.Since(start)),
	)
}

func runSweeps(logger *zap.Logger, cfg Config, rng *rand.Rand, soup []collide2d.Shape) {
	start := time.Now()
	impacts := 0

	for i := 0; i < cfg.Sweeps; i++ {
		a := soup[rng.Intn(len(soup))]
		b := soup[rng.Intn(len(soup))]
		v := collide2d.MakeVec2(
			(rng.Float64()*2.0-1.0)*cfg.Spread,
			(rng.Float64()*2.0-1.0)*cfg.Spread,
		)

		if collide2d.TimeOfImpactShapes(a, nil, collide2d.MakeVec2(0, 0), b, nil, v, true) < 1.0 {
			impacts++
		}
	}

	logger.Info("sweep pass",
		zap.Int("sweeps", cfg.Sweeps),
		zap.Int("impacts", impacts),
		zap.Duration("elapsed", time.Since(start)),
	)
}
