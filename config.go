package collide

import (
	"io"
	"sync/atomic"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the numeric knobs of the library.
type Config struct {
	// Epsilon is the tolerance used when normalizing vectors and rejecting
	// degenerate geometry.
	Epsilon float64 `yaml:"epsilon"`
	// Subdivisions is used when a curved shape must be discretized and the
	// caller did not ask for a specific count.
	Subdivisions int `yaml:"subdivisions"`

	BVH BVHConfig `yaml:"bvh"`
}

// BVHConfig controls the binned builder used for composite shapes.
type BVHConfig struct {
	Bins     int `yaml:"bins"`
	LeafSize int `yaml:"leaf_size"`
}

func DefaultConfig() Config {
	return Config{
		Epsilon:      1e-7,
		Subdivisions: 10,
		BVH: BVHConfig{
			Bins:     8,
			LeafSize: 1,
		},
	}
}

func (c Config) Validate() error {
	if !(c.Epsilon > 0) {
		return errors.Errorf("epsilon must be positive, got %v", c.Epsilon)
	}
	if c.Subdivisions < 3 {
		return errors.Errorf("subdivisions must be at least 3, got %d", c.Subdivisions)
	}
	if c.BVH.Bins < 2 {
		return errors.Errorf("bvh.bins must be at least 2, got %d", c.BVH.Bins)
	}
	if c.BVH.LeafSize < 1 {
		return errors.Errorf("bvh.leaf_size must be at least 1, got %d", c.BVH.LeafSize)
	}
	return nil
}

// LoadConfig reads a YAML document on top of the defaults. Keys missing from
// the document keep their default value.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var current atomic.Pointer[Config]

func init() {
	cfg := DefaultConfig()
	current.Store(&cfg)
}

// Current returns the active configuration.
func Current() Config {
	return *current.Load()
}

// Configure replaces the active configuration. Shapes built before the call
// keep the structures they were built with.
func Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	current.Store(&cfg)
	return nil
}
