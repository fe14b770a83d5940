package topology

import "math/rand"

// TopoOption customizes a generator's config before it runs. As a rule,
// option constructors never panic and ignore nil/invalid inputs rather
// than erroring at option-application time; generators validate.
type TopoOption func(cfg *topoConfig)

// topoConfig holds the configurable parameters shared by every generator:
//   - bondDim: the dimension assigned to every shared index (a uniform
//     bond dimension; real tensor networks would vary this, but a single
//     knob keeps fixtures easy to reason about and is sufficient to
//     exercise the cost kernel, whose cost depends only on dimensions).
//   - rng: source of randomness for RandomSparse/RandomRegular (nil means
//     "no randomness available"; those two generators require it).
type topoConfig struct {
	bondDim int
	rng     *rand.Rand
}

const defaultBondDim = 2

func newTopoConfig(opts ...TopoOption) topoConfig {
	cfg := topoConfig{bondDim: defaultBondDim}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// WithBondDim sets the dimension assigned to every generated shared index.
// Non-positive values are ignored (the default is kept).
func WithBondDim(dim int) TopoOption {
	return func(cfg *topoConfig) {
		if dim > 0 {
			cfg.bondDim = dim
		}
	}
}

// WithSeed seeds a deterministic RNG for RandomSparse/RandomRegular. Every
// call with the same seed and the same generator options reproduces the
// identical network.
func WithSeed(seed int64) TopoOption {
	return func(cfg *topoConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}
