// Package topology generates tensor-network fixtures (contract.TensorSpec
// lists) in the canonical shapes used to exercise the contraction-order
// optimizers: chains, rings, complete graphs, stars, grids, and randomized
// sparse/regular networks.
//
// Error policy: only sentinel variables are exposed; callers branch via
// errors.Is. Sentinels are never wrapped with formatted strings at
// definition site; call sites attach context with %w.
package topology

import "errors"

// ErrTooFewTensors indicates n (or a derived vertex count) is below the
// minimum the requested topology requires.
var ErrTooFewTensors = errors.New("topology: too few tensors requested")

// ErrInvalidProbability indicates a probability parameter outside [0,1].
var ErrInvalidProbability = errors.New("topology: probability out of range")

// ErrNeedRandSource indicates a stochastic generator requires a seeded RNG.
var ErrNeedRandSource = errors.New("topology: random source required")

// ErrInvalidDegree indicates a requested regular-graph degree is out of
// the valid [0, n) range, or n*d is odd (no simple regular graph exists).
var ErrInvalidDegree = errors.New("topology: invalid degree for regular graph")

// ErrConstructFailed indicates a bounded-retry stochastic construction
// (RandomRegular's stub matching) failed to realize a valid pairing.
var ErrConstructFailed = errors.New("topology: construction failed")
