package topology

import (
	"fmt"

	"github.com/katalvlaran/tnopt/contract"
)

const (
	methodRandomRegular     = "RandomRegular"
	minRRTensors            = 1
	maxStubMatchingAttempts = 3
)

// RandomRegular builds a d-regular simple tensor network over n tensors
// via stub-matching with bounded retries: n*d stubs (each tensor repeated
// d times) are shuffled and paired consecutively; a pairing is accepted
// only if it contains no self-pair and no duplicate pair, else the stubs
// are reshuffled, for at most maxStubMatchingAttempts shuffles in total;
// if none is accepted, ErrConstructFailed is returned.
//
// n must be >= 1, d must be in [0,n), and n*d must be even. A seeded RNG
// (WithSeed) is required.
//
// Complexity: ~O(n*d) per attempt; attempts are constant-bounded.
func RandomRegular(n, d int, opts ...TopoOption) ([]contract.TensorSpec, error) {
	if n < minRRTensors {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomRegular, n, minRRTensors, ErrTooFewTensors)
	}
	if d < 0 || d >= n {
		return nil, fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", methodRandomRegular, n, d, ErrInvalidDegree)
	}
	if (n*d)%2 != 0 {
		return nil, fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", methodRandomRegular, n, d, ErrInvalidDegree)
	}
	cfg := newTopoConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomRegular, ErrNeedRandSource)
	}

	b := newNetworkBuilder(n, cfg.bondDim)

	stubCount := n * d
	if stubCount == 0 {
		b.ensureNonEmpty()
		return b.specs(), nil
	}

	stubs := make([]int, stubCount)
	for i, pos := 0, 0; i < n; i++ {
		for k := 0; k < d; k++ {
			stubs[pos] = i
			pos++
		}
	}

	rng := cfg.rng
	for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
		rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		valid := true
		seen := make(map[[2]int]struct{}, stubCount/2)
		for i := 0; i < stubCount; i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u == v {
				valid = false
				break
			}
			if u > v {
				u, v = v, u
			}
			key := [2]int{u, v}
			if _, dup := seen[key]; dup {
				valid = false
				break
			}
			seen[key] = struct{}{}
		}
		if !valid {
			continue
		}

		for i := 0; i < stubCount; i += 2 {
			b.bond(stubs[i], stubs[i+1])
		}
		b.ensureNonEmpty()
		return b.specs(), nil
	}

	return nil, fmt.Errorf("%s: failed to construct after %d attempts: %w",
		methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
}
