package contract

import (
	"math/bits"

	"gonum.org/v1/gonum/stat/combin"
)

// buildSubsetTree reconstructs the contraction tree for mask from the split
// table filled in by BreadthFirst's main DP loop.
func buildSubsetTree(mask int, split []int) *Tree {
	if bits.OnesCount(uint(mask)) == 1 {
		return Leaf(bits.TrailingZeros(uint(mask)) + 1)
	}
	sub := split[mask]
	comp := mask ^ sub
	return Node(buildSubsetTree(sub, split), buildSubsetTree(comp, split))
}

// BreadthFirst finds an optimal contraction order via dynamic programming
// over subsets of the N input tensors (Held-Karp-style subset DP, adapted
// from shortest-Hamiltonian-path subset enumeration to pairwise tensor
// contraction). dp[mask] holds the minimum cost to contract every tensor
// named by mask into one pseudo-tensor; split[mask] records the winning
// partition of mask into two already-solved sub-masks.
//
// Every mask considered here is a *tensor subset mask*: bit i set means
// "input tensor i participates", distinct from the per-tensor label
// bitsets (LabelBitset) used inside the cost kernel for a single tensor's
// index set.
//
// Complexity: O(3^N) subset-pair combinations (each mask's proper-submask
// enumeration visits every subset of that mask exactly once), O(2^N)
// memory for the dp/split/result tables. N must not exceed 63 (the
// package's subset-mask ceiling): ErrSizeTooLarge otherwise.
//
// N in {1,2} return the trivial tree directly with cost 0 (the same fixed
// base-case convention as DepthFirst); N==3 defers to the
// closed-form 3-way enumeration. Ties are broken by the sub-mask
// enumeration order (decreasing sub value, canonicalized sub <= comp):
// a strictly-worse-or-equal candidate never replaces the incumbent split.
func BreadthFirst(enc Encoded, opts Options) (*Tree, int64, error) {
	n := enc.N
	if n <= 0 {
		return nil, 0, ErrInvalidInput
	}
	if n > 63 {
		return nil, 0, ErrSizeTooLarge
	}

	if n == 1 {
		return Leaf(1), 0, nil
	}
	if n == 2 {
		return Node(Leaf(1), Leaf(2)), 0, nil
	}
	if n == 3 {
		sets := [3]IndexSet{enc.Bitsets[0], enc.Bitsets[1], enc.Bitsets[2]}
		leaves := [3]int{1, 2, 3}
		return analyticThree(sets, leaves, enc.Dims)
	}

	total := 1 << uint(n)
	dp := make([]int64, total)
	split := make([]int, total)
	sets := make([]IndexSet, total)

	for i := 0; i < n; i++ {
		mask := 1 << uint(i)
		dp[mask] = 0
		sets[mask] = enc.Bitsets[i]
	}

	for size := 2; size <= n; size++ {
		for _, combo := range combin.Combinations(n, size) {
			var mask int
			for _, idx := range combo {
				mask |= 1 << uint(idx)
			}

			var (
				bestCost   int64
				bestResult IndexSet
				bestSplit  int
				found      bool
			)

			for sub := (mask - 1) & mask; sub != 0; sub = (sub - 1) & mask {
				comp := mask ^ sub
				if sub > comp {
					continue // canonical: each partition considered once
				}

				pr, err := PairCost(sets[sub], sets[comp], enc.Dims)
				if err != nil {
					return nil, 0, err
				}
				partial, err := addChecked(dp[sub], dp[comp])
				if err != nil {
					return nil, 0, err
				}
				candidate, err := addChecked(partial, pr.Cost)
				if err != nil {
					return nil, 0, err
				}

				if !found || candidate < bestCost {
					found = true
					bestCost = candidate
					bestResult = pr.Result
					bestSplit = sub
				}
			}

			if !found {
				return nil, 0, ErrInternalInvariant
			}
			dp[mask] = bestCost
			sets[mask] = bestResult
			split[mask] = bestSplit
		}
	}

	full := total - 1
	return buildSubsetTree(full, split), dp[full], nil
}
