// Package contract computes optimal pairwise contraction orders for tensor
// networks with a consistent API, strict sentinel errors, and deterministic
// behavior.
//
// # What & Why
//
// Given N tensors, each described by the list of indices it carries (with
// known positive integer dimensions), contract finds the binary tree that
// describes the order of pairwise contractions minimizing total arithmetic
// cost. An index shared by exactly two tensors is summed out (contracted)
// when those two tensors are multiplied; the result of a contraction is a
// new pseudo-tensor whose indices are the symmetric difference of its
// operands' index sets.
//
// # Algorithms & Complexity
//
//	DepthFirst (branch-and-bound, exact) — for any N
//	  Time:   worst case (2N-3)!! orderings, pruned by an admissible bound.
//	  Memory: O(N) path + optional O(N^2) pairwise-cost cache.
//	  Caching has no effect on the returned cost, only on runtime.
//
//	BreadthFirst (subset dynamic programming, exact) — for any N, N<=63
//	  Time:   O(3^N) subset-pair combinations times one cost-kernel call.
//	  Memory: O(2^N) for the cost/tree/index caches.
//
// Both dispatch through a shared three-tensor analytic solver for N=3, and
// return the trivial one/two-leaf tree directly for N in {1,2} (matching
// the package's fixed N=2 base-case cost convention; see DepthFirst).
//
// # Determinism & Stability
//
//   - No randomness anywhere in the core search. Depth-first pruning uses a
//     strict "reject on tie" rule (>=), so the first-explored optimum among
//     ties is the one returned; breadth-first's subset DP only ever lowers a
//     cost on strict improvement, so the earlier-visited pairing wins ties.
//   - Permuting the input tensor order permutes leaf labels in the returned
//     tree correspondingly and leaves the cost unchanged.
//
// # Input Requirements
//
//	Every tensor must list at least one index; every index must report a
//	positive integer dimension. Indices are compared by identity (ID()),
//	not by dimension: two Index values with the same ID() denote the same
//	axis even across different tensors, and must then report the same
//	dimension (first-seen dimension wins if dimensions are never queried
//	twice; the encoder does not attempt to reconcile conflicting reports).
//
// # Errors (strict sentinels)
//
//	ErrInvalidInput, ErrCostOverflow, ErrInternalInvariant, ErrSizeTooLarge,
//	ErrUnsupportedStrategy.
//
// Errors are never wrapped with fmt.Errorf where a sentinel suffices.
//
// # Results
//
//	DepthFirst and BreadthFirst both return (Tree, cost int64, error).
//	Tree.IsLeaf()==true identifies an input tensor by its 1-based Leaf index;
//	otherwise Children()[0] and Children()[1] are the two contracted subtrees.
//
// # Out of scope
//
// contract does not perform numerical contraction (no tensor values ever
// appear here), does not parse user-facing tensor expressions, does not
// choose approximate/heuristic orderings, and does not parallelize search.
// See the topology, graphview, and execorder packages for fixture
// generation, network introspection, and execution-order flattening built
// on top of this package.
package contract
