// Package contract — sentinel error set.
//
// Every error the package returns is one of the sentinels below, checked by
// callers via errors.Is. None of them are wrapped with fmt.Errorf at the
// point of definition; internal call sites may add %w context but must
// preserve errors.Is matching against the sentinel.
package contract

import "errors"

var (
	// ErrInvalidInput indicates a tensor listed a non-positive dimension, an
	// empty index list, or a leaf integer out of [1,N]. graphview.Build also
	// wraps this sentinel (alongside its own graphview.ErrOverSharedIndex)
	// when an index identity is shared by more than two tensors, so
	// errors.Is(err, ErrInvalidInput) matches that case too even though the
	// check itself runs in the graphview package, not here.
	ErrInvalidInput = errors.New("contract: invalid input")

	// ErrCostOverflow indicates the checked product D(A)*D(B)*D(R) driving a
	// pairwise contraction cost exceeded the platform integer range.
	ErrCostOverflow = errors.New("contract: cost computation overflowed")

	// ErrInternalInvariant indicates a sanity check failed (e.g. depth-first
	// best-cost monotonicity, or a malformed contraction tree detected by
	// execorder.CheckAcyclic). Indicates a bug; callers should treat as fatal.
	ErrInternalInvariant = errors.New("contract: internal invariant violated")

	// ErrSizeTooLarge indicates N exceeds the breadth-first optimizer's
	// 63-tensor subset-bitmask ceiling.
	ErrSizeTooLarge = errors.New("contract: breadth-first search supports at most 63 tensors")

	// ErrUnsupportedStrategy is returned by Solve's dispatch default arm when
	// the Strategy value is neither StrategyDepthFirst nor
	// StrategyBreadthFirst (e.g. a converted integer such as Strategy(99)).
	ErrUnsupportedStrategy = errors.New("contract: unsupported search strategy")
)
