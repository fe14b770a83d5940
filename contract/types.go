// Package contract defines the common types, configuration options, and
// sentinel errors shared by the depth-first and breadth-first contraction
// optimizers.
//
// Design goals:
//   - Structural only: no tensor values are ever handled, only index sets
//     and their dimensions.
//   - Determinism: both optimizers are deterministic; ties are broken by
//     exploration order (see doc.go).
//   - Zero surprises: Options has a single, well-documented toggle today and
//     is built to grow without breaking callers (DefaultOptions()).
package contract

// Index is an opaque index identity with a positive integer dimension.
// Two Index values denote the same axis iff ID() compares equal under Go's
// built-in equality (ID must return a comparable value: a string, an int,
// a pointer, or a small comparable struct).
type Index interface {
	// ID returns this index's stable identity. Must be comparable.
	ID() any
	// Dim returns this index's dimension. Must be >= 1.
	Dim() int
}

// TensorSpec is a single tensor expressed as an ordered list of indices.
// Duplicate labels within one TensorSpec are not expected; behavior is
// undefined if they occur (see spec design notes on symmetric difference).
type TensorSpec = []Index

// DimTable maps an internal integer label to its dimension. Labels are
// dense integers assigned in [1, M] by Encode, where M is the number of
// distinct indices seen across all input tensors.
type DimTable map[int]int

// Pair identifies two positions in the *growing working tensor list* (the
// original N tensors followed by each partial contraction chosen so far,
// in the order chosen) to be contracted next. A and B are absolute
// positions at the moment the pair is recorded, not positions in whatever
// "remaining" list happens to be live at that point.
type Pair struct {
	A int
	B int
}

// PairSequence is an ordered list of N-1 Pairs that reduces N input tensors
// to one, as described in Pair's doc comment.
type PairSequence []Pair

// Options configures the optimizers. The zero value is usable; use
// DefaultOptions for documented defaults.
type Options struct {
	// EnableCaching turns on the depth-first optimizer's pairwise-cost
	// cache. It never changes the returned cost, only runtime: see
	// DepthFirst's doc comment.
	EnableCaching bool

	// MaxDepthFirstN guards the depth-first search's practical ceiling; 0
	// means "no guard" (the caller accepts exponential blowup). This is a
	// soft courtesy limit, not a correctness requirement of the algorithm.
	MaxDepthFirstN int
}

// DefaultOptions returns Options with safe, conservative defaults:
// caching enabled, no depth-first size guard.
func DefaultOptions() Options {
	return Options{
		EnableCaching:  true,
		MaxDepthFirstN: 0,
	}
}
