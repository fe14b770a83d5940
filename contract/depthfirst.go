package contract

import "fmt"

// dfEngine holds all branch-and-bound search state. A dedicated struct
// (rather than closures capturing loop variables) keeps the recursion's
// dependencies explicit and the hot path predictable.
type dfEngine struct {
	n    int
	dims DimTable

	useCache bool
	cache    map[string]PairResult

	haveBest bool
	bestCost int64
	bestSeq  PairSequence

	err error
}

// cacheKey builds a cache key from the two operand sets in the order
// given, with no canonicalization: contracting (a,b) and (b,a) are cached
// as distinct entries. This trades a theoretical 2x cache-hit ceiling for
// a kernel with no ordering logic on the hot path.
func cacheKey(a, b IndexSet) string {
	return fmt.Sprintf("%v|%v", a.Labels(), b.Labels())
}

func (e *dfEngine) pairCost(a, b IndexSet) (PairResult, error) {
	if !e.useCache {
		return PairCost(a, b, e.dims)
	}
	key := cacheKey(a, b)
	if pr, ok := e.cache[key]; ok {
		return pr, nil
	}
	pr, err := PairCost(a, b, e.dims)
	if err != nil {
		return PairResult{}, err
	}
	e.cache[key] = pr
	return pr, nil
}

// search explores every way to contract one pair out of the active
// operand list, pruning any partial cost that has already reached the
// current incumbent: since every pairwise cost is non-negative, costSoFar
// is itself a valid admissible lower bound on the completed total.
//
// active holds positions into sets that are still live; path records the
// Pair choices made so far. Both are owned by the caller and restored
// (not just truncated) before search returns, so siblings see an
// unmodified slice.
func (e *dfEngine) search(active []int, sets map[int]IndexSet, path PairSequence, costSoFar int64) {
	if e.err != nil {
		return
	}
	if e.haveBest && costSoFar >= e.bestCost {
		return
	}
	if len(active) == 1 {
		if !e.haveBest || costSoFar < e.bestCost {
			e.haveBest = true
			e.bestCost = costSoFar
			e.bestSeq = append(PairSequence(nil), path...)
		}
		return
	}

	depth := len(path)
	newPos := e.n + depth

	for ai := 0; ai < len(active); ai++ {
		for aj := ai + 1; aj < len(active); aj++ {
			i, j := active[ai], active[aj]

			pr, err := e.pairCost(sets[i], sets[j])
			if err != nil {
				e.err = err
				return
			}
			newCost, err := addChecked(costSoFar, pr.Cost)
			if err != nil {
				e.err = err
				return
			}
			if e.haveBest && newCost >= e.bestCost {
				continue
			}

			nextActive := make([]int, 0, len(active)-1)
			for k, a := range active {
				if k == ai || k == aj {
					continue
				}
				nextActive = append(nextActive, a)
			}
			nextActive = append(nextActive, newPos)

			sets[newPos] = pr.Result
			path = append(path, Pair{A: i, B: j})

			e.search(nextActive, sets, path, newCost)

			path = path[:len(path)-1]
			delete(sets, newPos)

			if e.err != nil {
				return
			}
		}
	}
}

// DepthFirst finds an optimal contraction order via exhaustive
// branch-and-bound over pairwise contraction choices.
//
// For N in {1,2} the trivial tree is returned directly (cost 0 in both
// cases, per this package's fixed base-case convention). For N==3 the
// search is skipped in favor of the closed-form 3-way enumeration, which
// explores the exact same 3 candidate trees with none of the recursion
// bookkeeping. For N>=4 the general search runs, with opts.EnableCaching
// toggling the pairwise-cost memo (runtime only, never changes the
// returned cost) and opts.MaxDepthFirstN optionally rejecting inputs
// above a caller-chosen size before any work begins.
//
// Ties are broken by exploration order: a strictly-worse-or-equal partial
// cost is pruned, so among equal-cost orderings the first one explored
// (ascending active-pair order at every depth) is the one returned.
func DepthFirst(enc Encoded, opts Options) (*Tree, int64, error) {
	n := enc.N
	if n <= 0 {
		return nil, 0, ErrInvalidInput
	}
	if opts.MaxDepthFirstN > 0 && n > opts.MaxDepthFirstN {
		return nil, 0, ErrInvalidInput
	}

	if n == 1 {
		return Leaf(1), 0, nil
	}
	if n == 2 {
		return Node(Leaf(1), Leaf(2)), 0, nil
	}
	if n == 3 {
		sets := [3]IndexSet{enc.Vectors[0], enc.Vectors[1], enc.Vectors[2]}
		leaves := [3]int{1, 2, 3}
		return analyticThree(sets, leaves, enc.Dims)
	}

	sets := make(map[int]IndexSet, 2*n-1)
	active := make([]int, n)
	for i := 0; i < n; i++ {
		sets[i] = enc.Vectors[i]
		active[i] = i
	}

	e := &dfEngine{
		n:        n,
		dims:     enc.Dims,
		useCache: opts.EnableCaching,
	}
	if e.useCache {
		e.cache = make(map[string]PairResult)
	}

	e.search(active, sets, make(PairSequence, 0, n-1), 0)
	if e.err != nil {
		return nil, 0, e.err
	}
	if !e.haveBest {
		return nil, 0, ErrInternalInvariant
	}

	tree, err := AssembleTree(n, e.bestSeq)
	if err != nil {
		return nil, 0, err
	}
	return tree, e.bestCost, nil
}
