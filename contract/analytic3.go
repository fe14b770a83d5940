package contract

// threeWayOrderings enumerates the 3 distinct binary trees over 3 leaves:
// each entry names the two leaf positions contracted first, the remaining
// position joining the result second. Order here is the exploration (and
// therefore tie-break) order, matching spec candidate numbering 1, 2, 3
// (candidate1 pairs leaves 0,1 first; candidate2 pairs 1,2; candidate3
// pairs 2,0) so that a tie between two candidates is won by the
// lower-numbered one.
var threeWayOrderings = [3][2]int{
	{0, 1}, // candidate1: [2, [0,1]]
	{1, 2}, // candidate2: [0, [1,2]]
	{2, 0}, // candidate3: [1, [2,0]]
}

// analyticThree is the closed-form N=3 solver every depth-first and
// breadth-first search eventually bottoms out on: with only 3 tensors
// there are exactly 3 candidate contraction orders, so both generalized
// searches would degenerate to this same enumeration. Computing it
// directly skips their bookkeeping entirely.
//
// sets and leaves must have matching length-3 indices: sets[i] is the
// index set of the tensor identified by leaves[i]. The returned tree has
// the shape [third, [first, second]]: the tensor left out of the first
// pair is the left child of the root.
func analyticThree(sets [3]IndexSet, leaves [3]int, dims DimTable) (*Tree, int64, error) {
	var (
		bestTree *Tree
		bestCost int64
		haveBest bool
	)

	for _, ord := range threeWayOrderings {
		first, second := ord[0], ord[1]
		third := 3 - first - second

		firstResult, err := PairCost(sets[first], sets[second], dims)
		if err != nil {
			return nil, 0, err
		}
		secondResult, err := PairCost(firstResult.Result, sets[third], dims)
		if err != nil {
			return nil, 0, err
		}

		total, err := addChecked(firstResult.Cost, secondResult.Cost)
		if err != nil {
			return nil, 0, err
		}

		if !haveBest || total < bestCost {
			tree := Node(Leaf(leaves[third]), Node(Leaf(leaves[first]), Leaf(leaves[second])))
			bestTree = tree
			bestCost = total
			haveBest = true
		}
	}

	if !haveBest {
		return nil, 0, ErrInternalInvariant
	}
	return bestTree, bestCost, nil
}
