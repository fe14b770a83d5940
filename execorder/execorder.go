// Package execorder flattens a contract.Tree into a linear execution
// order: the sequence of pairwise contraction steps a numerical backend
// would actually perform, each naming its two operand positions in the
// conventional growing list [input tensor 1, ..., input tensor N, step 1
// result, step 2 result, ...].
//
// It also defensively validates a Tree's structural invariants (every
// leaf visited exactly once, no node revisited via two different paths),
// using a simplified two-state collapse of the usual three-color DFS cycle
// check for general directed graphs, applied here to the strictly-binary
// contraction tree.
package execorder

import "github.com/katalvlaran/tnopt/contract"

// CheckAcyclic walks tree once, verifying that no node is reached twice.
// This is a simplified, two-state collapse of the usual three-color DFS
// cycle check for general directed graphs: there, a cross-
// edge to an already-finished (black) node is legal DAG sharing, only a
// back-edge to a still-open (gray) node is a cycle. A contraction tree
// permits no sharing at all (every contraction consumes its operands
// exactly once), so here any revisit — gray or black — is invalid.
//
// Returns contract.ErrInternalInvariant on a detected revisit.
func CheckAcyclic(tree *contract.Tree) error {
	visited := make(map[*contract.Tree]bool)
	var visit func(t *contract.Tree) error
	visit = func(t *contract.Tree) error {
		if t == nil {
			return nil
		}
		if visited[t] {
			return contract.ErrInternalInvariant
		}
		visited[t] = true
		if !t.IsLeaf() {
			children := t.Children()
			if err := visit(children[0]); err != nil {
				return err
			}
			if err := visit(children[1]); err != nil {
				return err
			}
		}
		return nil
	}
	return visit(tree)
}

// ValidateLeaves checks that tree's leaves are exactly a permutation of
// the input tensor indices 1..n: every input tensor contracted exactly
// once, none skipped or duplicated.
func ValidateLeaves(tree *contract.Tree, n int) error {
	leaves := tree.Leaves()
	if len(leaves) != n {
		return contract.ErrInvalidInput
	}
	seen := make([]bool, n+1)
	for _, l := range leaves {
		if l < 1 || l > n || seen[l] {
			return contract.ErrInvalidInput
		}
		seen[l] = true
	}
	return nil
}

// Step is one pairwise contraction: its Pair names the two operand
// positions (in the growing list convention shared with contract.Pair),
// and Position is the list position its own result occupies, for
// reference by later steps.
type Step struct {
	Position int
	Pair     contract.Pair
}

// Flatten validates tree (CheckAcyclic, ValidateLeaves) and returns its
// execution order: a post-order walk where every step's operands are
// guaranteed to already have a position (either an original input tensor
// or an earlier step's result) by the time the step appears.
//
// Complexity: O(n).
func Flatten(tree *contract.Tree, n int) ([]Step, error) {
	if err := CheckAcyclic(tree); err != nil {
		return nil, err
	}
	if err := ValidateLeaves(tree, n); err != nil {
		return nil, err
	}

	var steps []Step
	nextPos := n

	var positionOf func(t *contract.Tree) int
	positionOf = func(t *contract.Tree) int {
		if t.IsLeaf() {
			return t.LeafIndex() - 1
		}
		children := t.Children()
		a := positionOf(children[0])
		b := positionOf(children[1])
		pos := nextPos
		nextPos++
		steps = append(steps, Step{Position: pos, Pair: contract.Pair{A: a, B: b}})
		return pos
	}
	positionOf(tree)

	return steps, nil
}

// FlattenSequence is Flatten's result reshaped into a contract.PairSequence,
// directly usable as AssembleTree's input: AssembleTree(n, seq) round-trips
// back to a tree with the same shape and leaf order as the one Flatten
// started from.
func FlattenSequence(tree *contract.Tree, n int) (contract.PairSequence, error) {
	steps, err := Flatten(tree, n)
	if err != nil {
		return nil, err
	}
	seq := make(contract.PairSequence, len(steps))
	for i, s := range steps {
		seq[i] = s.Pair
	}
	return seq, nil
}
