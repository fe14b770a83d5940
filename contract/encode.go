package contract

// Encoded is the structural form Encode reduces a tensor network to: every
// tensor's original Index values replaced by dense integer labels, plus the
// DimTable those labels resolve against. Both the per-tensor sorted-vector
// and bitset representations are built up front so DepthFirst and
// BreadthFirst can each use whichever suits their search without re-walking
// the input.
type Encoded struct {
	N       int
	Dims    DimTable
	Vectors []LabelVector
	Bitsets []LabelBitset
}

// Encode assigns each distinct Index identity (by ID()) a dense label in
// [1, M], in first-seen order across tensors, and records every label's
// dimension the first time it is seen.
//
// Returns ErrInvalidInput if tensors is empty, any tensor carries zero
// indices, or any index reports a non-positive dimension. Index.ID() must
// be a comparable value; a non-comparable ID causes a runtime panic, as
// with any other misuse of Go map keys.
func Encode(tensors []TensorSpec) (Encoded, error) {
	if len(tensors) == 0 {
		return Encoded{}, ErrInvalidInput
	}

	labelOf := make(map[any]int)
	dims := make(DimTable)
	next := 1

	vectors := make([]LabelVector, len(tensors))
	bitsets := make([]LabelBitset, len(tensors))

	for i, t := range tensors {
		if len(t) == 0 {
			return Encoded{}, ErrInvalidInput
		}
		labels := make([]int, 0, len(t))
		for _, idx := range t {
			dim := idx.Dim()
			if dim <= 0 {
				return Encoded{}, ErrInvalidInput
			}
			id := idx.ID()
			label, seen := labelOf[id]
			if !seen {
				label = next
				next++
				labelOf[id] = label
				dims[label] = dim
			}
			labels = append(labels, label)
		}
		vectors[i] = NewLabelVector(labels)
		bitsets[i] = NewLabelBitset(labels)
	}

	return Encoded{N: len(tensors), Dims: dims, Vectors: vectors, Bitsets: bitsets}, nil
}
