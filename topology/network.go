package topology

import (
	"fmt"

	"github.com/katalvlaran/tnopt/contract"
)

// tensorIndex is the smallest contract.Index implementation a generator
// needs: a named bond identified by a string label, with a fixed
// dimension shared by both tensors it connects.
type tensorIndex struct {
	id  string
	dim int
}

func (t tensorIndex) ID() any  { return t.id }
func (t tensorIndex) Dim() int { return t.dim }

// networkBuilder accumulates per-tensor index lists as a generator emits
// bonds, in stable emission order (mirrors the vertex/edge emission-order
// discipline the graph generators this package is adapted from follow).
type networkBuilder struct {
	tensors  [][]contract.Index
	bondDim  int
	labelSeq int
}

func newNetworkBuilder(n, bondDim int) *networkBuilder {
	return &networkBuilder{tensors: make([][]contract.Index, n), bondDim: bondDim}
}

// bond records a shared index between tensors i and j (0-based), with a
// fresh label distinct from every other bond this builder has emitted.
func (b *networkBuilder) bond(i, j int) {
	label := fmt.Sprintf("bond#%d", b.labelSeq)
	b.labelSeq++
	idx := tensorIndex{id: label, dim: b.bondDim}
	b.tensors[i] = append(b.tensors[i], idx)
	b.tensors[j] = append(b.tensors[j], idx)
}

// ensureNonEmpty gives every still-empty tensor a single free (unshared)
// index, satisfying contract.Encode's "every tensor lists at least one
// index" requirement for isolated tensors (e.g. a Chain with n==1, or any
// RandomSparse draw that leaves a tensor with no accepted bonds).
func (b *networkBuilder) ensureNonEmpty() {
	for i := range b.tensors {
		if len(b.tensors[i]) == 0 {
			label := fmt.Sprintf("free#%d", i)
			b.tensors[i] = append(b.tensors[i], tensorIndex{id: label, dim: b.bondDim})
		}
	}
}

// specs renders the accumulated tensors as contract.TensorSpec values.
func (b *networkBuilder) specs() []contract.TensorSpec {
	out := make([]contract.TensorSpec, len(b.tensors))
	for i, t := range b.tensors {
		out[i] = contract.TensorSpec(t)
	}
	return out
}
