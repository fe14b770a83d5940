// Package graphview provides read-only structural introspection over a
// tensor network: adjacency derived from shared indices, and a dense
// pairwise-cost matrix useful for inspecting a network before running
// either optimizer in the contract package.
//
// graphview never chooses a contraction order itself; it only reports on
// the network's shape.
package graphview

import "errors"

// ErrInvalidInput indicates an empty tensor list was passed to Build.
var ErrInvalidInput = errors.New("graphview: invalid input")

// ErrOverSharedIndex indicates an index identity (ID()) appeared in more
// than two tensors, which has no contraction-order interpretation in this
// package's pairwise model. Build returns this wrapped together with
// contract.ErrInvalidInput (errors.Is matches both), so callers that only
// know about the contract package's sentinel set still recognize it.
var ErrOverSharedIndex = errors.New("graphview: index shared by more than two tensors")

// ErrInvalidDimensions indicates a requested matrix shape is non-positive.
var ErrInvalidDimensions = errors.New("graphview: dimensions must be > 0")

// ErrIndexOutOfBounds indicates a row or column index is outside [0,n).
var ErrIndexOutOfBounds = errors.New("graphview: index out of bounds")
