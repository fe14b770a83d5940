// Package tnopt finds optimal pairwise contraction orders for tensor
// networks.
//
// What is tnopt?
//
//	A small, dependency-conscious library that brings together:
//
//	  - contract:  the exact optimizers (DepthFirst, BreadthFirst) and
//	    their shared cost kernel, index encoding, and tree types.
//	  - topology:  deterministic tensor-network fixture generators
//	    (Chain, Ring, Complete, Star, Grid, RandomSparse, RandomRegular).
//	  - graphview: read-only adjacency and pairwise-cost introspection.
//	  - execorder: flattening a contraction tree into a linear execution
//	    order, with structural validation.
//
// Under the hood, everything is organized under four subpackages:
//
//	contract/   — cost kernel, index encoding, DepthFirst/BreadthFirst
//	topology/   — tensor-network fixture generators
//	graphview/  — adjacency and cost-matrix introspection
//	execorder/  — tree-to-execution-order flattening
//
// Quick example:
//
//	tensors, _ := topology.Ring(5, topology.WithBondDim(4))
//	enc, _ := contract.Encode(tensors)
//	tree, cost, _ := contract.DepthFirst(enc, contract.DefaultOptions())
//
// See cmd/tnopt for a runnable CLI and contract's ExampleDepthFirst for a
// runnable example.
package tnopt
