// Command tnopt generates a tensor-network fixture from a named topology
// and prints the optimal contraction cost found by either exact solver,
// together with the winning tree's leaves in left-to-right order.
package main

import (
	"flag"
	"log"

	"github.com/katalvlaran/tnopt/contract"
	"github.com/katalvlaran/tnopt/topology"
)

func main() {
	log.SetFlags(0)

	shape := flag.String("shape", "ring", "network shape: chain, ring, complete, star, grid")
	n := flag.Int("n", 6, "tensor count (rows*cols for grid, via -cols)")
	cols := flag.Int("cols", 3, "grid column count (grid shape only)")
	bondDim := flag.Int("bond-dim", 2, "dimension assigned to every bond")
	strategy := flag.String("strategy", "depth-first", "solver: depth-first or breadth-first")
	cache := flag.Bool("cache", true, "enable depth-first's pairwise-cost cache")
	flag.Parse()

	tensors, err := buildShape(*shape, *n, *cols, *bondDim)
	if err != nil {
		log.Fatalf("tnopt: %v", err)
	}

	strat, err := parseStrategy(*strategy)
	if err != nil {
		log.Fatalf("tnopt: %v", err)
	}

	opts := contract.DefaultOptions()
	opts.EnableCaching = *cache

	tree, cost, err := contract.Solve(tensors, strat, opts)
	if err != nil {
		log.Fatalf("tnopt: solve failed: %v", err)
	}

	log.Printf("shape=%s n=%d strategy=%s cost=%d leaves=%v", *shape, len(tensors), strat, cost, tree.Leaves())
}

func buildShape(shape string, n, cols, bondDim int) ([]contract.TensorSpec, error) {
	opt := topology.WithBondDim(bondDim)
	switch shape {
	case "chain":
		return topology.Chain(n, opt)
	case "ring":
		return topology.Ring(n, opt)
	case "complete":
		return topology.Complete(n, opt)
	case "star":
		return topology.Star(n, opt)
	case "grid":
		rows := n / cols
		if rows < 1 {
			rows = 1
		}
		return topology.Grid(rows, cols, opt)
	default:
		return nil, topology.ErrTooFewTensors
	}
}

func parseStrategy(name string) (contract.Strategy, error) {
	switch name {
	case "depth-first":
		return contract.StrategyDepthFirst, nil
	case "breadth-first":
		return contract.StrategyBreadthFirst, nil
	default:
		return 0, contract.ErrUnsupportedStrategy
	}
}
