package contract

// Strategy selects which exact optimizer Solve dispatches to.
type Strategy int

const (
	// StrategyDepthFirst runs DepthFirst (branch-and-bound).
	StrategyDepthFirst Strategy = iota
	// StrategyBreadthFirst runs BreadthFirst (subset dynamic programming).
	StrategyBreadthFirst
)

// String renders the strategy name for logging.
func (s Strategy) String() string {
	switch s {
	case StrategyDepthFirst:
		return "depth-first"
	case StrategyBreadthFirst:
		return "breadth-first"
	default:
		return "unknown"
	}
}

// Solve is the one-call convenience entrypoint: it encodes tensors and
// dispatches to the chosen strategy. Callers doing repeated solves over
// the same network (e.g. topology sweeps) should call Encode once and
// invoke DepthFirst/BreadthFirst directly instead, to avoid re-encoding.
func Solve(tensors []TensorSpec, strategy Strategy, opts Options) (*Tree, int64, error) {
	enc, err := Encode(tensors)
	if err != nil {
		return nil, 0, err
	}

	switch strategy {
	case StrategyDepthFirst:
		return DepthFirst(enc, opts)
	case StrategyBreadthFirst:
		return BreadthFirst(enc, opts)
	default:
		return nil, 0, ErrUnsupportedStrategy
	}
}
