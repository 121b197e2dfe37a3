package rtree

// DefaultBranchingFactor is the node capacity used when no option overrides
// it.
const DefaultBranchingFactor = 4

type options struct {
	branching int
}

type Option interface {
	apply(*options)
}

type branchingFactor int

func (b branchingFactor) apply(o *options) {
	o.branching = int(b)
}

// WithBranchingFactor sets the maximum number of entries a node may hold
// before it is split. Default: 4.
func WithBranchingFactor(b int) Option {
	return branchingFactor(b)
}

func loadOptions(opts ...Option) options {
	options := options{
		branching: DefaultBranchingFactor,
	}
	for _, o := range opts {
		o.apply(&options)
	}
	return options
}
