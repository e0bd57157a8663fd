package dhsvm

import "fmt"

// scratch holds the three per-invocation working grids, each a contiguous
// row-major buffer indexed by cell id. Never shared across invocations.
type scratch struct {
	a       []float64 // cumulative upslope area per unit contour [m²]
	tanbeta []float64 // contour-weighted downslope gradient
	contour []float64 // cumulative contour length [m]
}

func newScratch(nr, nc int) (*scratch, error) {
	if nr < 1 || nc < 1 {
		return nil, fmt.Errorf("%w: %d x %d grid", ErrAllocation, nr, nc)
	}
	n := nr * nc
	if n/nr != nc {
		return nil, fmt.Errorf("%w: %d x %d grid overflows", ErrAllocation, nr, nc)
	}
	return &scratch{
		a:       make([]float64, n),
		tanbeta: make([]float64, n),
		contour: make([]float64, n),
	}, nil
}
