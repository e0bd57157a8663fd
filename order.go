package dhsvm

import (
	"fmt"
	"math"
	"sort"
)

// OrderedCells returns the ids of every in-basin cell sorted by
// descending elevation (ties left unordered), the traversal order
// required by CalcTopoIndex.
func (f *FineMap) OrderedCells() []int {
	ord := make([]int, 0, len(f.Pix))
	for i, p := range f.Pix {
		if p.Mask {
			ord = append(ord, i)
		}
	}
	sort.SliceStable(ord, func(i, j int) bool { return f.Pix[ord[i]].Dem > f.Pix[ord[j]].Dem })
	return ord
}

// checkOrder guards the ordering contract: every in-basin cell exactly
// once, elevations never increasing. A violation would silently corrupt
// the area accounting, so it is rejected up front.
func (f *FineMap) checkOrder(ord []int) error {
	if n := f.NumCells(); len(ord) != n {
		return fmt.Errorf("%w: %d cells ordered, basin holds %d", ErrBadOrder, len(ord), n)
	}
	seen := make([]bool, len(f.Pix))
	last := math.Inf(1)
	for _, cid := range ord {
		if cid < 0 || cid >= len(f.Pix) {
			return fmt.Errorf("%w: cell id %d out of range", ErrBadOrder, cid)
		}
		if !f.Pix[cid].Mask {
			return fmt.Errorf("%w: cell id %d lies outside the basin", ErrBadOrder, cid)
		}
		if seen[cid] {
			return fmt.Errorf("%w: cell id %d ordered twice", ErrBadOrder, cid)
		}
		seen[cid] = true
		if f.Pix[cid].Dem > last {
			return fmt.Errorf("%w: elevation rises at cell id %d", ErrBadOrder, cid)
		}
		last = f.Pix[cid].Dem
	}
	return nil
}
