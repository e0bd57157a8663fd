package dhsvm

import (
	"math"
	"sync"
)

// vertRes vertical resolution of the dem [m]
const vertRes = 1.

// CalcTopoIndex computes the topographic index ln(a/tanβ) for every
// in-basin cell, visiting cells in the supplied descending-elevation
// order and splitting each cell's cumulative upslope area across all
// downslope neighbours in proportion to the contour-weighted slope
// (Beven and Kirkby 1979; Wolock and McCabe 1995). Invalid cells are
// left untouched.
func (f *FineMap) CalcTopoIndex(ord []int) error {
	if NDirs != 8 {
		return ErrUnsupportedDirs
	}
	if err := f.checkOrder(ord); err != nil {
		return err
	}
	gd := f.GD
	s, err := newScratch(gd.Nr, gd.Nc)
	if err != nil {
		return err
	}

	cw, ld := gd.Cw, gd.LengthDiagonal()
	for _, cid := range ord {
		s.a[cid] = cw * cw // initialize cumulative area to cell area
	}

	var nelev, tslope, da [NDirs]float64
	var down [NDirs]bool
	for _, cid := range ord {
		r, c := gd.RowCol(cid)
		celev := f.Pix[cid].Dem

		// gather neighbour elevations; a neighbour outside the grid or
		// outside the basin takes the current cell's elevation so that
		// basin edges never act as sinks
		lower := 0
		for n, d := range dirs {
			nelev[n] = celev
			if p := f.Pixel(r+d.dr, c+d.dc); p != nil && p.Mask {
				nelev[n] = p.Dem
			}

			// tanbeta accumulated as slope times the length of cell
			// boundary shared with the downsloping neighbour
			down[n] = nelev[n] < celev
			if down[n] {
				w := d.weight() * cw
				tslope[n] = (celev - nelev[n]) / d.dist(cw, ld)
				s.contour[cid] += w
				s.tanbeta[cid] += tslope[n] * w
				da[n] = s.a[cid] * tslope[n] * w
			} else {
				lower++
			}
		}

		if lower == NDirs {
			// flat area or pit: drains uniformly in all directions at
			// half the vertical resolution over the centre-to-centre
			// distance, keeping tanbeta strictly positive
			s.tanbeta[cid] = float64(NDirs/2)*(.5*vertRes/ld) + float64(NDirs/2)*(.5*vertRes/cw)
			continue
		}

		// distribute cumulative upslope area to downslope neighbours
		for n, d := range dirs {
			if down[n] {
				s.a[gd.CellID(r+d.dr, c+d.dc)] += da[n] / s.tanbeta[cid]
			}
		}
	}

	f.finalize(s)
	return nil
}

// finalize writes the log-ratio index per cell. It has no cross-cell
// dependency once propagation has completed, so rows run concurrently.
func (f *FineMap) finalize(s *scratch) {
	var wg sync.WaitGroup
	wg.Add(f.GD.Nr)
	for r := 0; r < f.GD.Nr; r++ {
		go func(r int) {
			defer wg.Done()
			for c := 0; c < f.GD.Nc; c++ {
				cid := r*f.GD.Nc + c
				if f.Pix[cid].Mask {
					f.Pix[cid].TopoIndex = math.Log(s.a[cid] / s.tanbeta[cid])
				}
			}
		}(r)
	}
	wg.Wait()
}
