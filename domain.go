// Package dhsvm computes the TOPMODEL topographic wetness index
// ln(a/tanβ) over a fine-resolution elevation grid using the
// multiple-flow-direction routing of Wolock and McCabe (1995). The index
// is used to redistribute soil moisture from a coarse hydrologic grid
// onto the fine (mass-wasting resolution) grid.
package dhsvm

import (
	"fmt"

	"github.com/olegudovenko/DHSVM/grid"
)

// demNoData elevation value marking cells with no assigned elevation
const demNoData = -9999.

// FinePix is one fine-resolution grid cell. Mask flags cells inside the
// modeled basin; TopoIndex is written once by CalcTopoIndex.
type FinePix struct {
	Mask      bool
	Dem       float64
	TopoIndex float64
}

// FineMap is the fine-resolution basin map: a grid definition and its
// row-major cell records.
type FineMap struct {
	GD  *grid.Definition
	Pix []FinePix
}

// NewFineMap assembles a fine map from a grid definition and a row-major
// elevation raster. Cells carrying the no-data elevation or inactive in
// the grid definition are masked out of the basin.
func NewFineMap(gd *grid.Definition, dem []float64) (*FineMap, error) {
	if len(dem) != gd.Ncells() {
		return nil, fmt.Errorf("NewFineMap: dem length %d does not match %d x %d grid", len(dem), gd.Nr, gd.Nc)
	}
	f := FineMap{GD: gd, Pix: make([]FinePix, gd.Ncells())}
	for i, z := range dem {
		if z == demNoData || !gd.IsActive(i) {
			continue
		}
		f.Pix[i] = FinePix{Mask: true, Dem: z}
	}
	return &f, nil
}

// Pixel bounds-checked access to the cell record at (row, col);
// nil when out of bounds
func (f *FineMap) Pixel(r, c int) *FinePix {
	cid := f.GD.CellID(r, c)
	if cid < 0 {
		return nil
	}
	return &f.Pix[cid]
}

// NumCells number of cells inside the modeled basin
func (f *FineMap) NumCells() (n int) {
	for _, p := range f.Pix {
		if p.Mask {
			n++
		}
	}
	return
}
