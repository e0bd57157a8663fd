package dhsvm

// NDirs number of flow directions leaving a cell
const NDirs = 8

// fraction of a cell's perimeter attributed to each flow direction;
// 4 diagonal and 4 orthogonal directions sum to 4*(0.4+0.6) of the cell width
const (
	diagWeight = .4
	orthWeight = .6
)

// direction is one entry of the compass-ordered neighbour table
//
//	NW  N  NE
//	 W  *  E
//	SW  S  SE
type direction struct {
	dr, dc int
	diag   bool
}

var dirs = [NDirs]direction{
	{-1, 0, false},  // N
	{-1, 1, true},   // NE
	{0, 1, false},   // E
	{1, 1, true},    // SE
	{1, 0, false},   // S
	{1, -1, true},   // SW
	{0, -1, false},  // W
	{-1, -1, true},  // NW
}

func (d direction) weight() float64 {
	if d.diag {
		return diagWeight
	}
	return orthWeight
}

func (d direction) dist(cw, ld float64) float64 {
	if d.diag {
		return ld
	}
	return cw
}
