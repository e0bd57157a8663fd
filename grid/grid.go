package grid

import (
	"fmt"
	"math"
	"strconv"

	"github.com/maseology/mmaths"
	"github.com/maseology/mmio"
)

// Definition describes a uniform, row-major grid: origin (upper-left
// corner), rotation, dimensions, cell width and the set of active cells.
type Definition struct {
	Eorig, Norig, Rot, Cw float64
	Nr, Nc                int
	Sactives              []int // sorted slice of active cell ids
	act                   []bool
}

// NewDefinition builds an all-active uniform grid definition
func NewDefinition(eorig, norig, cw float64, nr, nc int) *Definition {
	gd := Definition{Eorig: eorig, Norig: norig, Cw: cw, Nr: nr, Nc: nc}
	n := nr * nc
	if n < 0 {
		n = 0
	}
	gd.act = make([]bool, n)
	gd.Sactives = make([]int, n)
	for i := 0; i < n; i++ {
		gd.act[i] = true
		gd.Sactives[i] = i
	}
	return &gd
}

// ReadGDEF imports a grid definition file
func ReadGDEF(fp string) (*Definition, error) {
	a, err := mmio.ReadTextLines(fp)
	if err != nil {
		return nil, fmt.Errorf("ReadGDEF: %v", err)
	}
	if len(a) < 6 {
		return nil, fmt.Errorf("ReadGDEF: %s: incomplete header", fp)
	}

	stErr := make([]string, 0)
	errfunc := func(v string, err error) {
		stErr = append(stErr, fmt.Sprintf("     failed to read '%v': %v", v, err))
	}

	oe, err := strconv.ParseFloat(a[0], 64)
	if err != nil {
		errfunc("OE", err)
	}
	on, err := strconv.ParseFloat(a[1], 64)
	if err != nil {
		errfunc("ON", err)
	}
	rot, err := strconv.ParseFloat(a[2], 64)
	if err != nil {
		errfunc("ROT", err)
	}
	nr, err := strconv.ParseInt(a[3], 10, 32)
	if err != nil {
		errfunc("NR", err)
	}
	nc, err := strconv.ParseInt(a[4], 10, 32)
	if err != nil {
		errfunc("NC", err)
	}
	cs, err := strconv.ParseFloat(a[5], 64)
	if err == nil {
		return nil, fmt.Errorf("ReadGDEF: %s: non-uniform grids currently not supported", fp)
	}
	if len(a[5]) < 2 || a[5][0] != 'U' {
		errfunc("CS", err)
	} else if cs, err = strconv.ParseFloat(a[5][1:], 64); err != nil {
		errfunc("CS", err)
	}

	if len(stErr) > 0 {
		msg := "ReadGDEF errors:"
		for _, v := range stErr {
			msg += "\n" + v
		}
		return nil, fmt.Errorf("%s", msg)
	}

	gd := Definition{Eorig: oe, Norig: on, Rot: rot, Cw: cs, Nr: int(nr), Nc: int(nc)}
	n := gd.Nr * gd.Nc
	gd.act = make([]bool, n)
	if len(a) > 6 { // packed active-cell bitmap, 1 bit per cell, MSB first
		b := []byte(a[6])
		gd.Sactives = make([]int, 0, n)
		for i := 0; i < n; i++ {
			if i/8 >= len(b) {
				break
			}
			if b[i/8]>>(7-i%8)&1 == 1 {
				gd.act[i] = true
				gd.Sactives = append(gd.Sactives, i)
			}
		}
	} else { // no bitmap: all cells active
		gd.Sactives = make([]int, n)
		for i := 0; i < n; i++ {
			gd.act[i] = true
			gd.Sactives[i] = i
		}
	}
	return &gd, nil
}

// SaveAs writes the grid definition header (all cells assumed active)
func (gd *Definition) SaveAs(fp string) error {
	tw, err := mmio.NewTXTwriter(fp)
	if err != nil {
		return fmt.Errorf("Definition.SaveAs: %v", err)
	}
	defer tw.Close()
	tw.WriteLine(strconv.FormatFloat(gd.Eorig, 'f', -1, 64))
	tw.WriteLine(strconv.FormatFloat(gd.Norig, 'f', -1, 64))
	tw.WriteLine(strconv.FormatFloat(gd.Rot, 'f', -1, 64))
	tw.WriteLine(strconv.Itoa(gd.Nr))
	tw.WriteLine(strconv.Itoa(gd.Nc))
	tw.WriteLine("U" + strconv.FormatFloat(gd.Cw, 'f', -1, 64))
	return nil
}

// Ncells total number of cells (active or not)
func (gd *Definition) Ncells() int { return gd.Nr * gd.Nc }

// Nact number of active cells
func (gd *Definition) Nact() int { return len(gd.Sactives) }

// CellArea area of a single cell
func (gd *Definition) CellArea() float64 { return gd.Cw * gd.Cw }

// IsActive returns whether cell id cid is an active cell
func (gd *Definition) IsActive(cid int) bool {
	if cid < 0 || cid >= len(gd.act) {
		return false
	}
	return gd.act[cid]
}

// CellID row-major cell id from (row, col); -1 when out of bounds
func (gd *Definition) CellID(r, c int) int {
	if r < 0 || r >= gd.Nr || c < 0 || c >= gd.Nc {
		return -1
	}
	return r*gd.Nc + c
}

// RowCol inverse of CellID
func (gd *Definition) RowCol(cid int) (r, c int) {
	if cid < 0 || cid >= gd.Nr*gd.Nc {
		panic(fmt.Sprintf("Definition.RowCol: cell id %d out of range", cid))
	}
	return cid / gd.Nc, cid % gd.Nc
}

// CellCentroid coordinates of the centre of cell cid
func (gd *Definition) CellCentroid(cid int) mmaths.Point {
	r, c := gd.RowCol(cid)
	return mmaths.Point{
		X: gd.Eorig + gd.Cw*(float64(c)+.5),
		Y: gd.Norig - gd.Cw*(float64(r)+.5),
	}
}

// LengthDiagonal distance between centres of diagonally adjacent cells
func (gd *Definition) LengthDiagonal() float64 {
	return math.Sqrt(2. * gd.Cw * gd.Cw)
}
