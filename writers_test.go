package dhsvm_test

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"strings"
	"testing"

	dhsvm "github.com/olegudovenko/DHSVM"
	"github.com/olegudovenko/DHSVM/grid"
	"github.com/stretchr/testify/require"
)

func TestWriteASC(t *testing.T) {
	gd := grid.NewDefinition(1000., 2000., cw, 2, 2)
	f, err := dhsvm.NewFineMap(gd, []float64{100., -9999., 95., 90.})
	require.NoError(t, err)

	fp := t.TempDir() + "/topoindex.asc"
	require.NoError(t, f.WriteASC(fp, func(p *dhsvm.FinePix) float64 { return p.Dem }))

	b, err := os.ReadFile(fp)
	require.NoError(t, err)
	lines := strings.Split(strings.ReplaceAll(strings.TrimSpace(string(b)), "\r\n", "\n"), "\n")
	require.Len(t, lines, 8)
	require.Equal(t, fmt.Sprintf("ncols %11d", 2), lines[0])
	require.Equal(t, fmt.Sprintf("nrows %11d", 2), lines[1])
	require.Equal(t, "xllcorner 1000.0", lines[2])
	require.Equal(t, "yllcorner 1940.0", lines[3])
	require.Equal(t, "cellsize 30", lines[4])
	require.Equal(t, "NODATA_value 0", lines[5])
	require.Equal(t, "100.000 0.", strings.TrimSpace(lines[6]))
	require.Equal(t, "95.000 90.000", strings.TrimSpace(lines[7]))
}

func TestCheckandprint(t *testing.T) {
	f := newFine(t, 1, 3, []float64{102., 101., 100.})
	require.NoError(t, f.CalcTopoIndex([]int{0, 1, 2}))

	prfx := t.TempDir() + "/chk."
	f.Checkandprint(prfx)

	read := func(fp string) []float32 {
		b, err := os.ReadFile(fp)
		require.NoError(t, err)
		o := make([]float32, 3)
		require.NoError(t, binary.Read(bytes.NewReader(b), binary.LittleEndian, o))
		return o
	}
	dem := read(prfx + "topoindex.dem.bin")
	require.Equal(t, []float32{102., 101., 100.}, dem)
	ti := read(prfx + "topoindex.ti.bin")
	for i := range ti {
		require.Equal(t, float32(f.Pix[i].TopoIndex), ti[i], "cell %d", i)
	}
}
