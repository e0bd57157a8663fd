package dhsvm

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	"github.com/maseology/mmio"
)

func writeFloats(fp string, f []float64) error {
	f32 := func() []float32 {
		o := make([]float32, len(f))
		for i, v := range f {
			o[i] = float32(v)
		}
		return o
	}()
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, f32); err != nil {
		return fmt.Errorf("writeFloats failed: %v", err)
	}
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writeFloats failed: %v", err)
	}
	return nil
}

// Checkandprint dumps the dem and computed topographic index as binary
// float rasters for inspection
func (f *FineMap) Checkandprint(chkdirprfx string) {
	dem, ti := make([]float64, len(f.Pix)), make([]float64, len(f.Pix))
	for i, p := range f.Pix {
		dem[i], ti[i] = demNoData, demNoData
		if p.Mask {
			dem[i], ti[i] = p.Dem, p.TopoIndex
		}
	}
	writeFloats(chkdirprfx+"topoindex.dem.bin", dem)
	writeFloats(chkdirprfx+"topoindex.ti.bin", ti)
}

// WriteASC exports a per-cell value to an ESRI ASCII grid file; cells
// outside the basin print the fixed placeholder "0."
func (f *FineMap) WriteASC(fp string, val func(p *FinePix) float64) error {
	tw, err := mmio.NewTXTwriter(fp)
	if err != nil {
		return fmt.Errorf("FineMap.WriteASC: %v", err)
	}
	defer tw.Close()

	gd := f.GD
	tw.WriteLine(fmt.Sprintf("ncols %11d", gd.Nc))
	tw.WriteLine(fmt.Sprintf("nrows %11d", gd.Nr))
	tw.WriteLine(fmt.Sprintf("xllcorner %.1f", gd.Eorig))
	tw.WriteLine(fmt.Sprintf("yllcorner %.1f", gd.Norig-float64(gd.Nr)*gd.Cw))
	tw.WriteLine(fmt.Sprintf("cellsize %.0f", gd.Cw))
	tw.WriteLine(fmt.Sprintf("NODATA_value %d", 0))
	for r := 0; r < gd.Nr; r++ {
		var sb strings.Builder
		for c := 0; c < gd.Nc; c++ {
			if p := &f.Pix[r*gd.Nc+c]; p.Mask {
				fmt.Fprintf(&sb, "%.3f ", val(p))
			} else {
				sb.WriteString("0. ")
			}
		}
		tw.WriteLine(sb.String())
	}
	return nil
}
