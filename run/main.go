package main

import (
	"fmt"
	"log"
	"runtime"

	"github.com/gosuri/uiprogress"
	"github.com/im7mortal/UTM"
	"github.com/maseology/mmio"
	dhsvm "github.com/olegudovenko/DHSVM"
	"github.com/olegudovenko/DHSVM/grid"
)

func main() {

	const (
		gdefFP   = "M:/MassWasting/fine.gdef"
		demFP    = "M:/MassWasting/fine.dem.bil"
		outPrfx  = "M:/MassWasting/out/"
		utmzone  = 17
		printmap = false // write the ASCII-grid diagnostic map
	)

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap(fmt.Sprintf("\nRun complete. n processes: %v", runtime.GOMAXPROCS(0)))

	// load data
	gd, err := grid.ReadGDEF(gdefFP)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if lat, lng, err := UTM.ToLatLon(gd.Eorig, gd.Norig, utmzone, "", true); err == nil {
		fmt.Printf(" grid origin: (%.5f, %.5f)\n", lat, lng)
	}

	fm, err := dhsvm.NewFineMap(gd, loadDem(demFP, gd))
	if err != nil {
		log.Fatalf(" fine map build error: %v", err)
	}
	fmt.Printf(" %s of %s cells in basin\n", mmio.Thousands(int64(fm.NumCells())), mmio.Thousands(int64(gd.Ncells())))
	tt.Print("fine map load complete")

	// compute topographic index
	if err := fm.CalcTopoIndex(fm.OrderedCells()); err != nil {
		log.Fatalf(" CalcTopoIndex error: %v", err)
	}
	tt.Print("topographic index complete")

	// output
	fm.Checkandprint(outPrfx)
	if printmap {
		if err := fm.WriteASC(outPrfx+"topoindex.asc", func(p *dhsvm.FinePix) float64 { return p.TopoIndex }); err != nil {
			log.Fatalf(" WriteASC error: %v", err)
		}
	}
}

func loadDem(fp string, gd *grid.Definition) []float64 {
	if _, ok := mmio.FileExists(fp); !ok {
		log.Fatalf(" file not found: %s", fp)
	}
	fmt.Printf(" loading: %s\n", fp)
	b := mmio.OpenBinary(fp)
	dem := make([]float64, gd.Ncells())
	uiprogress.Start()
	bar := uiprogress.AddBar(gd.Nr).AppendCompleted().PrependElapsed()
	for r := 0; r < gd.Nr; r++ {
		for c := 0; c < gd.Nc; c++ {
			dem[r*gd.Nc+c] = float64(mmio.ReadFloat32(b))
		}
		bar.Incr()
	}
	uiprogress.Stop()
	return dem
}
