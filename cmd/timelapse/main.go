// Command timelapse replays erosion over a saved grid and writes one PNG per
// step, ready to be stitched into a video externally.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/victorrobotxt/TerraFract/internal/erosion"
	"github.com/victorrobotxt/TerraFract/internal/gridio"
	"github.com/victorrobotxt/TerraFract/internal/render"
)

func main() {
	in := flag.String("in", "", "input grid file (required)")
	steps := flag.Int("steps", 100, "number of frames")
	thermIters := flag.Int("therm", 1, "thermal iterations per frame")
	talusAngle := flag.Float64("talus", 0.01, "thermal talus angle")
	hydroIters := flag.Int("hydro", 1, "hydraulic iterations per frame")
	rainAmount := flag.Float64("rain", 0.01, "hydraulic rain per step")
	solubility := flag.Float64("solubility", 0.1, "hydraulic solubility")
	outDir := flag.String("outdir", "frames", "directory for frame PNGs")
	scale := flag.Int("scale", 1, "integer upscale factor for frames")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	grid, err := gridio.ReadFile(*in)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Eroding %dx%d grid for %d frames\n", grid.W, grid.H, *steps)
	for frame := 0; frame < *steps; frame++ {
		if *thermIters > 0 {
			if err := erosion.Thermal(grid, *thermIters, *talusAngle); err != nil {
				log.Fatalf("frame %d: %v", frame, err)
			}
		}
		if *hydroIters > 0 {
			if err := erosion.Hydraulic(grid, *hydroIters, *rainAmount, *solubility); err != nil {
				log.Fatalf("frame %d: %v", frame, err)
			}
		}

		view := grid.Clone()
		view.Normalize()
		img := render.Upscale(render.HeightImage(view), *scale)
		path := filepath.Join(*outDir, fmt.Sprintf("frame%03d.png", frame))
		if err := render.SavePNG(path, img); err != nil {
			log.Fatalf("frame %d: %v", frame, err)
		}
		if (frame+1)%10 == 0 {
			fmt.Printf("  %d/%d frames\n", frame+1, *steps)
		}
	}
	fmt.Printf("Saved %d frames to %s\n", *steps, *outDir)
}
