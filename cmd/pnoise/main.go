package main

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/xlab/closer"

	"pnoise/internal/config"
	"pnoise/internal/imageio"
	"pnoise/internal/noise"
	"pnoise/internal/profiling"
	"pnoise/internal/raster"
)

// outDir is known once the output directory exists; cleanup may read it
// from closer's signal goroutine.
var (
	outDirMu sync.Mutex
	outDir   string
)

func setOutDir(dir string) {
	outDirMu.Lock()
	outDir = dir
	outDirMu.Unlock()
}

func currentOutDir() string {
	outDirMu.Lock()
	defer outDirMu.Unlock()
	return outDir
}

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	closer.Bind(cleanup)
	closer.Checked(run, true)
	closer.Close()
}

func cleanup() {
	dir := currentOutDir()
	if dir == "" {
		return
	}
	if err := imageio.RemoveTemps(dir); err != nil {
		log.Printf("cleanup %s: %v", dir, err)
	}
}

func run() error {
	wd, err := config.WorkDir()
	if err != nil {
		return err
	}
	dir, err := config.OutDir(wd)
	if err != nil {
		return err
	}
	setOutDir(dir)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, v := range config.Variants() {
		if err := renderVariant(wd, v, rng); err != nil {
			return fmt.Errorf("variant %s: %w", v.Name, err)
		}
	}
	return nil
}

func renderVariant(wd string, v config.Variant, rng *rand.Rand) error {
	profiling.Reset()
	start := time.Now()

	var field *noise.Field
	func() {
		defer profiling.Track("noise.New")()
		field = noise.New(v.LatticeSize, rng, v.Options)
	}()

	var pix *raster.PixelBuffer
	func() {
		defer profiling.Track("raster.Render")()
		pix = raster.Render(v.Sampler(field), v.Grid)
	}()

	path := config.OutputPath(wd, v)
	var err error
	func() {
		defer profiling.Track("imageio.Save")()
		err = imageio.Save(path, pix)
	}()
	if err != nil {
		return err
	}

	log.Printf("Rendered %s (N=%d, %dx%d, %s/%s) in %s -> %s",
		v.Name, v.LatticeSize, pix.Width, pix.Height,
		v.Options.Index, v.Options.Ease, time.Since(start).Round(time.Millisecond), path)
	log.Printf("Stages: %s", profiling.TopN(3))
	return nil
}
