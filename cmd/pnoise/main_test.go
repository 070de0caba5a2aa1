package main

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"pnoise/internal/config"
	"pnoise/internal/noise"
	"pnoise/internal/profiling"
	"pnoise/internal/raster"
)

func smallVariant() config.Variant {
	return config.Variant{
		Name:        "small",
		LatticeSize: 64,
		Options:     noise.Options{Index: noise.IndexModulo, Ease: noise.EaseQuintic},
		Grid:        raster.Grid{Size: 48, Resolution: 16},
		Octaves:     &noise.Octaves{Count: 3, Frequency: 2, Amplitude: 1},
	}
}

func TestRenderVariantWritesImage(t *testing.T) {
	wd := t.TempDir()
	if _, err := config.OutDir(wd); err != nil {
		t.Fatal(err)
	}
	if err := renderVariant(wd, smallVariant(), rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("renderVariant: %v", err)
	}

	info, err := os.Stat(filepath.Join(wd, "out", "small.png"))
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if info.Size() == 0 {
		t.Errorf("output is empty")
	}
}

func TestRenderVariantTimesOwnStages(t *testing.T) {
	wd := t.TempDir()
	if _, err := config.OutDir(wd); err != nil {
		t.Fatal(err)
	}
	profiling.Track("stale.Stage")()
	if err := renderVariant(wd, smallVariant(), rand.New(rand.NewSource(2))); err != nil {
		t.Fatalf("renderVariant: %v", err)
	}
	ss := profiling.Snapshot()
	if _, ok := ss["stale.Stage"]; ok {
		t.Errorf("stages from a previous run were kept")
	}
	for _, name := range []string{"noise.New", "raster.Render", "imageio.Save"} {
		if _, ok := ss[name]; !ok {
			t.Errorf("stage %s not tracked", name)
		}
	}
	if top := profiling.TopN(3); strings.Count(top, ",") != 2 {
		t.Errorf("TopN(3) = %q", top)
	}
}

func TestRunWithoutWorkDir(t *testing.T) {
	t.Setenv(config.WorkDirEnv, "")
	if err := run(); err == nil {
		t.Errorf("run succeeded without %s", config.WorkDirEnv)
	}
}

func TestRenderVariantMissingOutDir(t *testing.T) {
	wd := t.TempDir()
	v := smallVariant()
	if err := renderVariant(wd, v, rand.New(rand.NewSource(1))); err == nil {
		t.Fatalf("renderVariant succeeded without out dir")
	}
	if _, err := os.Stat(config.OutputPath(wd, v)); !os.IsNotExist(err) {
		t.Errorf("partial output present: %v", err)
	}
}

// cleanup runs on closer's goroutine while run may still be setting the
// output directory.
func TestCleanupConcurrentWithSetOutDir(t *testing.T) {
	dir := t.TempDir()
	stray := filepath.Join(dir, ".pnoise-123.tmp")
	if err := os.WriteFile(stray, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	defer setOutDir("")

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		setOutDir(dir)
	}()
	go func() {
		defer wg.Done()
		cleanup()
	}()
	wg.Wait()

	cleanup()
	if _, err := os.Stat(stray); !os.IsNotExist(err) {
		t.Errorf("stray temp file not removed: %v", err)
	}
}
