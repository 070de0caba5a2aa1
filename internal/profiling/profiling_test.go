package profiling

import (
	"testing"
	"time"
)

func TestTrackAccumulates(t *testing.T) {
	Reset()
	stop := Track("raster.Rasterize")
	time.Sleep(2 * time.Millisecond)
	stop()
	Track("raster.Rasterize")()

	ss := Snapshot()
	if ss["raster.Rasterize"] < 2*time.Millisecond {
		t.Errorf("tracked %v, want >= 2ms", ss["raster.Rasterize"])
	}
	Reset()
	if len(Snapshot()) != 0 {
		t.Errorf("Reset left %d entries", len(Snapshot()))
	}
}

func TestTopNOrdering(t *testing.T) {
	Reset()
	mu.Lock()
	totals["a.Fast"] = 1500 * time.Microsecond
	totals["b.Slow"] = 12 * time.Millisecond
	totals["c.Mid"] = 3 * time.Millisecond
	mu.Unlock()
	defer Reset()

	if got, want := TopN(2), "b.Slow:12ms, c.Mid:3ms"; got != want {
		t.Errorf("TopN(2) = %q, want %q", got, want)
	}
	if got, want := TopN(10), "b.Slow:12ms, c.Mid:3ms, a.Fast:1.5ms"; got != want {
		t.Errorf("TopN(10) = %q, want %q", got, want)
	}
}
