package schedule

import (
	"sync/atomic"
	"testing"
	"time"
)

func allDone(tiles []*Tile) bool {
	for _, t := range tiles {
		if !t.Done() {
			return false
		}
	}
	return true
}

func waitUntil(t *testing.T, cond func() bool, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestPoolProcessesEveryTile(t *testing.T) {
	var processed int64
	p := NewPool(4, func(tile *Tile) {
		atomic.AddInt64(&processed, 1)
	})
	defer p.Shutdown()

	tiles := BuildTiles(64, 64, 16)
	p.Submit(tiles)

	waitUntil(t, func() bool { return allDone(tiles) }, time.Second)

	if got := atomic.LoadInt64(&processed); int(got) != len(tiles) {
		t.Errorf("processed %d tiles, want %d", got, len(tiles))
	}
}

func TestPoolCancelRemainingSkipsUnpoppedTiles(t *testing.T) {
	release := make(chan struct{})
	var processed int64

	p := NewPool(1, func(tile *Tile) {
		atomic.AddInt64(&processed, 1)
		<-release
	})
	defer p.Shutdown()

	tiles := BuildTiles(64, 64, 16)
	p.Submit(tiles)

	// With a single worker, exactly one tile is popped and blocked in
	// process; give it a moment to start.
	waitUntil(t, func() bool { return atomic.LoadInt64(&processed) >= 1 }, time.Second)

	p.CancelRemaining()
	close(release)

	waitUntil(t, func() bool { return allDone(tiles) }, time.Second)

	// Only the one tile that was already popped before cancellation
	// should have run the process callback.
	if got := atomic.LoadInt64(&processed); got != 1 {
		t.Errorf("processed %d tiles after cancel, want 1", got)
	}
}

func TestPoolSubmitWakesParkedWorkers(t *testing.T) {
	var processed int64
	p := NewPool(2, func(tile *Tile) {
		atomic.AddInt64(&processed, 1)
	})
	defer p.Shutdown()

	firstBatch := BuildTiles(32, 32, 4)
	p.Submit(firstBatch)
	waitUntil(t, func() bool { return allDone(firstBatch) }, time.Second)

	secondBatch := BuildTiles(32, 32, 4)
	p.Submit(secondBatch)
	waitUntil(t, func() bool { return allDone(secondBatch) }, time.Second)

	want := int64(len(firstBatch) + len(secondBatch))
	if got := atomic.LoadInt64(&processed); got != want {
		t.Errorf("processed %d tiles across two batches, want %d", got, want)
	}
}

func TestPoolShutdownStopsWorkers(t *testing.T) {
	p := NewPool(2, func(tile *Tile) {})
	p.Shutdown()
	// Submitting after shutdown should not panic or hang; no worker is
	// left to drain the broadcast, so tiles simply never get popped.
	p.Submit(BuildTiles(16, 16, 1))
}
