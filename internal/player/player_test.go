package player

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeSink records every operation applied to it, in order, so tests can
// assert on the worker's behavior without an audio device.
type fakeSink struct {
	mu      sync.Mutex
	pos     time.Duration
	total   time.Duration
	pausedF bool
	seekErr error
	ops     []string
	seeks   []time.Duration
}

func (f *fakeSink) play() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pausedF = false
	f.ops = append(f.ops, "play")
}

func (f *fakeSink) pause() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pausedF = true
	f.ops = append(f.ops, "pause")
}

func (f *fakeSink) paused() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pausedF
}

func (f *fakeSink) position() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pos
}

func (f *fakeSink) length() time.Duration {
	return f.total
}

func (f *fakeSink) seekTo(target time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.seekErr != nil {
		f.ops = append(f.ops, "seek-failed")
		return f.seekErr
	}
	f.pos = target
	f.ops = append(f.ops, "seek")
	f.seeks = append(f.seeks, target)
	return nil
}

func (f *fakeSink) close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, "close")
	return nil
}

func (f *fakeSink) opLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.ops))
	copy(out, f.ops)
	return out
}

func (f *fakeSink) seekLog() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]time.Duration, len(f.seeks))
	copy(out, f.seeks)
	return out
}

// newTestPlayer wires a running worker around a fake sink.
func newTestPlayer(t *testing.T, snk *fakeSink) *Player {
	t.Helper()
	p := &Player{
		queue:        newCommandQueue(),
		pollInterval: 5 * time.Millisecond,
		done:         make(chan struct{}),
	}
	p.snk = snk
	p.state.Store(int32(Playing))
	go p.run()
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func waitForOps(t *testing.T, snk *fakeSink, n int) []string {
	t.Helper()
	var ops []string
	require.Eventually(t, func() bool {
		ops = snk.opLog()
		return len(ops) >= n
	}, time.Second, time.Millisecond, "worker did not apply %d ops, got %v", n, ops)
	return ops
}

func TestWorkerAppliesCommandsInSendOrder(t *testing.T) {
	snk := &fakeSink{total: 3 * time.Minute}
	p := newTestPlayer(t, snk)

	require.NoError(t, p.Send(Pause{}))
	require.NoError(t, p.Send(Play{}))
	require.NoError(t, p.Send(Pause{}))

	ops := waitForOps(t, snk, 3)
	require.Equal(t, []string{"pause", "play", "pause"}, ops[:3])
}

func TestWorkerPlayPauseAreConditional(t *testing.T) {
	snk := &fakeSink{total: 3 * time.Minute}
	p := newTestPlayer(t, snk)

	// Play while already playing is a no-op; the following Pause is the
	// first command to reach the sink.
	require.NoError(t, p.Send(Play{}))
	require.NoError(t, p.Send(Pause{}))
	require.NoError(t, p.Send(Pause{})) // no-op: already paused

	ops := waitForOps(t, snk, 1)
	require.Equal(t, []string{"pause"}, ops)
	require.True(t, p.snk.paused())
	require.Eventually(t, func() bool { return p.State() == Paused }, time.Second, time.Millisecond)
}

func TestRewindSubtractsWithinTrack(t *testing.T) {
	snk := &fakeSink{pos: 90 * time.Second, total: 3 * time.Minute}
	p := newTestPlayer(t, snk)

	require.NoError(t, p.Send(Rewind{Amount: 30 * time.Second}))

	waitForOps(t, snk, 1)
	require.Equal(t, []time.Duration{60 * time.Second}, snk.seekLog())
}

func TestRewindFloorsAtZero(t *testing.T) {
	snk := &fakeSink{pos: 3 * time.Second, total: 3 * time.Minute}
	p := newTestPlayer(t, snk)

	require.NoError(t, p.Send(Rewind{Amount: 10 * time.Second}))

	waitForOps(t, snk, 1)
	require.Equal(t, []time.Duration{0}, snk.seekLog())
}

func TestFastForwardAddsWithinTrack(t *testing.T) {
	snk := &fakeSink{pos: 30 * time.Second, total: 3 * time.Minute}
	p := newTestPlayer(t, snk)

	require.NoError(t, p.Send(FastForward{Amount: 15 * time.Second}))

	waitForOps(t, snk, 1)
	require.Equal(t, []time.Duration{45 * time.Second}, snk.seekLog())
}

func TestFastForwardClampsToDuration(t *testing.T) {
	snk := &fakeSink{pos: 170 * time.Second, total: 3 * time.Minute}
	p := newTestPlayer(t, snk)

	require.NoError(t, p.Send(FastForward{Amount: time.Minute}))

	waitForOps(t, snk, 1)
	require.Equal(t, []time.Duration{3 * time.Minute}, snk.seekLog())
}

func TestSeekFailureIsAbsorbed(t *testing.T) {
	snk := &fakeSink{pos: 30 * time.Second, total: 3 * time.Minute, seekErr: errors.New("unsupported position")}
	p := newTestPlayer(t, snk)
	sub := p.Subscribe()
	defer sub.Close()

	require.NoError(t, p.Send(FastForward{Amount: 5 * time.Second}))
	// The worker must survive the failure and keep serving commands.
	require.NoError(t, p.Send(Pause{}))

	ops := waitForOps(t, snk, 2)
	require.Equal(t, []string{"seek-failed", "pause"}, ops[:2])

	select {
	case msg := <-sub.Errors:
		require.Contains(t, msg, "seek")
		require.Contains(t, msg, "unsupported position")
	case <-time.After(time.Second):
		t.Fatal("no error reported for failed seek")
	}
}

func TestCloseStopsWorkerAndClosesSink(t *testing.T) {
	snk := &fakeSink{total: 3 * time.Minute}
	p := newTestPlayer(t, snk)

	require.NoError(t, p.Close())

	select {
	case <-p.Done():
	case <-time.After(time.Second):
		t.Fatal("worker did not exit after Close")
	}

	ops := snk.opLog()
	require.NotEmpty(t, ops)
	require.Equal(t, "close", ops[len(ops)-1])

	// Sends after shutdown fail with ErrPlayerClosed and never panic.
	require.ErrorIs(t, p.Send(Play{}), ErrPlayerClosed)
}

func TestFinishedIsTerminal(t *testing.T) {
	snk := &fakeSink{pos: 10 * time.Second, total: 3 * time.Minute}
	p := newTestPlayer(t, snk)

	p.markFinished()
	require.Equal(t, Finished, p.State())

	// Transport commands after the sink drained are no-ops.
	require.NoError(t, p.Send(Play{}))
	require.NoError(t, p.Send(FastForward{Amount: time.Second}))
	require.NoError(t, p.Send(Pause{}))

	// Drain the queue by issuing Stop and waiting for the worker.
	require.NoError(t, p.Close())
	for _, op := range snk.opLog() {
		require.NotContains(t, []string{"play", "pause", "seek"}, op)
	}
	require.Equal(t, Finished, p.State())
}

func TestPositionClampedIntoTrackBounds(t *testing.T) {
	snk := &fakeSink{pos: 4 * time.Minute, total: 3 * time.Minute}
	p := newTestPlayer(t, snk)
	require.Equal(t, 3*time.Minute, p.Position())

	snk.mu.Lock()
	snk.pos = -time.Second
	snk.mu.Unlock()
	require.Equal(t, time.Duration(0), p.Position())
}
