// Package player implements the playback core: a worker goroutine that owns
// the audio output and a decoded stream, an ordered command queue feeding
// it, and per-subscriber position reporting.
//
// The sink never leaves the worker; other components interact only through
// commands in and position/state/error events out.
package player

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/strum-player/strum/internal/errmsg"
)

// DefaultPollInterval is the position sampling cadence.
const DefaultPollInterval = 100 * time.Millisecond

// Player coordinates the playback worker and its reporters.
type Player struct {
	queue        *commandQueue
	pollInterval time.Duration

	mu  sync.RWMutex // guards snk; held only across the pointer read
	snk sink

	state atomic.Int32

	subsMu sync.Mutex
	subs   []*Subscription

	done      chan struct{} // closed when the worker exits
	closeOnce sync.Once
	source    *Source
}

// Option configures a Player.
type Option func(*Player)

// WithPollInterval overrides the position sampling cadence.
func WithPollInterval(d time.Duration) Option {
	return func(p *Player) {
		if d > 0 {
			p.pollInterval = d
		}
	}
}

// New creates a player for the given source. The source is owned by the
// player from here on. Call Start to open the device and begin playback.
func New(src *Source, opts ...Option) *Player {
	p := &Player{
		queue:        newCommandQueue(),
		pollInterval: DefaultPollInterval,
		done:         make(chan struct{}),
		source:       src,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start opens the output device, binds a sink to it, appends the decoded
// source and spawns the worker. Playback begins immediately. An error here
// means no device or no playable source; there is no recovery path and the
// caller is expected to exit.
func (p *Player) Start() error {
	snk, err := newBeepSink(p.source, p.markFinished)
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.snk = snk
	p.mu.Unlock()

	p.setState(Playing)
	go p.run()
	return nil
}

// Send enqueues a command. It never blocks: the queue is unbounded and
// strictly ordered. Once the worker is gone the send fails with
// ErrPlayerClosed; the failure is reported on the Errors channels and
// returned, never raised as a panic to the calling goroutine.
func (p *Player) Send(cmd Command) error {
	if err := p.queue.push(cmd); err != nil {
		p.publishError(errmsg.Format(errmsg.OpSendCommand, err))
		return err
	}
	return nil
}

// State returns the current playback state.
func (p *Player) State() State {
	return State(p.state.Load())
}

// Position returns the current playback position clamped into
// [0, duration]. Safe to call from any goroutine; the underlying accessor
// is held only across the instantaneous read.
func (p *Player) Position() time.Duration {
	p.mu.RLock()
	snk := p.snk
	p.mu.RUnlock()

	if snk == nil {
		return 0
	}
	pos := snk.position()
	if pos < 0 {
		pos = 0
	}
	if total := snk.length(); pos > total {
		pos = total
	}
	return pos
}

// Duration returns the total track duration.
func (p *Player) Duration() time.Duration {
	p.mu.RLock()
	snk := p.snk
	p.mu.RUnlock()

	if snk == nil && p.source != nil {
		return p.source.Duration
	}
	if snk == nil {
		return 0
	}
	return snk.length()
}

// Subscribe registers a new event consumer and starts its position
// reporter. The reporter terminates when the subscriber calls Close or
// when the player shuts down.
func (p *Player) Subscribe() *Subscription {
	sub := newSubscription()

	p.subsMu.Lock()
	p.subs = append(p.subs, sub)
	p.subsMu.Unlock()

	go p.reportPositions(sub)
	return sub
}

// Close sends Stop, waits for the worker to release the sink, and lets
// every reporter wind down. Idempotent.
func (p *Player) Close() error {
	p.closeOnce.Do(func() {
		// Ignore the error: if the queue is already closed the worker is
		// on its way out and p.done will close regardless.
		_ = p.Send(Stop{})
		<-p.done
	})
	return nil
}

// Done is closed once the worker has exited and the sink is released.
func (p *Player) Done() <-chan struct{} {
	return p.done
}

// run is the worker loop. It dequeues one command at a time and fully
// completes it before the next, giving commands a total order. Blocking on
// an empty queue is the intended idle behavior, not an error.
func (p *Player) run() {
	defer close(p.done)

	for {
		cmd, ok := p.queue.pop()
		if !ok {
			break
		}
		if _, stop := cmd.(Stop); stop {
			break
		}
		p.handle(cmd)
	}

	p.queue.close()

	p.mu.RLock()
	snk := p.snk
	p.mu.RUnlock()
	if snk != nil {
		_ = snk.close()
	}
}

// handle applies one command against the sink.
func (p *Player) handle(cmd Command) {
	switch c := cmd.(type) {
	case Play:
		if p.State() == Paused {
			p.snk.play()
			p.setState(Playing)
		}
	case Pause:
		if p.State() == Playing {
			p.snk.pause()
			p.setState(Paused)
		}
	case FastForward:
		p.seekBy(c.Amount)
	case Rewind:
		p.seekBy(-c.Amount)
	}
}

// seekBy computes an absolute target from the current position and the
// signed delta, clamps it into [0, duration], and issues a single absolute
// seek. A failed seek is reported and absorbed: playback continues in its
// prior state and nothing is retried.
func (p *Player) seekBy(delta time.Duration) {
	if !p.State().IsActive() {
		return
	}

	target := p.snk.position() + delta
	if target < 0 {
		target = 0
	}
	if total := p.snk.length(); target > total {
		target = total
	}

	if err := p.snk.seekTo(target); err != nil {
		p.publishError(errmsg.Format(errmsg.OpSeek, err))
		return
	}

	// Push the new position out immediately so the display does not wait
	// a full polling interval to jump.
	p.publishPosition(target)
}

// markFinished is invoked by the sink once its queue empties. Finished is
// terminal; transport commands received afterward are no-ops.
func (p *Player) markFinished() {
	for {
		prev := p.State()
		if !prev.IsActive() {
			return
		}
		if p.state.CompareAndSwap(int32(prev), int32(Finished)) {
			p.publishState(StateChange{Previous: prev, Current: Finished})
			return
		}
	}
}

// reportPositions samples the playback position at the polling interval
// and forwards it to one subscriber. The position accessor is held only
// across the read, never across the tick or the send.
func (p *Player) reportPositions(s *Subscription) {
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			p.removeSub(s)
			return
		case <-p.done:
			return
		case <-ticker.C:
			s.sendPosition(p.Position())
		}
	}
}

func (p *Player) setState(next State) {
	prev := State(p.state.Swap(int32(next)))
	if prev != next {
		p.publishState(StateChange{Previous: prev, Current: next})
	}
}

func (p *Player) publishState(e StateChange) {
	p.subsMu.Lock()
	defer p.subsMu.Unlock()
	for _, s := range p.subs {
		s.sendState(e)
	}
}

func (p *Player) publishPosition(pos time.Duration) {
	p.subsMu.Lock()
	defer p.subsMu.Unlock()
	for _, s := range p.subs {
		s.sendPosition(pos)
	}
}

func (p *Player) publishError(msg string) {
	p.subsMu.Lock()
	defer p.subsMu.Unlock()
	for _, s := range p.subs {
		s.sendError(msg)
	}
}

func (p *Player) removeSub(sub *Subscription) {
	p.subsMu.Lock()
	defer p.subsMu.Unlock()
	for i, s := range p.subs {
		if s == sub {
			p.subs = append(p.subs[:i], p.subs[i+1:]...)
			return
		}
	}
}
