package player

import (
	"sync"
	"time"
)

const eventBufferSize = 16

// Subscription delivers playback events to one consumer. The consumer owns
// the receiving ends; calling Close drops the subscription and stops its
// position reporter within one polling interval.
type Subscription struct {
	// Positions carries periodic position samples, clamped into
	// [0, duration], plus an immediate sample after every seek.
	Positions <-chan time.Duration
	// States carries state transitions.
	States <-chan StateChange
	// Errors carries formatted operational errors (seek failures, dropped
	// command sends). Nothing fatal ever arrives here.
	Errors <-chan string

	positionCh chan time.Duration
	stateCh    chan StateChange
	errorCh    chan string

	done      chan struct{}
	closeOnce sync.Once
}

func newSubscription() *Subscription {
	s := &Subscription{
		positionCh: make(chan time.Duration, eventBufferSize),
		stateCh:    make(chan StateChange, eventBufferSize),
		errorCh:    make(chan string, eventBufferSize),
		done:       make(chan struct{}),
	}
	s.Positions = s.positionCh
	s.States = s.stateCh
	s.Errors = s.errorCh
	return s
}

// Close drops the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

// Event sends are non-blocking: a slow consumer loses samples, it never
// stalls the worker or the reporter.

func (s *Subscription) sendPosition(pos time.Duration) {
	select {
	case s.positionCh <- pos:
	default:
	}
}

func (s *Subscription) sendState(e StateChange) {
	select {
	case s.stateCh <- e:
	default:
	}
}

func (s *Subscription) sendError(msg string) {
	select {
	case s.errorCh <- msg:
	default:
	}
}
