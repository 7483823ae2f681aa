package player

import (
	"errors"
	"sync"
)

// ErrPlayerClosed is returned by Send once the worker is gone.
var ErrPlayerClosed = errors.New("player closed")

// commandQueue is an unbounded multiple-producer/single-consumer FIFO.
// Pushes never block the producer; the consumer blocks until a command
// arrives or the queue is closed. Commands already queued when the queue
// closes are still drained before pop reports closure, so ordering is
// preserved end to end.
type commandQueue struct {
	mu     sync.Mutex
	items  []Command
	closed bool

	// wake carries at most one token; pop re-checks the slice after each
	// wakeup so a single token covers any number of pushes.
	wake chan struct{}
}

func newCommandQueue() *commandQueue {
	return &commandQueue{
		wake: make(chan struct{}, 1),
	}
}

// push appends a command. Returns ErrPlayerClosed if the consumer is gone.
func (q *commandQueue) push(cmd Command) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrPlayerClosed
	}
	q.items = append(q.items, cmd)
	q.mu.Unlock()

	q.signal()
	return nil
}

// pop removes and returns the oldest command, blocking while the queue is
// empty. The second return is false once the queue is closed and drained.
func (q *commandQueue) pop() (Command, bool) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			cmd := q.items[0]
			q.items = q.items[1:]
			q.mu.Unlock()
			return cmd, true
		}
		if q.closed {
			q.mu.Unlock()
			return nil, false
		}
		q.mu.Unlock()

		<-q.wake
	}
}

// close marks the queue closed and wakes the consumer. Idempotent.
func (q *commandQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	q.signal()
}

func (q *commandQueue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}
