package core

// InputQueue is a bounded, non-blocking channel of keypresses between an
// input reader and the simulation loop.
//
// The reader side pushes without ever blocking: when the queue is full the
// keypress is dropped. The simulation side polls at most one rune per tick and
// never waits for input, so the tick rate stays constant.
type InputQueue struct {
	ch chan rune
}

// NewInputQueue creates a queue holding up to size pending keypresses.
// A size below 1 is raised to 1 (single-slot delivery).
func NewInputQueue(size int) *InputQueue {
	if size < 1 {
		size = 1
	}
	return &InputQueue{ch: make(chan rune, size)}
}

// Push enqueues a keypress. Returns false if the queue was full and the
// keypress was dropped.
func (q *InputQueue) Push(r rune) bool {
	select {
	case q.ch <- r:
		return true
	default:
		return false
	}
}

// Poll returns the oldest pending keypress, if any, without blocking.
func (q *InputQueue) Poll() (rune, bool) {
	select {
	case r := <-q.ch:
		return r, true
	default:
		return 0, false
	}
}

// Drain discards every pending keypress.
func (q *InputQueue) Drain() {
	for {
		if _, ok := q.Poll(); !ok {
			return
		}
	}
}

// Len returns the number of pending keypresses.
func (q *InputQueue) Len() int {
	return len(q.ch)
}
