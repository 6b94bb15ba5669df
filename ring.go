package max3100

// ring is a fixed-capacity circular byte buffer. head is the next write
// slot, tail the oldest unread byte; the buffer is empty iff head == tail,
// so one slot is always left unused and usable capacity is len(buf)-1.
//
// Each Device owns exactly one ring; the consumer only ever sees byte
// values, never indices.
type ring struct {
	buf  []byte
	head int
	tail int
}

func newRing(capacity int) *ring {
	return &ring{buf: make([]byte, capacity)}
}

// push stores one byte. Filling the last free slot is an overrun: the byte
// is dropped, unread data is preserved, and the caller gets a typed error.
func (r *ring) push(b byte) error {
	next := (r.head + 1) % len(r.buf)
	if next == r.tail {
		return &OverrunError{Capacity: len(r.buf)}
	}
	r.buf[r.head] = b
	r.head = next
	return nil
}

// full reports whether the next push would overrun.
func (r *ring) full() bool {
	return (r.head+1)%len(r.buf) == r.tail
}

// pop removes and returns the oldest byte.
func (r *ring) pop() (byte, bool) {
	if r.head == r.tail {
		return 0, false
	}
	b := r.buf[r.tail]
	r.tail = (r.tail + 1) % len(r.buf)
	return b, true
}

// buffered returns the number of unread bytes.
func (r *ring) buffered() int {
	if r.head < r.tail {
		return r.head + len(r.buf) - r.tail
	}
	return r.head - r.tail
}

// reset discards all unread bytes.
func (r *ring) reset() {
	r.head = 0
	r.tail = 0
}
