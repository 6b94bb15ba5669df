package max3100

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed is returned by operations on a closed device.
	ErrClosed = errors.New("max3100: device not open")

	// ErrNoData is returned by ReadByte when the ring buffer is empty
	// after a drain.
	ErrNoData = errors.New("max3100: no data available")

	// ErrEmptyWrite is returned by Write for a zero-length payload.
	ErrEmptyWrite = errors.New("max3100: empty write")

	// ErrTimeout is returned by a blocking Read that ran out of time
	// before collecting the requested length.
	ErrTimeout = errors.New("max3100: read timed out")

	// ErrTxStall is returned when the transmitter never reported ready
	// within the configured transmit timeout.
	ErrTxStall = errors.New("max3100: transmitter not ready")

	// ErrBadCrystal is returned by Open for a crystal multiplier other
	// than 1 or 2.
	ErrBadCrystal = errors.New("max3100: crystal multiplier must be 1 or 2")
)

// OverrunError reports that the receive ring buffer had no free slot for an
// incoming byte. The consumer is not draining fast enough relative to
// incoming traffic; unread data is left intact.
type OverrunError struct {
	Capacity int
}

func (e *OverrunError) Error() string {
	return fmt.Sprintf("max3100: receive buffer overrun (capacity %d)", e.Capacity)
}

// SizeError reports a write payload exceeding the driver's maximum.
type SizeError struct {
	Len int
	Max int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("max3100: write of %d bytes exceeds maximum of %d", e.Len, e.Max)
}

// OpError wraps a transport failure with the operation that hit it.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("max3100: %s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }
