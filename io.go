package max3100

import (
	"errors"
	"time"

	"max3100/protocol"
)

// WriteByte transmits one byte. It polls the configuration register until
// the transmitter reports ready, draining any receive data that shows up
// while waiting, then issues the write-data exchange. If the status
// returned by that exchange carries a received byte, it is captured and a
// full drain pass follows, so nothing arriving concurrently with the
// transmit is lost.
func (d *Device) WriteByte(b byte) error {
	if err := d.ensureOpen(); err != nil {
		return err
	}

	var deadline time.Time
	if d.cfg.TxTimeout > 0 {
		deadline = time.Now().Add(d.cfg.TxTimeout)
	}
	for {
		status, err := d.w.Exchange(protocol.ReadConf())
		if err != nil {
			return &OpError{Op: "write", Err: err}
		}
		if protocol.ReceiverHasData(status) {
			// Receive traffic takes priority over our transmit.
			if err := d.drain(); err != nil {
				return err
			}
		} else if protocol.TransmitterReady(status) {
			break
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			d.errorf("transmitter stalled", "timeout", d.cfg.TxTimeout)
			return ErrTxStall
		}
	}

	status, err := d.w.Exchange(protocol.WriteData(b))
	if err != nil {
		return &OpError{Op: "write", Err: err}
	}
	if protocol.ReceiverHasData(status) {
		if err := d.capture(protocol.DataByte(status)); err != nil {
			return err
		}
		return d.drain()
	}
	return nil
}

// ReadByte drains pending chip data and returns the oldest buffered byte,
// or ErrNoData if nothing is buffered.
//
// A drain cut short by a full ring does not block the read: buffered bytes
// are handed back first, which frees slots for the next drain to pick up
// where the chip left off. The overrun only surfaces once there is nothing
// to return.
func (d *Device) ReadByte() (byte, error) {
	if err := d.ensureOpen(); err != nil {
		return 0, err
	}
	if err := d.drain(); err != nil {
		var overrun *OverrunError
		if !errors.As(err, &overrun) {
			return 0, err
		}
		if b, ok := d.rx.pop(); ok {
			return b, nil
		}
		return 0, err
	}
	b, ok := d.rx.pop()
	if !ok {
		return 0, ErrNoData
	}
	return b, nil
}

// Available drains pending chip data and returns the number of unread
// bytes in the ring buffer.
func (d *Device) Available() (int, error) {
	if err := d.ensureOpen(); err != nil {
		return 0, err
	}
	if err := d.drain(); err != nil {
		return 0, err
	}
	return d.rx.buffered(), nil
}

// Buffered is an alias for Available, matching the usual serial port
// naming for the same concept.
func (d *Device) Buffered() (int, error) {
	return d.Available()
}

// Clear drains whatever the chip still holds, then discards all unread
// bytes. A drain cut short by a full ring is not an error here: the full
// buffer is about to be discarded anyway, and the reset frees the space
// the next drain needs.
func (d *Device) Clear() error {
	if err := d.ensureOpen(); err != nil {
		return err
	}
	if err := d.drain(); err != nil {
		var overrun *OverrunError
		if !errors.As(err, &overrun) {
			return err
		}
	}
	d.rx.reset()
	return nil
}

// Write transmits the payload byte by byte, in order. An empty payload is
// ErrEmptyWrite and one longer than MaxWriteLen is a SizeError; validation
// failures send nothing. A transport failure mid-payload leaves the prefix
// already on the wire.
func (d *Device) Write(p []byte) error {
	if err := d.ensureOpen(); err != nil {
		return err
	}
	if len(p) == 0 {
		return ErrEmptyWrite
	}
	if len(p) > MaxWriteLen {
		return &SizeError{Len: len(p), Max: MaxWriteLen}
	}
	for _, b := range p {
		if err := d.WriteByte(b); err != nil {
			return err
		}
	}
	return nil
}

// Read collects received bytes. The sign of length selects the mode:
//
//	length > 0  block until exactly length bytes have arrived (bounded by
//	            the read timeout, if one is set)
//	length == 0 non-blocking; return whatever one drain pass produces
//	length < 0  non-blocking; return at most -length bytes
//
// The returned slice holds exactly the bytes collected. On timeout the
// bytes collected so far are returned along with ErrTimeout.
func (d *Device) Read(length int) ([]byte, error) {
	if err := d.ensureOpen(); err != nil {
		return nil, err
	}
	if length > 0 {
		return d.readBlocking(length)
	}
	return d.readPending(-length)
}

func (d *Device) readBlocking(length int) ([]byte, error) {
	var deadline time.Time
	if d.cfg.ReadTimeout > 0 {
		deadline = time.Now().Add(d.cfg.ReadTimeout)
	}
	out := make([]byte, 0, length)
	for len(out) < length {
		b, err := d.ReadByte()
		if errors.Is(err, ErrNoData) {
			if !deadline.IsZero() && time.Now().After(deadline) {
				d.errorf("blocking read timed out", "want", length, "got", len(out))
				return out, ErrTimeout
			}
			continue
		}
		if err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, nil
}

// readPending reads buffered bytes without blocking, stopping at the first
// empty poll. max == 0 means no limit.
func (d *Device) readPending(max int) ([]byte, error) {
	var out []byte
	for {
		b, err := d.ReadByte()
		if errors.Is(err, ErrNoData) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, b)
		if max > 0 && len(out) == max {
			return out, nil
		}
	}
}
