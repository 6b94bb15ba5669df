package max3100

import (
	"max3100/bus"
	"max3100/protocol"
)

// Device is an open session with one MAX3100. It owns the transport handle
// and the receive ring buffer for its lifetime; all methods require the
// session to be open and return ErrClosed otherwise.
//
// A Device is not safe for concurrent use.
type Device struct {
	w   bus.Word
	cfg Config
	rx  *ring

	closed bool
}

// Open connects to the MAX3100 on /dev/spidev<bus>.<device> and writes its
// configuration word once.
//
//	dev, err := max3100.Open(0, 0,
//	    max3100.WithBaud(38400),
//	    max3100.WithMaxMisses(20),
//	)
func Open(busIndex, deviceIndex int, opts ...Option) (*Device, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	w, err := bus.OpenDevfs(busIndex, deviceIndex, cfg.BusSpeed)
	if err != nil {
		return nil, &OpError{Op: "open", Err: err}
	}
	d, err := configure(w, cfg)
	if err != nil {
		w.Close()
		return nil, err
	}
	return d, nil
}

// OpenWith starts a session over an already-open Word transport. The
// transport is owned by the returned Device and released by Close.
func OpenWith(w bus.Word, opts ...Option) (*Device, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	d, err := configure(w, cfg)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func validate(cfg Config) error {
	if cfg.Crystal != protocol.Crystal1843kHz && cfg.Crystal != protocol.Crystal3686kHz {
		return ErrBadCrystal
	}
	return nil
}

// configure sends the write-config word (baud code plus the receiver
// interrupt mask) and builds the session around the transport.
func configure(w bus.Word, cfg Config) (*Device, error) {
	d := &Device{
		w:   w,
		cfg: cfg,
		rx:  newRing(cfg.BufferSize),
	}
	code := protocol.BaudCode(cfg.Crystal, cfg.Baud)
	if _, err := w.Exchange(protocol.WriteConf(code | protocol.ConfRM)); err != nil {
		return nil, &OpError{Op: "configure", Err: err}
	}
	d.debug("configured", "baud", cfg.Baud, "crystal", int(cfg.Crystal), "code", code)
	return d, nil
}

// Close releases the transport handle. It is idempotent and safe under
// defer, so a session closes however its scope is left.
func (d *Device) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	if err := d.w.Close(); err != nil {
		return &OpError{Op: "close", Err: err}
	}
	d.debug("closed")
	return nil
}

func (d *Device) ensureOpen() error {
	if d.closed {
		return ErrClosed
	}
	return nil
}

// drain opportunistically pulls all currently-buffered chip bytes into the
// ring buffer. It polls with read-data exchanges until the chip reports
// no-data MaxMisses times in a row; the miss count restarts on every
// captured byte.
func (d *Device) drain() error {
	misses := 0
	for misses < d.cfg.MaxMisses {
		// A read-data exchange clocks the byte out of the chip's FIFO,
		// so with a full ring it would fetch a byte there is no room to
		// store. Probe the configuration register instead: it does not
		// consume data, so anything the chip holds stays there for a
		// later drain, and the overrun is only reported if the chip
		// really has more to deliver.
		if d.rx.full() {
			status, err := d.w.Exchange(protocol.ReadConf())
			if err != nil {
				return &OpError{Op: "drain", Err: err}
			}
			if !protocol.ReceiverHasData(status) {
				return nil
			}
			d.errorf("receive overrun", "capacity", d.cfg.BufferSize)
			return &OverrunError{Capacity: d.cfg.BufferSize}
		}
		status, err := d.w.Exchange(protocol.ReadData())
		if err != nil {
			return &OpError{Op: "drain", Err: err}
		}
		if !protocol.ReceiverHasData(status) {
			misses++
			continue
		}
		if err := d.capture(protocol.DataByte(status)); err != nil {
			return err
		}
		misses = 0
	}
	return nil
}

// capture stores one received byte, surfacing a buffer overrun as an error
// instead of overwriting unread data.
func (d *Device) capture(b byte) error {
	if err := d.rx.push(b); err != nil {
		d.errorf("receive overrun", "capacity", d.cfg.BufferSize)
		return err
	}
	return nil
}

func (d *Device) debug(msg string, kv ...interface{}) {
	if d.cfg.Logger != nil {
		d.cfg.Logger.Debug(msg, kv...)
	}
}

func (d *Device) errorf(msg string, kv ...interface{}) {
	if d.cfg.Logger != nil {
		d.cfg.Logger.Error(msg, kv...)
	}
}
