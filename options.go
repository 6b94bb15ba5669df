package max3100

import (
	"time"

	"max3100/protocol"
)

// MaxWriteLen is the largest payload Write accepts in one call.
const MaxWriteLen = 4096

// DefaultBufferSize is the receive ring buffer capacity unless overridden
// with WithBufferSize.
const DefaultBufferSize = 8192

// Config holds the device configuration.
type Config struct {
	// Crystal selects the chip's clock-multiplier mode (x1 or x2).
	Crystal protocol.Crystal

	// Baud is the UART baud rate. Rates without a table entry for the
	// selected crystal fall back to 9600.
	Baud int

	// BusSpeed is the SPI clock in Hz.
	BusSpeed int

	// MaxMisses is the drain loop's retry budget: the number of
	// consecutive no-data polls before the drain gives up.
	MaxMisses int

	// BufferSize is the receive ring buffer capacity in bytes.
	BufferSize int

	// TxTimeout bounds the wait for transmitter-ready before each byte.
	// Zero means wait forever.
	TxTimeout time.Duration

	// ReadTimeout bounds a blocking Read. Zero means wait forever.
	ReadTimeout time.Duration

	// Logger receives debug and error events (optional).
	Logger Logger
}

// defaultConfig mirrors the reference defaults: x2 crystal, 9600 baud,
// 7.8 MHz SPI clock, a miss budget of 10, and unbounded waits.
func defaultConfig() Config {
	return Config{
		Crystal:    protocol.Crystal3686kHz,
		Baud:       9600,
		BusSpeed:   7800000,
		MaxMisses:  10,
		BufferSize: DefaultBufferSize,
	}
}

// Option is a functional option for configuring a Device.
type Option func(*Config)

// WithCrystal selects the crystal multiplier mode.
//
// Example:
//
//	dev, err := max3100.Open(0, 0, max3100.WithCrystal(protocol.Crystal1843kHz))
func WithCrystal(c protocol.Crystal) Option {
	return func(cfg *Config) {
		cfg.Crystal = c
	}
}

// WithBaud sets the UART baud rate.
func WithBaud(baud int) Option {
	return func(cfg *Config) {
		if baud > 0 {
			cfg.Baud = baud
		}
	}
}

// WithBusSpeed sets the SPI clock in Hz.
func WithBusSpeed(hz int) Option {
	return func(cfg *Config) {
		if hz > 0 {
			cfg.BusSpeed = hz
		}
	}
}

// WithMaxMisses sets the drain loop's consecutive-miss budget.
func WithMaxMisses(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MaxMisses = n
		}
	}
}

// WithBufferSize sets the receive ring buffer capacity. One slot is
// reserved for full detection, so n bytes of capacity buffer n-1 bytes.
func WithBufferSize(n int) Option {
	return func(cfg *Config) {
		if n > 1 {
			cfg.BufferSize = n
		}
	}
}

// WithTxTimeout bounds how long a write waits for the transmitter to
// report ready. Zero keeps the reference behavior of waiting forever.
func WithTxTimeout(d time.Duration) Option {
	return func(cfg *Config) {
		if d >= 0 {
			cfg.TxTimeout = d
		}
	}
}

// WithReadTimeout bounds a blocking Read. Zero keeps the reference
// behavior of waiting forever.
func WithReadTimeout(d time.Duration) Option {
	return func(cfg *Config) {
		if d >= 0 {
			cfg.ReadTimeout = d
		}
	}
}

// WithLogger sets a logger for driver events.
//
// Example with the standard log package:
//
//	type stdLogger struct{}
//	func (stdLogger) Debug(msg string, kv ...interface{}) { log.Println("DEBUG:", msg, kv) }
//	func (stdLogger) Error(msg string, kv ...interface{}) { log.Println("ERROR:", msg, kv) }
//
//	dev, err := max3100.Open(0, 0, max3100.WithLogger(stdLogger{}))
func WithLogger(l Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = l
	}
}

// Logger is an optional logging interface, allowing integration with any
// logging framework.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keysAndValues ...interface{})

	// Error logs an error with optional key-value pairs.
	Error(msg string, keysAndValues ...interface{})
}
