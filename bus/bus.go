// Package bus provides the 16-bit word exchange primitive the MAX3100
// driver is built on, with implementations for Linux spidev and for
// TinyGo-style SPI ports.
package bus

import "errors"

// ErrBadAddress reports an invalid SPI bus or chip-select number.
var ErrBadAddress = errors.New("bus: invalid bus or device number")

// Word exchanges one 16-bit command over the physical link and returns the
// word clocked back during that same exchange. Register chips answer the
// previous command on each exchange, so the returned word is a status word
// and may incidentally carry a received data byte.
//
// Exchange must be synchronous and bit-exact: MSB first on the wire
// regardless of host byte order.
type Word interface {
	Exchange(cmd uint16) (uint16, error)
	Close() error
}
