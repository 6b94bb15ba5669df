package bus

import (
	"tinygo.org/x/drivers"

	"max3100/protocol"
)

// SPI adapts a drivers.SPI port to the Word transport, so the driver can
// run against TinyGo machine SPI (or anything else implementing the
// interface). Close is a no-op: the port is owned by the caller.
type SPI struct {
	bus drivers.SPI
}

// NewSPI wraps an already-configured SPI port. The port must be set up for
// mode 0, 8-bit transfers.
func NewSPI(bus drivers.SPI) *SPI {
	return &SPI{bus: bus}
}

// Exchange performs one full-duplex 16-bit transfer.
func (s *SPI) Exchange(cmd uint16) (uint16, error) {
	var tx, rx [2]byte
	protocol.PutWord(tx[:], cmd)
	if err := s.bus.Tx(tx[:], rx[:]); err != nil {
		return 0, err
	}
	return protocol.Word(rx[:]), nil
}

// Close implements Word. The underlying port is left open.
func (s *SPI) Close() error {
	return nil
}
