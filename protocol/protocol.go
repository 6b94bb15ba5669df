// Package protocol implements the MAX3100 16-bit command and status word
// format: the four command shapes, the status bits carried on every
// exchange, and the crystal/baud-rate code table.
//
// Everything here is pure bit manipulation; no I/O happens in this package.
package protocol

// Command tags, occupying the two high bits of a 16-bit word.
const (
	CmdWriteConf uint16 = 0b1100000000000000
	CmdReadConf  uint16 = 0b0100000000000000
	CmdWriteData uint16 = 0b1000000000000000
	CmdReadData  uint16 = 0b0000000000000000
)

// Configuration and status bits.
const (
	// ConfR is set in a status word when the receiver holds a byte.
	ConfR uint16 = 0b1000000000000000

	// ConfT is set in a status word when the transmitter can accept a byte.
	ConfT uint16 = 0b0100000000000000

	// ConfRM is the receiver interrupt mask written with the configuration.
	ConfRM uint16 = 0b0000110000000000

	// ConfRSB is where ConfR lands after the 8-bit shift of a burst read.
	ConfRSB uint16 = 0b0000000010000000
)

// ReadData builds a read-data command word.
func ReadData() uint16 { return CmdReadData }

// WriteData builds a write-data command word carrying b.
func WriteData(b byte) uint16 { return CmdWriteData | uint16(b) }

// ReadConf builds a read-configuration command word.
func ReadConf() uint16 { return CmdReadConf }

// WriteConf builds a write-configuration command word carrying the given
// configuration bits (baud code, interrupt masks).
func WriteConf(bits uint16) uint16 { return CmdWriteConf | bits }

// ReceiverHasData reports whether a status word says a received byte is
// ready. The data byte itself rides in the low 8 bits of the same word.
func ReceiverHasData(w uint16) bool { return w&ConfR != 0 }

// TransmitterReady reports whether a status word says the transmit buffer
// can accept a byte.
func TransmitterReady(w uint16) bool { return w&ConfT != 0 }

// DataByte extracts the received byte from a status word.
func DataByte(w uint16) byte { return byte(w) }
