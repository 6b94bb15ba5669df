package protocol

import "encoding/binary"

// The MAX3100 shifts words MSB first, so the wire format is big-endian
// regardless of host byte order.

// PutWord writes w into buf in wire order. buf must be at least 2 bytes.
func PutWord(buf []byte, w uint16) {
	binary.BigEndian.PutUint16(buf, w)
}

// Word reads a word from buf in wire order. buf must be at least 2 bytes.
func Word(buf []byte) uint16 {
	return binary.BigEndian.Uint16(buf)
}
