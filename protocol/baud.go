package protocol

// Crystal selects the chip's clock-multiplier mode, which determines which
// baud-rate code table applies.
type Crystal int

const (
	// Crystal1843kHz is the x1 table for a 1.8432 MHz crystal.
	Crystal1843kHz Crystal = 1

	// Crystal3686kHz is the x2 table for a 3.6864 MHz crystal.
	Crystal3686kHz Crystal = 2
)

// DefaultBaud is the fallback rate used when a requested baud has no code
// in the selected table.
const DefaultBaud = 9600

// Baud-rate codes for crystal multiplier x1.
const (
	BaudX1_115200 uint16 = 0b0000
	BaudX1_57600  uint16 = 0b0001
	BaudX1_38400  uint16 = 0b1000
	BaudX1_19200  uint16 = 0b1001
	BaudX1_9600   uint16 = 0b1010
	BaudX1_4800   uint16 = 0b1011
	BaudX1_2400   uint16 = 0b1100
	BaudX1_1200   uint16 = 0b1101
	BaudX1_600    uint16 = 0b1110
	BaudX1_300    uint16 = 0b1111
)

// Baud-rate codes for crystal multiplier x2.
const (
	BaudX2_230400 uint16 = 0b0000
	BaudX2_115200 uint16 = 0b0001
	BaudX2_57600  uint16 = 0b0010
	BaudX2_38400  uint16 = 0b1001
	BaudX2_19200  uint16 = 0b1010
	BaudX2_9600   uint16 = 0b1011
	BaudX2_4800   uint16 = 0b1100
	BaudX2_2400   uint16 = 0b1101
	BaudX2_1200   uint16 = 0b1110
	BaudX2_600    uint16 = 0b1111
)

var baudX1 = map[int]uint16{
	115200: BaudX1_115200,
	57600:  BaudX1_57600,
	38400:  BaudX1_38400,
	19200:  BaudX1_19200,
	9600:   BaudX1_9600,
	4800:   BaudX1_4800,
	2400:   BaudX1_2400,
	1200:   BaudX1_1200,
	600:    BaudX1_600,
	300:    BaudX1_300,
}

var baudX2 = map[int]uint16{
	230400: BaudX2_230400,
	115200: BaudX2_115200,
	57600:  BaudX2_57600,
	38400:  BaudX2_38400,
	19200:  BaudX2_19200,
	9600:   BaudX2_9600,
	4800:   BaudX2_4800,
	2400:   BaudX2_2400,
	1200:   BaudX2_1200,
	600:    BaudX2_600,
}

// BaudCode looks up the 4-bit configuration code for a baud rate under the
// given crystal multiplier. Rates absent from the table fall back to the
// 9600 baud code, matching the chip's documented default.
func BaudCode(c Crystal, baud int) uint16 {
	table := baudX1
	if c == Crystal3686kHz {
		table = baudX2
	}
	if code, ok := table[baud]; ok {
		return code
	}
	return table[DefaultBaud]
}

// SupportedBaud reports whether the baud rate has an exact code under the
// given crystal multiplier.
func SupportedBaud(c Crystal, baud int) bool {
	if c == Crystal3686kHz {
		_, ok := baudX2[baud]
		return ok
	}
	_, ok := baudX1[baud]
	return ok
}
