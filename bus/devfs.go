package bus

import (
	"fmt"

	"golang.org/x/exp/io/spi"

	"max3100/protocol"
)

// Devfs is a Word transport over the Linux spidev interface.
type Devfs struct {
	dev *spi.Device
}

// OpenDevfs opens /dev/spidev<bus>.<device> in SPI mode 0 with 8-bit words
// at the given clock speed.
func OpenDevfs(bus, device, speedHz int) (*Devfs, error) {
	if bus < 0 || device < 0 {
		return nil, ErrBadAddress
	}
	dev, err := spi.Open(&spi.Devfs{
		Dev:      fmt.Sprintf("/dev/spidev%d.%d", bus, device),
		Mode:     spi.Mode0,
		MaxSpeed: int64(speedHz),
	})
	if err != nil {
		return nil, err
	}
	if err := dev.SetBitsPerWord(8); err != nil {
		dev.Close()
		return nil, err
	}
	return &Devfs{dev: dev}, nil
}

// Exchange performs one full-duplex 16-bit transfer.
func (d *Devfs) Exchange(cmd uint16) (uint16, error) {
	var tx, rx [2]byte
	protocol.PutWord(tx[:], cmd)
	if err := d.dev.Tx(tx[:], rx[:]); err != nil {
		return 0, err
	}
	return protocol.Word(rx[:]), nil
}

// Close releases the spidev handle.
func (d *Devfs) Close() error {
	return d.dev.Close()
}
