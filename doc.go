// Package max3100 drives the MAX3100 UART-over-SPI bridge, turning a
// byte-oriented SPI link into an asynchronous serial channel.
//
// Every SPI exchange with the chip is a 16-bit command out and a 16-bit
// status word back, and any status word may incidentally carry a received
// byte. The driver therefore drains pending receive data on every
// transaction into a per-device ring buffer, so no byte is lost regardless
// of when the consumer reads.
//
// # Basic usage
//
//	dev, err := max3100.Open(0, 0, max3100.WithBaud(38400))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dev.Close()
//
//	if err := dev.Write([]byte("hello")); err != nil {
//	    log.Fatal(err)
//	}
//	reply, err := dev.Read(5) // block until 5 bytes arrive
//
// # Transports
//
// Open talks to Linux spidev. OpenWith accepts any bus.Word transport, such
// as bus.NewSPI around a TinyGo machine SPI port, or a fake for tests.
//
// # Timeouts
//
// The chip protocol has two wait-until-ready loops with no natural bound:
// waiting for the transmitter before a write, and a blocking Read. Both
// busy-poll forever by default, matching the reference behavior; set
// WithTxTimeout and WithReadTimeout to bound them.
//
// A Device is owned by a single goroutine. Wrap it in external locking if
// it must be shared.
package max3100
