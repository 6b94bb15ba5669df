// max3100-loopback exercises a MAX3100 against a native serial port wired
// back-to-back with it: each side sends a random payload, reads the other
// side's, and verifies it by digest, then the pair settles into a 6-byte
// echo loop.
//
// Run with -role serial and -role max3100 on the two ends (possibly on
// different machines), or -role both when one host owns both ports.
package main

import (
	"crypto/md5"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/tarm/serial"

	"max3100"
)

var (
	role       = flag.String("role", "", "Which end to run: serial, max3100, or both")
	device     = flag.String("device", "/dev/serial0", "Native serial device path")
	spiBus     = flag.Int("bus", 0, "SPI bus number for the MAX3100")
	spiDev     = flag.Int("dev", 0, "SPI device (chip select) for the MAX3100")
	baud       = flag.Int("baud", 38400, "Baud rate for both ends")
	length     = flag.Int("length", 512, "Payload length for the bulk exchange")
	spiSpeed   = flag.Int("spispeed", 7800000, "SPI clock in Hz")
	maxMisses  = flag.Int("maxmisses", 10, "Drain loop miss budget")
	echoRounds = flag.Int("echo", 10, "Number of 6-byte echo rounds (0 = forever)")
)

func main() {
	flag.Parse()

	switch *role {
	case "serial":
		time.Sleep(5 * time.Second) // let the max3100 side come up first
		if err := serialSide(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "max3100":
		if err := max3100Side(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "both":
		errc := make(chan error, 2)
		go func() {
			time.Sleep(time.Second)
			errc <- serialSide()
		}()
		go func() { errc <- max3100Side() }()
		for i := 0; i < 2; i++ {
			if err := <-errc; err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
	default:
		fmt.Fprintln(os.Stderr, "Please indicate -role serial, max3100, or both.")
		os.Exit(2)
	}
}

// makeBytes builds a payload of random uppercase letters, readable in the
// transcript when a byte goes missing.
func makeBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('A' + rand.Intn(26))
	}
	return b
}

func preview(b []byte) string {
	if len(b) > 10 {
		return string(b[:4]) + ".." + string(b[len(b)-4:])
	}
	return string(b)
}

func max3100Side() error {
	dev, err := max3100.Open(*spiBus, *spiDev,
		max3100.WithBaud(*baud),
		max3100.WithMaxMisses(*maxMisses),
		max3100.WithBusSpeed(*spiSpeed),
	)
	if err != nil {
		return err
	}
	defer dev.Close()

	// Block until the serial side's payload arrives.
	start := time.Now()
	b, err := dev.Read(*length)
	if err != nil {
		return err
	}
	fmt.Printf("%4d characters (%s,%x) received (SPI) in %v\n",
		len(b), preview(b), md5.Sum(b), time.Since(start))

	time.Sleep(2 * time.Second)

	fmt.Printf("%4d characters (%s,%x) to send (SPI)\n", len(b), preview(b), md5.Sum(b))
	if err := dev.Write(b); err != nil {
		return err
	}

	time.Sleep(2 * time.Second)

	for round := 0; *echoRounds == 0 || round < *echoRounds; round++ {
		b := makeBytes(6)
		fmt.Printf("%4d characters (%s) to send (SPI)\n", len(b), b)
		if err := dev.Write(b); err != nil {
			return err
		}
		time.Sleep(500 * time.Microsecond)
		got, err := dev.Read(0)
		if err != nil {
			return err
		}
		fmt.Printf("%4d characters (%s) received (SPI)\n", len(got), got)
		time.Sleep(time.Second)
	}
	return nil
}

func serialSide() error {
	port, err := serial.OpenPort(&serial.Config{Name: *device, Baud: *baud})
	if err != nil {
		return err
	}
	defer port.Close()

	payload := makeBytes(*length)
	fmt.Printf("%4d characters (%s,%x) to send (serial,%d baud)\n",
		len(payload), preview(payload), md5.Sum(payload), *baud)
	if _, err := port.Write(payload); err != nil {
		return err
	}
	time.Sleep(100 * time.Millisecond)

	start := time.Now()
	back := make([]byte, *length)
	for n := 0; n < *length; {
		m, err := port.Read(back[n:])
		if err != nil {
			return err
		}
		n += m
	}
	fmt.Printf("%4d characters (%s,%x) received (serial) in %v\n",
		len(back), preview(back), md5.Sum(back), time.Since(start))
	time.Sleep(time.Second)

	buf := make([]byte, 6)
	for round := 0; *echoRounds == 0 || round < *echoRounds; round++ {
		n := 0
		for n < len(buf) {
			m, err := port.Read(buf[n:])
			if err != nil {
				return err
			}
			n += m
		}
		fmt.Printf("%4d characters (%s) to echo (serial)\n", n, buf[:n])
		if _, err := port.Write(buf[:n]); err != nil {
			return err
		}
	}
	return nil
}
