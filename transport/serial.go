// Package transport provides reader collaborators (spec §6) that deliver
// one NMEA 0183 line per call to an ais.Parser. None of these adapters are
// imported by the core ais/messages/internal/bitstream packages; they sit
// strictly above the core, mirroring how the teacher's actisense/socketcan
// packages never get imported back by the root nmea package.
package transport

import (
	"bufio"
	"io"
	"time"

	"github.com/tarm/serial"
)

// SerialConfig configures a SerialReader. It follows the teacher's flat
// config-struct convention (cmd/n2kreader/main.go's serial.Config literal).
type SerialConfig struct {
	Device      string
	BaudRate    int
	ReadTimeout time.Duration
}

// SerialReader reads NMEA 0183 lines off a serial port, the way AIS
// receivers and AIS-capable VHF radios commonly present themselves over
// USB-serial (spec §11 DOMAIN STACK).
type SerialReader struct {
	port    io.ReadWriteCloser
	scanner *bufio.Scanner
}

// OpenSerial opens the configured serial device and wraps it for
// line-at-a-time reads. The caller must Close the returned reader.
func OpenSerial(cfg SerialConfig) (*SerialReader, error) {
	readTimeout := cfg.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = 100 * time.Millisecond
	}
	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.BaudRate,
		ReadTimeout: readTimeout,
		Size:        8,
	})
	if err != nil {
		return nil, err
	}
	return &SerialReader{port: port, scanner: bufio.NewScanner(port)}, nil
}

// ReadLine returns the next NMEA 0183 line, without its trailing newline,
// per the reader collaborator contract in spec §6. It returns io.EOF when
// the underlying device is closed or exhausted.
func (r *SerialReader) ReadLine() ([]byte, error) {
	if r.scanner.Scan() {
		return r.scanner.Bytes(), nil
	}
	if err := r.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// Close releases the underlying serial port.
func (r *SerialReader) Close() error {
	return r.port.Close()
}
