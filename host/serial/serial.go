package serial

import (
	"io"
)

// Port is the serial console of one slave board.
// The abstraction keeps the monitor testable:
// - Native serial (github.com/tarm/serial) for real hardware
// - In-memory fakes for tests
type Port interface {
	io.ReadWriteCloser

	// Flush drops any buffered data
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate. The boards talk over USB CDC, which ignores it, but a
	// sane value keeps real UART bridges working too.
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns the configuration for a board console. Reads
// block; callers unblock a pending read by closing the port. A read
// timeout would surface as io.EOF on a console that is merely quiet
// between heartbeats.
func DefaultConfig(device string) *Config {
	return &Config{
		Device: device,
		Baud:   115200,
	}
}
