package serial

import "testing"

func TestDefaultConfigBlockingReads(t *testing.T) {
	cfg := DefaultConfig("/dev/ttyACM0")

	if cfg.Device != "/dev/ttyACM0" {
		t.Errorf("Expected device path kept, got %q", cfg.Device)
	}
	if cfg.Baud != 115200 {
		t.Errorf("Expected default baud 115200, got %d", cfg.Baud)
	}
	// The tailer relies on blocking reads and closes the port to unblock
	// them; a timeout would read as a disconnect on a quiet console.
	if cfg.ReadTimeout != 0 {
		t.Errorf("Expected blocking reads, got timeout %d", cfg.ReadTimeout)
	}
}
