package core

import (
	"strings"
	"testing"
)

func TestResolveAddress(t *testing.T) {
	cases := []struct {
		strap0, strap1 bool
		want           uint8
	}{
		{false, false, 0x20},
		{true, false, 0x21},
		{false, true, 0x22},
		{true, true, 0x23},
	}
	for _, c := range cases {
		if got := ResolveAddress(c.strap0, c.strap1); got != c.want {
			t.Errorf("ResolveAddress(%v, %v) = %#x, want %#x", c.strap0, c.strap1, got, c.want)
		}
	}
}

func TestPortCapability(t *testing.T) {
	for addr := uint8(0x20); addr <= 0x23; addr++ {
		s, _ := newTestSlave(addr)
		if got := s.portCapable(); got != (addr == PortAddress) {
			t.Errorf("Address %#x: portCapable = %v", addr, got)
		}
	}
}

func TestBootConfigPortIdentity(t *testing.T) {
	s, gpio := newTestSlave(PortAddress)

	s.ApplyBootConfig()

	if gpio.Dirs != IODirMask {
		t.Errorf("Expected directions %#x, got %#x", IODirMask, gpio.Dirs)
	}
	if gpio.Levels != 0 {
		t.Errorf("Expected outputs low, got %#x", gpio.Levels)
	}
	if s.Flags.Byte() != 0 {
		t.Errorf("Expected clean status, got %#x", s.Flags.Byte())
	}

	traces := drainStrings(s.Queue)
	if len(traces) != 2 {
		t.Fatalf("Expected boot and config records, got %v", traces)
	}
	if traces[0] != "Pico Slave boot for I2C address 0x21" {
		t.Errorf("Expected boot record, got %q", traces[0])
	}
	if traces[1] != "Config for I2C address 0x21 completed" {
		t.Errorf("Expected config record, got %q", traces[1])
	}
}

func TestBootConfigRelayIdentities(t *testing.T) {
	for _, addr := range []uint8{0x22, 0x23} {
		s, gpio := newTestSlave(addr)

		s.ApplyBootConfig()

		if gpio.Dirs != RelayDirMask {
			t.Errorf("Address %#x: expected directions %#x, got %#x", addr, RelayDirMask, gpio.Dirs)
		}
		if s.Flags.Byte() != 0 {
			t.Errorf("Address %#x: expected clean status, got %#x", addr, s.Flags.Byte())
		}
	}
}

func TestBootConfigUnsupportedIdentity(t *testing.T) {
	s, gpio := newTestSlave(0x20)

	s.ApplyBootConfig()

	if gpio.Dirs != 0 {
		t.Errorf("Expected no direction defaults, got %#x", gpio.Dirs)
	}
	if !s.Flags.Has(StatusConfigError) {
		t.Errorf("Expected config error flag")
	}

	traces := drainStrings(s.Queue)
	if len(traces) != 2 {
		t.Fatalf("Expected boot and rejection records, got %v", traces)
	}
	if !strings.Contains(traces[1], "I2C address not supported") {
		t.Errorf("Expected unsupported record, got %q", traces[1])
	}

	// The device still answers on the bus after a config fault.
	if got := readRegister(s, StatusRegister); got != StatusConfigError.Byte() {
		t.Errorf("Expected status byte %#x, got %#x", StatusConfigError.Byte(), got)
	}
}

func TestBootMasksStayInsideOwnedPins(t *testing.T) {
	if IODirMask&^DefaultDirMask != 0 {
		t.Errorf("IO direction mask leaves the owned pin set")
	}
	if RelayDirMask&^DefaultDirMask != 0 {
		t.Errorf("Relay direction mask leaves the owned pin set")
	}
	if Port1Mask != 0xFF<<Port1Offset {
		t.Errorf("Port 1 mask %#x does not match its offset", Port1Mask)
	}
	if Bank1Mask != Port1Mask {
		t.Errorf("Bank 1 and port 1 must cover the same pins")
	}
}
