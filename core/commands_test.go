package core

import (
	"strings"
	"testing"
)

func TestSetClearGpio(t *testing.T) {
	s, gpio := newTestSlave(PortAddress)

	writeRegister(s, 11, 5)
	if !gpio.GetPin(5) {
		t.Errorf("Expected pin 5 high after set")
	}

	writeRegister(s, 10, 5)
	if gpio.GetPin(5) {
		t.Errorf("Expected pin 5 low after clear")
	}
}

func TestClearBank(t *testing.T) {
	s, gpio := newTestSlave(PortAddress)
	gpio.Levels = 0xFF | (0xFF << Port1Offset)

	// A pin argument below 10 selects bank 0.
	writeRegister(s, 12, 5)
	if gpio.Levels != 0xFF<<Port1Offset {
		t.Errorf("Expected bank 0 cleared, got levels %#x", gpio.Levels)
	}

	// 10 and above selects bank 1.
	writeRegister(s, 12, 10)
	if gpio.Levels != 0 {
		t.Errorf("Expected bank 1 cleared, got levels %#x", gpio.Levels)
	}
}

func TestDirectionCommands(t *testing.T) {
	s, gpio := newTestSlave(PortAddress)

	writeRegister(s, 20, 6)
	if !gpio.GetPinDir(6) {
		t.Errorf("Expected pin 6 configured as output")
	}

	writeRegister(s, 21, 6)
	if gpio.GetPinDir(6) {
		t.Errorf("Expected pin 6 configured as input")
	}
}

func TestDriveStrengthCommands(t *testing.T) {
	s, gpio := newTestSlave(PortAddress)

	cases := []struct {
		id   uint8
		want DriveStrength
	}{
		{30, Drive2mA},
		{31, Drive4mA},
		{32, Drive8mA},
		{33, Drive12mA},
	}
	for _, c := range cases {
		writeRegister(s, c.id, 4)
		if got := gpio.GetDriveStrength(4); got != c.want {
			t.Errorf("Command %d: expected drive %d, got %d", c.id, c.want, got)
		}
	}
}

func TestPullCommands(t *testing.T) {
	s, gpio := newTestSlave(PortAddress)

	writeRegister(s, 41, 3)
	if !gpio.IsPulledUp(3) || gpio.IsPulledDown(3) {
		t.Errorf("Expected pull-up only on pin 3")
	}

	writeRegister(s, 51, 3)
	if !gpio.IsPulledDown(3) || gpio.IsPulledUp(3) {
		t.Errorf("Expected pull-down only on pin 3")
	}

	writeRegister(s, 50, 3)
	if gpio.IsPulledUp(3) || gpio.IsPulledDown(3) {
		t.Errorf("Expected both pulls disabled on pin 3")
	}
}

func TestPadPrepareApply(t *testing.T) {
	s, gpio := newTestSlave(PortAddress)

	writeRegister(s, 60, 0x56)
	for i, pad := range gpio.Pads {
		if pad != 0 {
			t.Fatalf("Expected no pad writes after prepare, pad %d = %#x", i, pad)
		}
	}

	writeRegister(s, 61, 7)
	if gpio.Pads[7] != 0x56 {
		t.Errorf("Expected pad 7 = 0x56, got %#x", gpio.Pads[7])
	}

	traces := drainStrings(s.Queue)
	if len(traces) != 2 {
		t.Fatalf("Expected 2 records, got %v", traces)
	}
	if traces[0] != "Cmd 60, Pad State: 86 " {
		t.Errorf("Expected prepare record, got %q", traces[0])
	}
	if traces[1] != "Cmd 61, Set Pad State to Gpio: 07, State: 0x56 " {
		t.Errorf("Expected apply record, got %q", traces[1])
	}
}

func TestPadApplyMasksToLowByte(t *testing.T) {
	s, gpio := newTestSlave(PortAddress)
	gpio.Pads[7] = 0xFFFFFF00

	writeRegister(s, 60, 0x21)
	writeRegister(s, 61, 7)

	if gpio.Pads[7] != 0xFFFFFF21 {
		t.Errorf("Expected only low byte rewritten, got %#x", gpio.Pads[7])
	}
}

func TestPortDirAndOut(t *testing.T) {
	s, gpio := newTestSlave(PortAddress)

	writeRegister(s, 80, 0x0F)
	if gpio.Dirs != 0x0F {
		t.Errorf("Expected port 0 directions 0x0f, got %#x", gpio.Dirs)
	}

	writeRegister(s, 81, 0xAA)
	if gpio.Levels&Port0Mask != 0xAA {
		t.Errorf("Expected port 0 outputs 0xaa, got %#x", gpio.Levels)
	}

	writeRegister(s, 90, 0xFF)
	if gpio.Dirs != 0x0F|Port1Mask {
		t.Errorf("Expected port 1 directions raised, got %#x", gpio.Dirs)
	}

	writeRegister(s, 91, 0x3C)
	if gpio.Levels&Port1Mask != 0x3C<<Port1Offset {
		t.Errorf("Expected port 1 outputs 0x3c shifted, got %#x", gpio.Levels)
	}

	traces := drainStrings(s.Queue)
	wants := []string{
		"Cmd 80, Port0, dir: 0x0f ",
		"Cmd 81, Port0, 8 bit Out: 0xaa ",
		"Cmd 90, Port1, dir: 0x3fc00 ",
		"Cmd 91, Port1, 8 bit Out: 0x3c ",
	}
	if len(traces) != len(wants) {
		t.Fatalf("Expected %d records, got %v", len(wants), traces)
	}
	for i, want := range wants {
		if traces[i] != want {
			t.Errorf("Record %d: expected %q, got %q", i, want, traces[i])
		}
	}
}

func TestPortOutLeavesOtherPins(t *testing.T) {
	s, gpio := newTestSlave(PortAddress)
	gpio.Levels = 1 << 20

	writeRegister(s, 81, 0xFF)
	if gpio.Levels != 0xFF|1<<20 {
		t.Errorf("Expected pin 20 untouched by port 0 write, got %#x", gpio.Levels)
	}
}

func TestReadBank(t *testing.T) {
	s, gpio := newTestSlave(PortAddress)
	gpio.Levels = 0xA5 | (0x3C << Port1Offset)

	writeRegister(s, 13, 5)
	if got := readRegister(s, 13); got != 0xA5 {
		t.Errorf("Expected bank 0 read 0xa5, got %#x", got)
	}

	writeRegister(s, 13, 10)
	if got := readRegister(s, 13); got != 0x3C {
		t.Errorf("Expected bank 1 read 0x3c, got %#x", got)
	}
}

func TestGpioReadbacks(t *testing.T) {
	s, gpio := newTestSlave(PortAddress)

	gpio.SetPin(5, true)
	writeRegister(s, 15, 5)
	if got := readRegister(s, 15); got != 1 {
		t.Errorf("Expected pin 5 read 1, got %d", got)
	}

	gpio.SetPinDir(6, true)
	writeRegister(s, 25, 6)
	if got := readRegister(s, 25); got != 1 {
		t.Errorf("Expected pin 6 direction 1, got %d", got)
	}

	gpio.SetDriveStrength(4, Drive8mA)
	writeRegister(s, 35, 4)
	if got := readRegister(s, 35); got != uint8(Drive8mA) {
		t.Errorf("Expected drive level %d, got %d", Drive8mA, got)
	}

	gpio.PullUp(3)
	writeRegister(s, 45, 3)
	if got := readRegister(s, 45); got != 1 {
		t.Errorf("Expected pull-up read 1, got %d", got)
	}
	writeRegister(s, 55, 3)
	if got := readRegister(s, 55); got != 0 {
		t.Errorf("Expected pull-down read 0, got %d", got)
	}

	gpio.Pads[9] = 0x156
	writeRegister(s, 65, 9)
	if got := readRegister(s, 65); got != 0x56 {
		t.Errorf("Expected pad low byte 0x56, got %#x", got)
	}
}

func TestReadbackTraceShapes(t *testing.T) {
	s, gpio := newTestSlave(PortAddress)
	gpio.SetPin(5, true)

	writeRegister(s, 15, 5)
	drainStrings(s.Queue)
	readRegister(s, 15)

	traces := drainStrings(s.Queue)
	if len(traces) != 2 {
		t.Fatalf("Expected 2 records, got %v", traces)
	}
	if traces[0] != "Cmd 15, Read True Gpio: 05, State: 1 " {
		t.Errorf("Expected read record, got %q", traces[0])
	}
	if traces[1] != "Read Cmd : 15 , Value: 01 " {
		t.Errorf("Expected summary record, got %q", traces[1])
	}

	// A low pin renders as a bare 0. The refresh overwrote the cell, so
	// the pin number goes in again first.
	gpio.SetPin(5, false)
	writeRegister(s, 15, 5)
	readRegister(s, 15)

	traces = drainStrings(s.Queue)
	if len(traces) != 2 {
		t.Fatalf("Expected 2 records, got %v", traces)
	}
	if traces[0] != "Cmd 15, Read True Gpio: 05, State: 0 " {
		t.Errorf("Expected low state record, got %q", traces[0])
	}
	if traces[1] != "Read Cmd : 15 , Value: 00 " {
		t.Errorf("Expected summary record, got %q", traces[1])
	}
}

func TestPortReads(t *testing.T) {
	s, gpio := newTestSlave(PortAddress)
	gpio.Levels = 0xA5 | (0x3C << Port1Offset)

	if got := readRegister(s, 85); got != 0xA5 {
		t.Errorf("Expected port 0 read 0xa5, got %#x", got)
	}
	if got := readRegister(s, 95); got != 0x3C {
		t.Errorf("Expected port 1 read 0x3c, got %#x", got)
	}

	traces := drainStrings(s.Queue)
	found0, found1 := false, false
	for _, tr := range traces {
		if tr == "Cmd 85, Read Port0 8 bit In: 0xa5 " {
			found0 = true
		}
		if tr == "Cmd 95, Read Port1 8 bit In: 0x3c " {
			found1 = true
		}
	}
	if !found0 || !found1 {
		t.Errorf("Missing port read records in %v", traces)
	}
}

func TestVersionRegisters(t *testing.T) {
	s, _ := newTestSlave(PortAddress)

	if got := readRegister(s, 1); got != VersionMajor {
		t.Errorf("Expected major version %d, got %d", VersionMajor, got)
	}
	if got := readRegister(s, 2); got != VersionMinor {
		t.Errorf("Expected minor version %d, got %d", VersionMinor, got)
	}
}

func TestCommandTableBounds(t *testing.T) {
	// Every populated entry must sit at a register map command address;
	// everything else stays plain storage.
	writeIDs := map[int]bool{
		10: true, 11: true, 12: true, 20: true, 21: true,
		30: true, 31: true, 32: true, 33: true,
		41: true, 50: true, 51: true, 60: true, 61: true,
		80: true, 81: true, 90: true, 91: true,
	}
	for i, cmd := range writeCommands {
		if (cmd != nil) != writeIDs[i] {
			t.Errorf("Write table entry %d: populated=%v, want %v", i, cmd != nil, writeIDs[i])
		}
	}

	readIDs := map[int]bool{
		1: true, 2: true, 13: true, 15: true, 25: true, 35: true,
		45: true, 55: true, 65: true, 85: true, 95: true, 100: true,
	}
	for i, cmd := range readCommands {
		if (cmd != nil) != readIDs[i] {
			t.Errorf("Read table entry %d: populated=%v, want %v", i, cmd != nil, readIDs[i])
		}
	}
}

func TestOnlyPortCommandsGated(t *testing.T) {
	for i, cmd := range writeCommands {
		if cmd == nil {
			continue
		}
		gated := i == 80 || i == 81 || i == 90 || i == 91
		if cmd.portOnly != gated {
			t.Errorf("Write command %d: portOnly=%v, want %v", i, cmd.portOnly, gated)
		}
	}
	for i, cmd := range readCommands {
		if cmd == nil {
			continue
		}
		gated := i == 85 || i == 95
		if cmd.portOnly != gated {
			t.Errorf("Read command %d: portOnly=%v, want %v", i, cmd.portOnly, gated)
		}
	}
}

func TestRejectionTextNamesOwnAddress(t *testing.T) {
	for _, addr := range []uint8{0x20, 0x22, 0x23} {
		s, _ := newTestSlave(addr)
		writeRegister(s, 80, 1)
		traces := drainStrings(s.Queue)
		if len(traces) != 1 {
			t.Fatalf("Address %#x: expected 1 record, got %v", addr, traces)
		}
		if !strings.Contains(traces[0], "0x"+hex8(addr)) {
			t.Errorf("Address %#x: rejection %q missing own address", addr, traces[0])
		}
	}
}
