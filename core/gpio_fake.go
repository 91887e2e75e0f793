package core

// FakePinCount is the number of pins FakeGPIO models, matching the RP2040
// user bank.
const FakePinCount = 30

// FakeGPIO is an in memory GPIODriver for tests and host simulation. Levels
// holds the pin states as one word; tests poke it directly to simulate
// externally driven inputs.
type FakeGPIO struct {
	Levels    uint32
	Dirs      uint32
	Claimed   uint32
	Drives    [FakePinCount]DriveStrength
	PullUps   [FakePinCount]bool
	PullDowns [FakePinCount]bool
	Pads      [FakePinCount]uint32
}

// NewFakeGPIO returns a fake driver with every pin low, input, 4mA.
func NewFakeGPIO() *FakeGPIO {
	g := &FakeGPIO{}
	for i := range g.Drives {
		g.Drives[i] = Drive4mA
	}
	return g
}

func (g *FakeGPIO) valid(pin GPIOPin) bool {
	return pin < FakePinCount
}

func (g *FakeGPIO) InitMask(mask uint32) {
	g.Claimed |= mask
	g.Dirs &^= mask
}

func (g *FakeGPIO) SetPin(pin GPIOPin, value bool) {
	if !g.valid(pin) {
		return
	}
	if value {
		g.Levels |= 1 << pin
	} else {
		g.Levels &^= 1 << pin
	}
}

func (g *FakeGPIO) GetPin(pin GPIOPin) bool {
	return g.valid(pin) && g.Levels&(1<<pin) != 0
}

func (g *FakeGPIO) GetAll() uint32 {
	return g.Levels
}

func (g *FakeGPIO) OutMasked(mask, value uint32) {
	g.Levels = (g.Levels &^ mask) | (value & mask)
}

func (g *FakeGPIO) SetPinDir(pin GPIOPin, output bool) {
	if !g.valid(pin) {
		return
	}
	if output {
		g.Dirs |= 1 << pin
	} else {
		g.Dirs &^= 1 << pin
	}
}

func (g *FakeGPIO) GetPinDir(pin GPIOPin) bool {
	return g.valid(pin) && g.Dirs&(1<<pin) != 0
}

func (g *FakeGPIO) DirMasked(mask, value uint32) {
	g.Dirs = (g.Dirs &^ mask) | (value & mask)
}

func (g *FakeGPIO) SetDriveStrength(pin GPIOPin, drive DriveStrength) {
	if !g.valid(pin) {
		return
	}
	g.Drives[pin] = drive
}

func (g *FakeGPIO) GetDriveStrength(pin GPIOPin) DriveStrength {
	if !g.valid(pin) {
		return Drive2mA
	}
	return g.Drives[pin]
}

func (g *FakeGPIO) PullUp(pin GPIOPin) {
	if !g.valid(pin) {
		return
	}
	g.PullUps[pin] = true
	g.PullDowns[pin] = false
}

func (g *FakeGPIO) PullDown(pin GPIOPin) {
	if !g.valid(pin) {
		return
	}
	g.PullDowns[pin] = true
	g.PullUps[pin] = false
}

func (g *FakeGPIO) DisablePulls(pin GPIOPin) {
	if !g.valid(pin) {
		return
	}
	g.PullUps[pin] = false
	g.PullDowns[pin] = false
}

func (g *FakeGPIO) IsPulledUp(pin GPIOPin) bool {
	return g.valid(pin) && g.PullUps[pin]
}

func (g *FakeGPIO) IsPulledDown(pin GPIOPin) bool {
	return g.valid(pin) && g.PullDowns[pin]
}

func (g *FakeGPIO) WritePad(pin GPIOPin, value, mask uint32) {
	if !g.valid(pin) {
		return
	}
	g.Pads[pin] = (g.Pads[pin] &^ mask) | (value & mask)
}

func (g *FakeGPIO) ReadPad(pin GPIOPin) uint32 {
	if !g.valid(pin) {
		return 0
	}
	return g.Pads[pin]
}
