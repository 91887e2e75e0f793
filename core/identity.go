package core

// Bus identities. The device address is the base plus two strap bits, giving
// 0x20 to 0x23. Only the port identity accepts the whole port mask commands.
const (
	BaseAddress uint8 = 0x20
	PortAddress uint8 = 0x21
)

// Pin map constants, carried from the board wiring. Binary literals read as
// pin maps: bit n is GPn.
const (
	// BootPinMask is the set of pins claimed as software GPIO at boot. The
	// gaps are the bus pins, the straps and the board LED.
	BootPinMask uint32 = 0b00011100010011111111111111111111

	// DefaultDirMask covers the pins whose direction the boot configuration
	// owns.
	DefaultDirMask uint32 = 0b0011110001111111111111111111111

	// IO slave identity: GP28 out, everything else in, outputs low.
	IODirMask uint32 = 0b00010000000000000000000000000000
	IOOutMask uint32 = 0x00

	// Relay slave identities: every owned pin out, outputs low.
	RelayDirMask uint32 = 0b0011110001111111111111111111111
	RelayOutMask uint32 = 0x00
)

// Bank and port pin groups addressed by the mask commands.
const (
	Bank0Mask uint32 = 0xFF
	Bank1Mask uint32 = 0b00000000000000111111110000000000

	Port0Mask   uint32 = 0xFF
	Port1Mask   uint32 = 0b111111110000000000
	Port1Offset        = 10
)

// ResolveAddress computes the bus address from the two strap pins. The
// straps are pulled up, so a floating strap reads high.
func ResolveAddress(strap0, strap1 bool) uint8 {
	addr := BaseAddress
	if strap0 {
		addr++
	}
	if strap1 {
		addr += 2
	}
	return addr
}

// portCapable reports whether this identity accepts the whole port mask
// commands. The gate is checked once by the dispatcher, never per command.
func (s *Slave) portCapable() bool {
	return s.Address == PortAddress
}

// ApplyBootConfig queues the boot record and applies the per identity
// direction and output defaults. An identity with no configuration raises
// the config flag and skips the hardware defaults; the device still answers
// on the bus so the fault can be read back.
func (s *Slave) ApplyBootConfig() {
	var rec Record
	rec.AppendString("Pico Slave boot for I2C address ")
	rec.AppendHex(uint32(s.Address))
	s.Queue.Push(&rec)

	rec = Record{}
	switch s.Address {
	case PortAddress: // IO slave
		gpio := MustGPIO()
		gpio.DirMasked(DefaultDirMask, IODirMask)
		gpio.OutMasked(DefaultDirMask, IOOutMask)
		rec.AppendString("Config for I2C address ")
		rec.AppendHex(uint32(s.Address))
		rec.AppendString(" completed")

	case BaseAddress + 2, BaseAddress + 3: // relay slaves
		gpio := MustGPIO()
		gpio.DirMasked(DefaultDirMask, RelayDirMask)
		gpio.OutMasked(DefaultDirMask, RelayOutMask)
		rec.AppendString("Config for I2C address ")
		rec.AppendHex(uint32(s.Address))
		rec.AppendString(" completed")

	default:
		rec.AppendString("I2C address not supported for device at address ")
		rec.AppendHex(uint32(s.Address))
		s.Flags.Set(StatusConfigError)
	}
	s.Queue.Push(&rec)
}
