package core

// StatusFlags is the device status byte reported by the status register.
// Flags are sticky: raised at the point of failure and cleared only by
// reset. Bits 4 to 7 are spares.
type StatusFlags uint8

const (
	StatusConfigError   StatusFlags = 1 << 0 // boot identity had no configuration
	StatusCommandError  StatusFlags = 1 << 1 // command refused for this identity
	StatusGeneralError  StatusFlags = 1 << 2 // unclassified fault
	StatusWatchdogReset StatusFlags = 1 << 3 // previous run ended in a watchdog timeout
)

// Set raises flag. There is no clear at runtime.
func (s *StatusFlags) Set(flag StatusFlags) {
	*s |= flag
}

// Has reports whether flag is raised.
func (s StatusFlags) Has(flag StatusFlags) bool {
	return s&flag != 0
}

// Byte returns the flags as the raw register value.
func (s StatusFlags) Byte() uint8 {
	return uint8(s)
}
