package core

// GPIOPin identifies a hardware GPIO pin number
type GPIOPin uint32

// DriveStrength is a pad output drive level. The numeric values are what the
// drive readback command reports.
type DriveStrength uint8

const (
	Drive2mA DriveStrength = iota
	Drive4mA
	Drive8mA
	Drive12mA
)

// GPIODriver is the abstract GPIO interface that core code uses.
// Platform-specific implementations handle actual hardware control.
// The methods run inside bus event handling, so none of them block and
// none return errors; drivers mask out-of-range pin numbers themselves.
type GPIODriver interface {
	// InitMask claims the masked pins as software controlled GPIO inputs
	InitMask(mask uint32)

	// SetPin drives pin high (true) or low (false)
	SetPin(pin GPIOPin, value bool)

	// GetPin reads the current pin level
	GetPin(pin GPIOPin) bool

	// GetAll reads every pin level as one word, bit n for pin n
	GetAll() uint32

	// OutMasked drives the masked pins from value, leaving others untouched
	OutMasked(mask, value uint32)

	// SetPinDir configures pin as output (true) or input (false)
	SetPinDir(pin GPIOPin, output bool)

	// GetPinDir reports whether pin is configured as an output
	GetPinDir(pin GPIOPin) bool

	// DirMasked configures the masked pins' directions from value
	DirMasked(mask, value uint32)

	// SetDriveStrength sets the pad drive level for pin
	SetDriveStrength(pin GPIOPin, drive DriveStrength)

	// GetDriveStrength reads the pad drive level for pin
	GetDriveStrength(pin GPIOPin) DriveStrength

	// PullUp enables the pull-up on pin, clearing the pull-down
	PullUp(pin GPIOPin)

	// PullDown enables the pull-down on pin, clearing the pull-up
	PullDown(pin GPIOPin)

	// DisablePulls clears both pulls on pin
	DisablePulls(pin GPIOPin)

	// IsPulledUp reports whether the pull-up is enabled on pin
	IsPulledUp(pin GPIOPin) bool

	// IsPulledDown reports whether the pull-down is enabled on pin
	IsPulledDown(pin GPIOPin) bool

	// WritePad writes the masked bits of the raw pad control register
	WritePad(pin GPIOPin, value, mask uint32)

	// ReadPad reads the raw pad control register for pin
	ReadPad(pin GPIOPin) uint32
}

// Global singleton used by core code.
var gpioDriver GPIODriver

// SetGPIODriver is called by target-specific code to register its driver.
func SetGPIODriver(d GPIODriver) {
	gpioDriver = d
}

// MustGPIO returns the configured driver or panics if missing.
func MustGPIO() GPIODriver {
	if gpioDriver == nil {
		panic("GPIO driver not configured")
	}
	return gpioDriver
}
