package core

// RegisterCount is the size of the register file. Register addresses double
// as command identifiers, so the valid range is 0 to 127.
const RegisterCount = 128

// StatusRegister is the register address reporting the status flag byte.
const StatusRegister = 100

// RegisterFile is the 128 byte memory exposed over the bus. Cells written
// with no command attached are plain storage and read back unchanged.
type RegisterFile [RegisterCount]byte

// Load returns the value at addr. Addresses wrap at 128.
func (f *RegisterFile) Load(addr uint8) uint8 {
	return f[addr%RegisterCount]
}

// Store writes value at addr. Addresses wrap at 128.
func (f *RegisterFile) Store(addr, value uint8) {
	f[addr%RegisterCount] = value
}
