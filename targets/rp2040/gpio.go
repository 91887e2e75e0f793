//go:build rp2040

package main

import (
	"device/rp"
	"machine"
	"runtime/volatile"
	"unsafe"

	"github.com/dlock8/InterconnectIO-Slave/core"
)

// maxPin bounds every pin argument. The RP2040 exposes GPIO0 to GPIO29.
const maxPin = 30

// Pad control register fields, RP2040 datasheet 2.19.6.3. The pad registers
// sit in PADS_BANK0, one word per pin starting at GPIO0.
const (
	padPullDownEnable = 1 << 2
	padPullUpEnable   = 1 << 3
	padDriveMask      = 0x3 << 4
	padDrivePos       = 4
)

// RPGPIODriver implements core.GPIODriver on the RP2040 SIO and pad
// registers. Single pin writes use the SIO set/clear aliases and masked
// writes use the XOR alias, so every mutation is a single store and safe
// to interleave with the bus event goroutine.
type RPGPIODriver struct{}

// NewRPGPIODriver creates the RP2040 GPIO driver.
func NewRPGPIODriver() *RPGPIODriver {
	return &RPGPIODriver{}
}

// padReg returns the pad control register for pin. Callers bound pin first.
func padReg(pin core.GPIOPin) *volatile.Register32 {
	base := uintptr(unsafe.Pointer(&rp.PADS_BANK0.GPIO0))
	return (*volatile.Register32)(unsafe.Pointer(base + 4*uintptr(pin)))
}

// InitMask claims every pin set in mask for software IO: function select
// SIO, direction input, output latch low.
func (d *RPGPIODriver) InitMask(mask uint32) {
	for pin := 0; pin < maxPin; pin++ {
		if mask&(1<<pin) == 0 {
			continue
		}
		machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinInput})
	}
	rp.SIO.GPIO_OUT_CLR.Set(mask)
}

func (d *RPGPIODriver) SetPin(pin core.GPIOPin, value bool) {
	if pin >= maxPin {
		return
	}
	if value {
		rp.SIO.GPIO_OUT_SET.Set(1 << pin)
	} else {
		rp.SIO.GPIO_OUT_CLR.Set(1 << pin)
	}
}

func (d *RPGPIODriver) GetPin(pin core.GPIOPin) bool {
	if pin >= maxPin {
		return false
	}
	return rp.SIO.GPIO_IN.Get()&(1<<pin) != 0
}

func (d *RPGPIODriver) GetAll() uint32 {
	return rp.SIO.GPIO_IN.Get()
}

// OutMasked drives the masked pins to value in one store through the XOR
// alias, leaving every other pin untouched.
func (d *RPGPIODriver) OutMasked(mask, value uint32) {
	rp.SIO.GPIO_OUT_XOR.Set((rp.SIO.GPIO_OUT.Get() ^ value) & mask)
}

func (d *RPGPIODriver) SetPinDir(pin core.GPIOPin, output bool) {
	if pin >= maxPin {
		return
	}
	if output {
		rp.SIO.GPIO_OE_SET.Set(1 << pin)
	} else {
		rp.SIO.GPIO_OE_CLR.Set(1 << pin)
	}
}

func (d *RPGPIODriver) GetPinDir(pin core.GPIOPin) bool {
	if pin >= maxPin {
		return false
	}
	return rp.SIO.GPIO_OE.Get()&(1<<pin) != 0
}

func (d *RPGPIODriver) DirMasked(mask, value uint32) {
	rp.SIO.GPIO_OE_XOR.Set((rp.SIO.GPIO_OE.Get() ^ value) & mask)
}

func (d *RPGPIODriver) SetDriveStrength(pin core.GPIOPin, drive core.DriveStrength) {
	if pin >= maxPin {
		return
	}
	reg := padReg(pin)
	reg.Set((reg.Get() &^ padDriveMask) | (uint32(drive)&0x3)<<padDrivePos)
}

func (d *RPGPIODriver) GetDriveStrength(pin core.GPIOPin) core.DriveStrength {
	if pin >= maxPin {
		return core.Drive2mA
	}
	return core.DriveStrength((padReg(pin).Get() & padDriveMask) >> padDrivePos)
}

func (d *RPGPIODriver) PullUp(pin core.GPIOPin) {
	if pin >= maxPin {
		return
	}
	reg := padReg(pin)
	reg.Set((reg.Get() &^ padPullDownEnable) | padPullUpEnable)
}

func (d *RPGPIODriver) PullDown(pin core.GPIOPin) {
	if pin >= maxPin {
		return
	}
	reg := padReg(pin)
	reg.Set((reg.Get() &^ padPullUpEnable) | padPullDownEnable)
}

func (d *RPGPIODriver) DisablePulls(pin core.GPIOPin) {
	if pin >= maxPin {
		return
	}
	reg := padReg(pin)
	reg.Set(reg.Get() &^ (padPullUpEnable | padPullDownEnable))
}

func (d *RPGPIODriver) IsPulledUp(pin core.GPIOPin) bool {
	if pin >= maxPin {
		return false
	}
	return padReg(pin).Get()&padPullUpEnable != 0
}

func (d *RPGPIODriver) IsPulledDown(pin core.GPIOPin) bool {
	if pin >= maxPin {
		return false
	}
	return padReg(pin).Get()&padPullDownEnable != 0
}

// WritePad replaces the masked bits of the pad control register, giving
// direct access to slew, schmitt, drive and input enable fields.
func (d *RPGPIODriver) WritePad(pin core.GPIOPin, value, mask uint32) {
	if pin >= maxPin {
		return
	}
	reg := padReg(pin)
	reg.Set((reg.Get() &^ mask) | (value & mask))
}

func (d *RPGPIODriver) ReadPad(pin core.GPIOPin) uint32 {
	if pin >= maxPin {
		return 0
	}
	return padReg(pin).Get()
}
