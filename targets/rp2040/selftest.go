//go:build rp2040 && loopback

package main

import (
	"machine"

	"github.com/dlock8/InterconnectIO-Slave/core"
)

// Development self-test: I2C1 on GP6/GP7 acts as a bus controller wired
// back to the target pins, so one board exercises its own register file.
// Build with -tags loopback and bridge GP6 to GP20 and GP7 to GP21.
const (
	loopbackSDA = machine.GPIO6
	loopbackSCL = machine.GPIO7
)

// initLoopback configures the controller bus and hooks a command cycle
// into the service loop.
func initLoopback(l *core.Loop, addr uint8) {
	bus := machine.I2C1
	err := bus.Configure(machine.I2CConfig{
		Frequency: i2cFrequency,
		SDA:       loopbackSDA,
		SCL:       loopbackSCL,
	})
	if err != nil {
		core.DiagPrintln("Loopback bus setup failed")
		return
	}
	l.SelfTest = func() {
		sendMaster(bus, addr, 11, 28)
		sendMaster(bus, addr, 15, 0x02)
		sendMaster(bus, addr, 85, 0xC0)
		sendMaster(bus, addr, 100, 0x00)
	}
}

// sendMaster writes one command byte pair, then reads the same register
// back, reporting both legs on the console.
func sendMaster(bus *machine.I2C, addr, cmd, value uint8) {
	wr := []byte{cmd, value}
	if err := bus.Tx(uint16(addr), wr, nil); err != nil {
		core.DiagPrintln("Couldn't write register to slave")
		return
	}
	var rec core.Record
	rec.AppendString("MAS: Write at register ")
	rec.AppendUint8(cmd)
	rec.AppendString(": ")
	rec.AppendUint8(value)
	core.DiagPrintln(rec.String())

	var rd [1]byte
	if err := bus.Tx(uint16(addr), wr[:1], rd[:]); err != nil {
		core.DiagPrintln("Couldn't read register from slave")
		return
	}
	rec = core.Record{}
	rec.AppendString("MAS: Read Register ")
	rec.AppendUint8(cmd)
	rec.AppendString(" = ")
	rec.AppendUint(uint32(rd[0]))
	core.DiagPrintln(rec.String())
}
