//go:build rp2040

package main

import (
	"machine"
	"time"

	"github.com/dlock8/InterconnectIO-Slave/core"
)

// Board wiring. The identity straps select the bus address at boot and the
// board LED doubles as the heartbeat indicator.
const (
	strapPin0 = machine.GPIO26
	strapPin1 = machine.GPIO27
	ledPin    = core.GPIOPin(25)

	watchdogTimeoutMillis = 500
)

var (
	traceQueue core.TraceQueue

	// Debug counters, readable from a debugger session.
	busErrors  uint32
	loopPanics uint32
)

func main() {
	// Capture the reset cause before the watchdog state is touched, then
	// clear any configuration left over from the previous run.
	watchdogReset := WatchdogCausedReboot()
	err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})
	if err != nil {
		return
	}

	InitSerial()

	gpioDriver := NewRPGPIODriver()
	core.SetGPIODriver(gpioDriver)
	core.SetWatchdog(RPWatchdog{})

	gpioDriver.InitMask(core.BootPinMask)
	traceQueue.Reset()

	core.DiagPrintln("Slave Version: " + core.VersionString())

	addr := readIdentityStraps()
	slave := core.NewSlave(addr, &traceQueue, watchdogReset)
	slave.ApplyBootConfig()

	go i2cListenerLoop(slave)

	machine.LED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	machine.LED.High()

	loop := core.NewLoop(slave, ledPin)
	initLoopback(loop, slave.Address)

	if err := StartWatchdog(watchdogTimeoutMillis); err != nil {
		core.DiagPrintln("Watchdog setup failed")
	}

	for {
		// Recover from panics in the service loop to keep the device on
		// the bus.
		func() {
			defer func() {
				if r := recover(); r != nil {
					loopPanics++
				}
			}()
			loop.Tick()
		}()
	}
}

// readIdentityStraps resolves the bus address from the two strap pins. The
// straps are pulled up, so an open pin reads high and a grounded pin low.
func readIdentityStraps() uint8 {
	strapPin0.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	strapPin1.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return core.ResolveAddress(strapPin0.Get(), strapPin1.Get())
}

// i2cListenerLoop runs in a goroutine and keeps the target interface
// listening. A bus error re-enters listenI2C after a short pause; a panic
// restarts the whole goroutine.
func i2cListenerLoop(s *core.Slave) {
	defer func() {
		if r := recover(); r != nil {
			busErrors++
			time.Sleep(100 * time.Millisecond)
			go i2cListenerLoop(s)
		}
	}()

	for {
		if err := listenI2C(s); err != nil {
			busErrors++
			time.Sleep(100 * time.Millisecond)
		}
	}
}
