package core

import "time"

// Service loop timing. Pulse values count loop ticks.
const (
	TickPeriod     = 10 * time.Millisecond
	HeartbeatPulse = 200  // LED blink period, normal operation
	WatchdogPulse  = 50   // LED blink period after a watchdog reset
	BannerTicks    = 1500 // console heartbeat period

	blinkOffTime  = 200 * time.Millisecond
	drainLEDPause = 50 * time.Millisecond
)

// Loop is the background service loop: it refreshes the watchdog, blinks the
// board LED, prints the periodic heartbeat line and drains the trace queue
// to the console. The loop owns all timekeeping; the bus event handler never
// sleeps.
type Loop struct {
	Slave *Slave
	LED   GPIOPin

	// Sleep is replaceable so tests can run ticks without real delays.
	Sleep func(time.Duration)

	// SelfTest, when set, runs every tick before the queue drain. The
	// loopback build uses it to drive the bus from a second controller.
	SelfTest func()

	pulse int
	ctr   int
	mess  int
}

// NewLoop creates the service loop. A watchdog reset in the status flags
// switches the LED to the fast blink so the fault is visible on the bench.
func NewLoop(s *Slave, led GPIOPin) *Loop {
	l := &Loop{
		Slave: s,
		LED:   led,
		Sleep: time.Sleep,
		pulse: HeartbeatPulse,
	}
	if s.Flags.Has(StatusWatchdogReset) {
		l.pulse = WatchdogPulse
	}
	return l
}

// Tick runs one loop iteration: watchdog refresh, tick sleep, LED pulse,
// heartbeat line, queue drain. The target calls it forever from main.
func (l *Loop) Tick() {
	watchdog.Refresh()
	l.Sleep(TickPeriod)
	l.ctr++
	l.mess++

	gpio := MustGPIO()

	if l.ctr > l.pulse {
		gpio.SetPin(l.LED, false)
		l.Sleep(blinkOffTime)
		gpio.SetPin(l.LED, true)
		l.ctr = 0
	}

	if l.mess > BannerTicks {
		DiagPrintln("Heartbeat I2C Slave add: 0x" + hex8(l.Slave.Address) +
			"  version: " + VersionString())
		l.mess = 0
	}

	if l.SelfTest != nil {
		l.SelfTest()
	}

	// Draining a full queue takes longer than the watchdog timeout, so the
	// refresh runs per record as well.
	for {
		rec, ok := l.Slave.Queue.Pop()
		if !ok {
			break
		}
		watchdog.Refresh()
		gpio.SetPin(l.LED, false)
		DiagPrintln("Pico " + hex8(l.Slave.Address) + ": " + rec.String())
		l.Sleep(drainLEDPause)
		gpio.SetPin(l.LED, true)
	}
}
