//go:build rp2040

package main

import (
	"machine"
	"runtime/volatile"
	"unsafe"
)

// Watchdog peripheral memory map. The REASON register records why the last
// reset happened; nonzero means the watchdog fired, by timeout or by force.
const (
	watchdogBase       = 0x40058000
	watchdogReasonAddr = watchdogBase + 0x08
)

var watchdogReason = (*volatile.Register32)(unsafe.Pointer(uintptr(watchdogReasonAddr)))

// WatchdogCausedReboot reports whether the previous reset came from the
// watchdog. Read it before the watchdog is rearmed.
func WatchdogCausedReboot() bool {
	return watchdogReason.Get() != 0
}

// RPWatchdog implements core.Watchdog over the hardware watchdog.
type RPWatchdog struct{}

func (RPWatchdog) Refresh() {
	machine.Watchdog.Update()
}

// StartWatchdog arms the hardware watchdog. The service loop refreshes it
// every tick and per drained trace record, so the timeout only has to cover
// one console print plus its LED pause.
func StartWatchdog(timeoutMillis uint32) error {
	err := machine.Watchdog.Configure(machine.WatchdogConfig{
		TimeoutMillis: timeoutMillis,
	})
	if err != nil {
		return err
	}
	return machine.Watchdog.Start()
}
