package core

// Watchdog is the abstract watchdog interface. The background service loop
// refreshes it once per tick; a stalled loop lets the hardware reset the
// device.
type Watchdog interface {
	// Refresh reloads the watchdog counter
	Refresh()
}

// noopWatchdog keeps host builds and tests running without hardware.
type noopWatchdog struct{}

func (noopWatchdog) Refresh() {}

var watchdog Watchdog = noopWatchdog{}

// SetWatchdog is called by target-specific code to register its watchdog.
func SetWatchdog(w Watchdog) {
	watchdog = w
}
