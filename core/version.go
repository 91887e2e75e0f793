package core

// Firmware version, reported by the version registers and the boot banner.
const (
	VersionMajor = 1
	VersionMinor = 0
)

// VersionString returns the "major.minor" form used by the console banner
// and the heartbeat line.
func VersionString() string {
	return itoa(VersionMajor) + "." + itoa(VersionMinor)
}
