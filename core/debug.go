package core

// DiagWriter is a function type for writing console diagnostic lines
type DiagWriter func(string)

// diagPrintln is the global console writer (can be set by platform code)
var diagPrintln DiagWriter = func(s string) {} // No-op by default

// SetDiagWriter sets the platform-specific console output function.
// Targets redirect output to USB CDC; tests capture it in a slice.
// Only the background service loop calls the writer, never the bus path.
func SetDiagWriter(writer DiagWriter) {
	diagPrintln = writer
}

// DiagPrintln writes one console line using the platform-specific writer
func DiagPrintln(msg string) {
	if diagPrintln != nil {
		diagPrintln(msg)
	}
}
