// Package monitor tails slave board consoles and tracks board health.
//
// The firmware prints a small set of line shapes: a version banner at
// boot, a periodic heartbeat, and drained trace records prefixed with
// the board address. The monitor classifies those lines and keeps a
// per-board view of the fleet.
package monitor

import (
	"strconv"
	"strings"
)

// Console line prefixes emitted by the firmware.
const (
	bootBannerPrefix = "Slave Version: "
	heartbeatPrefix  = "Heartbeat I2C Slave add: 0x"
	tracePrefix      = "Pico "
	selfTestPrefix   = "MAS: "

	heartbeatVersionSep = "version: "
)

// LineKind classifies a console line.
type LineKind int

const (
	LineUnknown LineKind = iota
	LineBootBanner
	LineHeartbeat
	LineTrace
	LineSelfTest
)

// Line is one classified console line.
type Line struct {
	Kind LineKind
	Raw  string

	// Address is the board bus address, set for heartbeat and trace lines.
	Address uint8

	// Version is the firmware version, set for banner and heartbeat lines.
	Version string

	// Text is the trace payload after the address prefix.
	Text string

	// Command is the command id parsed from a trace line, -1 when the
	// trace carries none.
	Command int
}

// Parse classifies one console line. Unknown shapes come back as
// LineUnknown with the raw text preserved, so noise on a shared port
// never stops the monitor.
func Parse(raw string) Line {
	l := Line{Kind: LineUnknown, Raw: raw, Command: -1}
	s := strings.TrimRight(raw, "\r\n ")

	switch {
	case strings.HasPrefix(s, bootBannerPrefix):
		l.Kind = LineBootBanner
		l.Version = strings.TrimSpace(strings.TrimPrefix(s, bootBannerPrefix))

	case strings.HasPrefix(s, heartbeatPrefix):
		rest := strings.TrimPrefix(s, heartbeatPrefix)
		addr, ok := parseHexByte(rest)
		if !ok {
			return l
		}
		l.Kind = LineHeartbeat
		l.Address = addr
		if i := strings.Index(rest, heartbeatVersionSep); i >= 0 {
			l.Version = strings.TrimSpace(rest[i+len(heartbeatVersionSep):])
		}

	case strings.HasPrefix(s, tracePrefix):
		rest := strings.TrimPrefix(s, tracePrefix)
		i := strings.Index(rest, ": ")
		if i != 2 {
			return l
		}
		addr, ok := parseHexByte(rest[:2])
		if !ok {
			return l
		}
		l.Kind = LineTrace
		l.Address = addr
		l.Text = rest[i+2:]
		l.Command = parseCommand(l.Text)

	case strings.HasPrefix(s, selfTestPrefix):
		l.Kind = LineSelfTest
		l.Text = strings.TrimPrefix(s, selfTestPrefix)
	}
	return l
}

// parseHexByte reads the two hex digit address at the start of s.
func parseHexByte(s string) (uint8, bool) {
	if len(s) < 2 {
		return 0, false
	}
	v, err := strconv.ParseUint(s[:2], 16, 8)
	if err != nil {
		return 0, false
	}
	return uint8(v), true
}

// parseTraceValue reads the value a trace carries as its final token.
// Register dump traces print it in 0x hex form, read summaries zero
// padded decimal.
func parseTraceValue(text string) (uint8, bool) {
	t := strings.TrimRight(text, " ")
	tok := t[strings.LastIndexByte(t, ' ')+1:]
	if tok == "" {
		return 0, false
	}
	base := 10
	if strings.HasPrefix(tok, "0x") {
		tok = tok[2:]
		base = 16
	}
	v, err := strconv.ParseUint(tok, base, 8)
	if err != nil {
		return 0, false
	}
	return uint8(v), true
}

// parseCommand extracts the command id from a trace payload. Write
// dispatch traces start with "Cmd NN," and read summaries with
// "Read Cmd : NN".
func parseCommand(text string) int {
	t := text
	switch {
	case strings.HasPrefix(t, "Read Cmd : "):
		t = strings.TrimPrefix(t, "Read Cmd : ")
	case strings.HasPrefix(t, "Cmd "):
		t = strings.TrimPrefix(t, "Cmd ")
	default:
		return -1
	}

	end := 0
	for end < len(t) && t[end] >= '0' && t[end] <= '9' {
		end++
	}
	if end == 0 {
		return -1
	}
	n, err := strconv.Atoi(t[:end])
	if err != nil {
		return -1
	}
	return n
}
