//go:build rp2040 && !loopback

package main

import "github.com/dlock8/InterconnectIO-Slave/core"

// initLoopback is a no-op unless the firmware is built with -tags loopback.
func initLoopback(l *core.Loop, addr uint8) {}
