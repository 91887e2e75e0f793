//go:build rp2040

package main

import (
	"machine"

	"github.com/dlock8/InterconnectIO-Slave/core"
)

// InitSerial brings up the USB CDC console and routes diagnostic lines to
// it. On the RP2040 machine.Serial is USB CDC, so no UART pins are claimed.
func InitSerial() {
	err := machine.Serial.Configure(machine.UARTConfig{})
	if err != nil {
		return
	}
	core.SetDiagWriter(func(msg string) {
		machine.Serial.Write([]byte(msg))
		machine.Serial.Write([]byte("\r\n"))
	})
}
