//go:build rp2040

package main

import (
	"machine"

	"github.com/dlock8/InterconnectIO-Slave/core"
)

// Bus wiring: I2C0 as the target interface, GP20/GP21, 100 kHz.
const (
	i2cTargetSDA = machine.GPIO20
	i2cTargetSCL = machine.GPIO21
	i2cFrequency = 100 * machine.KHz
)

// listenI2C configures I2C0 in target mode and services bus events until
// the hardware reports an error. Each event maps onto one slave entry
// point: received bytes feed the register write path, a read request
// replies with one byte, a stop or restart closes the transaction.
func listenI2C(s *core.Slave) error {
	bus := machine.I2C0
	err := bus.Configure(machine.I2CConfig{
		Frequency: i2cFrequency,
		SDA:       i2cTargetSDA,
		SCL:       i2cTargetSCL,
		Mode:      machine.I2CModeTarget,
	})
	if err != nil {
		return err
	}
	if err := bus.Listen(uint16(s.Address)); err != nil {
		return err
	}

	buf := make([]byte, 16)
	reply := make([]byte, 1)
	for {
		evt, n, err := bus.WaitForEvent(buf)
		if err != nil {
			return err
		}
		switch evt {
		case machine.I2CReceive:
			for i := 0; i < n; i++ {
				s.ReceiveByte(buf[i])
			}
		case machine.I2CRequest:
			reply[0] = s.RequestByte()
			bus.Reply(reply)
		case machine.I2CFinish:
			s.FinishTransaction()
		}
	}
}
