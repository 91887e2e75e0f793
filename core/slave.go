package core

// Slave is the device state addressed over the bus: the register file, the
// in-flight transaction state, the status flags and the trace queue. The I2C
// event handler is its only writer; the background service loop only drains
// the queue and reads the address.
type Slave struct {
	Regs    RegisterFile
	Flags   StatusFlags
	Queue   *TraceQueue
	Address uint8

	regAddr    uint8
	regAddrSet bool
}

// NewSlave creates the device state for the resolved bus address.
// watchdogReset marks the status byte when the previous run ended in a
// watchdog timeout.
func NewSlave(address uint8, queue *TraceQueue, watchdogReset bool) *Slave {
	s := &Slave{
		Queue:   queue,
		Address: address,
	}
	if watchdogReset {
		s.Flags.Set(StatusWatchdogReset)
	}
	return s
}

// ReceiveByte handles one byte written by the master. The first byte of a
// transaction selects the register address; every following byte is stored
// there and dispatched as a command. There is no auto increment: repeated
// data bytes rewrite the same cell.
func (s *Slave) ReceiveByte(b uint8) {
	if !s.regAddrSet {
		s.regAddr = b % RegisterCount
		s.regAddrSet = true
		return
	}
	s.Regs.Store(s.regAddr, b)
	s.dispatchWrite(CommandID(s.regAddr), b)
}

// RequestByte handles one byte requested by the master. Read commands first
// refresh the selected register from the hardware; the register contents are
// transmitted either way, so reading a plain cell returns whatever was last
// stored. The selected address survives the end of a transaction, which is
// what lets a bare read follow the write that armed it.
func (s *Slave) RequestByte() uint8 {
	s.dispatchRead(CommandID(s.regAddr))
	v := s.Regs.Load(s.regAddr)

	var rec Record
	rec.AppendString("Read Cmd : ")
	rec.AppendUint8(s.regAddr)
	rec.AppendString(" , Value: ")
	rec.AppendUint8(v)
	rec.AppendString(" ")
	s.Queue.Push(&rec)

	return v
}

// FinishTransaction handles the stop or restart condition. Only the address
// armed flag resets; the selected address and the register contents persist.
func (s *Slave) FinishTransaction() {
	s.regAddrSet = false
}
