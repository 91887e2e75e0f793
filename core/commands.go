package core

// CommandID is a register address acting as a command identifier. Writing a
// data byte to a command register triggers its write action; reading one
// refreshes the register from the hardware first.
type CommandID uint8

// Write-phase commands, executed when the data byte lands.
const (
	CmdClearGpio  CommandID = 10
	CmdSetGpio    CommandID = 11
	CmdClearBank  CommandID = 12
	CmdDirOut     CommandID = 20
	CmdDirIn      CommandID = 21
	CmdDrive2mA   CommandID = 30
	CmdDrive4mA   CommandID = 31
	CmdDrive8mA   CommandID = 32
	CmdDrive12mA  CommandID = 33
	CmdPullUp     CommandID = 41
	CmdPullOff    CommandID = 50
	CmdPullDown   CommandID = 51
	CmdPadPrepare CommandID = 60
	CmdPadApply   CommandID = 61
	CmdPort0Dir   CommandID = 80
	CmdPort0Out   CommandID = 81
	CmdPort1Dir   CommandID = 90
	CmdPort1Out   CommandID = 91
)

// Read-phase commands, refreshing the register before it is transmitted.
const (
	CmdMajorVersion CommandID = 1
	CmdMinorVersion CommandID = 2
	CmdReadBank     CommandID = 13
	CmdReadGpio     CommandID = 15
	CmdReadDir      CommandID = 25
	CmdReadDrive    CommandID = 35
	CmdReadPullUp   CommandID = 45
	CmdReadPullDown CommandID = 55
	CmdReadPad      CommandID = 65
	CmdPort0In      CommandID = 85
	CmdPort1In      CommandID = 95
	CmdStatus       CommandID = StatusRegister
)

// writeCommand describes one write-phase command. run applies the hardware
// effect for the data byte v; trace composes the record body after the
// "Cmd NN, " prefix, trailing space included.
type writeCommand struct {
	portOnly bool
	run      func(s *Slave, v uint8)
	trace    func(rec *Record, s *Slave, v uint8)
}

// readCommand mirrors writeCommand for the read phase. run returns the
// refreshed register value; trace receives both the old cell value v (the
// command argument) and the result.
type readCommand struct {
	portOnly bool
	run      func(s *Slave, v uint8) uint8
	trace    func(rec *Record, v, result uint8)
}

// tracePin composes the common "label NN " shape of the single pin writes.
func tracePin(label string) func(rec *Record, s *Slave, v uint8) {
	return func(rec *Record, _ *Slave, v uint8) {
		rec.AppendString(label)
		rec.AppendUint8(v)
		rec.AppendString(" ")
	}
}

// traceBitState composes the "label NN, State: b " shape of the boolean
// pin reads; the state renders as a bare 0 or 1.
func traceBitState(label string) func(rec *Record, v, result uint8) {
	return func(rec *Record, v, result uint8) {
		rec.AppendString(label)
		rec.AppendUint8(v)
		rec.AppendString(", State: ")
		rec.AppendBit(result != 0)
		rec.AppendString(" ")
	}
}

// driveCommand builds a drive strength setter for one of the four levels.
func driveCommand(level DriveStrength, label string) *writeCommand {
	return &writeCommand{
		run: func(_ *Slave, v uint8) {
			MustGPIO().SetDriveStrength(GPIOPin(v), level)
		},
		trace: tracePin(label),
	}
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// writeCommands maps register addresses to write-phase actions. A nil entry
// means the register is plain storage with no side effect.
var writeCommands = [RegisterCount]*writeCommand{
	CmdClearGpio: {
		run: func(_ *Slave, v uint8) {
			MustGPIO().SetPin(GPIOPin(v), false)
		},
		trace: tracePin("Clear Gpio: "),
	},
	CmdSetGpio: {
		run: func(_ *Slave, v uint8) {
			MustGPIO().SetPin(GPIOPin(v), true)
		},
		trace: tracePin("Set Gpio: "),
	},
	CmdClearBank: {
		run: func(_ *Slave, v uint8) {
			if v < Port1Offset {
				MustGPIO().OutMasked(Bank0Mask, 0)
			} else {
				MustGPIO().OutMasked(Bank1Mask, 0)
			}
		},
		trace: tracePin("Clear Bank Gpio: "),
	},
	CmdDirOut: {
		run: func(_ *Slave, v uint8) {
			MustGPIO().SetPinDir(GPIOPin(v), true)
		},
		trace: tracePin("Set Dir Out Gpio: "),
	},
	CmdDirIn: {
		run: func(_ *Slave, v uint8) {
			MustGPIO().SetPinDir(GPIOPin(v), false)
		},
		trace: tracePin("Set Dir In Gpio: "),
	},
	CmdDrive2mA:  driveCommand(Drive2mA, "2mA Gpio: "),
	CmdDrive4mA:  driveCommand(Drive4mA, "4mA Gpio: "),
	CmdDrive8mA:  driveCommand(Drive8mA, "8mA Gpio: "),
	CmdDrive12mA: driveCommand(Drive12mA, "12mA Gpio: "),
	CmdPullUp: {
		run: func(_ *Slave, v uint8) {
			MustGPIO().PullUp(GPIOPin(v))
		},
		trace: tracePin("Pull-up Gpio: "),
	},
	CmdPullOff: {
		run: func(_ *Slave, v uint8) {
			MustGPIO().DisablePulls(GPIOPin(v))
		},
		trace: tracePin("Clear pull-up, pull-down Gpio: "),
	},
	CmdPullDown: {
		run: func(_ *Slave, v uint8) {
			MustGPIO().PullDown(GPIOPin(v))
		},
		trace: tracePin("Pull-down Gpio: "),
	},
	CmdPadPrepare: {
		// Plain store: the value waits in its register until a pad apply
		// names the pin.
		run: func(_ *Slave, _ uint8) {},
		trace: func(rec *Record, _ *Slave, v uint8) {
			rec.AppendString("Pad State: ")
			rec.AppendUint(uint32(v))
			rec.AppendString(" ")
		},
	},
	CmdPadApply: {
		run: func(s *Slave, v uint8) {
			pad := uint32(s.Regs.Load(uint8(CmdPadPrepare)))
			MustGPIO().WritePad(GPIOPin(v), pad, 0xFF)
		},
		trace: func(rec *Record, s *Slave, v uint8) {
			rec.AppendString("Set Pad State to Gpio: ")
			rec.AppendUint8(v)
			rec.AppendString(", State: ")
			rec.AppendHex(uint32(s.Regs.Load(uint8(CmdPadPrepare))))
			rec.AppendString(" ")
		},
	},
	CmdPort0Dir: {
		portOnly: true,
		run: func(_ *Slave, v uint8) {
			MustGPIO().DirMasked(Port0Mask, uint32(v))
		},
		trace: func(rec *Record, _ *Slave, v uint8) {
			rec.AppendString("Port0, dir: ")
			rec.AppendHex(uint32(v))
			rec.AppendString(" ")
		},
	},
	CmdPort0Out: {
		portOnly: true,
		run: func(_ *Slave, v uint8) {
			MustGPIO().OutMasked(Port0Mask, uint32(v))
		},
		trace: func(rec *Record, _ *Slave, v uint8) {
			rec.AppendString("Port0, 8 bit Out: ")
			rec.AppendHex(uint32(v))
			rec.AppendString(" ")
		},
	},
	CmdPort1Dir: {
		portOnly: true,
		run: func(_ *Slave, v uint8) {
			MustGPIO().DirMasked(Port1Mask, uint32(v)<<Port1Offset)
		},
		trace: func(rec *Record, _ *Slave, v uint8) {
			rec.AppendString("Port1, dir: ")
			rec.AppendHex(uint32(v) << Port1Offset)
			rec.AppendString(" ")
		},
	},
	CmdPort1Out: {
		portOnly: true,
		run: func(_ *Slave, v uint8) {
			MustGPIO().OutMasked(Port1Mask, uint32(v)<<Port1Offset)
		},
		trace: func(rec *Record, _ *Slave, v uint8) {
			rec.AppendString("Port1, 8 bit Out: ")
			rec.AppendHex(uint32(v))
			rec.AppendString(" ")
		},
	},
}

// readCommands maps register addresses to read-phase refreshers. A nil entry
// means the register transmits whatever it holds.
var readCommands = [RegisterCount]*readCommand{
	CmdMajorVersion: {
		run: func(_ *Slave, _ uint8) uint8 {
			return VersionMajor
		},
		trace: func(rec *Record, _, result uint8) {
			rec.AppendString("MAJ Version: ")
			rec.AppendUint8(result)
			rec.AppendString(" ")
		},
	},
	CmdMinorVersion: {
		run: func(_ *Slave, _ uint8) uint8 {
			return VersionMinor
		},
		trace: func(rec *Record, _, result uint8) {
			rec.AppendString("MIN Version: ")
			rec.AppendUint8(result)
			rec.AppendString(" ")
		},
	},
	CmdReadBank: {
		run: func(_ *Slave, v uint8) uint8 {
			all := MustGPIO().GetAll()
			if v < Port1Offset {
				return uint8(all)
			}
			return uint8(all >> Port1Offset)
		},
		trace: func(rec *Record, v, result uint8) {
			rec.AppendString("Bank: ")
			rec.AppendUint8(v)
			rec.AppendString(", read: ")
			rec.AppendHex(uint32(result))
			rec.AppendString(" ")
		},
	},
	CmdReadGpio: {
		run: func(_ *Slave, v uint8) uint8 {
			return boolByte(MustGPIO().GetPin(GPIOPin(v)))
		},
		trace: traceBitState("Read True Gpio: "),
	},
	CmdReadDir: {
		run: func(_ *Slave, v uint8) uint8 {
			return boolByte(MustGPIO().GetPinDir(GPIOPin(v)))
		},
		trace: traceBitState("Read Dir Gpio: "),
	},
	CmdReadDrive: {
		run: func(_ *Slave, v uint8) uint8 {
			return uint8(MustGPIO().GetDriveStrength(GPIOPin(v)))
		},
		trace: func(rec *Record, v, result uint8) {
			rec.AppendString("Read strength Gpio: ")
			rec.AppendUint8(v)
			rec.AppendString(", State: ")
			rec.AppendUint(uint32(result))
			rec.AppendString(" ")
		},
	},
	CmdReadPullUp: {
		run: func(_ *Slave, v uint8) uint8 {
			return boolByte(MustGPIO().IsPulledUp(GPIOPin(v)))
		},
		trace: traceBitState("Read pull-up Gpio: "),
	},
	CmdReadPullDown: {
		run: func(_ *Slave, v uint8) uint8 {
			return boolByte(MustGPIO().IsPulledDown(GPIOPin(v)))
		},
		trace: traceBitState("Read pull-down Gpio: "),
	},
	CmdReadPad: {
		run: func(_ *Slave, v uint8) uint8 {
			return uint8(MustGPIO().ReadPad(GPIOPin(v)) & 0xFF)
		},
		trace: func(rec *Record, v, result uint8) {
			rec.AppendString("Gpio: ")
			rec.AppendUint8(v)
			rec.AppendString(", Read PAD State: ")
			rec.AppendHex(uint32(result))
			rec.AppendString(" ")
		},
	},
	CmdPort0In: {
		portOnly: true,
		run: func(_ *Slave, _ uint8) uint8 {
			return uint8(MustGPIO().GetAll())
		},
		trace: func(rec *Record, _, result uint8) {
			rec.AppendString("Read Port0 8 bit In: ")
			rec.AppendHex(uint32(result))
			rec.AppendString(" ")
		},
	},
	CmdPort1In: {
		portOnly: true,
		run: func(_ *Slave, _ uint8) uint8 {
			return uint8(MustGPIO().GetAll() >> Port1Offset)
		},
		trace: func(rec *Record, _, result uint8) {
			rec.AppendString("Read Port1 8 bit In: ")
			rec.AppendHex(uint32(result))
			rec.AppendString(" ")
		},
	},
	CmdStatus: {
		run: func(s *Slave, _ uint8) uint8 {
			return s.Flags.Byte()
		},
		trace: func(rec *Record, _, result uint8) {
			rec.AppendString("Status register: ")
			rec.AppendHex(uint32(result))
			rec.AppendString(" ")
		},
	},
}

// traceHeader starts a command record with the "Cmd NN, " prefix shared by
// every command trace.
func traceHeader(rec *Record, id CommandID) {
	rec.AppendString("Cmd ")
	rec.AppendUint8(uint8(id))
	rec.AppendString(", ")
}

// rejectPortCommand finishes rec as an identity rejection and raises the
// command flag. The hardware is left untouched by the caller.
func (s *Slave) rejectPortCommand(rec *Record) {
	rec.AppendString("Not Valid for I2C Pico: ")
	rec.AppendHex(uint32(s.Address))
	rec.AppendString(" ")
	s.Flags.Set(StatusCommandError)
}

// dispatchWrite runs the write-phase action for the selected register, if
// any. The data byte is already stored when this is called; commands that
// need it again read it back through v.
func (s *Slave) dispatchWrite(id CommandID, v uint8) {
	cmd := writeCommands[id]
	if cmd == nil {
		return
	}

	var rec Record
	traceHeader(&rec, id)

	if cmd.portOnly && !s.portCapable() {
		s.rejectPortCommand(&rec)
		s.Queue.Push(&rec)
		return
	}

	cmd.run(s, v)
	cmd.trace(&rec, s, v)
	s.Queue.Push(&rec)
}

// dispatchRead refreshes the selected register when it is a read command.
// The caller transmits the register contents afterwards whether or not a
// command matched, so a rejected port read returns the stale cell.
func (s *Slave) dispatchRead(id CommandID) {
	cmd := readCommands[id]
	if cmd == nil {
		return
	}

	var rec Record
	traceHeader(&rec, id)

	if cmd.portOnly && !s.portCapable() {
		s.rejectPortCommand(&rec)
		s.Queue.Push(&rec)
		return
	}

	v := s.Regs.Load(uint8(id))
	result := cmd.run(s, v)
	s.Regs.Store(uint8(id), result)
	cmd.trace(&rec, v, result)
	s.Queue.Push(&rec)
}
