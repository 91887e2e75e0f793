package monitor

import (
	"sort"
	"sync"
	"time"
)

// statusCommand is the register address of the status flag byte; traces
// for it carry the byte the controller read back.
const statusCommand = 100

// BoardState is the last known state of one slave board.
type BoardState struct {
	Address uint8

	// Version is taken from the most recent heartbeat.
	Version string

	// LastSeen is when any line from the board last arrived.
	LastSeen time.Time

	Heartbeats int
	Traces     int

	// LastTrace is the payload of the most recent trace line.
	LastTrace string

	// Status is the last status byte seen in a status register trace.
	// StatusKnown reports whether any controller has read it yet.
	Status      uint8
	StatusKnown bool
}

// Fleet aggregates console lines into per-board state. All methods are
// safe for concurrent use; one tailer per console feeds the same fleet.
type Fleet struct {
	mu     sync.Mutex
	boards map[uint8]*BoardState

	// now is replaceable so tests can control the clock.
	now func() time.Time
}

// NewFleet creates an empty fleet view.
func NewFleet() *Fleet {
	return &Fleet{
		boards: make(map[uint8]*BoardState),
		now:    time.Now,
	}
}

// Observe folds one classified line into the fleet state. Lines without
// a board address, like the boot banner, are ignored; the banner appears
// before the board has printed its address anywhere.
func (f *Fleet) Observe(l Line) {
	if l.Kind != LineHeartbeat && l.Kind != LineTrace {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.boards[l.Address]
	if !ok {
		b = &BoardState{Address: l.Address}
		f.boards[l.Address] = b
	}
	b.LastSeen = f.now()

	switch l.Kind {
	case LineHeartbeat:
		b.Heartbeats++
		if l.Version != "" {
			b.Version = l.Version
		}
	case LineTrace:
		b.Traces++
		b.LastTrace = l.Text
		if l.Command == statusCommand {
			if v, ok := parseTraceValue(l.Text); ok {
				b.Status = v
				b.StatusKnown = true
			}
		}
	}
}

// Board returns a copy of the state for one address.
func (f *Fleet) Board(addr uint8) (BoardState, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.boards[addr]
	if !ok {
		return BoardState{}, false
	}
	return *b, true
}

// Boards returns a copy of every board state, ordered by address.
func (f *Fleet) Boards() []BoardState {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]BoardState, 0, len(f.boards))
	for _, b := range f.boards {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Address < out[j].Address })
	return out
}

// Stale returns the boards that have been silent for longer than maxAge.
// The firmware heartbeat runs every 15 seconds, so anything past twice
// that has likely dropped off the bus or lost its console.
func (f *Fleet) Stale(maxAge time.Duration) []BoardState {
	f.mu.Lock()
	defer f.mu.Unlock()

	cutoff := f.now().Add(-maxAge)
	var out []BoardState
	for _, b := range f.boards {
		if b.LastSeen.Before(cutoff) {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Address < out[j].Address })
	return out
}
