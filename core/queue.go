package core

// QueueSize is the number of trace records the queue can hold.
const QueueSize = 64

// TraceQueue is a fixed circular FIFO of trace records shared between the
// I2C event handler (producer) and the background service loop (consumer).
// Every operation runs with interrupts masked so a push from the bus side
// can never interleave with a pop mid copy; on regular Go builds the masking
// is a no-op. When the queue is full new records are dropped.
type TraceQueue struct {
	records [QueueSize]Record
	read    int
	write   int
	count   int
}

// Push copies rec into the queue. Returns false and drops the record when
// the queue is full.
func (q *TraceQueue) Push(rec *Record) bool {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	if q.count >= QueueSize {
		return false
	}
	q.records[q.write] = *rec
	q.write = (q.write + 1) % QueueSize
	q.count++
	return true
}

// Pop removes and returns the oldest record. The freed slot is zeroed so
// stale text cannot leak into a later record. Returns false when empty.
func (q *TraceQueue) Pop() (Record, bool) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	if q.count == 0 {
		return Record{}, false
	}
	rec := q.records[q.read]
	q.records[q.read] = Record{}
	q.read = (q.read + 1) % QueueSize
	q.count--
	return rec, true
}

// Len returns the number of queued records.
func (q *TraceQueue) Len() int {
	state := disableInterrupts()
	defer restoreInterrupts(state)
	return q.count
}

// IsEmpty returns true if no records are queued.
func (q *TraceQueue) IsEmpty() bool {
	return q.Len() == 0
}

// Reset zeroes every slot and both indexes.
func (q *TraceQueue) Reset() {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	for i := range q.records {
		q.records[i] = Record{}
	}
	q.read = 0
	q.write = 0
	q.count = 0
}
