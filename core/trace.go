package core

// RecordSize is the fixed capacity of one trace record in bytes.
const RecordSize = 64

const hexDigits = "0123456789abcdef"

// Record is one diagnostic trace line. Records are composed inside the I2C
// event handler, so every append helper is bounded and allocation free; once
// a record is full further bytes are silently dropped.
type Record struct {
	buf [RecordSize]byte
	n   uint8
}

// appendByte appends a single byte, dropped when the record is full.
func (r *Record) appendByte(b byte) {
	if int(r.n) < RecordSize {
		r.buf[r.n] = b
		r.n++
	}
}

// AppendString appends s, truncating at capacity.
func (r *Record) AppendString(s string) {
	for i := 0; i < len(s); i++ {
		r.appendByte(s[i])
	}
}

// AppendUint8 appends v as zero padded decimal with at least two digits
// ("05", "13", "100"), the width used for command numbers and pin numbers.
func (r *Record) AppendUint8(v uint8) {
	if v >= 100 {
		r.appendByte('0' + v/100)
		v %= 100
	}
	r.appendByte('0' + v/10)
	r.appendByte('0' + v%10)
}

// AppendUint appends v as plain decimal with no padding.
func (r *Record) AppendUint(v uint32) {
	if v == 0 {
		r.appendByte('0')
		return
	}
	var tmp [10]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	for ; i < len(tmp); i++ {
		r.appendByte(tmp[i])
	}
}

// AppendHex appends v as lower case hex with a 0x prefix and at least two
// digits ("0x05", "0x3fc00").
func (r *Record) AppendHex(v uint32) {
	r.appendByte('0')
	r.appendByte('x')
	var tmp [8]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = hexDigits[v&0xf]
		v >>= 4
	}
	for len(tmp)-i < 2 {
		i--
		tmp[i] = '0'
	}
	for ; i < len(tmp); i++ {
		r.appendByte(tmp[i])
	}
}

// AppendBit appends "1" when set, "0" otherwise.
func (r *Record) AppendBit(set bool) {
	if set {
		r.appendByte('1')
	} else {
		r.appendByte('0')
	}
}

// Len returns the number of bytes composed so far.
func (r *Record) Len() int {
	return int(r.n)
}

// String returns the composed line. Allocates, so consumer side only.
func (r *Record) String() string {
	return string(r.buf[:r.n])
}
