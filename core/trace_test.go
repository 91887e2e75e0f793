package core

import (
	"strings"
	"testing"
)

func TestRecordAppendUint8(t *testing.T) {
	cases := []struct {
		v    uint8
		want string
	}{
		{0, "00"},
		{5, "05"},
		{13, "13"},
		{99, "99"},
		{100, "100"},
		{255, "255"},
	}
	for _, c := range cases {
		var r Record
		r.AppendUint8(c.v)
		if r.String() != c.want {
			t.Errorf("AppendUint8(%d) = %q, want %q", c.v, r.String(), c.want)
		}
	}
}

func TestRecordAppendHex(t *testing.T) {
	cases := []struct {
		v    uint32
		want string
	}{
		{0, "0x00"},
		{5, "0x05"},
		{0x22, "0x22"},
		{0x3C, "0x3c"},
		{0xFF, "0xff"},
		{0x3FC00, "0x3fc00"},
	}
	for _, c := range cases {
		var r Record
		r.AppendHex(c.v)
		if r.String() != c.want {
			t.Errorf("AppendHex(%#x) = %q, want %q", c.v, r.String(), c.want)
		}
	}
}

func TestRecordAppendUint(t *testing.T) {
	var r Record
	r.AppendUint(0)
	r.AppendString(" ")
	r.AppendUint(1)
	r.AppendString(" ")
	r.AppendUint(255)
	if r.String() != "0 1 255" {
		t.Errorf("Expected %q, got %q", "0 1 255", r.String())
	}
}

func TestRecordAppendBit(t *testing.T) {
	var r Record
	r.AppendBit(true)
	r.AppendBit(false)
	if r.String() != "10" {
		t.Errorf("Expected %q, got %q", "10", r.String())
	}
}

func TestRecordTruncatesAtCapacity(t *testing.T) {
	var r Record
	r.AppendString(strings.Repeat("x", RecordSize+20))
	if r.Len() != RecordSize {
		t.Errorf("Expected length %d after overflow, got %d", RecordSize, r.Len())
	}
	// Further appends must not wrap or corrupt
	r.AppendUint8(42)
	r.AppendHex(0xFFFF)
	if r.Len() != RecordSize {
		t.Errorf("Expected length %d after more appends, got %d", RecordSize, r.Len())
	}
	if r.String() != strings.Repeat("x", RecordSize) {
		t.Errorf("Overflowed record content changed: %q", r.String())
	}
}

func TestRecordCommandShape(t *testing.T) {
	var r Record
	traceHeader(&r, CmdSetGpio)
	r.AppendString("Set Gpio: ")
	r.AppendUint8(5)
	r.AppendString(" ")
	if r.String() != "Cmd 11, Set Gpio: 05 " {
		t.Errorf("Expected %q, got %q", "Cmd 11, Set Gpio: 05 ", r.String())
	}
}
