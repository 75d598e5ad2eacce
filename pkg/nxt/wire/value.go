package wire

import (
	"fmt"
)

// Type tags a Value with its width and signedness.
type Type int

// Value types used by the command protocol.
const (
	// U8 is an unsigned byte.
	U8 Type = iota
	// S8 is a signed byte.
	S8
	// U16 is an unsigned word, little-endian.
	U16
	// S16 is a signed word, little-endian.
	S16
	// S32 is a signed 32-bit long, little-endian.
	S32
)

// Size returns the encoded width in bytes.
func (t Type) Size() int {
	switch t {
	case U8, S8:
		return 1
	case U16, S16:
		return 2
	default:
		return 4
	}
}

// Range returns the inclusive range of numbers representable by t.
func (t Type) Range() (min, max int64) {
	switch t {
	case U8:
		return 0, 0xff
	case S8:
		return -0x80, 0x7f
	case U16:
		return 0, 0xffff
	case S16:
		return -0x8000, 0x7fff
	default:
		return -0x80000000, 0x7fffffff
	}
}

// String returns the type name.
func (t Type) String() string {
	switch t {
	case U8:
		return "u8"
	case S8:
		return "s8"
	case U16:
		return "u16"
	case S16:
		return "s16"
	case S32:
		return "s32"
	}
	return fmt.Sprintf("type(%d)", int(t))
}

// RangeError indicates a number doesn't fit the declared type.
type RangeError struct {
	Type  Type
	Value int64
}

// Error implements error.
func (e *RangeError) Error() string {
	return fmt.Sprintf("value %d out of range for %s", e.Value, e.Type)
}

// Value is an immutable fixed-width little-endian scalar.
type Value struct {
	typ Type
	num int64
}

// New creates a Value and validates num against the range of t.
func New(t Type, num int64) (Value, error) {
	if min, max := t.Range(); num < min || num > max {
		return Value{}, &RangeError{Type: t, Value: num}
	}
	return Value{typ: t, num: num}, nil
}

// NewU8 creates an unsigned byte Value.
func NewU8(num int) (Value, error) { return New(U8, int64(num)) }

// NewS8 creates a signed byte Value.
func NewS8(num int) (Value, error) { return New(S8, int64(num)) }

// NewU16 creates an unsigned word Value.
func NewU16(num int) (Value, error) { return New(U16, int64(num)) }

// NewS16 creates a signed word Value.
func NewS16(num int) (Value, error) { return New(S16, int64(num)) }

// NewS32 creates a signed long Value.
func NewS32(num int64) (Value, error) { return New(S32, num) }

// NewBool creates an unsigned byte Value encoding b as 0/1.
func NewBool(b bool) Value {
	var num int64
	if b {
		num = 1
	}
	return Value{typ: U8, num: num}
}

// Byte wraps a raw byte as a Value without validation.
// Use for bytes already in wire form (port codes, mode codes).
func Byte(b byte) Value {
	return Value{typ: U8, num: int64(b)}
}

// Type returns the value's type tag.
func (v Value) Type() Type { return v.typ }

// Int returns the numeric value.
func (v Value) Int() int64 { return v.num }

// Size returns the encoded width in bytes.
func (v Value) Size() int { return v.typ.Size() }

// AppendTo appends the little-endian encoding to b.
func (v Value) AppendTo(b []byte) []byte {
	switch v.typ.Size() {
	case 1:
		return append(b, byte(v.num))
	case 2:
		return append(b, byte(v.num), byte(v.num>>8))
	default:
		return append(b, byte(v.num), byte(v.num>>8), byte(v.num>>16), byte(v.num>>24))
	}
}

// Bytes returns the little-endian encoding.
func (v Value) Bytes() []byte {
	return v.AppendTo(make([]byte, 0, v.Size()))
}
