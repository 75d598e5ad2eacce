package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueRange(t *testing.T) {
	testCases := []struct {
		name     string
		typ      Type
		min, max int64
	}{
		{"u8", U8, 0, 0xff},
		{"s8", S8, -0x80, 0x7f},
		{"u16", U16, 0, 0xffff},
		{"s16", S16, -0x8000, 0x7fff},
		{"s32", S32, -0x80000000, 0x7fffffff},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, num := range []int64{tc.min, tc.max, 0} {
				v, err := New(tc.typ, num)
				require.NoError(t, err)
				require.Equal(t, num, v.Int())
				require.Equal(t, tc.typ, v.Type())
				require.Len(t, v.Bytes(), tc.typ.Size())
			}
			for _, num := range []int64{tc.min - 1, tc.max + 1} {
				_, err := New(tc.typ, num)
				require.Error(t, err)
				rangeErr, ok := err.(*RangeError)
				require.True(t, ok)
				require.Equal(t, tc.typ, rangeErr.Type)
				require.Equal(t, num, rangeErr.Value)
			}
		})
	}
}

func TestValueBytes(t *testing.T) {
	testCases := []struct {
		name   string
		value  Value
		expect []byte
	}{
		{"u8", mustNew(t, U8, 0xab), []byte{0xab}},
		{"s8 negative", mustNew(t, S8, -1), []byte{0xff}},
		{"u16", mustNew(t, U16, 0x1234), []byte{0x34, 0x12}},
		{"s16 negative", mustNew(t, S16, -2), []byte{0xfe, 0xff}},
		{"s32", mustNew(t, S32, 0x12345678), []byte{0x78, 0x56, 0x34, 0x12}},
		{"s32 negative", mustNew(t, S32, -1), []byte{0xff, 0xff, 0xff, 0xff}},
		{"bool true", NewBool(true), []byte{1}},
		{"bool false", NewBool(false), []byte{0}},
		{"raw byte", Byte(0xff), []byte{0xff}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, tc.value.Bytes())
			require.Equal(t, tc.expect, tc.value.AppendTo(nil))
			prefixed := tc.value.AppendTo([]byte{0x7e})
			require.Equal(t, append([]byte{0x7e}, tc.expect...), prefixed)
		})
	}
}

func TestDecode(t *testing.T) {
	b := []byte{0x00, 0x34, 0x12, 0xfe, 0xff, 0x78, 0x56, 0x34, 0x12}
	require.Equal(t, uint16(0x1234), Uint16(b, 1))
	require.Equal(t, int16(-2), Int16(b, 3))
	require.Equal(t, uint32(0x12345678), Uint32(b, 5))
	require.Equal(t, int32(0x12345678), Int32(b, 5))
	require.Equal(t, int32(-1), Int32([]byte{0xff, 0xff, 0xff, 0xff}, 0))
}

func mustNew(t *testing.T, typ Type, num int64) Value {
	v, err := New(typ, num)
	require.NoError(t, err)
	return v
}
