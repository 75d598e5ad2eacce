package wire

// Uint16 decodes an unsigned word at offset off of b.
func Uint16(b []byte, off int) uint16 {
	return uint16(b[off]) | uint16(b[off+1])<<8
}

// Int16 decodes a signed word at offset off of b.
func Int16(b []byte, off int) int16 {
	return int16(Uint16(b, off))
}

// Uint32 decodes an unsigned long at offset off of b.
func Uint32(b []byte, off int) uint32 {
	return uint32(b[off]) | uint32(b[off+1])<<8 | uint32(b[off+2])<<16 | uint32(b[off+3])<<24
}

// Int32 decodes a signed long at offset off of b.
func Int32(b []byte, off int) int32 {
	return int32(Uint32(b, off))
}
