// Package wire encodes typed scalars for brick command frames.
//
// Every argument in a command frame is a fixed-width little-endian
// scalar. A Value pairs a number with its width/signedness tag and is
// validated at construction, so frame assembly never fails on encoding.
//
// Decoding is the mirror operation: reply payloads document their fields
// at fixed offsets and widths, and the helpers here read them directly.
package wire
