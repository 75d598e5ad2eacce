// Package nxt drives a programmable brick over a byte-stream transport.
//
// The brick executes one direct command per frame. A command frame is
// [telegram flag][opcode][arguments...] with every argument encoded by
// package wire. Commands either expect no reply (fire-and-forget) or
// exactly one reply frame [0x02][opcode echo][status][payload...].
//
// The driver is synchronous and stateless across calls: no pipelining,
// no background receive loop, no retries. It assumes exclusive access
// to the transport; serializing commands is the caller's concern.
package nxt
