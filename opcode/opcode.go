// Package opcode provides the little-endian canonical wrappers around raw
// Arm and Thumb machine words that package codec encodes into and decodes
// from.
package opcode

import "fmt"

// ArmOpcode is one 32-bit Arm machine word, stored in its canonical
// little-endian byte order regardless of host endianness.
type ArmOpcode uint32

// NewArm constructs an ArmOpcode from a host-order uint32.
func NewArm(value uint32) ArmOpcode {
	return ArmOpcode(toLE32(value))
}

// Uint32 extracts the opcode as a host-order uint32.
func (o ArmOpcode) Uint32() uint32 {
	return toLE32(uint32(o))
}

func (o ArmOpcode) String() string {
	return fmt.Sprintf("%#08x", o.Uint32())
}

// GoString renders the opcode as a zero-padded 32-bit binary string, for
// debug/inspector display.
func (o ArmOpcode) GoString() string {
	return fmt.Sprintf("%032b", o.Uint32())
}

// ThumbOpcode is one 16-bit Thumb machine halfword, stored in its canonical
// little-endian byte order.
type ThumbOpcode uint16

// Size is the width, in bytes, of a single Thumb opcode. A BL instruction
// occupies two consecutive ThumbOpcode values (Size*2 bytes), not one.
const Size uint32 = 2

// NewThumb constructs a ThumbOpcode from a host-order uint16.
func NewThumb(value uint16) ThumbOpcode {
	return ThumbOpcode(toLE16(value))
}

// Uint16 extracts the opcode as a host-order uint16.
func (o ThumbOpcode) Uint16() uint16 {
	return toLE16(uint16(o))
}

func (o ThumbOpcode) String() string {
	return fmt.Sprintf("%#04x", o.Uint16())
}

// GoString renders the opcode as a zero-padded 16-bit binary string.
func (o ThumbOpcode) GoString() string {
	return fmt.Sprintf("%016b", o.Uint16())
}

// toLE32/toLE16 exist because the wire format is defined as little-endian:
// Go's integer arithmetic is not memory-layout dependent the way the
// teacher's original source's to_le()/from_le() is, so there is no byte
// order to correct for here, but the named conversion point is kept so a
// future big-endian-host caveat has a single place to land.
func toLE32(v uint32) uint32 { return v }

func toLE16(v uint16) uint16 { return v }
