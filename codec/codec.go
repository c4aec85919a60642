// Package codec implements InstructionCodec, the stateful encoder/decoder
// that turns arm.Instruction values into opcode.ArmOpcode/opcode.ThumbOpcode
// bit patterns and back, tracking a wrapping 32-bit address cursor for
// PC-relative encodings along the way.
package codec

// InstructionCodec holds the address cursor shared by every encode/decode
// call. Go's uint32 arithmetic already wraps at 2^32 the way the address
// cursor is specified to, so no separate wrapping-integer wrapper type is
// needed around it.
type InstructionCodec struct {
	address uint32
}

// New constructs a codec with the cursor at the origin.
func New() *InstructionCodec {
	return &InstructionCodec{}
}

// NewAt constructs a codec with the cursor at the given address.
func NewAt(address uint32) *InstructionCodec {
	return &InstructionCodec{address: address}
}

// Address reports the current cursor position.
func (c *InstructionCodec) Address() uint32 {
	return c.address
}

// SeekTo overwrites the cursor.
func (c *InstructionCodec) SeekTo(address uint32) {
	c.address = address
}

// SkipBytes advances the cursor by count bytes, wrapping silently.
func (c *InstructionCodec) SkipBytes(count uint32) {
	c.address += count
}

// SkipHalfwords advances the cursor by count halfwords (2 bytes each).
func (c *InstructionCodec) SkipHalfwords(count uint32) {
	c.address += count * 2
}

// SkipWords advances the cursor by count words (4 bytes each).
func (c *InstructionCodec) SkipWords(count uint32) {
	c.address += count * 4
}
