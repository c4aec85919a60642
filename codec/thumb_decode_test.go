package codec

import (
	"testing"

	"github.com/lookbusy1344/armcodec/arm"
	"github.com/lookbusy1344/armcodec/opcode"
)

func TestDecodeThumbSoftwareInterrupt(t *testing.T) {
	c := New()
	instr, err := c.DecodeThumb(opcode.NewThumb(0xDFAA), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := arm.SoftwareInterrupt{Predicate: arm.AL, Immediate: 0xAA}
	if instr != want {
		t.Errorf("decode(0xDFAA) = %#v, want %#v", instr, want)
	}
	if c.Address() != 2 {
		t.Errorf("cursor after decode = %d, want 2", c.Address())
	}
}

func TestDecodeThumbBranchExchange(t *testing.T) {
	c := New()
	instr, err := c.DecodeThumb(opcode.NewThumb(0x4770), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := arm.BranchExchange{Predicate: arm.AL, Source: arm.LR}
	if instr != want {
		t.Errorf("decode(0x4770) = %#v, want %#v", instr, want)
	}
}

func TestDecodeThumbBranchLinkPairRequiresSecondHalf(t *testing.T) {
	c := New()
	if _, err := c.DecodeThumb(opcode.NewThumb(0xF000), nil); err == nil {
		t.Error("BL low half without a following halfword should fail")
	}
}

// TestDecodeThumbRoundTripsThroughEncode exercises decode_thumb(op),
// re-encode with encode_thumb at the same starting cursor, and checks the
// result matches the original opcode bits.
func TestDecodeThumbRoundTripsThroughEncode(t *testing.T) {
	cases := []struct {
		name  string
		first uint16
	}{
		{"and", 0b0100_0000_0010_1010},
		{"mov imm8", 0b0010_0011_1010_1010},
		{"bx lr", 0x4770},
		{"short branch eq", 0b1101_0000_0000_1010},
		{"unconditional branch", 0b1110_0000_0000_1010},
	}
	for _, c := range cases {
		dec := New()
		instr, err := dec.DecodeThumb(opcode.NewThumb(c.first), nil)
		if err != nil {
			t.Errorf("%s: decode failed: %v", c.name, err)
			continue
		}
		enc := New()
		first, _, err := enc.EncodeThumb(instr)
		if err != nil {
			t.Errorf("%s: re-encode failed: %v", c.name, err)
			continue
		}
		if first.Uint16() != c.first {
			t.Errorf("%s: round-trip = %#016b, want %#016b", c.name, first.Uint16(), c.first)
		}
	}
}

func TestDecodeThumbBranchLinkRoundTrip(t *testing.T) {
	original := New()
	low, high, err := original.EncodeThumb(arm.BranchLink{Predicate: arm.AL, Immediate: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dec := New()
	instr, err := dec.DecodeThumb(low, high)
	if err != nil {
		t.Fatalf("decode of BL pair failed: %v", err)
	}
	bl, ok := instr.(arm.BranchLink)
	if !ok {
		t.Fatalf("decoded instruction is %T, want arm.BranchLink", instr)
	}
	if bl.Immediate != 100 {
		t.Errorf("decoded BL target = %d, want 100", bl.Immediate)
	}

	enc := New()
	reFirst, reSecond, err := enc.EncodeThumb(bl)
	if err != nil {
		t.Fatalf("re-encode failed: %v", err)
	}
	if reFirst != low || reSecond == nil || *reSecond != *high {
		t.Errorf("BL pair did not round-trip: got (%v,%v), want (%v,%v)", reFirst, reSecond, low, *high)
	}
}
