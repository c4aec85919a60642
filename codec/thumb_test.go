package codec

import (
	"testing"

	"github.com/lookbusy1344/armcodec/arm"
)

func TestEncodeThumbBranchExchange(t *testing.T) {
	c := New()
	first, second, err := c.EncodeThumb(arm.BranchExchange{Predicate: arm.AL, Source: arm.LR})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second != nil {
		t.Fatalf("BX should encode as a single halfword")
	}
	if want := uint16(0x4770); first.Uint16() != want {
		t.Errorf("BX lr = %#x, want %#x", first.Uint16(), want)
	}
	if c.Address() != 2 {
		t.Errorf("cursor after one thumb halfword = %d, want 2", c.Address())
	}
}

func TestEncodeThumbAndTwoOperand(t *testing.T) {
	c := New()
	first, second, err := c.EncodeThumb(arm.And{
		Predicate: arm.AL, Destination: arm.R2, Base: arm.R2, Source: arm.FromRegister(arm.R5), S: arm.On,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second != nil {
		t.Fatal("AND is a single halfword on thumb")
	}
	want := uint16(0b0100_0000_0010_1010)
	if first.Uint16() != want {
		t.Errorf("AND r2,r2,r5 = %#016b, want %#016b", first.Uint16(), want)
	}
}

// TestEncodeThumbBranchLinkThenAndCursorChaining reproduces the scenario
// where a BL pair is followed by a two-operand AND: the codec's cursor
// advances by a single halfword for the BL pair, matching upstream's
// encode_thumb bookkeeping (self.address += ThumbOpcode::SIZE runs once per
// call, regardless of how many opcodes that call emitted), not by the two
// halfwords the pair's emitted opcodes might otherwise suggest.
func TestEncodeThumbBranchLinkThenAndCursorChaining(t *testing.T) {
	c := New()
	first, second, err := c.EncodeThumb(arm.BranchLink{Predicate: arm.AL, Immediate: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second == nil {
		t.Fatal("BL must encode as a halfword pair")
	}
	if c.Address() != 2 {
		t.Fatalf("cursor after BL pair = %d, want 2", c.Address())
	}
	if _, _, err := c.EncodeThumb(arm.And{
		Predicate: arm.AL, Destination: arm.R0, Base: arm.R0, Source: arm.FromRegister(arm.R1), S: arm.On,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Address() != 4 {
		t.Errorf("cursor after BL pair + AND = %d, want 4", c.Address())
	}
	_ = first
}

// TestEncodeThumbScenarioSixBranchLinkAndBranch reproduces the full
// sequence from the worked example at cursor 0x08000000: a BranchLink to
// 0x08000044, a two-operand AND, then a Branch to 0x08000008. The BL pair's
// single-halfword cursor advance is what pins the trailing Branch's opcode
// to 0xE000 instead of overshooting to 0xE7FF.
func TestEncodeThumbScenarioSixBranchLinkAndBranch(t *testing.T) {
	c := NewAt(0x08000000)

	blFirst, blSecond, err := c.EncodeThumb(arm.BranchLink{Predicate: arm.AL, Immediate: 0x08000044})
	if err != nil {
		t.Fatalf("unexpected error encoding BL: %v", err)
	}
	if blSecond == nil {
		t.Fatal("BL must encode as a halfword pair")
	}
	if blFirst.Uint16() != 0xF000 {
		t.Errorf("BL first halfword = %#04x, want 0xf000", blFirst.Uint16())
	}
	if blSecond.Uint16() != 0xF820 {
		t.Errorf("BL second halfword = %#04x, want 0xf820", blSecond.Uint16())
	}

	andFirst, andSecond, err := c.EncodeThumb(arm.And{
		Predicate: arm.AL, Destination: arm.R0, Base: arm.R0,
		Source: arm.LogicalShiftLeftImmediate{Source: arm.R7, Shift: 0}, S: arm.On,
	})
	if err != nil {
		t.Fatalf("unexpected error encoding AND: %v", err)
	}
	if andSecond != nil {
		t.Fatal("AND must encode as a single halfword")
	}
	if andFirst.Uint16() != 0x4038 {
		t.Errorf("AND halfword = %#04x, want 0x4038", andFirst.Uint16())
	}

	if c.Address() != 0x08000004 {
		t.Fatalf("cursor after BL pair + AND = %#x, want 0x08000004", c.Address())
	}

	branchFirst, branchSecond, err := c.EncodeThumb(arm.Branch{Predicate: arm.AL, Immediate: 0x08000008})
	if err != nil {
		t.Fatalf("unexpected error encoding Branch: %v", err)
	}
	if branchSecond != nil {
		t.Fatal("Branch must encode as a single halfword")
	}
	if branchFirst.Uint16() != 0xE000 {
		t.Errorf("Branch halfword = %#04x, want 0xe000", branchFirst.Uint16())
	}
}

func TestEncodeThumbShortBranchBoundary(t *testing.T) {
	// half = (target - cursor - 4) / 2 must fit in -128..127 for a
	// conditional branch.
	cursorAt := func(half int32) int32 { return half*2 + 0 + 4 }

	for _, half := range []int32{-128, 127, 0, 100} {
		c := New()
		if _, _, err := c.EncodeThumb(arm.Branch{Predicate: arm.EQ, Immediate: cursorAt(half)}); err != nil {
			t.Errorf("half offset %d should round-trip, got error: %v", half, err)
		}
	}

	for _, half := range []int32{-129, 128} {
		c := New()
		if _, _, err := c.EncodeThumb(arm.Branch{Predicate: arm.EQ, Immediate: cursorAt(half)}); err == nil {
			t.Errorf("half offset %d is out of range and should fail", half)
		}
	}
}

func TestEncodeThumbBranchLinkBoundary(t *testing.T) {
	cursorAt := func(half int32) int32 { return half*2 + 4 }

	for _, half := range []int32{-(1 << 21), (1 << 21) - 1, 0} {
		c := New()
		_, second, err := c.EncodeThumb(arm.BranchLink{Predicate: arm.AL, Immediate: cursorAt(half)})
		if err != nil {
			t.Errorf("half offset %d should round-trip, got error: %v", half, err)
		}
		if second == nil {
			t.Errorf("half offset %d: expected a halfword pair", half)
		}
	}

	for _, half := range []int32{-(1 << 21) - 1, 1 << 21} {
		c := New()
		if _, _, err := c.EncodeThumb(arm.BranchLink{Predicate: arm.AL, Immediate: cursorAt(half)}); err == nil {
			t.Errorf("half offset %d is out of range and should fail", half)
		}
	}
}

func TestEncodeThumbTwoOperandInvariant(t *testing.T) {
	base := arm.And{Predicate: arm.AL, Destination: arm.R0, Base: arm.R0, Source: arm.FromRegister(arm.R1), S: arm.On}

	if _, _, err := New().EncodeThumb(base); err != nil {
		t.Fatalf("baseline AND should succeed: %v", err)
	}

	notAL := base
	notAL.Predicate = arm.NE
	if _, _, err := New().EncodeThumb(notAL); err == nil {
		t.Error("predicate != AL should be rejected")
	}

	baseNEDest := base
	baseNEDest.Base = arm.R2
	if _, _, err := New().EncodeThumb(baseNEDest); err == nil {
		t.Error("base != destination should be rejected")
	}

	highReg := base
	highReg.Destination = arm.R8
	highReg.Base = arm.R8
	if _, _, err := New().EncodeThumb(highReg); err == nil {
		t.Error("high register operand should be rejected")
	}

	sOff := base
	sOff.S = arm.Off
	if _, _, err := New().EncodeThumb(sOff); err == nil {
		t.Error("S flag off should be rejected")
	}
}

func TestEncodeThumbNegAllowsDistinctRegisters(t *testing.T) {
	c := New()
	_, _, err := c.EncodeThumb(arm.ReverseSubtract{
		Predicate: arm.AL, Destination: arm.R0, Base: arm.R1, Source: arm.Immediate{Value: 0}, S: arm.On,
	})
	if err != nil {
		t.Errorf("NEG r0, r1 should succeed despite Rd != Rm: %v", err)
	}
}

func TestEncodeThumbMoveImmediate(t *testing.T) {
	c := New()
	first, _, err := c.EncodeThumb(arm.Move{Predicate: arm.AL, Destination: arm.R3, Source: arm.Immediate{Value: 0xAA}, S: arm.On})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := uint16(0b0010_0011_1010_1010)
	if first.Uint16() != want {
		t.Errorf("MOV r3, #0xAA = %#016b, want %#016b", first.Uint16(), want)
	}
}

func TestEncodeThumbAddFormat2ImmediateVsRegister(t *testing.T) {
	c := New()
	first, _, err := c.EncodeThumb(arm.Add{Predicate: arm.AL, Destination: arm.R0, Base: arm.R1, Source: arm.Immediate{Value: 3}, S: arm.On})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Uint16()&(1<<10) == 0 {
		t.Error("3-bit immediate ADD should set the immediate-form bit")
	}

	c2 := New()
	second, _, err := c2.EncodeThumb(arm.Add{Predicate: arm.AL, Destination: arm.R0, Base: arm.R1, Source: arm.FromRegister(arm.R2), S: arm.On})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Uint16()&(1<<10) != 0 {
		t.Error("register-form ADD should not set the immediate-form bit")
	}

	c3 := New()
	if _, _, err := c3.EncodeThumb(arm.Add{Predicate: arm.AL, Destination: arm.R0, Base: arm.R1, Source: arm.Immediate{Value: 8}, S: arm.On}); err == nil {
		t.Error("immediate 8 does not fit in 3 bits and should fail")
	}
}
