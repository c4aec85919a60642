package codec

import (
	"errors"
	"testing"

	"github.com/lookbusy1344/armcodec/arm"
)

// TestEncodeArmAddImmediate pins down encoding a data-processing instruction
// with a rotated-immediate shifter: ADD r0, r1, #1 (AL, S off).
func TestEncodeArmAddImmediate(t *testing.T) {
	c := New()
	op, err := c.EncodeArm(arm.Add{
		Predicate:   arm.AL,
		Destination: arm.R0,
		Base:        arm.R1,
		Source:      arm.Immediate{Value: 1},
		S:           arm.Off,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := uint32(0xE2810001)
	if got := op.Uint32(); got != want {
		t.Errorf("EncodeArm = %#x, want %#x", got, want)
	}
	if c.Address() != 4 {
		t.Errorf("cursor after one Arm encode = %d, want 4", c.Address())
	}
}

// TestEncodeArmMoveImmediateShiftScenario covers a Move using an
// arithmetic-shift-right-by-immediate second operand: MOV r0, r7, ASR #4.
func TestEncodeArmMoveImmediateShiftScenario(t *testing.T) {
	c := New()
	op, err := c.EncodeArm(arm.Move{
		Predicate:   arm.AL,
		Destination: arm.R0,
		Source:      arm.ArithmeticShiftRightImmediate{Source: arm.R7, Shift: 4},
		S:           arm.Off,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := uint32(0xE1A00247)
	if got := op.Uint32(); got != want {
		t.Errorf("EncodeArm = %#x, want %#x", got, want)
	}
}

func TestEncodeArmTopBitsMatchPredicateExceptBreakpoint(t *testing.T) {
	for _, p := range []arm.Predicate{arm.EQ, arm.NE, arm.GE, arm.LT, arm.AL} {
		c := New()
		op, err := c.EncodeArm(arm.Move{Predicate: p, Destination: arm.R0, Source: arm.Immediate{Value: 0}, S: arm.Off})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if top := op.Uint32() >> 28; top != uint32(p) {
			t.Errorf("predicate %v: top nibble = %#x, want %#x", p, top, uint32(p))
		}
	}

	// Breakpoint fixes the condition field to 0b1110 regardless of what a
	// caller might otherwise expect: it has no Predicate field at all.
	c := New()
	op, err := c.EncodeArm(arm.Breakpoint{Immediate: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if top := op.Uint32() >> 28; top != 0b1110 {
		t.Errorf("Breakpoint top nibble = %#x, want 0xe", top)
	}
}

func TestEncodeArmMoveImmediateRotationBoundary(t *testing.T) {
	ok := []uint32{0, 0xFF, 0xFF00, 0xFF000000, 0x000000F0, 0xF000000F}
	for _, v := range ok {
		c := New()
		if _, err := c.EncodeArm(arm.Move{Predicate: arm.AL, Destination: arm.R0, Source: arm.Immediate{Value: v}, S: arm.Off}); err != nil {
			t.Errorf("immediate %#x should be expressible as rotated-8-bit, got error: %v", v, err)
		}
	}

	bad := []uint32{0x101, 0x1FF, 0xABCDEF01}
	for _, v := range bad {
		c := New()
		_, err := c.EncodeArm(arm.Move{Predicate: arm.AL, Destination: arm.R0, Source: arm.Immediate{Value: v}, S: arm.Off})
		if err == nil {
			t.Errorf("immediate %#x should be rejected as not expressible", v)
		}
		if !isKind(err, arm.IllegalImmediate) {
			t.Errorf("immediate %#x: want IllegalImmediate, got %v", v, err)
		}
	}
}

func TestEncodeArmShiftByThirtyTwoBoundary(t *testing.T) {
	c := New()
	op, err := c.EncodeArm(arm.Move{Predicate: arm.AL, Destination: arm.R0, Source: arm.LogicalShiftRightImmediate{Source: arm.R1, Shift: 32}, S: arm.Off})
	if err != nil {
		t.Fatalf("LSR #32 should succeed, encoded as field 0: %v", err)
	}
	if shiftAmount := (op.Uint32() >> armShiftAmountShift) & 0x1F; shiftAmount != 0 {
		t.Errorf("LSR #32 shift amount field = %d, want 0", shiftAmount)
	}

	c2 := New()
	op2, err := c2.EncodeArm(arm.Move{Predicate: arm.AL, Destination: arm.R0, Source: arm.ArithmeticShiftRightImmediate{Source: arm.R1, Shift: 32}, S: arm.Off})
	if err != nil {
		t.Fatalf("ASR #32 should succeed, encoded as field 0: %v", err)
	}
	if shiftAmount := (op2.Uint32() >> armShiftAmountShift) & 0x1F; shiftAmount != 0 {
		t.Errorf("ASR #32 shift amount field = %d, want 0", shiftAmount)
	}
}

func TestEncodeArmLslZeroIsBareRegister(t *testing.T) {
	c := New()
	op, err := c.EncodeArm(arm.Move{Predicate: arm.AL, Destination: arm.R0, Source: arm.LogicalShiftLeftImmediate{Source: arm.R5, Shift: 0}, S: arm.Off})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.Uint32()&0xFFF != 0x005 {
		t.Errorf("LSL #0 should encode as a bare register operand, got low bits %#x", op.Uint32()&0xFFF)
	}
}

func TestEncodeArmLslThirtyTwoFails(t *testing.T) {
	c := New()
	_, err := c.EncodeArm(arm.Move{Predicate: arm.AL, Destination: arm.R0, Source: arm.LogicalShiftLeftImmediate{Source: arm.R1, Shift: 32}, S: arm.Off})
	if err == nil {
		t.Error("LSL #32 is not representable and should fail")
	}
}

func TestEncodeArmFailureLeavesCursorUnchanged(t *testing.T) {
	c := NewAt(0x1000)
	_, err := c.EncodeArm(arm.Move{Predicate: arm.AL, Destination: arm.R0, Source: arm.Immediate{Value: 0x101}, S: arm.Off})
	if err == nil {
		t.Fatal("expected encode failure")
	}
	if c.Address() != 0x1000 {
		t.Errorf("cursor after failed encode = %#x, want unchanged 0x1000", c.Address())
	}
}

func TestEncodeArmBranchAndBranchLinkTemplate(t *testing.T) {
	c := New()
	op, err := c.EncodeArm(arm.Branch{Predicate: arm.AL, Immediate: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if top3 := op.Uint32() >> 24 & 0xF; top3 != 0b1011 {
		t.Errorf("Branch top nibble after predicate = %#b, want 0b1011", top3)
	}

	c2 := New()
	op2, err := c2.EncodeArm(arm.BranchLink{Predicate: arm.AL, Immediate: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if top3 := op2.Uint32() >> 24 & 0xF; top3 != 0b1010 {
		t.Errorf("BranchLink top nibble after predicate = %#b, want 0b1010", top3)
	}
}

func isKind(err error, kind arm.ErrorKind) bool {
	var e *arm.Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
