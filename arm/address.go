package arm

import "strconv"

// Address is the memory-operand abstraction for loads, stores, and swap:
// base register plus immediate offset, base plus register offset, or base
// plus scaled (shifted) register offset.
type Address interface {
	isAddress()
	String() string
}

// ImmediateOffset is `[base, #source]`.
type ImmediateOffset struct {
	Base   Register
	Source int32
}

func (ImmediateOffset) isAddress() {}
func (a ImmediateOffset) String() string {
	return "[" + a.Base.String() + ", #" + strconv.FormatInt(int64(a.Source), 10) + "]"
}

// RegisterOffset is `[base, source]`.
type RegisterOffset struct {
	Base   Register
	Source Register
}

func (RegisterOffset) isAddress() {}
func (a RegisterOffset) String() string {
	return "[" + a.Base.String() + ", " + a.Source.String() + "]"
}

// ScaledRegisterOffset is `[base, source, shift]`. Shift must be one of
// Shifter's immediate-shift variants (LSL/LSR/ASR/ROR-immediate or RRX);
// register shifts are not permitted here. The Arm encoder in package codec
// rejects any other shape; the type itself accepts any Shifter.
type ScaledRegisterOffset struct {
	Base   Register
	Source Register
	Shift  Shifter
}

func (ScaledRegisterOffset) isAddress() {}
func (a ScaledRegisterOffset) String() string {
	return "[" + a.Base.String() + ", " + a.Source.String() + ", " + a.Shift.String() + "]"
}

// IsImmediateShift reports whether s is one of the four immediate-shift
// variants or RRX — the only shifter shapes legal inside a
// ScaledRegisterOffset.
func IsImmediateShift(s Shifter) bool {
	switch s.(type) {
	case LogicalShiftLeftImmediate, LogicalShiftRightImmediate,
		ArithmeticShiftRightImmediate, RotateRightImmediate, RotateRightExtend:
		return true
	default:
		return false
	}
}
