package arm

import "strconv"

// Shifter is the second-operand abstraction shared by most
// data-processing mnemonics: either a bare immediate, a register,
// or a register combined with a shift function and amount.
//
// It is a closed sum realised as a sealed interface: every concrete
// operand is its own comparable struct type, so an encoder's type switch
// over Shifter can be checked for exhaustiveness and each variant only
// carries the fields its shift function actually needs.
type Shifter interface {
	isShifter()
	String() string
}

// Immediate is a bare immediate second operand.
type Immediate struct{ Value uint32 }

func (Immediate) isShifter() {}
func (s Immediate) String() string {
	return "#" + strconv.FormatUint(uint64(s.Value), 10)
}

// LogicalShiftLeftImmediate shifts Source left by a constant 0..=31.
//
// Shift == 0 is the canonical "bare register" encoding (see
// FromRegister/AsRegister): rendering omits the shift suffix in that case.
type LogicalShiftLeftImmediate struct {
	Source Register
	Shift  uint32
}

func (LogicalShiftLeftImmediate) isShifter() {}
func (s LogicalShiftLeftImmediate) String() string {
	if s.Shift == 0 {
		return s.Source.String()
	}
	return s.Source.String() + ", LSL #" + strconv.FormatUint(uint64(s.Shift), 10)
}

// LogicalShiftRightImmediate shifts Source right (logical) by 1..=32;
// 32 is encoded as the bit pattern 0 (see package codec).
type LogicalShiftRightImmediate struct {
	Source Register
	Shift  uint32
}

func (LogicalShiftRightImmediate) isShifter() {}
func (s LogicalShiftRightImmediate) String() string {
	return s.Source.String() + ", LSR #" + strconv.FormatUint(uint64(s.Shift), 10)
}

// ArithmeticShiftRightImmediate shifts Source right (arithmetic) by
// 1..=32; 32 is encoded as the bit pattern 0.
type ArithmeticShiftRightImmediate struct {
	Source Register
	Shift  uint32
}

func (ArithmeticShiftRightImmediate) isShifter() {}
func (s ArithmeticShiftRightImmediate) String() string {
	return s.Source.String() + ", ASR #" + strconv.FormatUint(uint64(s.Shift), 10)
}

// RotateRightImmediate rotates Source right by a constant 1..=31.
type RotateRightImmediate struct {
	Source Register
	Shift  uint32
}

func (RotateRightImmediate) isShifter() {}
func (s RotateRightImmediate) String() string {
	return s.Source.String() + ", ROR #" + strconv.FormatUint(uint64(s.Shift), 10)
}

// LogicalShiftLeftRegister shifts Source left by the value in Shift.
type LogicalShiftLeftRegister struct {
	Source Register
	Shift  Register
}

func (LogicalShiftLeftRegister) isShifter() {}
func (s LogicalShiftLeftRegister) String() string {
	return s.Source.String() + ", LSL " + s.Shift.String()
}

// LogicalShiftRightRegister shifts Source right (logical) by the value in Shift.
type LogicalShiftRightRegister struct {
	Source Register
	Shift  Register
}

func (LogicalShiftRightRegister) isShifter() {}
func (s LogicalShiftRightRegister) String() string {
	return s.Source.String() + ", LSR " + s.Shift.String()
}

// ArithmeticShiftRightRegister shifts Source right (arithmetic) by the
// value in Shift.
type ArithmeticShiftRightRegister struct {
	Source Register
	Shift  Register
}

func (ArithmeticShiftRightRegister) isShifter() {}
func (s ArithmeticShiftRightRegister) String() string {
	return s.Source.String() + ", ASR " + s.Shift.String()
}

// RotateRightRegister rotates Source right by the value in Shift.
type RotateRightRegister struct {
	Source Register
	Shift  Register
}

func (RotateRightRegister) isShifter() {}
func (s RotateRightRegister) String() string {
	return s.Source.String() + ", ROR " + s.Shift.String()
}

// RotateRightExtend rotates Source right through carry by one bit
// (a 33-bit rotate); it carries no shift amount.
type RotateRightExtend struct {
	Source Register
}

func (RotateRightExtend) isShifter() {}
func (s RotateRightExtend) String() string {
	return s.Source.String() + ", RRX"
}

// FromRegister returns the canonical bare-register shifter: a
// LogicalShiftLeftImmediate with Shift == 0.
func FromRegister(r Register) Shifter {
	return LogicalShiftLeftImmediate{Source: r, Shift: 0}
}

// AsRegister collapses a shifter to a plain register exactly when it has
// the canonical bare-register shape (LogicalShiftLeftImmediate{Shift: 0}).
// Every other variant is rejected.
func AsRegister(s Shifter) (Register, error) {
	if lsl, ok := s.(LogicalShiftLeftImmediate); ok && lsl.Shift == 0 {
		return lsl.Source, nil
	}
	return 0, newErr(IllegalShifter, "cannot collapse to register")
}
